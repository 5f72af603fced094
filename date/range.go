package date

import (
	"iter"
	"time"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range contains no day at all (From after To).
func (r Range) IsEmpty() bool { return r.From.After(r.To) }

// Days returns an iterator over every day in the range, in chronological
// order. An empty range yields nothing.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Year returns the range covering the whole calendar year.
func Year(year int) Range {
	return Range{From: New(year, 1, 1), To: New(year, 12, 31)}
}

// Month returns the range covering the whole calendar month.
func Month(year int, month time.Month) Range {
	first := New(year, month, 1)
	return Range{From: first, To: first.EndOfMonth()}
}
