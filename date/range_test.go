package date

import (
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := Range{From: New(2024, time.March, 1), To: New(2024, time.March, 31)}
	testCases := []struct {
		name string
		d    Date
		want bool
	}{
		{name: "lower bound is included", d: New(2024, time.March, 1), want: true},
		{name: "upper bound is included", d: New(2024, time.March, 31), want: true},
		{name: "inside", d: New(2024, time.March, 15), want: true},
		{name: "day before", d: New(2024, time.February, 29), want: false},
		{name: "day after", d: New(2024, time.April, 1), want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.d); got != tc.want {
				t.Errorf("Contains(%s) = %v, want %v", tc.d, got, tc.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: New(2024, time.February, 27), To: New(2024, time.March, 2)}
	var got []string
	for d := range r.Days() {
		got = append(got, d.String())
	}
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Days() yielded %v, want %v", got, want)
		}
	}
}

func TestRange_Empty(t *testing.T) {
	r := Range{From: New(2024, time.March, 2), To: New(2024, time.March, 1)}
	if !r.IsEmpty() {
		t.Error("IsEmpty() = false for an inverted range")
	}
	for d := range r.Days() {
		t.Fatalf("Days() yielded %s from an empty range", d)
	}
	if r.Contains(New(2024, time.March, 1)) {
		t.Error("Contains() = true for an empty range")
	}
}

func TestYearAndMonth(t *testing.T) {
	y := Year(2024)
	if y.From != New(2024, time.January, 1) || y.To != New(2024, time.December, 31) {
		t.Errorf("Year(2024) = %s..%s", y.From, y.To)
	}
	m := Month(2024, time.February)
	if m.From != New(2024, time.February, 1) || m.To != New(2024, time.February, 29) {
		t.Errorf("Month(2024, Feb) = %s..%s, want the leap month", m.From, m.To)
	}
}
