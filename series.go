package betpro

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"betpro/date"

	"github.com/shopspring/decimal"
)

// Point is one bucket of the aggregated profit series: a discrete time slot
// (month or day) that exists even with zero activity.
type Point struct {
	Key        string          // chronological sort key, e.g. "2024-03" or "2024-03-05"
	Label      string          // display label: localized short month name or day number
	Profit     decimal.Decimal // net profit of the bucket
	Cumulative decimal.Decimal // running total up to and including this bucket
}

// BuildSeries turns the filtered bets into a dense, chronologically ordered
// profit series for charting.
//
// Annual filters bucket per calendar month (always all 12, Jan..Dec of the
// filtered year); Monthly and Custom filters bucket per calendar day, every
// day of the window present even without bets. The All view buckets per day
// across the full span of the data. months provides the localized short month
// names, index 0 being January.
//
// The cumulative value of a bucket is the sum of all bucket profits up to and
// including it; the last bucket's cumulative equals the total profit of the
// filtered set. A Custom window whose start is after its end yields no
// buckets at all.
func BuildSeries(bets []Bet, f Filter, months [12]string) []Point {
	switch f.View {
	case Annual:
		return monthlyBuckets(bets, f.Year, months)
	case Monthly:
		return dailyBuckets(bets, date.Month(f.Year, f.Month))
	case Custom:
		return dailyBuckets(bets, date.Range{From: f.From, To: f.To})
	default: // All: span the data itself.
		return dailyBuckets(bets, dataSpan(bets))
	}
}

// monthlyBuckets builds the 12 month buckets of a year.
func monthlyBuckets(bets []Bet, year int, months [12]string) []Point {
	points := make([]Point, 12)
	index := make(map[string]*Point, 12)
	for m := time.January; m <= time.December; m++ {
		p := &points[m-1]
		p.Key = fmt.Sprintf("%04d-%02d", year, m)
		p.Label = months[m-1]
		index[p.Key] = p
	}
	for _, b := range bets {
		key := fmt.Sprintf("%04d-%02d", b.Date.Year(), b.Date.Month())
		if p, ok := index[key]; ok {
			p.Profit = p.Profit.Add(b.Profit)
		}
	}
	return accumulate(points)
}

// dailyBuckets builds one bucket per day of the range. An empty range yields
// no buckets.
func dailyBuckets(bets []Bet, r date.Range) []Point {
	if r.IsEmpty() {
		return nil
	}
	var points []Point
	index := make(map[string]int)
	for d := range r.Days() {
		index[d.String()] = len(points)
		points = append(points, Point{
			Key:   d.String(),
			Label: strconv.Itoa(d.Day()),
		})
	}
	for _, b := range bets {
		if i, ok := index[b.Date.String()]; ok {
			points[i].Profit = points[i].Profit.Add(b.Profit)
		}
	}
	// Days() already yields chronologically, but the key is the contract.
	sort.SliceStable(points, func(i, j int) bool { return points[i].Key < points[j].Key })
	return accumulate(points)
}

// accumulate walks the buckets in chronological order filling the running
// total.
func accumulate(points []Point) []Point {
	cumulative := decimal.Zero
	for i := range points {
		cumulative = cumulative.Add(points[i].Profit)
		points[i].Cumulative = cumulative
	}
	return points
}

// dataSpan returns the [oldest, newest] date range of the bets, or an empty
// range when there are none.
func dataSpan(bets []Bet) date.Range {
	if len(bets) == 0 {
		return date.Range{From: date.New(1, 1, 2), To: date.New(1, 1, 1)}
	}
	min, max := bets[0].Date, bets[0].Date
	for _, b := range bets[1:] {
		if b.Date.Before(min) {
			min = b.Date
		}
		if b.Date.After(max) {
			max = b.Date
		}
	}
	return date.Range{From: min, To: max}
}
