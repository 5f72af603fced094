package betpro

import (
	"testing"
	"time"
)

var shortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func TestBuildSeries_AnnualAlwaysTwelveBuckets(t *testing.T) {
	series := BuildSeries(nil, Filter{View: Annual, Year: 2024}, shortMonths)
	if len(series) != 12 {
		t.Fatalf("len(series) = %d, want 12 even with no bets", len(series))
	}
	for i, p := range series {
		if p.Label != shortMonths[i] {
			t.Errorf("series[%d].Label = %q, want %q", i, p.Label, shortMonths[i])
		}
		if !p.Profit.IsZero() || !p.Cumulative.IsZero() {
			t.Errorf("series[%d] = %s/%s, want zero bucket", i, p.Profit, p.Cumulative)
		}
	}
	if series[0].Key != "2024-01" || series[11].Key != "2024-12" {
		t.Errorf("keys = %q..%q, want 2024-01..2024-12", series[0].Key, series[11].Key)
	}
}

func TestBuildSeries_AnnualBucketsAndCumulative(t *testing.T) {
	bets := []Bet{
		bet(t, "a", day(2024, time.January, 10), "2", "10", Win),   // +10
		bet(t, "b", day(2024, time.January, 20), "2", "5", Loss),   // -5
		bet(t, "c", day(2024, time.March, 5), "2", "20", Loss),     // -20
		bet(t, "d", day(2024, time.December, 31), "3", "10", Win),  // +20
		bet(t, "e", day(2024, time.June, 1), "2", "50", Pending),   // 0
	}
	series := BuildSeries(bets, Filter{View: Annual, Year: 2024}, shortMonths)
	if len(series) != 12 {
		t.Fatalf("len(series) = %d, want 12", len(series))
	}

	wantProfit := map[string]string{"2024-01": "5", "2024-03": "-20", "2024-12": "20"}
	for _, p := range series {
		want := wantProfit[p.Key]
		if want == "" {
			want = "0"
		}
		if !p.Profit.Equal(dec(t, want)) {
			t.Errorf("bucket %s profit = %s, want %s", p.Key, p.Profit, want)
		}
	}

	// The running total is the sum of all buckets so far, and the last one
	// matches the summary's total.
	cumulative := dec(t, "0")
	for i, p := range series {
		cumulative = cumulative.Add(p.Profit)
		if !p.Cumulative.Equal(cumulative) {
			t.Errorf("series[%d].Cumulative = %s, want %s", i, p.Cumulative, cumulative)
		}
	}
	total := Summarize(bets).TotalProfit
	if !series[11].Cumulative.Equal(total) {
		t.Errorf("last Cumulative = %s, want the period total %s", series[11].Cumulative, total)
	}
}

func TestBuildSeries_MonthlyDailyBuckets(t *testing.T) {
	bets := []Bet{
		bet(t, "a", day(2024, time.March, 1), "2", "10", Win),  // +10
		bet(t, "b", day(2024, time.March, 1), "2", "4", Loss),  // -4, same day
		bet(t, "c", day(2024, time.March, 31), "2", "7", Loss), // -7
	}
	series := BuildSeries(bets, Filter{View: Monthly, Year: 2024, Month: time.March}, shortMonths)
	if len(series) != 31 {
		t.Fatalf("len(series) = %d, want one bucket per day of March", len(series))
	}
	if series[0].Label != "1" || series[30].Label != "31" {
		t.Errorf("labels = %q..%q, want day numbers 1..31", series[0].Label, series[30].Label)
	}
	if !series[0].Profit.Equal(dec(t, "6")) {
		t.Errorf("day 1 profit = %s, want the same-day sum 6", series[0].Profit)
	}
	if !series[14].Profit.IsZero() {
		t.Errorf("day 15 profit = %s, want a zero bucket", series[14].Profit)
	}
	if !series[30].Cumulative.Equal(dec(t, "-1")) {
		t.Errorf("last Cumulative = %s, want -1", series[30].Cumulative)
	}
}

func TestBuildSeries_CustomWindow(t *testing.T) {
	bets := []Bet{bet(t, "a", day(2024, time.March, 2), "2", "10", Win)}
	f := Filter{View: Custom, From: day(2024, time.March, 1), To: day(2024, time.March, 3)}
	series := BuildSeries(bets, f, shortMonths)
	if len(series) != 3 {
		t.Fatalf("len(series) = %d, want 3 days", len(series))
	}
	if !series[1].Profit.Equal(dec(t, "10")) {
		t.Errorf("middle day profit = %s, want 10", series[1].Profit)
	}
}

func TestBuildSeries_CustomStartAfterEnd(t *testing.T) {
	f := Filter{View: Custom, From: day(2024, time.March, 3), To: day(2024, time.March, 1)}
	if series := BuildSeries(nil, f, shortMonths); len(series) != 0 {
		t.Errorf("len(series) = %d, want none for an inverted window", len(series))
	}
}

func TestBuildSeries_AllSpansTheData(t *testing.T) {
	bets := []Bet{
		bet(t, "new", day(2024, time.March, 5), "2", "10", Win),
		bet(t, "old", day(2024, time.March, 1), "2", "10", Loss),
	}
	series := BuildSeries(bets, Filter{View: All}, shortMonths)
	if len(series) != 5 {
		t.Fatalf("len(series) = %d, want the 5 days from oldest to newest", len(series))
	}
	if series[0].Key != "2024-03-01" || series[4].Key != "2024-03-05" {
		t.Errorf("keys = %q..%q, want 2024-03-01..2024-03-05", series[0].Key, series[4].Key)
	}

	if series := BuildSeries(nil, Filter{View: All}, shortMonths); len(series) != 0 {
		t.Errorf("len(series) = %d with no bets, want none", len(series))
	}
}
