package betpro

import (
	"testing"
	"time"
)

func TestSummarize_SingleWin(t *testing.T) {
	bets := FilterBets(
		NewLedger(bet(t, "a", day(2024, time.June, 1), "2.0", "10", Win)),
		Filter{View: Annual, Year: 2024},
	)
	s := Summarize(bets)
	if !s.TotalProfit.Equal(dec(t, "10")) {
		t.Errorf("TotalProfit = %s, want 10", s.TotalProfit)
	}
	if s.ROI != 100 {
		t.Errorf("ROI = %s, want 100.0%%", s.ROI)
	}
	if s.WinRate != 100 {
		t.Errorf("WinRate = %s, want 100.0%%", s.WinRate)
	}
	if s.ActiveCount != 0 {
		t.Errorf("ActiveCount = %d, want 0", s.ActiveCount)
	}
}

func TestSummarize_LossAndPending(t *testing.T) {
	bets := FilterBets(
		NewLedger(
			bet(t, "a", day(2024, time.June, 1), "1.5", "50", Loss),
			bet(t, "b", day(2024, time.June, 2), "3.0", "50", Pending),
		),
		Filter{View: Annual, Year: 2024},
	)
	s := Summarize(bets)
	if !s.TotalProfit.Equal(dec(t, "-50")) {
		t.Errorf("TotalProfit = %s, want -50", s.TotalProfit)
	}
	if s.ActiveCount != 1 {
		t.Errorf("ActiveCount = %d, want 1", s.ActiveCount)
	}
	// 1 resolved, 0 wins.
	if s.WinRate != 0 {
		t.Errorf("WinRate = %s, want 0.0%%", s.WinRate)
	}
	// The pending stake still counts: -50 over 100.
	if s.ROI != -50 {
		t.Errorf("ROI = %s, want -50.0%%", s.ROI)
	}
}

// Void bets count toward the resolved denominator but never toward wins.
func TestSummarize_VoidLowersWinRate(t *testing.T) {
	s := Summarize([]Bet{
		bet(t, "a", day(2024, time.June, 1), "2", "10", Win),
		bet(t, "b", day(2024, time.June, 2), "2", "10", Void),
	})
	if s.ResolvedCount != 2 {
		t.Errorf("ResolvedCount = %d, want 2", s.ResolvedCount)
	}
	if s.WinRate != 50 {
		t.Errorf("WinRate = %s, want 50.0%% with the void in the denominator", s.WinRate)
	}
}

func TestSummarize_ZeroGuards(t *testing.T) {
	t.Run("no bets at all", func(t *testing.T) {
		s := Summarize(nil)
		if s.ROI != 0 || s.WinRate != 0 {
			t.Errorf("ROI = %s, WinRate = %s, want both 0 with no bets", s.ROI, s.WinRate)
		}
	})
	t.Run("only pending bets", func(t *testing.T) {
		s := Summarize([]Bet{bet(t, "a", day(2024, time.June, 1), "2", "10", Pending)})
		if s.WinRate != 0 {
			t.Errorf("WinRate = %s, want 0 with no resolved bets", s.WinRate)
		}
		if s.ROI != 0 {
			t.Errorf("ROI = %s, want 0 for a zero-profit set", s.ROI)
		}
	})
}

// A cashout override flows through the totals untouched.
func TestSummarize_IncludesOverriddenProfit(t *testing.T) {
	l := NewLedger(bet(t, "a", day(2024, time.June, 1), "2", "10", Win))
	l.Cashout("a", dec(t, "4.5"))
	b, _ := l.Get("a")
	s := Summarize([]Bet{b})
	if !s.TotalProfit.Equal(dec(t, "4.5")) {
		t.Errorf("TotalProfit = %s, want the overridden 4.5", s.TotalProfit)
	}
}
