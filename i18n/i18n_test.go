package i18n

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Lang
		wantErr bool
	}{
		{in: "en", want: EN},
		{in: "pt", want: PT},
		{in: "pt-BR", want: PT},
		{in: "es-419", want: ES},
		{in: "fr", want: FR},
		{in: "ar", want: AR},
		{in: "not a tag!", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestShortMonths(t *testing.T) {
	for _, l := range supported {
		months := l.ShortMonths()
		for i, m := range months {
			if m == "" {
				t.Errorf("%s month %d is empty", l, i+1)
			}
		}
	}
	if got := PT.ShortMonth(time.February); got != "fev" {
		t.Errorf("PT.ShortMonth(Feb) = %q, want fev", got)
	}
	if got := EN.ShortMonth(time.December); got != "Dec" {
		t.Errorf("EN.ShortMonth(Dec) = %q, want Dec", got)
	}
	// An unknown language falls back to English.
	if got := Lang("xx").ShortMonth(time.January); got != "Jan" {
		t.Errorf("unknown lang ShortMonth(Jan) = %q, want the English fallback", got)
	}
}

func TestRTL(t *testing.T) {
	if !AR.RTL() {
		t.Error("AR.RTL() = false, want true")
	}
	if PT.RTL() {
		t.Error("PT.RTL() = true, want false")
	}
}

// Every supported language must carry a complete label set.
func TestTranslations_Complete(t *testing.T) {
	for _, l := range supported {
		tr := l.For()
		if tr.PeriodResult == "" || tr.TotalProfit == "" || tr.Win == "" || tr.NoBets == "" || tr.IAPrompt == "" {
			t.Errorf("%s has missing labels: %+v", l, tr)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tr := PT.For()
	if got := tr.StatusLabel("WIN"); got != tr.Win {
		t.Errorf("StatusLabel(WIN) = %q, want %q", got, tr.Win)
	}
	if got := tr.StatusLabel("weird"); got != tr.Pending {
		t.Errorf("StatusLabel(weird) = %q, want the pending fallback %q", got, tr.Pending)
	}
}
