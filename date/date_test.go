package date

import (
	"encoding/json"
	"testing"
	"time"
)

// A date string must round-trip to the exact same calendar day, never shifted
// by a timezone.
func TestParse_RoundTrip(t *testing.T) {
	for _, str := range []string{"2024-03-05", "2024-01-01", "2024-12-31", "2024-02-29"} {
		d, err := Parse(str)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", str, err)
		}
		if d.String() != str {
			t.Errorf("Parse(%q).String() = %q, want the same day back", str, d.String())
		}
	}
}

func TestParse_Lenient(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse(2025-7-1) = %s, want 2025-07-01", d)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, str := range []string{"", "not-a-date", "05/03/2024"} {
		if _, err := Parse(str); err == nil {
			t.Errorf("Parse(%q) error = nil, want error", str)
		}
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, Jan, 32) = %s, want %s", got, want)
	}
	if got, want := New(2024, time.March, 0), New(2024, time.February, 29); got != want {
		t.Errorf("New(2024, Mar, 0) = %s, want %s", got, want)
	}
}

func TestDate_Ordering(t *testing.T) {
	a, b := New(2024, time.March, 5), New(2024, time.March, 6)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before() broken for %s and %s", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After() broken for %s and %s", a, b)
	}
	if a.Before(a) || a.After(a) {
		t.Error("a day is neither before nor after itself")
	}
}

func TestDate_MonthBounds(t *testing.T) {
	d := New(2024, time.February, 15)
	if got := d.StartOfMonth(); got != New(2024, time.February, 1) {
		t.Errorf("StartOfMonth() = %s, want 2024-02-01", got)
	}
	if got := d.EndOfMonth(); got != New(2024, time.February, 29) {
		t.Errorf("EndOfMonth() = %s, want the leap day", got)
	}
}

func TestDate_JSON(t *testing.T) {
	type wrapper struct {
		On Date `json:"on"`
	}
	data, err := json.Marshal(wrapper{On: New(2024, time.March, 5)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `{"on":"2024-03-05"}` {
		t.Errorf("Marshal() = %s", data)
	}
	var w wrapper
	if err := json.Unmarshal(data, &w); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if w.On != New(2024, time.March, 5) {
		t.Errorf("Unmarshal() = %s, want 2024-03-05", w.On)
	}
}
