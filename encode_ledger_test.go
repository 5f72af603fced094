package betpro

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeDecodeBets(t *testing.T) {
	l := NewLedger(
		bet(t, "b", day(2024, time.March, 6), "1.8", "20", Pending),
		bet(t, "a", day(2024, time.March, 5), "2.5", "10", Win),
	)
	data, err := EncodeBets(l)
	if err != nil {
		t.Fatalf("EncodeBets() error = %v", err)
	}
	// Amounts serialize as plain JSON numbers, dates as plain day strings.
	if !strings.Contains(string(data), `"odds":2.5`) {
		t.Errorf("encoded = %s, want unquoted decimal odds", data)
	}
	if !strings.Contains(string(data), `"date":"2024-03-05"`) {
		t.Errorf("encoded = %s, want the plain day string", data)
	}

	got := DecodeBets(data)
	if got.Len() != 2 {
		t.Fatalf("decoded Len() = %d, want 2", got.Len())
	}
	a := mustGet(t, got, "a")
	if a.Date != day(2024, time.March, 5) || !a.Profit.Equal(dec(t, "15")) {
		t.Errorf("decoded bet a = %+v", a)
	}
}

// Corrupt persisted data must never crash the application.
func TestDecodeBets_FailsSoft(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":        nil,
		"not json":     []byte("{corrupt"),
		"wrong shape":  []byte(`{"bets": 1}`),
		"mistyped row": []byte(`[{"id":"a","stake":"not a number"}]`),
	} {
		t.Run(name, func(t *testing.T) {
			if got := DecodeBets(data); got.Len() != 0 {
				t.Errorf("DecodeBets() Len() = %d, want an empty ledger", got.Len())
			}
		})
	}
}
