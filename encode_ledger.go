package betpro

import (
	"encoding/json"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeBets serializes the whole collection as a JSON array of bets, most
// recent first, matching the ledger's recorded order.
func EncodeBets(l *Ledger) ([]byte, error) {
	bets := make([]Bet, 0, l.Len())
	for b := range l.Bets() {
		bets = append(bets, b)
	}
	return json.Marshal(bets)
}

// DecodeBets deserializes a bet collection. Corrupt data must not crash the
// application: it fails soft to an empty ledger, with a notice in the log.
func DecodeBets(data []byte) *Ledger {
	if len(data) == 0 {
		return NewLedger()
	}
	var bets []Bet
	if err := json.Unmarshal(data, &bets); err != nil {
		log.Printf("warning: discarding corrupt bet collection: %v", err)
		return NewLedger()
	}
	return NewLedger(bets...)
}
