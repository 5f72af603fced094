package betpro

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"betpro/date"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// The format is a plain CSV table with the columns below, openable by any
// spreadsheet application.

// importColumns is the expected tabular schema, in export order.
var importColumns = []string{"Date", "Event", "Type", "Odds", "Stake", "Status", "Profit"}

// ErrEmptyImport reports that no valid row could be read at all.
var ErrEmptyImport = errors.New("no valid rows to import")

// ImportBets reads a tabular file and converts each row into a Bet with a
// freshly generated id.
//
// Malformed cells recover locally with defaults instead of failing the whole
// operation: a missing or invalid Odds becomes 1, Stake becomes 0, an
// unrecognized Status becomes Pending, Profit becomes 0 and an unparseable
// Date becomes today. Only a file with zero valid rows is an import failure.
func ImportBets(r io.Reader) ([]Bet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read import file: %w", err)
	}
	if len(records) < 2 {
		return nil, ErrEmptyImport
	}

	// Map header names to column positions, case-insensitively.
	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	cell := func(row []string, name string) string {
		i, ok := columns[strings.ToLower(name)]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var bets []Bet
	for _, row := range records[1:] {
		if len(row) == 0 {
			continue
		}
		on, err := date.Parse(cell(row, "Date"))
		if err != nil {
			on = date.Today()
		}
		event := cell(row, "Event")
		if event == "" {
			event = "Imported Event"
		}
		betType := cell(row, "Type")
		if betType == "" {
			betType = "Unknown"
		}
		status, err := ParseStatus(cell(row, "Status"))
		if err != nil {
			status = Pending
		}
		bets = append(bets, Bet{
			Date:   on,
			Match:  event,
			Type:   betType,
			Odds:   parseAmountOr(cell(row, "Odds"), decimal.NewFromInt(1)),
			Stake:  parseAmountOr(cell(row, "Stake"), decimal.Zero),
			Status: status,
			Profit: parseAmountOr(cell(row, "Profit"), decimal.Zero),
		})
	}
	if len(bets) == 0 {
		return nil, ErrEmptyImport
	}
	return bets, nil
}

// ExportBets writes the full bet collection in the import schema, one row per
// bet. Combination legs are not expanded, only the synthesized label and the
// combined odds appear.
func ExportBets(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(importColumns); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for b := range l.Bets() {
		row := []string{
			b.Date.String(),
			b.Match,
			b.Type,
			b.Odds.String(),
			b.Stake.String(),
			string(b.Status),
			b.Profit.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write bet %q: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
