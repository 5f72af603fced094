package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"betpro"
	"betpro/i18n"

	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the filtered bet list, most recent first.
// Combination bets show their synthesized label with the legs joined in the
// event cell.
func HistoryMarkdown(bets []betpro.Bet, currency string, lang i18n.Lang) string {
	tr := lang.For()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.HistoryTitle)
	if len(bets) == 0 {
		doc.PlainText(tr.NoBets)
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft, md.AlignLeft, md.AlignLeft,
			md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignRight,
		},
		Header: []string{
			tr.TableDate, tr.TableEvent, tr.TableType,
			tr.TableOdds, tr.TableStake, tr.TableStatus, tr.TableProfit,
		},
	}
	for _, b := range bets {
		table.Rows = append(table.Rows, []string{
			displayDate(b.Date.String(), lang),
			event(b),
			b.Type,
			"@" + b.Odds.StringFixed(2),
			money(b.Stake, currency),
			tr.StatusLabel(string(b.Status)),
			signedMoney(b.Profit, currency),
		})
	}
	doc.Table(table)
	return doc.String()
}

func event(b betpro.Bet) string {
	if len(b.SubGames) == 0 {
		return b.Match
	}
	legs := make([]string, 0, len(b.SubGames))
	for _, g := range b.SubGames {
		legs = append(legs, fmt.Sprintf("%s @%s", g.Event, g.Odd.StringFixed(2)))
	}
	return b.Match + ": " + strings.Join(legs, "; ")
}
