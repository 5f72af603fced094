package renderer

import (
	"bytes"
	"strings"

	"betpro"
	"betpro/i18n"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

const barWidth = 20 // widest bar, in characters

// SeriesMarkdown renders the time-bucketed profit series as a table with a
// textual bar per bucket and the running bankroll total.
func SeriesMarkdown(points []betpro.Point, currency string, lang i18n.Lang) string {
	tr := lang.For()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.BankrollEvolution)
	if len(points) == 0 {
		doc.PlainText(tr.NoBets)
		return doc.String()
	}

	scale := maxAbsProfit(points)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"", tr.TableProfit, "", tr.BankrollEvolution},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Label,
			signedMoney(p.Profit, currency),
			bar(p.Profit, scale),
			money(p.Cumulative, currency),
		})
	}
	doc.Table(table)
	return doc.String()
}

// bar draws the bucket's profit as a run of block characters, scaled to the
// largest absolute bucket profit. Losses are marked with a leading minus.
func bar(profit, scale decimal.Decimal) string {
	if scale.IsZero() || profit.IsZero() {
		return ""
	}
	n := profit.Abs().Div(scale).Mul(decimal.NewFromInt(barWidth)).IntPart()
	if n < 1 {
		n = 1
	}
	blocks := strings.Repeat("█", int(n))
	if profit.IsNegative() {
		return "-" + blocks
	}
	return blocks
}

func maxAbsProfit(points []betpro.Point) decimal.Decimal {
	max := decimal.Zero
	for _, p := range points {
		if abs := p.Profit.Abs(); abs.GreaterThan(max) {
			max = abs
		}
	}
	return max
}
