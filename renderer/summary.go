package renderer

import (
	"bytes"
	"strconv"

	"betpro"
	"betpro/i18n"

	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// SummaryMarkdown renders the period's headline statistics next to the
// all-time consolidated balance.
func SummaryMarkdown(s betpro.Summary, consolidated decimal.Decimal, currency string, lang i18n.Lang) string {
	tr := lang.For()
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(tr.PeriodResult)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header: []string{
			md.Bold(tr.PeriodResult),
			md.Bold(money(s.TotalProfit, currency)),
		},
		Rows: [][]string{
			{tr.ConsolidatedResult, money(consolidated, currency)},
		},
	})

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{tr.TotalProfit, tr.ROI, tr.WinRate, tr.ActiveBets},
		Rows: [][]string{{
			signedMoney(s.TotalProfit, currency),
			s.ROI.String(),
			s.WinRate.String(),
			strconv.Itoa(s.ActiveCount),
		}},
	})

	return doc.String()
}
