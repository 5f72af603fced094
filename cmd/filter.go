package cmd

import (
	"flag"
	"fmt"
	"time"

	"betpro"
	"betpro/date"
)

// filterFlags is the shared flag set describing a reporting window. Commands
// that operate on a filtered view embed it.
type filterFlags struct {
	view  string
	year  int
	month int
	from  string
	to    string
}

func (ff *filterFlags) SetFlags(f *flag.FlagSet) {
	today := date.Today()
	f.StringVar(&ff.view, "view", "annual", "Reporting view: annual, monthly, custom or all")
	f.IntVar(&ff.year, "year", today.Year(), "Year for the annual and monthly views")
	f.IntVar(&ff.month, "month", int(today.Month()), "Month (1-12) for the monthly view")
	f.StringVar(&ff.from, "from", today.StartOfMonth().String(), "Start date (inclusive) for the custom view")
	f.StringVar(&ff.to, "to", today.String(), "End date (inclusive) for the custom view")
}

// Filter validates the flags into the core's filter config.
func (ff *filterFlags) Filter() (betpro.Filter, error) {
	view, err := betpro.ParseView(ff.view)
	if err != nil {
		return betpro.Filter{}, err
	}
	f := betpro.Filter{View: view, Year: ff.year}
	switch view {
	case betpro.Monthly:
		if ff.month < 1 || ff.month > 12 {
			return betpro.Filter{}, fmt.Errorf("month must be in 1..12, got %d", ff.month)
		}
		f.Month = time.Month(ff.month)
	case betpro.Custom:
		if f.From, err = date.Parse(ff.from); err != nil {
			return betpro.Filter{}, err
		}
		if f.To, err = date.Parse(ff.to); err != nil {
			return betpro.Filter{}, err
		}
	}
	return f, nil
}
