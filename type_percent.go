package betpro

import "fmt"

// Percent is a ratio expressed in percent (e.g. 12.5 for 12.5%).
type Percent float64

func (p Percent) String() string { return fmt.Sprintf("%.1f%%", float64(p)) }

func (p Percent) SignedString() string { return fmt.Sprintf("%+.1f%%", float64(p)) }
