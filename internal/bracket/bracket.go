// Package bracket normalizes rate schedules into the contiguous
// min/max/rate records consumed by the calculator.
package bracket

import "github.com/rrspmax/bracketgen/internal/taxrate"

// Bracket is one contiguous income range taxed at a single marginal rate.
// Rate is a decimal fraction (0.205, not 20.5). Max serializes as a plain
// number, or as the literal string "Infinity" for the top bracket.
type Bracket struct {
	Min  float64       `json:"min"`
	Max  taxrate.Bound `json:"max"`
	Rate float64       `json:"rate"`
}

// Normalize converts an ordered rate schedule into a bracket list of the
// same length and order. Each bracket's Min is the previous band's upper
// bound (0 for the first), and rates are converted from percentages to
// decimal fractions. An empty schedule yields an empty list, never nil, so
// it serializes as [].
func Normalize(sched taxrate.Schedule) []Bracket {
	out := make([]Bracket, 0, len(sched))
	min := 0.0
	for _, band := range sched {
		out = append(out, Bracket{
			Min:  min,
			Max:  band.Upper,
			Rate: band.RatePercent / 100,
		})
		if !band.Upper.Infinite() {
			min = band.Upper.Amount()
		}
	}
	return out
}
