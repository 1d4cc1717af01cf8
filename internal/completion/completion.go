// Package completion computes section completion percentages from the
// server-reported per-step flags.
package completion

import "math"

// Percent maps a list of per-step completion flags to an integer 0-100.
// An empty list is defined as 0% rather than an error. Rounding is
// half-up: math.Round rounds half away from zero, which is the same
// thing for the non-negative ratios that occur here (1/8 -> 13).
func Percent(flags []bool) int {
	if len(flags) == 0 {
		return 0
	}
	done := 0
	for _, f := range flags {
		if f {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(flags)) * 100))
}
