package calculator

import "math"

// PercentChange returns the day-over-day change of the last two
// observations, in percent. Returns NaN when fewer than 2 closes are
// available.
func PercentChange(closes []float64) float64 {
	if len(closes) < 2 {
		return math.NaN()
	}
	latest := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	return (latest - prev) / prev * 100.0
}
