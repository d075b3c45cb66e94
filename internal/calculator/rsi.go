package calculator

import "math"

// RSI computes the relative strength index using a simple rolling mean
// of gains and losses over the trailing window, the rolling-mean
// variant rather than Wilder smoothing. Returns NaN when fewer than
// period+1 closes are available. When the window holds no losses the
// relative strength is +Inf and the result is exactly 100.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return math.NaN()
	}

	var gains, losses float64
	for i := len(closes) - period; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		if math.IsNaN(change) {
			return math.NaN()
		}
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	// avgLoss == 0 yields Inf or NaN here on purpose.
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
