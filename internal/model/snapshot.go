package model

// Snapshot is the per-instrument view at the latest date: price,
// day-over-day change, RSI(14) and their classified presentation.
// RSI may be NaN when the series is too short.
type Snapshot struct {
	Symbol string
	Price  float64
	Change float64 // percent vs previous close
	RSI    float64
	Icon   string
	Note   string
}

// RatioSignal is the gold/silver ratio with its regime label.
type RatioSignal struct {
	Value float64
	Label string
}

// Report is the assembled message plus an optional chart image.
type Report struct {
	Text      string
	ImagePath string
}
