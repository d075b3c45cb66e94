package model

import (
	"math"
	"time"
)

// Instrument is one monitored ticker with its display name.
type Instrument struct {
	Symbol string
	Name   string
}

// Bar is a single daily observation (adjusted close).
type Bar struct {
	Date  time.Time
	Close float64
}

// PriceTable holds the merged daily closes for all fetched instruments.
// Dates are ascending; every column has one value per date, NaN where
// the instrument had no observation yet.
type PriceTable struct {
	Dates  []time.Time
	Closes map[string][]float64
}

// Empty reports whether the table has no usable rows or columns.
func (t *PriceTable) Empty() bool {
	return t == nil || len(t.Dates) == 0 || len(t.Closes) == 0
}

// Column returns the close series for a symbol.
func (t *PriceTable) Column(symbol string) ([]float64, bool) {
	if t == nil {
		return nil, false
	}
	col, ok := t.Closes[symbol]
	return col, ok
}

// ValidCloses returns the column for a symbol with leading NaN gaps
// trimmed. After forward-filling, everything past the first valid
// observation is finite.
func (t *PriceTable) ValidCloses(symbol string) []float64 {
	col, ok := t.Column(symbol)
	if !ok {
		return nil
	}
	for i, v := range col {
		if !math.IsNaN(v) {
			return col[i:]
		}
	}
	return nil
}

// LatestDate returns the most recent date in the table.
func (t *PriceTable) LatestDate() time.Time {
	if t.Empty() {
		return time.Time{}
	}
	return t.Dates[len(t.Dates)-1]
}
