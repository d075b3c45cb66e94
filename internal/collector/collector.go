package collector

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// Collector fetches the watchlist and merges it into one price table.
type Collector struct {
	Fetcher   Fetcher
	Watchlist []model.Instrument
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, watchlist []model.Instrument) *Collector {
	return &Collector{Fetcher: fetcher, Watchlist: watchlist}
}

// Collect downloads daily closes for every watchlist symbol covering
// the lookback window plus a 30-day warmup, merges the surviving
// columns on the union of dates and forward-fills gaps. Symbols that
// fail to download are logged and skipped; a fully failed run yields
// an empty table, never an error.
func (c *Collector) Collect(ctx context.Context, lookbackDays int) *model.PriceTable {
	start := time.Now().AddDate(0, 0, -(lookbackDays + 30))

	series := make(map[string][]model.Bar, len(c.Watchlist))
	for _, inst := range c.Watchlist {
		bars, err := c.Fetcher.FetchDailyCloses(ctx, inst.Symbol, start)
		if err != nil {
			log.Printf("[WARN] fetch %s failed, dropping column: %v", inst.Symbol, err)
			continue
		}
		if len(bars) == 0 {
			log.Printf("[WARN] fetch %s returned no rows, dropping column", inst.Symbol)
			continue
		}
		series[inst.Symbol] = bars
	}
	if len(series) == 0 {
		return &model.PriceTable{}
	}

	return mergeSeries(series)
}

// dateKey collapses a bar timestamp to its UTC calendar day so that
// closes from different exchanges line up on the same row.
func dateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// mergeSeries aligns per-symbol bars on the union of trading dates and
// forward-fills missing values from the most recent prior observation.
func mergeSeries(series map[string][]model.Bar) *model.PriceTable {
	seen := make(map[string]bool)
	var keys []string
	for _, bars := range series {
		for _, b := range bars {
			k := dateKey(b.Date)
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	index := make(map[string]int, len(keys))
	dates := make([]time.Time, len(keys))
	for i, k := range keys {
		index[k] = i
		dates[i], _ = time.Parse("2006-01-02", k)
	}

	table := &model.PriceTable{
		Dates:  dates,
		Closes: make(map[string][]float64, len(series)),
	}
	for symbol, bars := range series {
		col := make([]float64, len(keys))
		for i := range col {
			col[i] = math.NaN()
		}
		for _, b := range bars {
			col[index[dateKey(b.Date)]] = b.Close
		}
		forwardFill(col)
		table.Closes[symbol] = col
	}
	return table
}

// forwardFill replaces NaN entries with the most recent prior valid
// observation. Leading NaNs stay NaN.
func forwardFill(col []float64) {
	last := math.NaN()
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = last
		} else {
			last = v
		}
	}
}
