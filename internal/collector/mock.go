package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars map[string][]model.Bar
	Errs map[string]error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(_ context.Context, symbol string, _ time.Time) ([]model.Bar, error) {
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	bars, ok := m.Bars[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no data for %s", symbol)
	}
	return bars, nil
}

// MakeBars builds consecutive daily bars ending today from a list of closes.
func MakeBars(closes []float64) []model.Bar {
	bars := make([]model.Bar, len(closes))
	n := len(closes)
	for i, c := range closes {
		bars[i] = model.Bar{
			Date:  time.Now().AddDate(0, 0, -(n - 1 - i)),
			Close: c,
		}
	}
	return bars
}
