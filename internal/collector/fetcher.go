package collector

import (
	"context"
	"time"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// Fetcher defines the interface for fetching daily close history.
type Fetcher interface {
	FetchDailyCloses(ctx context.Context, symbol string, start time.Time) ([]model.Bar, error)
	Name() string
}
