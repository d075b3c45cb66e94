package runner

import (
	"context"
	"log"

	"github.com/taichungmao-blip/metal-monitor/internal/chart"
	"github.com/taichungmao-blip/metal-monitor/internal/collector"
	"github.com/taichungmao-blip/metal-monitor/internal/config"
	"github.com/taichungmao-blip/metal-monitor/internal/model"
	"github.com/taichungmao-blip/metal-monitor/internal/notifier"
	"github.com/taichungmao-blip/metal-monitor/internal/strategy"
)

// Notifier delivers the finished report.
type Notifier interface {
	Send(ctx context.Context, text, imagePath string) error
}

// Runner sequences one fetch → analyze → render → notify pass.
type Runner struct {
	Collector *collector.Collector
	Renderer  *chart.Renderer
	Notifier  Notifier
	Cfg       *config.Config
}

// New creates a Runner.
func New(col *collector.Collector, renderer *chart.Renderer, n Notifier, cfg *config.Config) *Runner {
	return &Runner{Collector: col, Renderer: renderer, Notifier: n, Cfg: cfg}
}

// Run executes one monitoring pass. Every failure kind has an explicit
// decision here — abort silently, skip the instrument, or stop before
// notifying — and none of them escapes to the caller: the process
// always ends cleanly.
func (r *Runner) Run(ctx context.Context) {
	table := r.Collector.Collect(ctx, r.Cfg.LookbackDays)
	if table.Empty() {
		log.Println("[WARN] no market data fetched, aborting run")
		return
	}

	var ratio *model.RatioSignal
	if rs, err := strategy.GoldSilverRatio(table, r.Cfg.GoldSymbol, r.Cfg.SilverSymbol); err != nil {
		log.Printf("[WARN] gold/silver ratio unavailable: %v", err)
	} else {
		ratio = &rs
	}

	imagePath, err := r.Renderer.Render(table, r.Cfg.LookbackDays)
	if err != nil {
		log.Printf("[ERROR] render chart: %v", err)
		return
	}

	snapshots := make(map[string]model.Snapshot, len(r.Cfg.ReportOrder))
	for _, symbol := range r.Cfg.ReportOrder {
		snap, err := strategy.Analyze(table, symbol)
		if err != nil {
			log.Printf("[WARN] analyze %s: %v, skipping", symbol, err)
			continue
		}
		snapshots[symbol] = snap
	}

	text := notifier.BuildReport(table, snapshots, ratio, r.Cfg.ReportOrder, r.Cfg.Names())
	if err := r.Notifier.Send(ctx, text, imagePath); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
