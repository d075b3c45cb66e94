package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/taichungmao-blip/metal-monitor/internal/chart"
	"github.com/taichungmao-blip/metal-monitor/internal/collector"
	"github.com/taichungmao-blip/metal-monitor/internal/config"
	"github.com/taichungmao-blip/metal-monitor/internal/notifier"
	"github.com/taichungmao-blip/metal-monitor/internal/runner"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] metal-monitor starting...")

	// .env is optional; environment wins over the YAML file either way.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("[ERROR] load config: %v", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[ERROR] config validation: %v", err)
		return
	}
	if cfg.WebhookURL == "" {
		log.Println("[WARN] webhook URL not set, report will not be delivered")
	}

	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher, cfg.Instruments())
	renderer := chart.NewRenderer(cfg.ChartPath)
	wn := notifier.NewWebhookNotifier(cfg.WebhookURL, cfg.Proxy)

	r := runner.New(col, renderer, wn, cfg)
	r.Run(context.Background())

	log.Println("[INFO] metal-monitor finished")
}
