package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// InstrumentConfig is one watchlist entry.
type InstrumentConfig struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Config holds all application configuration.
type Config struct {
	WebhookURL   string             `yaml:"webhook_url"`
	LookbackDays int                `yaml:"lookback_days"`
	ChartPath    string             `yaml:"chart_path"`
	Proxy        string             `yaml:"proxy"`
	Watchlist    []InstrumentConfig `yaml:"watchlist"`
	ReportOrder  []string           `yaml:"report_order"`
	GoldSymbol   string             `yaml:"gold_symbol"`
	SilverSymbol string             `yaml:"silver_symbol"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DISCORD_WEBHOOK_URL"); v != "" {
		cfg.WebhookURL = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.LookbackDays = days
		}
	}
	if v := os.Getenv("CHART_PATH"); v != "" {
		cfg.ChartPath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.LookbackDays == 0 {
		cfg.LookbackDays = 180
	}
	if cfg.ChartPath == "" {
		cfg.ChartPath = "gold_chart.png"
	}
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []InstrumentConfig{
			{Symbol: "GC=F", Name: "黃金期貨(美)"},
			{Symbol: "SI=F", Name: "白銀期貨(美)"},
			{Symbol: "DX-Y.NYB", Name: "美元指數"},
			{Symbol: "00635U.TW", Name: "元大S&P黃金"},
			{Symbol: "9955.TW", Name: "佳龍"},
		}
	}
	if len(cfg.ReportOrder) == 0 {
		cfg.ReportOrder = []string{"GC=F", "SI=F", "00635U.TW", "9955.TW", "DX-Y.NYB"}
	}
	if cfg.GoldSymbol == "" {
		cfg.GoldSymbol = "GC=F"
	}
	if cfg.SilverSymbol == "" {
		cfg.SilverSymbol = "SI=F"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.LookbackDays <= 0 {
		return fmt.Errorf("lookback_days must be positive")
	}
	if c.ChartPath == "" {
		return fmt.Errorf("chart_path is required")
	}
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist must not be empty")
	}
	known := make(map[string]bool, len(c.Watchlist))
	for _, w := range c.Watchlist {
		if w.Symbol == "" {
			return fmt.Errorf("watchlist entry missing symbol")
		}
		known[w.Symbol] = true
	}
	for _, sym := range c.ReportOrder {
		if !known[sym] {
			return fmt.Errorf("report_order symbol %q is not in the watchlist", sym)
		}
	}
	return nil
}

// Instruments returns the watchlist as model values.
func (c *Config) Instruments() []model.Instrument {
	out := make([]model.Instrument, len(c.Watchlist))
	for i, w := range c.Watchlist {
		out[i] = model.Instrument{Symbol: w.Symbol, Name: w.Name}
	}
	return out
}

// Names returns the symbol to display-name mapping.
func (c *Config) Names() map[string]string {
	names := make(map[string]string, len(c.Watchlist))
	for _, w := range c.Watchlist {
		names[w.Symbol] = w.Name
	}
	return names
}
