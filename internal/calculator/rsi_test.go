package calculator

import (
	"math"
	"testing"
)

func TestRSI_MonotonicIncreaseIs100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	rsi := RSI(closes, 14)
	if rsi != 100.0 {
		t.Errorf("expected RSI 100 for monotonic rise, got %v", rsi)
	}
}

func TestRSI_ConstantSeriesIsNaN(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 50
	}
	rsi := RSI(closes, 14)
	if !math.IsNaN(rsi) {
		t.Errorf("expected NaN RSI for constant series, got %v", rsi)
	}
}

func TestRSI_InsufficientDataIsNaN(t *testing.T) {
	closes := []float64{100, 102, 98, 95, 110}
	if rsi := RSI(closes, 14); !math.IsNaN(rsi) {
		t.Errorf("expected NaN RSI for 5 closes, got %v", rsi)
	}
	if rsi := RSI(nil, 14); !math.IsNaN(rsi) {
		t.Errorf("expected NaN RSI for empty series, got %v", rsi)
	}
}

func TestRSI_BalancedGainsAndLosses(t *testing.T) {
	// 14 alternating ±1 moves: avg gain == avg loss, so RSI is exactly 50.
	closes := []float64{100}
	for i := 0; i < 7; i++ {
		closes = append(closes, closes[len(closes)-1]+1)
		closes = append(closes, closes[len(closes)-1]-1)
	}
	rsi := RSI(closes, 14)
	if math.Abs(rsi-50.0) > 1e-9 {
		t.Errorf("expected RSI 50 for balanced moves, got %v", rsi)
	}
}

func TestRSI_StaysInBounds(t *testing.T) {
	closes := []float64{100, 101, 99, 103, 102, 104, 101, 105, 106, 103, 107, 105, 108, 104, 109, 110, 108, 111, 107, 112}
	rsi := RSI(closes, 14)
	if math.IsNaN(rsi) || rsi < 0 || rsi > 100 {
		t.Errorf("expected RSI within [0,100], got %v", rsi)
	}
}

func TestRSI_UsesTrailingWindowOnly(t *testing.T) {
	// A crash far outside the trailing 14 diffs must not affect the result.
	steady := make([]float64, 20)
	for i := range steady {
		steady[i] = 100 + float64(i)
	}
	crashed := append([]float64{500, 50}, steady...)
	if got := RSI(crashed, 14); got != 100.0 {
		t.Errorf("expected RSI 100 ignoring old crash, got %v", got)
	}
}
