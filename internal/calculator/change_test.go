package calculator

import (
	"math"
	"testing"
)

func TestPercentChange_LastTwoObservations(t *testing.T) {
	closes := []float64{100, 102, 98, 95, 110}
	got := PercentChange(closes)
	want := (110.0 - 95.0) / 95.0 * 100.0 // +15.79%
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %+.4f%%, got %+.4f%%", want, got)
	}
}

func TestPercentChange_ConstantIsExactlyZero(t *testing.T) {
	if got := PercentChange([]float64{42, 42, 42}); got != 0 {
		t.Errorf("expected exactly 0 for constant series, got %v", got)
	}
}

func TestPercentChange_InsufficientDataIsNaN(t *testing.T) {
	if got := PercentChange([]float64{100}); !math.IsNaN(got) {
		t.Errorf("expected NaN for single close, got %v", got)
	}
	if got := PercentChange(nil); !math.IsNaN(got) {
		t.Errorf("expected NaN for empty series, got %v", got)
	}
}
