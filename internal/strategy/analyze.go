package strategy

import (
	"fmt"

	"github.com/taichungmao-blip/metal-monitor/internal/calculator"
	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

const rsiPeriod = 14

// Analyze computes the latest snapshot for one instrument. It returns
// an error when the symbol is absent from the table or has fewer than
// two valid closes; the caller decides whether to skip or abort. RSI
// stays NaN when the series is shorter than 15 valid points.
func Analyze(table *model.PriceTable, symbol string) (model.Snapshot, error) {
	closes := table.ValidCloses(symbol)
	if len(closes) == 0 {
		return model.Snapshot{}, fmt.Errorf("symbol %s not in fetched table", symbol)
	}
	if len(closes) < 2 {
		return model.Snapshot{}, fmt.Errorf("symbol %s: need 2 closes for change, have %d", symbol, len(closes))
	}

	change := calculator.PercentChange(closes)
	rsi := calculator.RSI(closes, rsiPeriod)

	return model.Snapshot{
		Symbol: symbol,
		Price:  closes[len(closes)-1],
		Change: change,
		RSI:    rsi,
		Icon:   ChangeIcon(change),
		Note:   RSINote(rsi),
	}, nil
}

// GoldSilverRatio computes the latest gold/silver price ratio with its
// regime label.
func GoldSilverRatio(table *model.PriceTable, goldSymbol, silverSymbol string) (model.RatioSignal, error) {
	gold := table.ValidCloses(goldSymbol)
	if len(gold) == 0 {
		return model.RatioSignal{}, fmt.Errorf("gold symbol %s not in fetched table", goldSymbol)
	}
	silver := table.ValidCloses(silverSymbol)
	if len(silver) == 0 {
		return model.RatioSignal{}, fmt.Errorf("silver symbol %s not in fetched table", silverSymbol)
	}

	ratio := gold[len(gold)-1] / silver[len(silver)-1]
	return model.RatioSignal{Value: ratio, Label: RatioLabel(ratio)}, nil
}
