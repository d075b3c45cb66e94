package chart

import (
	"fmt"
	"math"
	"os"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/taichungmao-blip/metal-monitor/internal/model"
)

// lineSpec fixes the styling of one comparison line.
type lineSpec struct {
	Symbol string
	Label  string
	Style  gochart.Style
}

// comparisonLines are the three series drawn on the chart: gold solid,
// the Taiwan ETF dashed and the USD index as a translucent reference.
var comparisonLines = []lineSpec{
	{
		Symbol: "GC=F",
		Label:  "Gold (Global)",
		Style: gochart.Style{
			StrokeColor: drawing.Color{R: 255, G: 215, B: 0, A: 255},
			StrokeWidth: 2.5,
		},
	},
	{
		Symbol: "00635U.TW",
		Label:  "TW Gold ETF (00635U)",
		Style: gochart.Style{
			StrokeColor:     drawing.Color{R: 255, G: 165, B: 0, A: 255},
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	},
	{
		Symbol: "DX-Y.NYB",
		Label:  "USD Index (DXY)",
		Style: gochart.Style{
			StrokeColor: drawing.Color{R: 128, G: 128, B: 128, A: 128},
			StrokeWidth: 1.5,
		},
	},
}

// Renderer draws the normalized comparison chart to a fixed PNG path.
type Renderer struct {
	Path   string
	Width  int
	Height int
}

// NewRenderer creates a Renderer writing to the given path.
func NewRenderer(path string) *Renderer {
	return &Renderer{Path: path, Width: 1200, Height: 600}
}

// Normalize rescales a series so its first valid observation equals
// 100. NaN entries stay NaN; a series with no valid observation is
// returned all-NaN.
func Normalize(values []float64) []float64 {
	base := math.NaN()
	for _, v := range values {
		if !math.IsNaN(v) {
			base = v
			break
		}
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / base * 100.0
	}
	return out
}

// Render draws the comparison chart and returns the output path. It
// fails when any required series is absent from the table; there is no
// fallback for a missing line. The output file is truncated and closed
// on every path out, including render errors.
func (r *Renderer) Render(table *model.PriceTable, lookbackDays int) (string, error) {
	series := make([]gochart.Series, 0, len(comparisonLines))
	for _, spec := range comparisonLines {
		col, ok := table.Column(spec.Symbol)
		if !ok {
			return "", fmt.Errorf("chart series %s missing from table", spec.Symbol)
		}
		xs, ys := points(table.Dates, Normalize(col))
		if len(xs) == 0 {
			return "", fmt.Errorf("chart series %s has no valid points", spec.Symbol)
		}
		series = append(series, gochart.TimeSeries{
			Name:    spec.Label,
			Style:   spec.Style,
			XValues: xs,
			YValues: ys,
		})
	}

	graph := gochart.Chart{
		Title:  fmt.Sprintf("Gold vs. Taiwan ETF vs. USD (%d Days)", lookbackDays),
		Width:  r.Width,
		Height: r.Height,
		XAxis: gochart.XAxis{
			GridMajorStyle: gochart.Style{
				StrokeColor: gochart.ColorLightGray,
				StrokeWidth: 1.0,
			},
		},
		YAxis: gochart.YAxis{
			GridMajorStyle: gochart.Style{
				StrokeColor: gochart.ColorLightGray,
				StrokeWidth: 1.0,
			},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	f, err := os.Create(r.Path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(gochart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return r.Path, nil
}

// points pairs dates with values, dropping NaN entries which go-chart
// cannot draw.
func points(dates []time.Time, values []float64) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, len(values))
	ys := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		xs = append(xs, dates[i])
		ys = append(ys, v)
	}
	return xs, ys
}
