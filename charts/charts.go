// Package charts renders the dashboard figures as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"digikala-dashboard/models"
)

// ErrNoData means there is nothing to plot.
var ErrNoData = errors.New("no data to plot")

const (
	scatterWidth  = 900
	scatterHeight = 520
	barWidth      = 40
	barSpacing    = 24
)

// Scatter plots actual price (x) against predicted price (y) with a red
// least-squares trendline. Rows with non-finite prices are skipped.
func Scatter(w io.Writer, rows []models.ListingPrice) error {
	xs := make([]float64, 0, len(rows))
	ys := make([]float64, 0, len(rows))
	for _, r := range rows {
		if !r.Plottable() {
			continue
		}
		xs = append(xs, r.ActualPrice)
		ys = append(ys, r.PredictedPrice)
	}
	if len(xs) == 0 {
		return ErrNoData
	}

	points := chart.ContinuousSeries{
		Name: "Listings",
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotWidth:    3,
			DotColor:    drawing.ColorBlue.WithAlpha(140),
		},
		XValues: xs,
		YValues: ys,
	}

	series := []chart.Series{points}
	if distinct(xs) {
		series = append(series, &chart.LinearRegressionSeries{
			Name:        "OLS trendline",
			InnerSeries: points,
			Style: chart.Style{
				StrokeColor: drawing.ColorRed,
				StrokeWidth: 2,
			},
		})
	}

	graph := chart.Chart{
		Title:  "Actual vs Predicted Price",
		Width:  scatterWidth,
		Height: scatterHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  "Actual price (toman)",
			Range: paddedRange(xs),
		},
		YAxis: chart.YAxis{
			Name:  "Predicted price (toman)",
			Range: paddedRange(ys),
		},
		Series: series,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("charts: render scatter: %w", err)
	}
	return nil
}

// Importance draws the top n weights as bars, largest first.
func Importance(w io.Writer, columns []string, weights []float64, n int) error {
	if len(columns) != len(weights) {
		return fmt.Errorf("charts: %d columns for %d weights", len(columns), len(weights))
	}

	idx := make([]int, 0, len(weights))
	for i, v := range weights {
		if v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v) {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return ErrNoData
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return weights[idx[a]] > weights[idx[b]]
	})
	if n > 0 && len(idx) > n {
		idx = idx[:n]
	}

	bars := make([]chart.Value, 0, len(idx))
	for _, i := range idx {
		bars = append(bars, chart.Value{Label: columns[i], Value: weights[i]})
	}
	top := weights[idx[0]]

	graph := chart.BarChart{
		Title:      "Feature Importance",
		Width:      max(600, len(bars)*(barWidth+barSpacing)+160),
		Height:     scatterHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 60},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		// Anchored at zero so equal-height bars still give a non-empty range.
		YAxis: chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top}},
		Bars:  bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("charts: render importance: %w", err)
	}
	return nil
}

func distinct(vs []float64) bool {
	for _, v := range vs[1:] {
		if v != vs[0] {
			return true
		}
	}
	return false
}

// paddedRange avoids the zero-width range go-chart rejects when every value is equal.
func paddedRange(vs []float64) chart.Range {
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		pad := math.Max(math.Abs(lo)*0.1, 1)
		return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}
