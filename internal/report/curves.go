package report

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	stdfnt "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/user/rm_plotter_go/internal/analysis"
)

// ChartConfig holds the fixed formatting of the results chart.
type ChartConfig struct {
	Title       string
	XLabel      string
	YLabel      string
	LegendTitle string

	XMin, XMax float64
	YMin, YMax float64

	XTicks, YTicks plot.Ticker

	Width, Height vg.Length
	DPI           int
}

// DefaultChartConfig returns the publication settings for the decoding
// performance chart.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:       "Reed-Muller (1, m) decoding performance",
		XLabel:      "channel error probability (Pe)",
		YLabel:      "successful-decode rate, percent",
		LegendTitle: "Code parameters",
		XMin:        0,
		XMax:        0.26,
		YMin:        0,
		YMax:        105,
		XTicks:      peTicks,
		YTicks:      rateTicks,
		Width:       10 * vg.Inch,
		Height:      6 * vg.Inch,
		DPI:         300,
	}
}

// LegendEntry describes one drawn curve, in legend order.
type LegendEntry struct {
	Params analysis.CodeParams
	Style  SeriesStyle
}

// Chart is a rendered-ready plot plus what was put on it.
type Chart struct {
	Plot    *plot.Plot
	Entries []LegendEntry
	Corner  LegendCorner
	Config  ChartConfig
}

// BuildChart draws one curve per series in ascending code order onto a
// single plot and applies the chart-wide formatting.
func BuildChart(sc *analysis.SeriesCollection, cfg ChartConfig) (*Chart, error) {
	if sc == nil {
		return nil, fmt.Errorf("no series to plot")
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Title.TextStyle.Font.Weight = stdfnt.WeightBold
	p.X.Label.Text = cfg.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = cfg.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)

	if cfg.XTicks != nil {
		p.X.Tick.Marker = cfg.XTicks
	}
	if cfg.YTicks != nil {
		p.Y.Tick.Marker = cfg.YTicks
	}
	p.Add(NewGrid())

	p.Legend.TextStyle.Font.Size = vg.Points(10)
	p.Legend.Add(cfg.LegendTitle)

	orders := sc.Orders()
	entries := make([]LegendEntry, 0, len(orders))
	for rank, m := range orders {
		series := sc.Series[m]
		params := analysis.DeriveCodeParams(m)
		style := StyleFor(rank)

		line, points, err := plotter.NewLinePoints(series)
		if err != nil {
			return nil, fmt.Errorf("failed to create curve for m=%d: %v", m, err)
		}
		line.LineStyle = style.lineStyle()
		points.GlyphStyle = style.glyphStyle()

		p.Add(line, points)
		p.Legend.Add(params.Label, line, points)
		entries = append(entries, LegendEntry{Params: params, Style: style})
		log.Debugf("Curve %s: %d points, %s %s", params.Label, series.Len(), style.Marker, colorHex(style.Color))
	}

	// Limits go last: Add widens them to the data range.
	p.X.Min, p.X.Max = cfg.XMin, cfg.XMax
	p.Y.Min, p.Y.Max = cfg.YMin, cfg.YMax

	corner := BestLegendCorner(sc, cfg.XMin, cfg.XMax, cfg.YMin, cfg.YMax, len(entries)+1)
	p.Legend.Top = corner.top()
	p.Legend.Left = corner.left()
	p.Legend.Padding = vg.Points(2)
	if corner.left() {
		p.Legend.XOffs = vg.Points(10)
	} else {
		p.Legend.XOffs = -vg.Points(10)
	}
	if corner.top() {
		p.Legend.YOffs = -vg.Points(8)
	} else {
		p.Legend.YOffs = vg.Points(8)
	}

	return &Chart{Plot: p, Entries: entries, Corner: corner, Config: cfg}, nil
}

// Labels returns the legend labels of the curves in drawing order.
func (c *Chart) Labels() []string {
	labels := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		labels[i] = e.Params.Label
	}
	return labels
}
