package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// gridLineStyle is dashed mid-gray at 70% opacity.
var gridLineStyle = draw.LineStyle{
	Color:  color.NRGBA{R: 128, G: 128, B: 128, A: 179},
	Width:  vg.Points(0.5),
	Dashes: []vg.Length{vg.Points(4), vg.Points(2)},
}

// Grid draws grid lines at every tick of both axes, major and minor.
// plotter.Grid only follows major ticks.
type Grid struct {
	Vertical   draw.LineStyle
	Horizontal draw.LineStyle
}

func NewGrid() *Grid {
	return &Grid{
		Vertical:   gridLineStyle,
		Horizontal: gridLineStyle,
	}
}

// Plot implements the plot.Plotter interface.
func (g *Grid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	if g.Vertical.Color != nil {
		for _, tk := range plt.X.Tick.Marker.Ticks(plt.X.Min, plt.X.Max) {
			x := trX(tk.Value)
			if x > c.Max.X || x < c.Min.X {
				continue
			}
			c.StrokeLine2(g.Vertical, x, c.Min.Y, x, c.Max.Y)
		}
	}

	if g.Horizontal.Color != nil {
		for _, tk := range plt.Y.Tick.Marker.Ticks(plt.Y.Min, plt.Y.Max) {
			y := trY(tk.Value)
			if y > c.Max.Y || y < c.Min.Y {
				continue
			}
			c.StrokeLine2(g.Horizontal, c.Min.X, y, c.Max.X, y)
		}
	}
}
