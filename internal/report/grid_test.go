package report

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"
)

func TestGrid_StrokesMajorAndMinorTicks(t *testing.T) {
	p := plot.New()
	p.X.Min, p.X.Max = 0, 0.255
	p.Y.Min, p.Y.Max = 0, 104
	p.X.Tick.Marker = peTicks
	p.Y.Tick.Marker = rateTicks

	rec := new(recorder.Canvas)
	NewGrid().Plot(draw.NewCanvas(rec, 10*vg.Inch, 6*vg.Inch), p)

	var strokes int
	for _, a := range rec.Actions {
		switch a := a.(type) {
		case *recorder.Stroke:
			strokes++
		case *recorder.SetLineDash:
			assert.Equal(t, []vg.Length{vg.Points(4), vg.Points(2)}, a.Dashes)
		case *recorder.SetColor:
			_, _, _, alpha := a.Color.RGBA()
			assert.Less(t, alpha, uint32(0xffff), "grid lines must be translucent")
			assert.NotZero(t, alpha)
		}
	}

	// 0.00..0.25 every 0.01 and 0..100 every 5; only 6+6 of them are major.
	assert.Equal(t, 26+21, strokes)
}

func TestGrid_SkipsDisabledDirection(t *testing.T) {
	p := plot.New()
	p.X.Min, p.X.Max = 0, 0.255
	p.Y.Min, p.Y.Max = 0, 104
	p.X.Tick.Marker = peTicks
	p.Y.Tick.Marker = rateTicks

	g := NewGrid()
	g.Vertical.Color = nil
	rec := new(recorder.Canvas)
	g.Plot(draw.NewCanvas(rec, 10*vg.Inch, 6*vg.Inch), p)

	var strokes int
	for _, a := range rec.Actions {
		if _, ok := a.(*recorder.Stroke); ok {
			strokes++
		}
	}
	assert.Equal(t, 21, strokes)
}

func TestNewGrid_Style(t *testing.T) {
	g := NewGrid()
	require.NotNil(t, g.Vertical.Color)
	assert.Equal(t, g.Vertical, g.Horizontal)
	assert.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 179}, g.Vertical.Color)
	assert.Equal(t, vg.Points(0.5), g.Vertical.Width)
	assert.Len(t, g.Vertical.Dashes, 2)
}
