package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// MarkerShape names a point marker.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerTriangleUp
	MarkerDiamond
	MarkerTriangleDown
)

func (m MarkerShape) String() string {
	switch m {
	case MarkerCircle:
		return "circle"
	case MarkerSquare:
		return "square"
	case MarkerTriangleUp:
		return "triangle-up"
	case MarkerDiamond:
		return "diamond"
	case MarkerTriangleDown:
		return "triangle-down"
	}
	return "unknown"
}

// Glyph returns the drawer for the marker. All markers are filled.
func (m MarkerShape) Glyph() draw.GlyphDrawer {
	switch m {
	case MarkerSquare:
		return draw.BoxGlyph{}
	case MarkerTriangleUp:
		return draw.PyramidGlyph{}
	case MarkerDiamond:
		return DiamondGlyph{}
	case MarkerTriangleDown:
		return InvertedPyramidGlyph{}
	}
	return draw.CircleGlyph{}
}

var seriesMarkers = []MarkerShape{
	MarkerCircle,
	MarkerSquare,
	MarkerTriangleUp,
	MarkerDiamond,
	MarkerTriangleDown,
}

var seriesColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, // Blue
	{R: 0xff, G: 0x7f, B: 0x0e, A: 255}, // Orange
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 255}, // Green
	{R: 0xd6, G: 0x27, B: 0x28, A: 255}, // Red
	{R: 0x94, G: 0x67, B: 0xbd, A: 255}, // Purple
}

const (
	seriesLineWidth    = 2 // points
	seriesMarkerRadius = 3 // points; 6pt marker diameter
)

// SeriesStyle is the visual encoding of one curve.
type SeriesStyle struct {
	Marker MarkerShape
	Color  color.RGBA
}

// StyleFor returns the style of the series at the given rank in ascending
// code-order. Both palettes wrap, so rank 5 looks like rank 0.
func StyleFor(rank int) SeriesStyle {
	return SeriesStyle{
		Marker: seriesMarkers[rank%len(seriesMarkers)],
		Color:  seriesColors[rank%len(seriesColors)],
	}
}

func colorHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (s SeriesStyle) lineStyle() draw.LineStyle {
	return draw.LineStyle{
		Color: s.Color,
		Width: vg.Points(seriesLineWidth),
	}
}

func (s SeriesStyle) glyphStyle() draw.GlyphStyle {
	return draw.GlyphStyle{
		Color:  s.Color,
		Radius: vg.Points(seriesMarkerRadius),
		Shape:  s.Marker.Glyph(),
	}
}

// DiamondGlyph draws a filled square rotated by 45 degrees.
type DiamondGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (DiamondGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	p := make(vg.Path, 0, 5)
	p.Move(vg.Point{X: pt.X, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Line(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y})
	p.Close()
	c.Fill(p)
}

const (
	sinπover6 = vg.Length(.500000000025921)
	cosπover6 = vg.Length(.866025403769473)
)

// InvertedPyramidGlyph draws a filled triangle pointing down.
type InvertedPyramidGlyph struct{}

// DrawGlyph implements the draw.GlyphDrawer interface.
func (InvertedPyramidGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius + (sty.Radius-sty.Radius*sinπover6)/2
	p := make(vg.Path, 0, 4)
	p.Move(vg.Point{X: pt.X, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X - r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Line(vg.Point{X: pt.X + r*cosπover6, Y: pt.Y + r*sinπover6})
	p.Close()
	c.Fill(p)
}
