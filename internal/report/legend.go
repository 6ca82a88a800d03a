package report

import (
	"math"

	"github.com/user/rm_plotter_go/internal/analysis"
)

// LegendCorner is a legend anchor inside the data area.
type LegendCorner int

// Corners in the order they are preferred when equally good.
const (
	UpperRight LegendCorner = iota
	UpperLeft
	LowerLeft
	LowerRight
)

func (lc LegendCorner) String() string {
	switch lc {
	case UpperRight:
		return "upper right"
	case UpperLeft:
		return "upper left"
	case LowerLeft:
		return "lower left"
	case LowerRight:
		return "lower right"
	}
	return "unknown"
}

func (lc LegendCorner) top() bool  { return lc == UpperRight || lc == UpperLeft }
func (lc LegendCorner) left() bool { return lc == UpperLeft || lc == LowerLeft }

// Approximate legend footprint as a fraction of the data area.
const (
	legendWidthFrac     = 0.38
	legendEntryFrac     = 0.065
	legendMaxHeightFrac = 0.9
	legendMinHeightFrac = 0.15
)

// legendBox returns the normalized [0,1] box the legend would cover.
func legendBox(lc LegendCorner, entries int) (x0, x1, y0, y1 float64) {
	h := math.Min(legendMaxHeightFrac, math.Max(legendMinHeightFrac, legendEntryFrac*float64(entries)))
	if lc.left() {
		x0, x1 = 0, legendWidthFrac
	} else {
		x0, x1 = 1-legendWidthFrac, 1
	}
	if lc.top() {
		y0, y1 = 1-h, 1
	} else {
		y0, y1 = 0, h
	}
	return x0, x1, y0, y1
}

// BestLegendCorner picks the corner whose legend footprint covers the fewest
// visible data points. entries counts legend rows including the heading.
// An empty or inverted axis range has no visible area and yields UpperRight.
func BestLegendCorner(sc *analysis.SeriesCollection, xMin, xMax, yMin, yMax float64, entries int) LegendCorner {
	if !(xMax > xMin) || !(yMax > yMin) {
		return UpperRight
	}
	best, bestCount := UpperRight, math.MaxInt
	for _, lc := range []LegendCorner{UpperRight, UpperLeft, LowerLeft, LowerRight} {
		x0, x1, y0, y1 := legendBox(lc, entries)
		count := 0
		for _, s := range sc.Series {
			for i := 0; i < s.Len(); i++ {
				x, y := s.XY(i)
				if x < xMin || x > xMax || y < yMin || y > yMax {
					continue
				}
				nx := (x - xMin) / (xMax - xMin)
				ny := (y - yMin) / (yMax - yMin)
				if nx >= x0 && nx <= x1 && ny >= y0 && ny <= y1 {
					count++
				}
			}
		}
		if count < bestCount {
			best, bestCount = lc, count
		}
	}
	return best
}
