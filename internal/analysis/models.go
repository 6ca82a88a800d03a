package analysis

import (
	"math/big"
	"sort"
)

// Series holds the points of one code order, in dataset encounter order.
// Pe and Rate always have the same length.
type Series struct {
	M    int
	Pe   []float64
	Rate []float64
}

// Len returns the number of points in the series.
func (s *Series) Len() int { return len(s.Pe) }

// XY returns the i-th point, implementing plotter.XYer.
func (s *Series) XY(i int) (x, y float64) { return s.Pe[i], s.Rate[i] }

// SeriesCollection maps a code order to its series.
type SeriesCollection struct {
	Series map[int]*Series
}

func NewSeriesCollection() *SeriesCollection {
	return &SeriesCollection{
		Series: make(map[int]*Series),
	}
}

// Orders returns the code orders present, ascending.
func (sc *SeriesCollection) Orders() []int {
	orders := make([]int, 0, len(sc.Series))
	for m := range sc.Series {
		orders = append(orders, m)
	}
	sort.Ints(orders)
	return orders
}

// Points returns the total number of points across all series.
func (sc *SeriesCollection) Points() int {
	total := 0
	for _, s := range sc.Series {
		total += s.Len()
	}
	return total
}

// CodeParams describes a Reed-Muller (1, m) code.
type CodeParams struct {
	M     int      // code order
	N     *big.Int // block length, 2^m
	K     int      // information length, m+1
	Label string   // legend text
}
