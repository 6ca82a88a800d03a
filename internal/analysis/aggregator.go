package analysis

import (
	"fmt"
	"math/big"

	log "github.com/sirupsen/logrus"

	"github.com/user/rm_plotter_go/internal/parser"
)

// GroupByOrder partitions the dataset into one series per code order.
// Points keep the order in which their records appear in the dataset.
func GroupByOrder(data parser.Dataset) *SeriesCollection {
	sc := NewSeriesCollection()
	for _, rec := range data {
		s, ok := sc.Series[rec.M]
		if !ok {
			s = &Series{M: rec.M}
			sc.Series[rec.M] = s
		}
		s.Pe = append(s.Pe, rec.Pe)
		s.Rate = append(s.Rate, rec.SuccessRate)
	}
	log.Debugf("Grouped %d records into %d series", len(data), len(sc.Series))
	return sc
}

// DeriveCodeParams returns block length, information length and the legend
// label for the first-order Reed-Muller code of degree m. N is exact for
// any m >= 0; negative orders are rejected by the loader.
func DeriveCodeParams(m int) CodeParams {
	n := new(big.Int).Lsh(big.NewInt(1), uint(m))
	k := m + 1
	return CodeParams{
		M:     m,
		N:     n,
		K:     k,
		Label: fmt.Sprintf("RM(1, %d), n=%s, k=%d", m, n, k),
	}
}
