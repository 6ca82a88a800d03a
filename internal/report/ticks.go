package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// StepTicks places labelled major ticks every Major units and unlabelled
// minor ticks every Minor units. Major must be a whole multiple of Minor.
type StepTicks struct {
	Major, Minor float64
	Format       string
}

// Ticks implements plot.Ticker.
func (st StepTicks) Ticks(min, max float64) []plot.Tick {
	if st.Minor <= 0 || st.Major < st.Minor || max < min {
		return nil
	}
	perMajor := int(math.Round(st.Major / st.Minor))

	// Stepping by index keeps 0.05*3 from drifting to 0.15000000000000002.
	first := int(math.Ceil(min/st.Minor - 1e-9))
	last := int(math.Floor(max/st.Minor + 1e-9))

	var ticks []plot.Tick
	for i := first; i <= last; i++ {
		v := float64(i) * st.Minor
		tk := plot.Tick{Value: v}
		if i%perMajor == 0 {
			tk.Label = fmt.Sprintf(st.Format, v)
		}
		ticks = append(ticks, tk)
	}
	return ticks
}

var (
	peTicks   = StepTicks{Major: 0.05, Minor: 0.01, Format: "%.2f"}
	rateTicks = StepTicks{Major: 20, Minor: 5, Format: "%.0f"}
)
