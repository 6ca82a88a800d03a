package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func majorLabels(ticks []plot.Tick) []string {
	var labels []string
	for _, tk := range ticks {
		if !tk.IsMinor() {
			labels = append(labels, tk.Label)
		}
	}
	return labels
}

func TestStepTicks_PeAxis(t *testing.T) {
	ticks := peTicks.Ticks(0, 0.26)
	require.Len(t, ticks, 27)
	assert.Equal(t, []string{"0.00", "0.05", "0.10", "0.15", "0.20", "0.25"}, majorLabels(ticks))
	assert.InDelta(t, 0.26, ticks[len(ticks)-1].Value, 1e-12)
	assert.True(t, ticks[1].IsMinor())
}

func TestStepTicks_RateAxis(t *testing.T) {
	ticks := rateTicks.Ticks(0, 105)
	require.Len(t, ticks, 22)
	assert.Equal(t, []string{"0", "20", "40", "60", "80", "100"}, majorLabels(ticks))
}

func TestStepTicks_Degenerate(t *testing.T) {
	assert.Nil(t, StepTicks{Major: 1, Minor: 0}.Ticks(0, 1))
	assert.Nil(t, StepTicks{Major: 1, Minor: 1, Format: "%g"}.Ticks(2, 1))
}
