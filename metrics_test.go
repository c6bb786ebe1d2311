package segdisplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsResolve(t *testing.T) {
	m := Metrics{
		SegmentThickness: 0.1,
		SegmentSpacing:   0.02,
		DigitRatio:       0.5,
		DigitShearing:    0.2,
		DigitSpacing:     0.25,
		DigitMedian:      -0.1,
		MarginHorizontal: 0.5,
		MarginVertical:   0.1,
		ColonSeparation:  0.5,
	}
	r := m.Resolve(100)

	assert.InDelta(t, 100.0, r.DigitHeight, 1e-9)
	assert.InDelta(t, 50.0, r.DigitWidth, 1e-9)
	assert.InDelta(t, 10.0, r.SegmentThickness, 1e-9)
	assert.InDelta(t, 2.0, r.SegmentSpacing, 1e-9)
	assert.InDelta(t, 10.0, r.DigitShearing, 1e-9)
	assert.InDelta(t, 12.5, r.DigitSpacing, 1e-9)
	assert.InDelta(t, -5.0, r.DigitMedian, 1e-9)
	assert.InDelta(t, 25.0, r.MarginHorizontal, 1e-9)
	assert.InDelta(t, 10.0, r.MarginVertical, 1e-9)
	assert.InDelta(t, 25.0, r.ColonSeparation, 1e-9)
}

func TestMetricsPresets(t *testing.T) {
	seen := map[Metrics]MetricsPreset{}
	for _, p := range MetricsPresets() {
		got, err := ParseMetricsPreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)

		m := p.Metrics()
		assert.Greater(t, m.SegmentThickness, 0.0, p.String())
		assert.Greater(t, m.DigitRatio, 0.0, p.String())
		if prev, dup := seen[m]; dup {
			t.Errorf("%v has the same metrics as %v", p, prev)
		}
		seen[m] = p
	}

	assert.Equal(t, MetricsDefault.Metrics(), DefaultMetrics())
	assert.Equal(t, DefaultMetrics(), MetricsPreset(200).Metrics())
}

func TestParseMetricsPresetUnknown(t *testing.T) {
	_, err := ParseMetricsPreset("enormous")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}
