package health

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SampleDataset(t *testing.T) {
	snap, err := NewStaticProvider(nil).FetchHealthSnapshot(context.Background(), DefaultTeam, DefaultDateRange)
	require.NoError(t, err)

	sum := Summarize(snap, DefaultTargetPassRate)

	assert.InDelta(t, 77.6, sum.PassRateMean, 0.01)
	assert.Equal(t, 58.7, sum.PassRateMin)
	assert.Equal(t, 58.7, sum.PassRateLatest)
	// 82.8, 84.5, 79.0, 69.7, 58.7 are under 85
	assert.Equal(t, 5, sum.PointsBelowTarget)
	assert.Equal(t, 39, sum.AlertsTotal)
	assert.Equal(t, 11, sum.AlertsPeak)
	assert.InDelta(t, 4.875, sum.AlertsMean, 0.001)
	assert.Equal(t, 1, sum.CriticalChecks)
}

func TestSummarize_EmptySnapshot(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(&Snapshot{}, DefaultTargetPassRate))
	assert.Equal(t, Summary{}, Summarize(nil, DefaultTargetPassRate))
}

func TestSummarize_TargetBoundary(t *testing.T) {
	snap := &Snapshot{PassRate: []PassRatePoint{
		{Week: "a", PassRate: 85},
		{Week: "b", PassRate: 84.9},
	}}

	sum := Summarize(snap, 85)
	assert.Equal(t, 1, sum.PointsBelowTarget, "a point equal to the target is not below it")
	assert.Equal(t, 84.9, sum.PassRateLatest)
}
