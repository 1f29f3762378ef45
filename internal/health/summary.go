package health

import (
	"github.com/montanaflynn/stats"
)

// DefaultTargetPassRate is the pass-rate goal drawn on the trend chart.
const DefaultTargetPassRate = 85.0

// Summary condenses a snapshot's series into header figures.
type Summary struct {
	PassRateMean      float64 `json:"pass_rate_mean" yaml:"pass_rate_mean"`
	PassRateMin       float64 `json:"pass_rate_min" yaml:"pass_rate_min"`
	PassRateLatest    float64 `json:"pass_rate_latest" yaml:"pass_rate_latest"`
	PointsBelowTarget int     `json:"points_below_target" yaml:"points_below_target"`
	AlertsTotal       int     `json:"alerts_total" yaml:"alerts_total"`
	AlertsPeak        int     `json:"alerts_peak" yaml:"alerts_peak"`
	AlertsMean        float64 `json:"alerts_mean" yaml:"alerts_mean"`
	CriticalChecks    int     `json:"critical_checks" yaml:"critical_checks"`
}

// Summarize computes header figures for s against the target pass rate.
// Empty series produce zero values.
func Summarize(s *Snapshot, target float64) Summary {
	var sum Summary
	if s == nil {
		return sum
	}

	rates := stats.Float64Data(s.PassRates())
	if rates.Len() > 0 {
		sum.PassRateMean, _ = rates.Mean()
		sum.PassRateMin, _ = rates.Min()
		sum.PassRateLatest = rates.Get(rates.Len() - 1)
		for _, r := range rates {
			if r < target {
				sum.PointsBelowTarget++
			}
		}
	}

	alerts := stats.Float64Data(s.AlertCounts())
	if alerts.Len() > 0 {
		total, _ := alerts.Sum()
		peak, _ := alerts.Max()
		sum.AlertsTotal = int(total)
		sum.AlertsPeak = int(peak)
		sum.AlertsMean, _ = alerts.Mean()
	}

	for _, row := range s.Checks {
		if row.Status == StatusCritical {
			sum.CriticalChecks++
		}
	}

	return sum
}
