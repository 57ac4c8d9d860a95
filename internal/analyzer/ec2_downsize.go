package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// minDownsizePeriodDays is the minimum observation window before a
// sustained-low-CPU signal is trusted.
const minDownsizePeriodDays = 14

// lowCPUThreshold and highConfidenceCPUThreshold partition the avgCpu
// signal into skip / medium-confidence / high-confidence bands.
const (
	lowCPUThreshold           = 10.0
	highConfidenceCPUThreshold = 5.0
)

// EC2Downsize flags EC2 instances whose sustained average CPU utilization
// is low enough that a smaller instance type would likely suffice.
func EC2Downsize(usages []EC2Usage) []Recommendation {
	var recs []Recommendation
	for _, u := range usages {
		if u.State != "running" {
			continue
		}
		if u.PeriodDays < minDownsizePeriodDays {
			continue
		}
		if u.AvgCPUPercent >= lowCPUThreshold {
			continue
		}

		savings := pricing.EC2Hourly(u.InstanceType) * pricing.HoursPerMonth * 0.5 * pricing.ConservativeFactor

		confidence := model.ConfidenceMedium
		if u.AvgCPUPercent < highConfidenceCPUThreshold {
			confidence = model.ConfidenceHigh
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationEC2DownSize,
			ResourceID:              u.InstanceID,
			Description:             fmt.Sprintf("EC2 instance %s (%s) averaged %.1f%% CPU over %d days; consider downsizing to a smaller instance type.", u.InstanceID, u.InstanceType, u.AvgCPUPercent, u.PeriodDays),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              confidence,
			Metadata: map[string]interface{}{
				"instanceType":  u.InstanceType,
				"avgCpuPercent": u.AvgCPUPercent,
				"periodDays":    u.PeriodDays,
			},
		})
	}
	return recs
}
