package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// RDS downsize thresholds, partitioning the avgCpu/avgConnections signal
// into skip / medium-confidence / high-confidence bands.
const (
	rdsLowCPUThreshold            = 15.0
	rdsLowConnThreshold           = 10.0
	rdsHighConfidenceCPUThreshold = 5.0
	rdsHighConfidenceConnThreshold = 3.0
)

// RDSDownsize flags RDS instances with sustained low CPU and connection
// counts, suggesting a smaller instance class would suffice.
func RDSDownsize(usages []RDSUsage) []Recommendation {
	var recs []Recommendation
	for _, u := range usages {
		if u.Status != "available" {
			continue
		}
		if u.AvgCPUPercent >= rdsLowCPUThreshold {
			continue
		}
		if u.AvgConnections >= rdsLowConnThreshold {
			continue
		}

		savings := pricing.RDSHourly(u.InstanceClass) * pricing.HoursPerMonth * 0.5 * pricing.ConservativeFactor

		confidence := model.ConfidenceMedium
		if u.AvgCPUPercent < rdsHighConfidenceCPUThreshold && u.AvgConnections < rdsHighConfidenceConnThreshold {
			confidence = model.ConfidenceHigh
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationRDSDownSize,
			ResourceID:              u.InstanceID,
			Description:             fmt.Sprintf("RDS instance %s (%s) averaged %.1f%% CPU and %.1f connections; consider downsizing to a smaller instance class.", u.InstanceID, u.InstanceClass, u.AvgCPUPercent, u.AvgConnections),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              confidence,
			Metadata: map[string]interface{}{
				"instanceClass":  u.InstanceClass,
				"avgCpuPercent":  u.AvgCPUPercent,
				"avgConnections": u.AvgConnections,
			},
		})
	}
	return recs
}
