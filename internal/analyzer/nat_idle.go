package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// natIdleMaxDailyGB is the daily data-transfer threshold below which a
// NAT gateway is considered idle.
const natIdleMaxDailyGB = 1.0

// NATIdle flags available NAT gateways processing negligible traffic.
func NATIdle(gateways []NATGateway) []Recommendation {
	var recs []Recommendation
	for _, g := range gateways {
		if g.State != "available" {
			continue
		}

		dailyGB := g.BytesProcessedPerDay / pricing.BytesPerGB
		if dailyGB >= natIdleMaxDailyGB {
			continue
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationNATGWIdle,
			ResourceID:              g.NatGatewayID,
			Description:             fmt.Sprintf("NAT gateway %s is processing %.2fGB/day; consider removing it if no longer needed.", g.NatGatewayID, dailyGB),
			EstimatedMonthlySavings: roundTo2(pricing.NATGatewayMonthlyCost(dailyGB)),
			Confidence:              model.ConfidenceMedium,
			Metadata: map[string]interface{}{
				"dailyGB": dailyGB,
			},
		})
	}
	return recs
}
