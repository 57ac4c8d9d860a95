package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// ELBNoTargets flags active load balancers with no registered targets at
// all: they cannot be serving traffic.
func ELBNoTargets(lbs []LoadBalancer) []Recommendation {
	var recs []Recommendation
	for _, lb := range lbs {
		if lb.State != "active" {
			continue
		}
		if lb.TotalTargetCount != 0 {
			continue
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationELBNoTargets,
			ResourceID:              lb.Name,
			Description:             fmt.Sprintf("Load balancer %s has no registered targets; consider deleting it.", lb.Name),
			EstimatedMonthlySavings: roundTo2(pricing.LoadBalancerMonthlyCost()),
			Confidence:              model.ConfidenceHigh,
			Metadata:                map[string]interface{}{},
		})
	}
	return recs
}

// ELBNoTraffic flags active load balancers with registered targets but
// zero observed request volume.
func ELBNoTraffic(lbs []LoadBalancer) []Recommendation {
	var recs []Recommendation
	for _, lb := range lbs {
		if lb.State != "active" {
			continue
		}
		if lb.TotalTargetCount <= 0 {
			continue
		}
		if lb.RequestCountPerDay != 0 {
			continue
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationELBNoTraffic,
			ResourceID:              lb.Name,
			Description:             fmt.Sprintf("Load balancer %s has %d registered targets but zero requests/day; consider deleting it.", lb.Name, lb.TotalTargetCount),
			EstimatedMonthlySavings: roundTo2(pricing.LoadBalancerMonthlyCost()),
			Confidence:              model.ConfidenceMedium,
			Metadata: map[string]interface{}{
				"totalTargetCount": lb.TotalTargetCount,
			},
		})
	}
	return recs
}
