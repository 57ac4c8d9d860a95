package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// EIPUnassociated flags Elastic IPs with no association: AWS bills these
// even though they are not attached to a running resource.
func EIPUnassociated(addresses []ElasticIP) []Recommendation {
	var recs []Recommendation
	for _, a := range addresses {
		if a.AssociationID != "" {
			continue
		}

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationEIPUnassociated,
			ResourceID:              a.AllocationID,
			Description:             fmt.Sprintf("Elastic IP %s is not associated with any resource; consider releasing it.", a.AllocationID),
			EstimatedMonthlySavings: roundTo2(pricing.ElasticIPMonthlyCost(a.AssociationID)),
			Confidence:              model.ConfidenceHigh,
			Metadata:                map[string]interface{}{},
		})
	}
	return recs
}
