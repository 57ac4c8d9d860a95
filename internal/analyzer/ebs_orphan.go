package analyzer

import (
	"fmt"
	"time"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// orphanMinAge is the minimum time since creation before an unattached
// volume is flagged, to avoid false positives on volumes mid-provisioning.
const orphanMinAge = 7 * 24 * time.Hour

// EBSOrphan flags EBS volumes that are available (unattached) and old
// enough that they are unlikely to be awaiting attachment.
func EBSOrphan(volumes []EBSVolume, now time.Time) []Recommendation {
	var recs []Recommendation
	for _, v := range volumes {
		if v.State != "available" {
			continue
		}
		if v.AttachmentCount != 0 {
			continue
		}
		if now.Sub(v.CreateTime) <= orphanMinAge {
			continue
		}

		savings := pricing.EBSMonthlyCost(v.VolumeType, v.SizeGiB)

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationEBSOrphan,
			ResourceID:              v.VolumeID,
			Description:             fmt.Sprintf("EBS volume %s (%s, %.0fGiB) has been unattached since %s; consider deleting or snapshotting it.", v.VolumeID, v.VolumeType, v.SizeGiB, v.CreateTime.Format("2006-01-02")),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              model.ConfidenceHigh,
			Metadata: map[string]interface{}{
				"volumeType": v.VolumeType,
				"sizeGiB":    v.SizeGiB,
				"createTime": v.CreateTime,
			},
		})
	}
	return recs
}
