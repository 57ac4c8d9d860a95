package analyzer

import (
	"fmt"

	"finops/internal/pricing"
	"finops/internal/store/model"
)

// s3LifecycleMinIdleDays is the access-recency threshold past which a
// STANDARD object is a lifecycle-transition candidate.
const s3LifecycleMinIdleDays = 90

// S3Lifecycle flags S3 buckets storing data on STANDARD that has not been
// accessed recently, estimating the savings from transitioning to
// GLACIER.
func S3Lifecycle(objects []S3Object) []Recommendation {
	var recs []Recommendation
	for _, o := range objects {
		if o.LastAccessedDays <= s3LifecycleMinIdleDays {
			continue
		}
		if o.StorageClass != "STANDARD" {
			continue
		}

		sizeGB := float64(o.SizeBytes) / pricing.BytesPerGB
		savings := sizeGB * (pricing.S3StandardPerGB - pricing.S3GlacierPerGB) * pricing.ConservativeFactor

		recs = append(recs, Recommendation{
			Type:                    model.RecommendationS3Lifecycle,
			ResourceID:              o.BucketName,
			Description:             fmt.Sprintf("S3 bucket %s has not been accessed in %d days; consider a lifecycle rule to transition it to Glacier.", o.BucketName, o.LastAccessedDays),
			EstimatedMonthlySavings: roundTo2(savings),
			Confidence:              model.ConfidenceMedium,
			Metadata: map[string]interface{}{
				"storageClass":     o.StorageClass,
				"sizeBytes":        o.SizeBytes,
				"lastAccessedDays": o.LastAccessedDays,
			},
		})
	}
	return recs
}
