package analyzer

import (
	"testing"

	"finops/internal/pricing"
	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Lifecycle_BoundaryCases(t *testing.T) {
	tests := []struct {
		name    string
		object  S3Object
		wantRec bool
	}{
		{
			name:    "exactly 90 days is not yet idle",
			object:  S3Object{BucketName: "b1", StorageClass: "STANDARD", SizeBytes: 1000, LastAccessedDays: 90},
			wantRec: false,
		},
		{
			name:    "91 days is idle",
			object:  S3Object{BucketName: "b2", StorageClass: "STANDARD", SizeBytes: 1000, LastAccessedDays: 91},
			wantRec: true,
		},
		{
			name:    "already glacier is skipped",
			object:  S3Object{BucketName: "b3", StorageClass: "GLACIER", SizeBytes: 1000, LastAccessedDays: 400},
			wantRec: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := S3Lifecycle([]S3Object{tt.object})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationS3Lifecycle, recs[0].Type)
			assert.Equal(t, model.ConfidenceMedium, recs[0].Confidence)
		})
	}
}

// TestS3Lifecycle_120DayArchiveScenario pins the concrete integration
// scenario: a 1.2TB, 120-day-idle STANDARD bucket.
func TestS3Lifecycle_120DayArchiveScenario(t *testing.T) {
	sizeBytes := int64(1_200_000_000_000)
	recs := S3Lifecycle([]S3Object{
		{BucketName: "company-logs-archive", StorageClass: "STANDARD", SizeBytes: sizeBytes, LastAccessedDays: 120},
	})
	require.Len(t, recs, 1)

	sizeGB := float64(sizeBytes) / pricing.BytesPerGB
	want := roundTo2(sizeGB * (pricing.S3StandardPerGB - pricing.S3GlacierPerGB) * pricing.ConservativeFactor)
	assert.Equal(t, want, recs[0].EstimatedMonthlySavings)
}
