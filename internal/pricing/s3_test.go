package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestS3MonthlyCost(t *testing.T) {
	tests := []struct {
		name         string
		storageClass string
		sizeBytes    int64
		want         float64
	}{
		{"standard 1 GiB", "STANDARD", BytesPerGB, 0.02},
		{"glacier 1 GiB", "GLACIER", BytesPerGB, 0.00},
		{"zero size costs nothing", "STANDARD", 0, 0},
		{"negative size costs nothing", "STANDARD", -1, 0},
		{"unknown class billed as standard", "REDUCED_REDUNDANCY", BytesPerGB, 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, S3MonthlyCost(tt.storageClass, tt.sizeBytes), 0.01)
		})
	}
}

// TestS3MonthlyCost_LargeArchiveScenario checks the byte/GB conversion
// against a realistic multi-terabyte bucket.
func TestS3MonthlyCost_LargeArchiveScenario(t *testing.T) {
	sizeBytes := int64(1_200_000_000_000)
	sizeGB := float64(sizeBytes) / BytesPerGB
	want := roundTo2(sizeGB * S3StandardPerGB)
	assert.Equal(t, want, S3MonthlyCost("STANDARD", sizeBytes))
}
