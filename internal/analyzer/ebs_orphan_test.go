package analyzer

import (
	"testing"
	"time"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEBSOrphan_BoundaryCases(t *testing.T) {
	now := time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		volume  EBSVolume
		wantRec bool
	}{
		{
			name:    "detached exactly 7 days: no recommendation",
			volume:  EBSVolume{VolumeID: "vol-1", VolumeType: "gp2", State: "available", SizeGiB: 100, AttachmentCount: 0, CreateTime: now.Add(-7 * 24 * time.Hour)},
			wantRec: false,
		},
		{
			name:    "detached 8 days: recommendation",
			volume:  EBSVolume{VolumeID: "vol-2", VolumeType: "gp2", State: "available", SizeGiB: 100, AttachmentCount: 0, CreateTime: now.Add(-8 * 24 * time.Hour)},
			wantRec: true,
		},
		{
			name:    "still attached: no recommendation",
			volume:  EBSVolume{VolumeID: "vol-3", VolumeType: "gp2", State: "available", SizeGiB: 100, AttachmentCount: 1, CreateTime: now.Add(-30 * 24 * time.Hour)},
			wantRec: false,
		},
		{
			name:    "in-use state is skipped even if unattached count is stale",
			volume:  EBSVolume{VolumeID: "vol-4", VolumeType: "gp2", State: "in-use", AttachmentCount: 0, CreateTime: now.Add(-30 * 24 * time.Hour)},
			wantRec: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := EBSOrphan([]EBSVolume{tt.volume}, now)
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationEBSOrphan, recs[0].Type)
			assert.Equal(t, model.ConfidenceHigh, recs[0].Confidence)
		})
	}
}

// TestEBSOrphan_Gp2500GiBScenario pins the exact figure from the concrete
// integration scenario: 500 GiB at gp2's $0.10/GiB = $50.00, high confidence.
func TestEBSOrphan_Gp2500GiBScenario(t *testing.T) {
	now := time.Now()
	recs := EBSOrphan([]EBSVolume{
		{VolumeID: "vol-0a1b2c3d4e5f00002", VolumeType: "gp2", State: "available", SizeGiB: 500, AttachmentCount: 0, CreateTime: now.Add(-30 * 24 * time.Hour)},
	}, now)
	require.Len(t, recs, 1)
	assert.Equal(t, 50.00, recs[0].EstimatedMonthlySavings)
	assert.Equal(t, model.ConfidenceHigh, recs[0].Confidence)
}
