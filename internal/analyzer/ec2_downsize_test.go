package analyzer

import (
	"testing"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEC2Downsize_BoundaryCases(t *testing.T) {
	tests := []struct {
		name       string
		usage      EC2Usage
		wantRec    bool
		wantConf   model.Confidence
	}{
		{
			name:    "periodDays 13 is too short, no recommendation",
			usage:   EC2Usage{InstanceID: "i-1", InstanceType: "m5.large", State: "running", AvgCPUPercent: 2, PeriodDays: 13},
			wantRec: false,
		},
		{
			name:     "periodDays 14 with avgCpu 9.999 is medium confidence",
			usage:    EC2Usage{InstanceID: "i-2", InstanceType: "m5.large", State: "running", AvgCPUPercent: 9.999, PeriodDays: 14},
			wantRec:  true,
			wantConf: model.ConfidenceMedium,
		},
		{
			name:     "avgCpu 4.999 is high confidence",
			usage:    EC2Usage{InstanceID: "i-3", InstanceType: "m5.large", State: "running", AvgCPUPercent: 4.999, PeriodDays: 14},
			wantRec:  true,
			wantConf: model.ConfidenceHigh,
		},
		{
			name:    "avgCpu at threshold (10) is skipped",
			usage:   EC2Usage{InstanceID: "i-4", InstanceType: "m5.large", State: "running", AvgCPUPercent: 10, PeriodDays: 14},
			wantRec: false,
		},
		{
			name:    "stopped instance is skipped regardless of CPU",
			usage:   EC2Usage{InstanceID: "i-5", InstanceType: "m5.large", State: "stopped", AvgCPUPercent: 1, PeriodDays: 30},
			wantRec: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := EC2Downsize([]EC2Usage{tt.usage})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationEC2DownSize, recs[0].Type)
			assert.Equal(t, tt.wantConf, recs[0].Confidence)
			assert.GreaterOrEqual(t, recs[0].EstimatedMonthlySavings, 0.0)
		})
	}
}

func TestEC2Downsize_PreservesInputOrder(t *testing.T) {
	usages := []EC2Usage{
		{InstanceID: "i-a", InstanceType: "t3.large", State: "running", AvgCPUPercent: 1, PeriodDays: 20},
		{InstanceID: "i-b", InstanceType: "t3.large", State: "running", AvgCPUPercent: 2, PeriodDays: 20},
		{InstanceID: "i-c", InstanceType: "t3.large", State: "running", AvgCPUPercent: 3, PeriodDays: 20},
	}
	recs := EC2Downsize(usages)
	require.Len(t, recs, 3)
	assert.Equal(t, "i-a", recs[0].ResourceID)
	assert.Equal(t, "i-b", recs[1].ResourceID)
	assert.Equal(t, "i-c", recs[2].ResourceID)
}
