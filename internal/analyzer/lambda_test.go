package analyzer

import (
	"testing"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaUnused_ZeroInvocationsAndZeroDuration(t *testing.T) {
	recs := LambdaUnused([]LambdaFunction{
		{FunctionName: "legacy-report-generator", MemoryMB: 1024, TimeoutSec: 60, AvgInvocationsPerDay: 0, AvgDurationMs: 0},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, model.RecommendationLambdaUnused, recs[0].Type)
	assert.Equal(t, model.ConfidenceHigh, recs[0].Confidence)
	assert.GreaterOrEqual(t, recs[0].EstimatedMonthlySavings, 0.0)
}

func TestLambdaUnused_SkipsInvokedFunctions(t *testing.T) {
	recs := LambdaUnused([]LambdaFunction{
		{FunctionName: "order-processor", MemoryMB: 256, TimeoutSec: 30, AvgInvocationsPerDay: 1, AvgDurationMs: 100},
	})
	assert.Empty(t, recs)
}

func TestLambdaOversized_GatingConditions(t *testing.T) {
	tests := []struct {
		name    string
		fn      LambdaFunction
		wantRec bool
	}{
		{
			name:    "unused function is skipped (handled by LambdaUnused)",
			fn:      LambdaFunction{FunctionName: "f1", MemoryMB: 1024, TimeoutSec: 10, AvgInvocationsPerDay: 0, AvgDurationMs: 20},
			wantRec: false,
		},
		{
			name:    "memory below 512MB is skipped",
			fn:      LambdaFunction{FunctionName: "f2", MemoryMB: 256, TimeoutSec: 10, AvgInvocationsPerDay: 1000, AvgDurationMs: 20},
			wantRec: false,
		},
		{
			name:    "duration at or above 100ms is skipped",
			fn:      LambdaFunction{FunctionName: "f3", MemoryMB: 1024, TimeoutSec: 10, AvgInvocationsPerDay: 1000, AvgDurationMs: 100},
			wantRec: false,
		},
		{
			name:    "oversized and invoked: recommendation, if savings clear the threshold",
			fn:      LambdaFunction{FunctionName: "f4", MemoryMB: 1024, TimeoutSec: 15, AvgInvocationsPerDay: 100000, AvgDurationMs: 45},
			wantRec: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := LambdaOversized([]LambdaFunction{tt.fn})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationLambdaOversized, recs[0].Type)
			assert.Greater(t, recs[0].EstimatedMonthlySavings, 0.50)
		})
	}
}

func TestLambdaOversized_RightsizedMemoryFloor(t *testing.T) {
	// The rightsized memory reported in metadata never falls below the 128MB floor.
	recs := LambdaOversized([]LambdaFunction{
		{FunctionName: "tiny", MemoryMB: 512, TimeoutSec: 5, AvgInvocationsPerDay: 100000, AvgDurationMs: 10},
	})
	if len(recs) == 1 {
		rightsized := recs[0].Metadata["rightsizedMemoryMB"].(float64)
		assert.GreaterOrEqual(t, rightsized, 128.0)
	}
}
