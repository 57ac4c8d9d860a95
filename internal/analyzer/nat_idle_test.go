package analyzer

import (
	"testing"

	"finops/internal/pricing"
	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNATIdle(t *testing.T) {
	tests := []struct {
		name    string
		gw      NATGateway
		wantRec bool
	}{
		{"below 1GB/day is idle", NATGateway{NatGatewayID: "nat-1", State: "available", BytesProcessedPerDay: 0.5 * pricing.BytesPerGB}, true},
		{"at 1GB/day is not idle", NATGateway{NatGatewayID: "nat-2", State: "available", BytesProcessedPerDay: 1.0 * pricing.BytesPerGB}, false},
		{"above 1GB/day is not idle", NATGateway{NatGatewayID: "nat-3", State: "available", BytesProcessedPerDay: 50 * pricing.BytesPerGB}, false},
		{"non-available state is skipped", NATGateway{NatGatewayID: "nat-4", State: "deleting", BytesProcessedPerDay: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := NATIdle([]NATGateway{tt.gw})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationNATGWIdle, recs[0].Type)
			assert.Equal(t, model.ConfidenceMedium, recs[0].Confidence)
		})
	}
}
