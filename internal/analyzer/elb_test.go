package analyzer

import (
	"testing"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestELBNoTargets(t *testing.T) {
	tests := []struct {
		name    string
		lb      LoadBalancer
		wantRec bool
	}{
		{"active with no targets", LoadBalancer{Name: "lb1", State: "active", TotalTargetCount: 0}, true},
		{"active with targets", LoadBalancer{Name: "lb2", State: "active", TotalTargetCount: 2}, false},
		{"provisioning state is skipped", LoadBalancer{Name: "lb3", State: "provisioning", TotalTargetCount: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := ELBNoTargets([]LoadBalancer{tt.lb})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationELBNoTargets, recs[0].Type)
			assert.Equal(t, model.ConfidenceHigh, recs[0].Confidence)
		})
	}
}

func TestELBNoTraffic(t *testing.T) {
	tests := []struct {
		name    string
		lb      LoadBalancer
		wantRec bool
	}{
		{"active with targets but zero traffic", LoadBalancer{Name: "lb1", State: "active", TotalTargetCount: 2, RequestCountPerDay: 0}, true},
		{"active with traffic", LoadBalancer{Name: "lb2", State: "active", TotalTargetCount: 2, RequestCountPerDay: 10}, false},
		{"no targets delegates to ELBNoTargets, not this one", LoadBalancer{Name: "lb3", State: "active", TotalTargetCount: 0, RequestCountPerDay: 0}, false},
		{"provisioning state is skipped", LoadBalancer{Name: "lb4", State: "provisioning", TotalTargetCount: 2, RequestCountPerDay: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := ELBNoTraffic([]LoadBalancer{tt.lb})
			if !tt.wantRec {
				assert.Empty(t, recs)
				return
			}
			require.Len(t, recs, 1)
			assert.Equal(t, model.RecommendationELBNoTraffic, recs[0].Type)
			assert.Equal(t, model.ConfidenceMedium, recs[0].Confidence)
		})
	}
}
