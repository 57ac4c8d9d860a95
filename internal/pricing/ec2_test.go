package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEC2MonthlyCost(t *testing.T) {
	tests := []struct {
		name         string
		instanceType string
		state        string
		want         float64
	}{
		{"t3.medium running", "t3.medium", "running", 30.37},
		{"m5.large running", "m5.large", "running", 70.08},
		{"stopped instance costs nothing", "m5.large", "stopped", 0},
		{"unknown type falls back", "z9.mega", "running", roundTo2(EC2FallbackHourly * HoursPerMonth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EC2MonthlyCost(tt.instanceType, tt.state), 0.01)
		})
	}
}

// TestEC2MonthlyCost_T3MediumScenario pins the exact figure from the
// concrete integration scenario: 0.0416 * 730 = 30.368, rounded to 30.37.
func TestEC2MonthlyCost_T3MediumScenario(t *testing.T) {
	assert.Equal(t, 30.37, EC2MonthlyCost("t3.medium", "running"))
}
