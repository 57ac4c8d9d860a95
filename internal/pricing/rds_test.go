package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRDSMonthlyCost(t *testing.T) {
	tests := []struct {
		name          string
		instanceClass string
		status        string
		want          float64
	}{
		{"available db.t3.medium", "db.t3.medium", "available", roundTo2(0.068 * HoursPerMonth)},
		{"non-available status costs nothing", "db.m5.large", "stopped", 0},
		{"unknown class falls back", "db.z9.mega", "available", roundTo2(RDSFallbackHourly * HoursPerMonth)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RDSMonthlyCost(tt.instanceClass, tt.status))
		})
	}
}
