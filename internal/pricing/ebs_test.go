package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEBSMonthlyCost(t *testing.T) {
	tests := []struct {
		name       string
		volumeType string
		sizeGiB    float64
		want       float64
	}{
		{"gp3 100 GiB", "gp3", 100, 8.00},
		{"gp2 500 GiB", "gp2", 500, 50.00},
		{"io1 50 GiB", "io1", 50, 6.25},
		{"unknown type falls back to gp2-equivalent rate", "weird", 10, 1.00},
		{"negative size is rejected", "gp3", -5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EBSMonthlyCost(tt.volumeType, tt.sizeGiB))
		})
	}
}
