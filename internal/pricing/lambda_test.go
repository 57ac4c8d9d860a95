package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLambdaMonthlyCost(t *testing.T) {
	// Below the free tier: 100 invocations/day * 0.1s * (128/1024) GB = 1.25 GB-s/day
	// -> 37.5 GB-s/month, well under the 400,000 GB-s allowance.
	assert.Equal(t, 0.0, LambdaMonthlyCost(100, 100, 128))

	// A high-volume function should produce a positive, non-zero charge
	// once it clears the free tier.
	cost := LambdaMonthlyCost(500000, 800, 1024)
	assert.Greater(t, cost, 0.0)
}

func TestLambdaMonthlyGBSeconds(t *testing.T) {
	got := LambdaMonthlyGBSeconds(1000, 200, 512)
	want := 1000 * (200.0 / 1000) * (512.0 / 1024) * 30
	assert.InDelta(t, want, got, 0.0001)
}
