package analyzer

import (
	"testing"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEIPUnassociated(t *testing.T) {
	recs := EIPUnassociated([]ElasticIP{
		{AllocationID: "eipalloc-1", AssociationID: "eipassoc-1"},
		{AllocationID: "eipalloc-2", AssociationID: ""},
	})
	require.Len(t, recs, 1)
	assert.Equal(t, "eipalloc-2", recs[0].ResourceID)
	assert.Equal(t, model.RecommendationEIPUnassociated, recs[0].Type)
	assert.Equal(t, model.ConfidenceHigh, recs[0].Confidence)
	assert.Equal(t, roundTo2(0.005*730), recs[0].EstimatedMonthlySavings)
}
