package store

import (
	"context"
	"testing"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecommendationUpsert_PreservesDismissedStatus covers the
// dismiss-then-rerun scenario: a user dismisses a recommendation, the
// next job run re-detects the same (workspace, resource, type) and
// upserts it again with refreshed savings/description. The dismissal
// must survive.
func TestRecommendationUpsert_PreservesDismissedStatus(t *testing.T) {
	ds := newTestDatastore(t)
	repo := NewRecommendationRepository(ds)
	ctx := context.Background()

	rec := &model.Recommendation{
		Type:                    model.RecommendationEBSOrphan,
		ResourceID:              "vol-1",
		Description:             "orphaned volume",
		EstimatedMonthlySavings: 50.00,
		Confidence:              model.ConfidenceHigh,
	}
	require.NoError(t, repo.Upsert(ctx, "ws-1", rec))

	all, err := repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.RecommendationStatusNew, all[0].Status)

	require.NoError(t, repo.SetStatus(ctx, all[0].ID, model.RecommendationStatusDismissed))

	rerun := &model.Recommendation{
		Type:                    model.RecommendationEBSOrphan,
		ResourceID:              "vol-1",
		Description:             "orphaned volume, still unattached",
		EstimatedMonthlySavings: 52.50,
		Confidence:              model.ConfidenceHigh,
	}
	require.NoError(t, repo.Upsert(ctx, "ws-1", rerun))

	all, err = repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.RecommendationStatusDismissed, all[0].Status, "rerun must not revive a dismissed recommendation")
	assert.Equal(t, 52.50, all[0].EstimatedMonthlySavings, "descriptive fields still refresh on rerun")
	assert.Equal(t, "orphaned volume, still unattached", all[0].Description)
}

func TestRecommendationUpsert_DefaultsNewStatusOnInsert(t *testing.T) {
	ds := newTestDatastore(t)
	repo := NewRecommendationRepository(ds)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Recommendation{
		Type:       model.RecommendationNATGWIdle,
		ResourceID: "nat-1",
		Confidence: model.ConfidenceMedium,
	}))

	all, err := repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, model.RecommendationStatusNew, all[0].Status)
}
