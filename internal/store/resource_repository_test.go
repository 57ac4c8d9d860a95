package store

import (
	"context"
	"testing"
	"time"

	"finops/internal/store/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestResourceUpsert_PreservesCreatedAtAcrossUpdates(t *testing.T) {
	ds := newTestDatastore(t)
	repo := NewResourceRepository(ds)
	ctx := context.Background()

	first := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{
		ResourceID: "i-1",
		Service:    "EC2",
		Name:       ptr("web-1"),
	}, first, ResourceUpdateColumns))

	all, err := repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	createdAt := all[0].CreatedAt

	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{
		ResourceID: "i-1",
		Service:    "EC2",
		Name:       ptr("web-1-renamed"),
	}, second, ResourceUpdateColumns))

	all, err = repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, createdAt.Equal(all[0].CreatedAt), "created_at must survive a later upsert")
	assert.Equal(t, "web-1-renamed", *all[0].Name)
	assert.True(t, second.Equal(all[0].LastSeenAt))
}

// TestResourceUpsert_CostOnlyUpdateDoesNotNullDescriptiveFields is the
// regression test for the inventory-sync-then-analysis-path sequence a
// single job run always performs: syncInventory upserts full descriptive
// fields first, then applyAnalysisCosts upserts the same row again with
// only a computed cost/state/type. The second upsert must never null out
// what the first one wrote.
func TestResourceUpsert_CostOnlyUpdateDoesNotNullDescriptiveFields(t *testing.T) {
	ds := newTestDatastore(t)
	repo := NewResourceRepository(ds)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{
		ResourceID: "i-1",
		Service:    "EC2",
		Name:       ptr("web-1"),
		ARN:        ptr("arn:aws:ec2:us-east-1:123456789012:instance/i-1"),
		Tags:       model.StringMap{"env": "prod"},
		Metadata:   model.JSONMap{"az": "us-east-1a"},
	}, now, ResourceUpdateColumns))

	cost := 30.37
	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{
		ResourceID: "i-1",
		Service:    "EC2",
		Type:       ptr("t3.medium"),
		State:      ptr("running"),
		EstimatedMonthlyCost: &cost,
	}, now, ResourceCostUpdateColumns))

	all, err := repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	require.NotNil(t, got.Name)
	assert.Equal(t, "web-1", *got.Name)
	require.NotNil(t, got.ARN)
	assert.Equal(t, "arn:aws:ec2:us-east-1:123456789012:instance/i-1", *got.ARN)
	assert.Equal(t, "prod", got.Tags["env"])
	assert.Equal(t, "us-east-1a", got.Metadata["az"])
	require.NotNil(t, got.Type)
	assert.Equal(t, "t3.medium", *got.Type)
	require.NotNil(t, got.State)
	assert.Equal(t, "running", *got.State)
	require.NotNil(t, got.EstimatedMonthlyCost)
	assert.Equal(t, cost, *got.EstimatedMonthlyCost)
}

func TestResourceSweepStale_MarksOnlyStaleRows(t *testing.T) {
	ds := newTestDatastore(t)
	repo := NewResourceRepository(ds)
	ctx := context.Background()

	now := time.Date(2026, 8, 6, 12, 0, 0, 0, time.UTC)
	stale := now.Add(-2 * time.Hour)
	fresh := now.Add(-10 * time.Minute)

	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{ResourceID: "stale-1", Service: "EC2"}, stale, ResourceUpdateColumns))
	require.NoError(t, repo.Upsert(ctx, "ws-1", &model.Resource{ResourceID: "fresh-1", Service: "EC2"}, fresh, ResourceUpdateColumns))

	affected, err := repo.SweepStale(ctx, "ws-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	all, err := repo.ListByWorkspace(ctx, "ws-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, r := range all {
		switch r.ResourceID {
		case "stale-1":
			require.NotNil(t, r.State)
			assert.Equal(t, model.ResourceStateNotFound, *r.State)
		case "fresh-1":
			assert.Nil(t, r.State)
		}
	}

	// A second sweep at the same instant must not re-affect the row it
	// already marked not-found.
	affected, err = repo.SweepStale(ctx, "ws-1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}
