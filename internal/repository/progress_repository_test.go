package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressRepository_ZeroStats(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))

	stats, err := repo.Stats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProblemsViewed)
	assert.Zero(t, stats.TotalHintsRequested)
	assert.Zero(t, stats.TotalConditionsClicked)
	assert.Zero(t, stats.TotalStepsRevealed)
	assert.Zero(t, stats.TotalSolutionsViewed)
}

func TestProgressRepository_HintsAccumulate(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()

	before, err := repo.Stats(ctx, "u1")
	require.NoError(t, err)

	require.NoError(t, repo.RecordHint(ctx, "u1", 1))
	require.NoError(t, repo.RecordHint(ctx, "u1", 1))

	after, err := repo.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, before.TotalHintsRequested+2, after.TotalHintsRequested)
	assert.EqualValues(t, 1, after.TotalProblemsViewed)
}

func TestProgressRepository_StepsRevealedIsMonotonic(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()

	for _, n := range []int{2, 5, 3, 0} {
		require.NoError(t, repo.RecordStepsRevealed(ctx, "u1", 7, n))
	}

	row, err := repo.FindByUserAndProblem(ctx, "u1", 7)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 5, row.StepsRevealed)
}

func TestProgressRepository_FirstEventCreatesRow(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()

	row, err := repo.FindByUserAndProblem(ctx, "u1", 3)
	require.NoError(t, err)
	assert.Nil(t, row)

	require.NoError(t, repo.RecordConditionClick(ctx, "u1", 3))
	require.NoError(t, repo.RecordView(ctx, "u1", 3))
	require.NoError(t, repo.RecordView(ctx, "u1", 3))
	require.NoError(t, repo.RecordSolutionView(ctx, "u1", 3))
	require.NoError(t, repo.RecordSolutionView(ctx, "u1", 3))

	row, err = repo.FindByUserAndProblem(ctx, "u1", 3)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, 2, row.ViewCount)
	assert.Equal(t, 1, row.ConditionClickCount)
	assert.Equal(t, 1, row.ViewedSolution)
	assert.False(t, row.LastViewedAt.Before(row.FirstViewedAt))
}

func TestProgressRepository_StatsPerUser(t *testing.T) {
	repo := NewProgressRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordView(ctx, "u1", 1))
	require.NoError(t, repo.RecordView(ctx, "u1", 2))
	require.NoError(t, repo.RecordStepsRevealed(ctx, "u1", 1, 3))
	require.NoError(t, repo.RecordStepsRevealed(ctx, "u1", 2, 4))
	require.NoError(t, repo.RecordSolutionView(ctx, "u1", 2))
	require.NoError(t, repo.RecordView(ctx, "u2", 1))

	stats, err := repo.Stats(ctx, "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalProblemsViewed)
	assert.EqualValues(t, 7, stats.TotalStepsRevealed)
	assert.EqualValues(t, 1, stats.TotalSolutionsViewed)
}
