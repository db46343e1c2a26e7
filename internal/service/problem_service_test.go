package service

import (
	"context"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/repository"
	"stepwise_backend/internal/util"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemService_CreateRequiresAdmin(t *testing.T) {
	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, nil)

	_, err := svc.Create(context.Background(), normalUser, CreateProblemInput{Steps: threeSteps})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	_, err = svc.Create(context.Background(), nil, CreateProblemInput{Steps: threeSteps})
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	problems, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, problems, "nothing written when permission is denied")
}

func TestProblemService_CreateRejectsBadStepIDs(t *testing.T) {
	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, nil)
	ctx := context.Background()

	cases := map[string]model.Steps{
		"duplicate": {{ID: "step-1", Text: "a"}, {ID: "step-1", Text: "b"}},
		"empty":     {{ID: "step-1", Text: "a"}, {ID: " ", Text: "b"}},
	}
	for name, steps := range cases {
		_, err := svc.Create(ctx, adminUser, CreateProblemInput{Steps: steps})
		assert.ErrorIs(t, err, util.ErrInvalidSteps, name)
	}

	_, err := svc.Create(ctx, normalUser, CreateProblemInput{Steps: cases["duplicate"]})
	assert.ErrorIs(t, err, util.ErrPermissionDenied, "permission is checked first")

	problems, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, problems)
}

func TestProblemService_CreateThenGet(t *testing.T) {
	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, adminUser, CreateProblemInput{
		Title:           "  勾股定理  ",
		ProblemImageURL: "https://x/p.png",
		ProblemImageKey: "problems/problem-1-abc.png",
		Steps:           threeSteps,
		Conditions:      []string{"$a=3$", "$b=4$"},
	})
	require.NoError(t, err)

	problem, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, threeSteps, problem.Steps)
	assert.Equal(t, []string{"$a=3$", "$b=4$"}, []string(problem.Conditions))
	assert.Equal(t, "勾股定理", util.StringValue(problem.Title))
	assert.Equal(t, adminUser.ID, problem.UserID)
	assert.Nil(t, problem.SolutionImageURL)

	_, err = svc.GetByID(ctx, id+100)
	assert.ErrorIs(t, err, util.ErrProblemNotFound)
}

func TestProblemService_ReadThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, repository.NewProblemCache(rdb, time.Hour))
	ctx := context.Background()

	id, err := svc.Create(ctx, adminUser, CreateProblemInput{ProblemText: "原文", Steps: threeSteps})
	require.NoError(t, err)

	_, err = svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Len(t, mr.Keys(), 1)

	require.NoError(t, svc.UpdateTexts(ctx, id, &ProblemTexts{ProblemText: "新文本", ProblemTextEn: "New text"}))
	assert.Empty(t, mr.Keys(), "update drops the cached entry")

	problem, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "新文本", util.StringValue(problem.ProblemText))
}

func TestProblemService_CacheFailureFallsBack(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, repository.NewProblemCache(rdb, time.Hour))
	ctx := context.Background()

	id, err := svc.Create(ctx, adminUser, CreateProblemInput{Steps: threeSteps})
	require.NoError(t, err)

	mr.Close()
	problem, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, problem.ID)
}

func TestProblemService_Export(t *testing.T) {
	repo := repository.NewProblemRepository(newTestDB(t))
	svc := NewProblemService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, adminUser, CreateProblemInput{ProblemImageURL: "https://x/p1.png", SolutionImageURL: "https://x/s1.png", Steps: threeSteps})
	require.NoError(t, err)
	_, err = svc.Create(ctx, adminUser, CreateProblemInput{Steps: threeSteps})
	require.NoError(t, err)

	bundle, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, bundle.Problems, 2)
	assert.ElementsMatch(t, []string{"https://x/p1.png", "https://x/s1.png"}, bundle.ImageURLs)
}

func TestProblemService_Offline(t *testing.T) {
	svc := NewProblemService(repository.NewOffline(), nil)

	problems, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, problems)

	_, err = svc.Create(context.Background(), adminUser, CreateProblemInput{Steps: threeSteps})
	assert.ErrorIs(t, err, util.ErrStorageUnavailable)
}
