package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"stepwise_backend/internal/model"
	"time"

	"github.com/go-redis/redis/v8"
)

const problemKeyPrefix = "problem:"

// ProblemCache 题目详情的 Redis 缓存，未命中返回 nil, nil
type ProblemCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewProblemCache(rdb *redis.Client, ttl time.Duration) *ProblemCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ProblemCache{rdb: rdb, ttl: ttl}
}

func problemKey(id uint) string {
	return fmt.Sprintf("%s%d", problemKeyPrefix, id)
}

func (c *ProblemCache) Get(ctx context.Context, id uint) (*model.Problem, error) {
	data, err := c.rdb.Get(ctx, problemKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var problem model.Problem
	if err := json.Unmarshal(data, &problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

func (c *ProblemCache) Set(ctx context.Context, problem *model.Problem) error {
	data, err := json.Marshal(problem)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, problemKey(problem.ID), data, c.ttl).Err()
}

func (c *ProblemCache) Delete(ctx context.Context, id uint) error {
	return c.rdb.Del(ctx, problemKey(id)).Err()
}
