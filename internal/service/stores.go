package service

import (
	"context"
	"stepwise_backend/internal/model"
)

// 存储接口，由 repository 包中的 gorm 实现或 Offline 实现满足

type UserStore interface {
	Upsert(ctx context.Context, identity model.Identity, ownerOpenID string) (*model.User, error)
	FindByOpenID(ctx context.Context, openID string) (*model.User, error)
}

type ProblemStore interface {
	Create(ctx context.Context, problem *model.Problem) error
	List(ctx context.Context) ([]model.Problem, error)
	FindByID(ctx context.Context, id uint) (*model.Problem, error)
	Exists(ctx context.Context, id uint) (bool, error)
	UpdateTexts(ctx context.Context, id uint, problemText, problemTextEn *string) error
}

type ProgressStore interface {
	RecordView(ctx context.Context, userID string, problemID uint) error
	RecordHint(ctx context.Context, userID string, problemID uint) error
	RecordConditionClick(ctx context.Context, userID string, problemID uint) error
	RecordStepsRevealed(ctx context.Context, userID string, problemID uint, count int) error
	RecordSolutionView(ctx context.Context, userID string, problemID uint) error
	Stats(ctx context.Context, userID string) (*model.ProgressStats, error)
	FindByUserAndProblem(ctx context.Context, userID string, problemID uint) (*model.UserProgress, error)
}

// ProblemCache 题目详情缓存，未命中时 Get 返回 nil, nil
type ProblemCache interface {
	Get(ctx context.Context, id uint) (*model.Problem, error)
	Set(ctx context.Context, problem *model.Problem) error
	Delete(ctx context.Context, id uint) error
}
