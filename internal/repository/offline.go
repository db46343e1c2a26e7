package repository

import (
	"context"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"

	"go.uber.org/zap"
)

// Offline 未配置数据库时使用：读操作返回空结果并记录告警，写操作返回 ErrStorageUnavailable
type Offline struct{}

func NewOffline() *Offline {
	return &Offline{}
}

func (Offline) warn(op string) {
	logger.Log.Warn("Database not configured, degraded read", zap.String("op", op))
}

func (o Offline) Upsert(ctx context.Context, identity model.Identity, ownerOpenID string) (*model.User, error) {
	return nil, util.ErrStorageUnavailable
}

func (o Offline) FindByOpenID(ctx context.Context, openID string) (*model.User, error) {
	o.warn("user.findByOpenId")
	return nil, util.ErrUserNotFound
}

func (o Offline) Create(ctx context.Context, problem *model.Problem) error {
	return util.ErrStorageUnavailable
}

func (o Offline) List(ctx context.Context) ([]model.Problem, error) {
	o.warn("problem.list")
	return []model.Problem{}, nil
}

func (o Offline) FindByID(ctx context.Context, id uint) (*model.Problem, error) {
	o.warn("problem.getById")
	return nil, util.ErrProblemNotFound
}

// Exists 只在写路径前调用，因此按写操作处理
func (o Offline) Exists(ctx context.Context, id uint) (bool, error) {
	return false, util.ErrStorageUnavailable
}

func (o Offline) UpdateTexts(ctx context.Context, id uint, problemText, problemTextEn *string) error {
	return util.ErrStorageUnavailable
}

func (o Offline) RecordView(ctx context.Context, userID string, problemID uint) error {
	return util.ErrStorageUnavailable
}

func (o Offline) RecordHint(ctx context.Context, userID string, problemID uint) error {
	return util.ErrStorageUnavailable
}

func (o Offline) RecordConditionClick(ctx context.Context, userID string, problemID uint) error {
	return util.ErrStorageUnavailable
}

func (o Offline) RecordStepsRevealed(ctx context.Context, userID string, problemID uint, count int) error {
	return util.ErrStorageUnavailable
}

func (o Offline) RecordSolutionView(ctx context.Context, userID string, problemID uint) error {
	return util.ErrStorageUnavailable
}

func (o Offline) Stats(ctx context.Context, userID string) (*model.ProgressStats, error) {
	o.warn("progress.stats")
	return &model.ProgressStats{}, nil
}

func (o Offline) FindByUserAndProblem(ctx context.Context, userID string, problemID uint) (*model.UserProgress, error) {
	o.warn("progress.find")
	return nil, nil
}
