package repository

import (
	"context"
	"stepwise_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository 每个事件都是一条 INSERT ... ON CONFLICT 语句，
// 并发请求不会丢失计数
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) RecordView(ctx context.Context, userID string, problemID uint) error {
	return r.upsert(ctx, userID, problemID, func(row *model.UserProgress) {
		row.ViewCount = 1
	}, map[string]interface{}{
		"view_count": gorm.Expr("user_progress.view_count + 1"),
	})
}

func (r *ProgressRepository) RecordHint(ctx context.Context, userID string, problemID uint) error {
	return r.upsert(ctx, userID, problemID, func(row *model.UserProgress) {
		row.HintCount = 1
	}, map[string]interface{}{
		"hint_count": gorm.Expr("user_progress.hint_count + 1"),
	})
}

func (r *ProgressRepository) RecordConditionClick(ctx context.Context, userID string, problemID uint) error {
	return r.upsert(ctx, userID, problemID, func(row *model.UserProgress) {
		row.ConditionClickCount = 1
	}, map[string]interface{}{
		"condition_click_count": gorm.Expr("user_progress.condition_click_count + 1"),
	})
}

// RecordStepsRevealed 取已记录值与 count 的较大者
func (r *ProgressRepository) RecordStepsRevealed(ctx context.Context, userID string, problemID uint, count int) error {
	return r.upsert(ctx, userID, problemID, func(row *model.UserProgress) {
		row.StepsRevealed = count
	}, map[string]interface{}{
		"steps_revealed": gorm.Expr(
			"CASE WHEN user_progress.steps_revealed < ? THEN ? ELSE user_progress.steps_revealed END",
			count, count,
		),
	})
}

func (r *ProgressRepository) RecordSolutionView(ctx context.Context, userID string, problemID uint) error {
	return r.upsert(ctx, userID, problemID, func(row *model.UserProgress) {
		row.ViewedSolution = 1
	}, map[string]interface{}{
		"viewed_solution": 1,
	})
}

func (r *ProgressRepository) upsert(ctx context.Context, userID string, problemID uint, first func(*model.UserProgress), updates map[string]interface{}) error {
	now := time.Now()

	row := &model.UserProgress{
		UserID:        userID,
		ProblemID:     problemID,
		FirstViewedAt: now,
		LastViewedAt:  now,
	}
	first(row)

	updates["last_viewed_at"] = now

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "problem_id"}},
		DoUpdates: clause.Assignments(updates),
	}).Create(row).Error
}

// Stats 汇总用户全部题目的计数，无记录时各项为 0
func (r *ProgressRepository) Stats(ctx context.Context, userID string) (*model.ProgressStats, error) {
	var stats model.ProgressStats
	err := r.DB.WithContext(ctx).Model(&model.UserProgress{}).
		Select(`COUNT(*) AS total_problems_viewed,
			COALESCE(SUM(hint_count), 0) AS total_hints_requested,
			COALESCE(SUM(condition_click_count), 0) AS total_conditions_clicked,
			COALESCE(SUM(steps_revealed), 0) AS total_steps_revealed,
			COALESCE(SUM(viewed_solution), 0) AS total_solutions_viewed`).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// FindByUserAndProblem 单题进度，不存在时返回 nil
func (r *ProgressRepository) FindByUserAndProblem(ctx context.Context, userID string, problemID uint) (*model.UserProgress, error) {
	var rows []model.UserProgress
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND problem_id = ?", userID, problemID).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}
