package repository

import (
	"context"
	"errors"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

func (r *ProblemRepository) Create(ctx context.Context, problem *model.Problem) error {
	if problem.Steps == nil {
		problem.Steps = model.Steps{}
	}
	return r.DB.WithContext(ctx).Create(problem).Error
}

// List 最新创建的在前
func (r *ProblemRepository) List(ctx context.Context) ([]model.Problem, error) {
	var problems []model.Problem
	err := r.DB.WithContext(ctx).Order("created_at DESC, id DESC").Find(&problems).Error
	return problems, err
}

func (r *ProblemRepository) FindByID(ctx context.Context, id uint) (*model.Problem, error) {
	var problem model.Problem
	err := r.DB.WithContext(ctx).First(&problem, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProblemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &problem, nil
}

func (r *ProblemRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Problem{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// UpdateTexts 只覆盖非空字段
func (r *ProblemRepository) UpdateTexts(ctx context.Context, id uint, problemText, problemTextEn *string) error {
	updates := map[string]interface{}{}
	if problemText != nil {
		updates["problem_text"] = *problemText
	}
	if problemTextEn != nil {
		updates["problem_text_en"] = *problemTextEn
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.DB.WithContext(ctx).Model(&model.Problem{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrProblemNotFound
	}
	return nil
}
