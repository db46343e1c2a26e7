package service

import (
	"context"
	"fmt"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

type CreateProblemInput struct {
	Title            string      `json:"title"`
	ProblemText      string      `json:"problemText"`
	ProblemTextEn    string      `json:"problemTextEn"`
	ProblemImageURL  string      `json:"problemImageUrl"`
	ProblemImageKey  string      `json:"problemImageKey"`
	SolutionImageURL string      `json:"solutionImageUrl"`
	SolutionImageKey string      `json:"solutionImageKey"`
	Steps            model.Steps `json:"steps"`
	Conditions       []string    `json:"conditions"`
}

// ExportBundle 全量导出的题目与图片地址
type ExportBundle struct {
	Problems  []model.Problem `json:"problems"`
	ImageURLs []string        `json:"imageUrls"`
}

type ProblemService struct {
	Problems ProblemStore
	Cache    ProblemCache
}

// NewProblemService cache 可为 nil
func NewProblemService(problems ProblemStore, cache ProblemCache) *ProblemService {
	return &ProblemService{Problems: problems, Cache: cache}
}

// Create 仅管理员可用，权限检查先于任何写入
func (s *ProblemService) Create(ctx context.Context, user *model.User, input CreateProblemInput) (uint, error) {
	if !user.IsAdmin() {
		return 0, util.ErrPermissionDenied
	}
	if err := validateSteps(input.Steps); err != nil {
		return 0, err
	}

	problem := &model.Problem{
		UserID:           user.ID,
		Title:            util.StringPtr(strings.TrimSpace(input.Title)),
		ProblemText:      util.StringPtr(input.ProblemText),
		ProblemTextEn:    util.StringPtr(input.ProblemTextEn),
		ProblemImageURL:  util.StringPtr(input.ProblemImageURL),
		ProblemImageKey:  util.StringPtr(input.ProblemImageKey),
		SolutionImageURL: util.StringPtr(input.SolutionImageURL),
		SolutionImageKey: util.StringPtr(input.SolutionImageKey),
		Steps:            input.Steps,
	}
	if input.Conditions != nil {
		problem.Conditions = model.Conditions(input.Conditions)
	}

	if err := s.Problems.Create(ctx, problem); err != nil {
		return 0, err
	}

	logger.Log.Info("Problem created",
		zap.Uint("problem_id", problem.ID),
		zap.String("owner", user.OpenID),
		zap.Int("steps", len(problem.Steps)),
	)
	return problem.ID, nil
}

// validateSteps 步骤 id 在题目内唯一且非空
func validateSteps(steps model.Steps) error {
	seen := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		id := strings.TrimSpace(step.ID)
		if id == "" {
			return fmt.Errorf("%w: empty id", util.ErrInvalidSteps)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate id %q", util.ErrInvalidSteps, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *ProblemService) List(ctx context.Context) ([]model.Problem, error) {
	return s.Problems.List(ctx)
}

// GetByID 先读缓存，缓存错误只记录日志
func (s *ProblemService) GetByID(ctx context.Context, id uint) (*model.Problem, error) {
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, id)
		if err != nil {
			logger.Log.Warn("Problem cache read failed", zap.Uint("problem_id", id), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	problem, err := s.Problems.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, problem); err != nil {
			logger.Log.Warn("Problem cache write failed", zap.Uint("problem_id", id), zap.Error(err))
		}
	}
	return problem, nil
}

// UpdateTexts 维护命令使用，更新后清除缓存
func (s *ProblemService) UpdateTexts(ctx context.Context, id uint, texts *ProblemTexts) error {
	if err := s.Problems.UpdateTexts(ctx, id,
		util.StringPtr(texts.ProblemText),
		util.StringPtr(texts.ProblemTextEn),
	); err != nil {
		return err
	}

	if s.Cache != nil {
		if err := s.Cache.Delete(ctx, id); err != nil {
			logger.Log.Warn("Problem cache delete failed", zap.Uint("problem_id", id), zap.Error(err))
		}
	}
	return nil
}

// Export 导出全部题目以及其中引用的图片地址
func (s *ProblemService) Export(ctx context.Context) (*ExportBundle, error) {
	problems, err := s.Problems.List(ctx)
	if err != nil {
		return nil, err
	}

	bundle := &ExportBundle{Problems: problems, ImageURLs: []string{}}
	for _, p := range problems {
		for _, url := range []*string{p.ProblemImageURL, p.SolutionImageURL} {
			if v := util.StringValue(url); v != "" {
				bundle.ImageURLs = append(bundle.ImageURLs, v)
			}
		}
	}
	return bundle, nil
}
