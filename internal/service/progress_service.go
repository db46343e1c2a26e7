package service

import (
	"context"
	"fmt"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/monitoring"
)

type ProgressService struct {
	Progress ProgressStore
	Problems ProblemStore
}

func NewProgressService(progress ProgressStore, problems ProblemStore) *ProgressService {
	return &ProgressService{Progress: progress, Problems: problems}
}

// Record 记录一次学习事件，题目不存在时返回 ErrProblemNotFound。
// count 仅用于 EventStepsRevealed。
func (s *ProgressService) Record(ctx context.Context, user *model.User, problemID uint, event model.ProgressEvent, count int) error {
	if user == nil {
		return util.ErrPermissionDenied
	}

	exists, err := s.Problems.Exists(ctx, problemID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrProblemNotFound
	}

	switch event {
	case model.EventView:
		err = s.Progress.RecordView(ctx, user.OpenID, problemID)
	case model.EventHint:
		err = s.Progress.RecordHint(ctx, user.OpenID, problemID)
	case model.EventConditionClick:
		err = s.Progress.RecordConditionClick(ctx, user.OpenID, problemID)
	case model.EventStepsRevealed:
		if count < 0 {
			count = 0
		}
		err = s.Progress.RecordStepsRevealed(ctx, user.OpenID, problemID, count)
	case model.EventSolutionView:
		err = s.Progress.RecordSolutionView(ctx, user.OpenID, problemID)
	default:
		return fmt.Errorf("unknown progress event %q", event)
	}
	if err != nil {
		return err
	}

	monitoring.ObserveProgressEvent(string(event))
	return nil
}

func (s *ProgressService) Stats(ctx context.Context, user *model.User) (*model.ProgressStats, error) {
	if user == nil {
		return nil, util.ErrPermissionDenied
	}
	return s.Progress.Stats(ctx, user.OpenID)
}

// ForProblem 当前用户在单道题上的进度，没有记录时返回全零
func (s *ProgressService) ForProblem(ctx context.Context, user *model.User, problemID uint) (*model.UserProgress, error) {
	if user == nil {
		return nil, util.ErrPermissionDenied
	}
	progress, err := s.Progress.FindByUserAndProblem(ctx, user.OpenID, problemID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &model.UserProgress{UserID: user.OpenID, ProblemID: problemID}
	}
	return progress, nil
}
