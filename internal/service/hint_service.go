package service

import (
	"context"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"strings"
)

type HintMode string

const (
	HintModeWhy              HintMode = "why"
	HintModeNext             HintMode = "next"
	HintModeExplainCondition HintMode = "explainCondition"
)

// HintSelection 提示请求的选择对象，只有下面三种实现
type HintSelection interface {
	Mode() HintMode
}

// WhySelection 解释为什么得到所选步骤
type WhySelection struct {
	StepID       string
	SelectedText string
}

// NextSelection 提示所选步骤之后的思路
type NextSelection struct {
	StepID       string
	SelectedText string
}

// ConditionSelection 解释一个已知条件的作用
type ConditionSelection struct {
	Condition string
}

func (WhySelection) Mode() HintMode       { return HintModeWhy }
func (NextSelection) Mode() HintMode      { return HintModeNext }
func (ConditionSelection) Mode() HintMode { return HintModeExplainCondition }

// NewHintSelection 将扁平的请求字段转换为对应模式的选择，其余字段被忽略
func NewHintSelection(mode, stepID, selectedText, condition string) (HintSelection, error) {
	switch HintMode(mode) {
	case HintModeWhy:
		return WhySelection{StepID: stepID, SelectedText: selectedText}, nil
	case HintModeNext:
		return NextSelection{StepID: stepID, SelectedText: selectedText}, nil
	case HintModeExplainCondition:
		return ConditionSelection{Condition: condition}, nil
	}
	return nil, util.ErrInvalidHintMode
}

type HintRequest struct {
	Steps      model.Steps
	Conditions []string
	Selection  HintSelection
}

type HintService struct {
	LLM       llm.Provider
	MaxTokens int
}

func NewHintService(provider llm.Provider, maxTokens int) *HintService {
	return &HintService{LLM: provider, MaxTokens: maxTokens}
}

// Hint 按选择类型构造提示词并调用模型，成功时返回非空文本
func (s *HintService) Hint(ctx context.Context, req HintRequest) (string, error) {
	system, user, purpose, err := buildHintPrompt(req)
	if err != nil {
		return "", err
	}

	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := s.LLM.Generate(ctx, llm.Request{
		System:    system,
		Messages:  []llm.Message{llm.UserMessage(user)},
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	hint := strings.TrimSpace(resp.Text())
	if hint == "" {
		return "", util.ErrEmptyModelOutput
	}
	return hint, nil
}

func buildHintPrompt(req HintRequest) (system, user, purpose string, err error) {
	switch sel := req.Selection.(type) {
	case ConditionSelection:
		condition := strings.TrimSpace(sel.Condition)
		if condition == "" {
			return "", "", "", util.ErrConditionRequired
		}
		return conditionSystemPrompt, conditionUserPrompt(req.Steps, req.Conditions, condition), llm.PurposeExplainCondition, nil

	case WhySelection:
		index := req.Steps.IndexOf(sel.StepID)
		if index < 0 {
			return "", "", "", util.ErrStepNotFound
		}
		return whySystemPrompt, whyUserPrompt(req.Steps, index, sel.SelectedText), llm.PurposeHintWhy, nil

	case NextSelection:
		index := req.Steps.IndexOf(sel.StepID)
		if index < 0 {
			return "", "", "", util.ErrStepNotFound
		}
		return nextSystemPrompt, nextUserPrompt(req.Steps, index, sel.SelectedText), llm.PurposeHintNext, nil
	}
	return "", "", "", util.ErrInvalidHintMode
}
