package service

import (
	"context"
	"encoding/json"
	"fmt"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"stepwise_backend/pkg/logger"

	"go.uber.org/zap"
)

var guidingQuestionsSchema = &llm.Schema{
	Name:        "guiding_questions",
	Description: "苏格拉底式引导问题",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"correctIndex": map[string]any{"type": "integer"},
						"explanation":  map[string]any{"type": "string"},
					},
					"required":             []string{"question", "options", "correctIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"questions"},
		"additionalProperties": false,
	},
}

type GuidingQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Valid correctIndex 落在选项范围内且至少两个选项
func (q GuidingQuestion) Valid() bool {
	return len(q.Options) >= 2 && q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}

type GuidingInput struct {
	ProblemImageURL  string
	SolutionImageURL string
	ProblemText      string
	Steps            model.Steps
	Conditions       []string
}

type GuidingService struct {
	LLM       llm.Provider
	MaxTokens int
}

func NewGuidingService(provider llm.Provider, maxTokens int) *GuidingService {
	return &GuidingService{LLM: provider, MaxTokens: maxTokens}
}

// Generate 生成引导问题，correctIndex 越界的问题会被丢弃
func (s *GuidingService) Generate(ctx context.Context, input GuidingInput) ([]GuidingQuestion, error) {
	var images []string
	for _, url := range []string{input.ProblemImageURL, input.SolutionImageURL} {
		if url != "" {
			images = append(images, url)
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeGuidingQuestions)
	resp, err := s.LLM.Generate(ctx, llm.Request{
		System: guidingSystemPrompt,
		Messages: []llm.Message{
			llm.UserMessage(guidingUserPrompt(input.ProblemText, input.Steps, input.Conditions), images...),
		},
		Schema:    guidingQuestionsSchema,
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate guiding questions: %w", err)
	}

	var parsed struct {
		Questions []GuidingQuestion `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	questions := make([]GuidingQuestion, 0, len(parsed.Questions))
	for i, q := range parsed.Questions {
		if !q.Valid() {
			logger.Log.Warn("Dropping invalid guiding question",
				zap.Int("index", i),
				zap.Int("options", len(q.Options)),
				zap.Int("correct_index", q.CorrectIndex),
			)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, util.ErrNoValidQuestions
	}
	return questions, nil
}
