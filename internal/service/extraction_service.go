package service

import (
	"context"
	"encoding/json"
	"fmt"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/model"
	"stepwise_backend/internal/util"
	"strings"
)

var extractionSchema = &llm.Schema{
	Name:        "steps_extraction",
	Description: "题目文字、已知条件与解题步骤",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problemText":   map[string]any{"type": "string"},
			"problemTextEn": map[string]any{"type": "string"},
			"conditions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"steps": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required":             []string{"text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"problemText", "problemTextEn", "conditions", "steps"},
		"additionalProperties": false,
	},
}

var problemTextsSchema = &llm.Schema{
	Name:        "problem_texts",
	Description: "题目中英文文本",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"problemText":   map[string]any{"type": "string"},
			"problemTextEn": map[string]any{"type": "string"},
		},
		"required":             []string{"problemText", "problemTextEn"},
		"additionalProperties": false,
	},
}

type ExtractInput struct {
	ProblemImageURL  string `json:"problemImageUrl"`
	SolutionImageURL string `json:"solutionImageUrl"`
}

type ExtractionResult struct {
	ProblemText   string      `json:"problemText"`
	ProblemTextEn string      `json:"problemTextEn"`
	Conditions    []string    `json:"conditions"`
	Steps         model.Steps `json:"steps"`
}

// ProblemTexts 题目中英文文本
type ProblemTexts struct {
	ProblemText   string `json:"problemText"`
	ProblemTextEn string `json:"problemTextEn"`
}

type ExtractionService struct {
	LLM       llm.Provider
	MaxTokens int
}

func NewExtractionService(provider llm.Provider, maxTokens int) *ExtractionService {
	return &ExtractionService{LLM: provider, MaxTokens: maxTokens}
}

// Extract 单次调用模型，步骤 ID 按返回顺序生成 step-1..n
func (s *ExtractionService) Extract(ctx context.Context, input ExtractInput) (*ExtractionResult, error) {
	var images []string
	for _, url := range []string{input.ProblemImageURL, input.SolutionImageURL} {
		if url != "" {
			images = append(images, url)
		}
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExtractSteps)
	resp, err := s.LLM.Generate(ctx, llm.Request{
		System:    extractionSystemPrompt,
		Messages:  []llm.Message{llm.UserMessage(extractionUserPrompt, images...)},
		Schema:    extractionSchema,
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extract steps: %w", err)
	}

	var parsed struct {
		ProblemText   string   `json:"problemText"`
		ProblemTextEn string   `json:"problemTextEn"`
		Conditions    []string `json:"conditions"`
		Steps         []struct {
			Text string `json:"text"`
		} `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	result := &ExtractionResult{
		ProblemText:   strings.TrimSpace(parsed.ProblemText),
		ProblemTextEn: strings.TrimSpace(parsed.ProblemTextEn),
		Conditions:    make([]string, 0, len(parsed.Conditions)),
		Steps:         make(model.Steps, 0, len(parsed.Steps)),
	}
	for _, c := range parsed.Conditions {
		if c = strings.TrimSpace(c); c != "" {
			result.Conditions = append(result.Conditions, c)
		}
	}
	for _, step := range parsed.Steps {
		text := strings.TrimSpace(step.Text)
		if text == "" {
			continue
		}
		result.Steps = append(result.Steps, model.Step{
			ID:   fmt.Sprintf("step-%d", len(result.Steps)+1),
			Text: text,
		})
	}

	return result, nil
}

// ExtractTexts 从题目图片重新识别中英文题目文本
func (s *ExtractionService) ExtractTexts(ctx context.Context, problemImageURL string) (*ProblemTexts, error) {
	if problemImageURL == "" {
		return nil, fmt.Errorf("problem image url is required")
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeRefreshTexts)
	resp, err := s.LLM.Generate(ctx, llm.Request{
		System:    refreshTextsSystemPrompt,
		Messages:  []llm.Message{llm.UserMessage(refreshTextsUserPrompt, problemImageURL)},
		Schema:    problemTextsSchema,
		MaxTokens: s.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("extract problem texts: %w", err)
	}

	var texts ProblemTexts
	if err := json.Unmarshal(resp.Content, &texts); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	if strings.TrimSpace(texts.ProblemText) == "" {
		return nil, util.ErrEmptyModelOutput
	}
	return &texts, nil
}
