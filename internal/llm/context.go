package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// 调用用途，用于日志与指标
const (
	PurposeExtractSteps     = "extract_steps"
	PurposeHintWhy          = "hint_why"
	PurposeHintNext         = "hint_next"
	PurposeExplainCondition = "explain_condition"
	PurposeGuidingQuestions = "guiding_questions"
	PurposeRefreshTexts     = "refresh_texts"
)

func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
