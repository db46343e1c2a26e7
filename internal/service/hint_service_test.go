package service

import (
	"context"
	"stepwise_backend/internal/llm"
	"stepwise_backend/internal/util"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHintSelection(t *testing.T) {
	sel, err := NewHintSelection("why", "step-1", "a^2", "")
	require.NoError(t, err)
	assert.Equal(t, WhySelection{StepID: "step-1", SelectedText: "a^2"}, sel)

	sel, err = NewHintSelection("next", "step-2", "", "")
	require.NoError(t, err)
	assert.Equal(t, HintModeNext, sel.Mode())

	sel, err = NewHintSelection("explainCondition", "", "", "AB=AC")
	require.NoError(t, err)
	assert.Equal(t, ConditionSelection{Condition: "AB=AC"}, sel)

	_, err = NewHintSelection("solve", "", "", "")
	assert.ErrorIs(t, err, util.ErrInvalidHintMode)
}

func TestHintService_UnknownStep(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewHintService(mock, 512)

	for _, sel := range []HintSelection{WhySelection{StepID: "step-9"}, NextSelection{StepID: "step-9"}} {
		_, err := svc.Hint(context.Background(), HintRequest{Steps: threeSteps, Selection: sel})
		assert.ErrorIs(t, err, util.ErrStepNotFound)
	}
	assert.Zero(t, mock.CallCount(), "no model call on invalid selection")
}

func TestHintService_ConditionRequired(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewHintService(mock, 512)

	_, err := svc.Hint(context.Background(), HintRequest{
		Steps:     threeSteps,
		Selection: ConditionSelection{Condition: "   "},
	})
	assert.ErrorIs(t, err, util.ErrConditionRequired)
	assert.Zero(t, mock.CallCount())
}

func TestHintService_WhyUsesPreviousSteps(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddText("  因为这是直角三角形，可以用勾股定理。  ")
	svc := NewHintService(mock, 512)

	hint, err := svc.Hint(context.Background(), HintRequest{
		Steps:     threeSteps,
		Selection: WhySelection{StepID: "step-3", SelectedText: "c = 5"},
	})
	require.NoError(t, err)
	assert.Equal(t, "因为这是直角三角形，可以用勾股定理。", hint)

	call, _ := mock.LastCall()
	assert.Equal(t, whySystemPrompt, call.System)
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, threeSteps[2].Text)
	assert.Contains(t, prompt, threeSteps[1].Text)
	assert.Contains(t, prompt, "c = 5")
}

func TestHintService_NextOnLastStepHasNoLaterStep(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddText("检查一下结果是否合理。")
	svc := NewHintService(mock, 512)

	hint, err := svc.Hint(context.Background(), HintRequest{
		Steps:     threeSteps,
		Selection: NextSelection{StepID: "step-3"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, hint)

	call, _ := mock.LastCall()
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, threeSteps[2].Text)
	assert.NotContains(t, prompt, "参考")
	assert.NotContains(t, prompt, threeSteps[0].Text)
	assert.NotContains(t, prompt, threeSteps[1].Text)
}

func TestHintService_NextIncludesHiddenReference(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddText("试着把已知数代入。")
	svc := NewHintService(mock, 512)

	_, err := svc.Hint(context.Background(), HintRequest{
		Steps:     threeSteps,
		Selection: NextSelection{StepID: "step-1"},
	})
	require.NoError(t, err)

	call, _ := mock.LastCall()
	prompt := call.Messages[0].Content
	assert.Contains(t, prompt, threeSteps[1].Text)
	assert.Contains(t, prompt, "不要直接说出来")
	assert.NotContains(t, prompt, threeSteps[2].Text)
}

func TestHintService_ExplainCondition(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddText("这个条件说明三角形是直角三角形。所以可以使用勾股定理。")
	svc := NewHintService(mock, 512)

	hint, err := svc.Hint(context.Background(), HintRequest{
		Steps:      threeSteps,
		Conditions: []string{"$\\angle C = 90^\\circ$", "$a=3, b=4$"},
		Selection:  ConditionSelection{Condition: "$\\angle C = 90^\\circ$"},
	})
	require.NoError(t, err)

	sentences := strings.Count(hint, "。")
	assert.GreaterOrEqual(t, sentences, 2)
	assert.LessOrEqual(t, sentences, 5)
	assert.Greater(t, utf8.RuneCountInString(hint), 0)

	call, _ := mock.LastCall()
	assert.Equal(t, conditionSystemPrompt, call.System)
	assert.Contains(t, call.Messages[0].Content, "$a=3, b=4$")
}

func TestHintService_EmptyOutput(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddText("   ")
	svc := NewHintService(mock, 512)

	_, err := svc.Hint(context.Background(), HintRequest{
		Steps:     threeSteps,
		Selection: WhySelection{StepID: "step-1"},
	})
	assert.ErrorIs(t, err, util.ErrEmptyModelOutput)
}
