package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o",
	}
}

func writeChatCompletion(w http.ResponseWriter, content, finishReason string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	})
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, `{"steps":[{"text":"设 $x=2$"}]}`, "stop")
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "提取步骤",
		Messages:  []Message{UserMessage("请提取")},
		Schema:    testStepsSchema,
		MaxTokens: 256,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"steps":[{"text":"设 $x=2$"}]}`, string(resp.Content))
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "end", resp.StopReason)
}

func TestOpenAIProvider_SendsImagesAsMultiContent(t *testing.T) {
	var body map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &body)
		writeChatCompletion(w, "提示内容", "stop")
	})

	resp, err := p.Generate(context.Background(), Request{
		System:   "系统提示",
		Messages: []Message{UserMessage("看图", "https://cdn.example.com/p.png", "https://cdn.example.com/s.png")},
	})
	require.NoError(t, err)
	assert.Equal(t, "提示内容", resp.Text())

	messages := body["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])

	parts := messages[1].(map[string]any)["content"].([]any)
	require.Len(t, parts, 3)
	assert.Equal(t, "text", parts[0].(map[string]any)["type"])
	assert.Equal(t, "image_url", parts[1].(map[string]any)["type"])
	imageURL := parts[2].(map[string]any)["image_url"].(map[string]any)
	assert.Equal(t, "https://cdn.example.com/s.png", imageURL["url"])
}

func TestOpenAIProvider_EmptyContent(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, "   ", "stop")
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("hi")}})
	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestOpenAIProvider_SchemaViolation(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, `{"answer":"42"}`, "stop")
	})

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("hi")},
		Schema:   testStepsSchema,
	})
	var invalid *ErrInvalidResponse
	assert.True(t, errors.As(err, &invalid))
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		writeChatCompletion(w, `{"steps":[`, "length")
	})

	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{UserMessage("hi")},
		Schema:   testStepsSchema,
	})
	var truncated *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &truncated))
}

func TestOpenAIProvider_RateLimit(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"message": "Rate limit exceeded",
				"type":    "rate_limit_error",
			},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("hi")}})
	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl), "got %T", err)
}

func TestOpenAIProvider_ServerError(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "upstream down", "type": "server_error"},
		})
	})

	_, err := p.Generate(context.Background(), Request{Messages: []Message{UserMessage("hi")}})
	var unavailable *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable), "got %T", err)
}

func TestNewOpenAIProvider_RequiresKey(t *testing.T) {
	_, err := NewOpenAIProvider(OpenAIConfig{})
	assert.Error(t, err)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, openai.GPT4o, p.ModelID())
}
