package llm

import (
	"context"
	"encoding/json"
)

// Provider 模型服务抽象，题目抽取、提示与引导问题都通过它调用
type Provider interface {
	// Generate 发送一次请求。Request.Schema 不为空时返回经过校验的 JSON，
	// 否则 Content 为模型原始文本。
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

type Request struct {
	System   string
	Messages []Message

	// Schema 为空时返回纯文本
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message 单条消息，Images 为可公开访问的图片 URL
type Message struct {
	Role    Role
	Content string
	Images  []string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema 严格模式下模型输出必须满足的 JSON Schema
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Text 以字符串返回模型输出
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserMessage 构造一条用户消息
func UserMessage(content string, images ...string) Message {
	return Message{Role: RoleUser, Content: content, Images: images}
}
