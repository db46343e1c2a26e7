package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaSet 编译后的 Schema，按 Name 复用
type schemaSet struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

var schemas = &schemaSet{compiled: make(map[string]*jsonschema.Schema)}

func (s *schemaSet) get(schema *Schema) (*jsonschema.Schema, error) {
	s.mu.RLock()
	compiled, ok := s.compiled[schema.Name]
	s.mu.RUnlock()
	if ok {
		return compiled, nil
	}

	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(def))
	if err != nil {
		return nil, err
	}

	url := "mem://schemas/" + schema.Name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	if compiled, err = c.Compile(url); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.compiled[schema.Name] = compiled
	s.mu.Unlock()
	return compiled, nil
}

// checkOutput 各 Provider 返回前的统一检查：
// 输出为空、结构化输出被截断、不满足 Schema 都视为失败
func checkOutput(req Request, content json.RawMessage, truncated bool) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return &ErrInvalidResponse{Err: errors.New("empty content")}
	}
	if req.Schema == nil {
		return nil
	}
	if truncated {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return ValidateResponse(req.Schema, content)
}

// ValidateResponse 校验原始 JSON，失败返回 *ErrInvalidResponse。schema 为 nil 时不做检查
func ValidateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("decode %s output: %w", schema.Name, err)}
	}

	compiled, err := schemas.get(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema %s: %w", schema.Name, err)}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: err}
	}
	return nil
}
