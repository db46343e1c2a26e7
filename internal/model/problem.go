package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Step 解题步骤，ID 形如 step-1
type Step struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Steps 有序步骤列表，以 JSON 文本持久化
type Steps []Step

func (s *Steps) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func (s Steps) Value() (driver.Value, error) {
	if s == nil {
		s = Steps{}
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// IndexOf 按 ID 查找步骤位置，找不到返回 -1
func (s Steps) IndexOf(id string) int {
	for i, step := range s {
		if step.ID == id {
			return i
		}
	}
	return -1
}

// Conditions 题目已知条件，允许为空
type Conditions []string

func (c *Conditions) Scan(value interface{}) error {
	return scanJSON(value, c)
}

func (c Conditions) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanJSON(value interface{}, dst interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// swagger:model Problem
type Problem struct {
	BaseModel
	UserID           uint       `gorm:"index;not null" json:"userId"`
	Title            *string    `gorm:"size:255" json:"title"`
	ProblemText      *string    `gorm:"type:text" json:"problemText"`
	ProblemTextEn    *string    `gorm:"type:text" json:"problemTextEn"`
	ProblemImageURL  *string    `gorm:"type:text" json:"problemImageUrl"`
	ProblemImageKey  *string    `gorm:"size:255" json:"problemImageKey"`
	SolutionImageURL *string    `gorm:"type:text" json:"solutionImageUrl"`
	SolutionImageKey *string    `gorm:"size:255" json:"solutionImageKey"`
	Steps            Steps      `gorm:"type:text;not null" json:"steps"`
	Conditions       Conditions `gorm:"type:text" json:"conditions"`
}

func (Problem) TableName() string {
	return "problems"
}
