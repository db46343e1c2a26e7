package model

import "time"

// UserProgress 用户在单道题目上的学习计数，(user_id, problem_id) 唯一
type UserProgress struct {
	ID                  uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              string    `gorm:"size:64;not null;uniqueIndex:idx_user_problem" json:"userId"`
	ProblemID           uint      `gorm:"not null;uniqueIndex:idx_user_problem" json:"problemId"`
	ViewCount           int       `gorm:"not null;default:0" json:"viewCount"`
	HintCount           int       `gorm:"not null;default:0" json:"hintCount"`
	ConditionClickCount int       `gorm:"not null;default:0" json:"conditionClickCount"`
	StepsRevealed       int       `gorm:"not null;default:0" json:"stepsRevealed"`
	ViewedSolution      int       `gorm:"not null;default:0" json:"viewedSolution"`
	FirstViewedAt       time.Time `json:"firstViewedAt"`
	LastViewedAt        time.Time `json:"lastViewedAt"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

type ProgressEvent string

const (
	EventView           ProgressEvent = "view"
	EventHint           ProgressEvent = "hint"
	EventConditionClick ProgressEvent = "condition_click"
	EventStepsRevealed  ProgressEvent = "steps_revealed"
	EventSolutionView   ProgressEvent = "solution_view"
)

// ProgressStats 个人学习统计
type ProgressStats struct {
	TotalProblemsViewed    int64 `json:"totalProblemsViewed"`
	TotalHintsRequested    int64 `json:"totalHintsRequested"`
	TotalConditionsClicked int64 `json:"totalConditionsClicked"`
	TotalStepsRevealed     int64 `json:"totalStepsRevealed"`
	TotalSolutionsViewed   int64 `json:"totalSolutionsViewed"`
}
