package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrProblemNotFound    = errors.New("题目不存在")
	ErrStepNotFound       = errors.New("未找到选中的步骤")
	ErrConditionRequired  = errors.New("未选中条件")
	ErrInvalidSteps       = errors.New("步骤 id 不能为空且不能重复")
	ErrInvalidHintMode    = errors.New("不支持的提示模式")
	ErrStorageUnavailable = errors.New("数据库不可用")
	ErrEmptyModelOutput   = errors.New("LLM 未返回内容")
	ErrNoValidQuestions   = errors.New("LLM 未返回有效的引导问题")
)
