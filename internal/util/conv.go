package util

// StringPtr 空字符串返回 nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue 解引用，nil 返回空字符串
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
