package service

import "fmt"

// ValidationError 输入校验错误
// 消息中标明具体失败原因及涉及的食材/标签 ID，由 Handler 映射为 400 响应
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
