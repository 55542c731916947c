package models

import "errors"

// 业务错误类型，controller据此映射HTTP状态码：
// ErrNotFound -> 404，ErrTitleRequired等校验错误 -> 400，其余 -> 500
var (
	ErrNotFound      = errors.New("记录不存在")
	ErrTitleRequired = errors.New("标题不能为空")
	ErrPinMismatch   = errors.New("PIN码错误")
)
