package models

import "strings"

// CreateTaskRequest 创建任务请求结构体
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate 校验必填字段
func (r *CreateTaskRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrTitleRequired
	}
	return nil
}

// UpdateTaskRequest 更新任务请求结构体，nil字段表示不修改
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// ToggleModuleRequest 模块开关请求结构体
type ToggleModuleRequest struct {
	IsEnabled bool `json:"isEnabled"`
}

// PinUnlockRequest PIN解锁请求结构体
type PinUnlockRequest struct {
	Pin string `json:"pin" binding:"required"`
}

// CreateAnnouncementRequest 发布公告请求结构体
type CreateAnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}
