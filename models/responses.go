package models

// Progress 任务进度统计
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// TaskListResponse 任务列表响应结构体（任务 + 进度统计）
type TaskListResponse struct {
	Tasks    []PortalTask `json:"tasks"`
	Progress Progress     `json:"progress"`
}

// PinStatusResponse PIN门状态响应结构体
type PinStatusResponse struct {
	Enabled  bool `json:"enabled"`
	Unlocked bool `json:"unlocked"`
}

// UserResponse 用户响应结构体
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}

// UnreadResponse 未读计数响应结构体
type UnreadResponse struct {
	Unread int64 `json:"unread"`
}
