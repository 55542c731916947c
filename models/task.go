package models

import (
	"time"
)

// ParentKind 任务所属父级类型（报价单或客户门户账号，二选一）
type ParentKind string

const (
	ParentQuote  ParentKind = "quote"
	ParentClient ParentKind = "client"
)

// TaskScope 任务列表的归属范围
type TaskScope struct {
	Kind     ParentKind
	ParentID string
}

// PortalTask 客户门户项目任务模型
type PortalTask struct {
	ID              string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	ParentKind      ParentKind `gorm:"type:varchar(20);index:idx_portal_tasks_scope" json:"-"`
	ParentID        string     `gorm:"type:varchar(50);index:idx_portal_tasks_scope" json:"parentId"`
	Title           string     `gorm:"type:varchar(200)" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	SortOrder       int        `gorm:"default:0" json:"order"`
	IsCompleted     bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt     *time.Time `json:"completedAt"`
	CompletedBy     *string    `gorm:"type:varchar(50)" json:"completedBy"`
	CompletedByUser *UserBrief `gorm:"foreignKey:CompletedBy" json:"completedByUser,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
