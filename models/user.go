package models

import (
	"time"
)

// Role 用户角色，闭合枚举
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleDeveloper  Role = "DEVELOPER"
)

// User 用户模型
type User struct {
	ID        string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	FirstName string     `gorm:"type:varchar(100)" json:"firstName"`
	LastName  string     `gorm:"type:varchar(100)" json:"lastName"`
	Email     string     `gorm:"type:varchar(100)" json:"email"`
	Role      Role       `gorm:"type:varchar(30);default:USER" json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func (u *User) GetDisplayName() string {
	if u.FirstName != "" || u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	return u.Email
}

// UserBrief 最小用户信息，用于任务完成人关联查询（只暴露ID和姓名）
type UserBrief struct {
	ID        string `gorm:"type:varchar(50);primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(100)" json:"firstName"`
	LastName  string `gorm:"type:varchar(100)" json:"lastName"`
}

func (UserBrief) TableName() string {
	return "users"
}
