package models

import "time"

// Quote 报价单模型（任务列表的父级之一）
type Quote struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Status    string    `gorm:"type:varchar(30);default:draft" json:"status"`
	ClientID  string    `gorm:"type:varchar(50);index" json:"clientId"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClientAccount 客户门户账号模型（任务列表的另一父级）
type ClientAccount struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	CompanyName string    `gorm:"type:varchar(200)" json:"companyName"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
}
