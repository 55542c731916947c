package models

import "time"

// Announcement 公告模型，客户端按固定间隔轮询
type Announcement struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedBy string    `gorm:"type:varchar(50)" json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
