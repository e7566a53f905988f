package models

import "time"

// SupportMessage 客服消息，按 user_id 归为一个会话，FromAdmin 区分方向。
// 只追加，不修改不删除。
type SupportMessage struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_support_user_id" json:"user_id"`
	Username  string    `gorm:"column:username;size:255" json:"username"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	FromAdmin bool      `gorm:"column:from_admin;not null;default:false" json:"from_admin"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (SupportMessage) TableName() string {
	return "support_messages"
}
