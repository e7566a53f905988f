package dao

import (
	"context"

	"Meadow/models"

	"gorm.io/gorm"
)

type SupportMessage struct {
	Repo[models.SupportMessage]
}

func NewSupportMessage(db *gorm.DB) *SupportMessage {
	return &SupportMessage{
		Repo: NewRepo[models.SupportMessage](db),
	}
}

// HistoryByUser 按时间正序返回某个用户的完整会话
func (s *SupportMessage) HistoryByUser(ctx context.Context, userID int64) ([]models.SupportMessage, error) {
	var msgs []models.SupportMessage
	err := s.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&msgs).Error
	return msgs, err
}
