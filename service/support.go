package service

import (
	"context"

	"Meadow/dao"
	"Meadow/models"
	"Meadow/types"
)

type SupportService struct {
	SupportDAO *dao.SupportMessage
}

func NewSupportService(supportDAO *dao.SupportMessage) *SupportService {
	return &SupportService{SupportDAO: supportDAO}
}

// Append userID 始终是会话归属的用户，管理员回复也挂在目标用户名下
func (s *SupportService) Append(ctx context.Context, userID int64, username, message string, fromAdmin bool) (*models.SupportMessage, error) {
	msg := &models.SupportMessage{
		UserID:    userID,
		Username:  username,
		Message:   message,
		FromAdmin: fromAdmin,
	}
	if err := s.SupportDAO.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *SupportService) History(ctx context.Context, userID int64) ([]types.SupportHistoryItem, error) {
	rows, err := s.SupportDAO.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]types.SupportHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, types.SupportHistoryItem{
			Message:   row.Message,
			Timestamp: row.CreatedAt.Format(types.TimeLayout),
			FromAdmin: row.FromAdmin,
		})
	}
	return items, nil
}
