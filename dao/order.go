package dao

import (
	"context"

	"Meadow/models"

	"gorm.io/gorm"
)

type Order struct {
	Repo[models.Order]
}

func NewOrder(db *gorm.DB) *Order {
	return &Order{
		Repo: NewRepo[models.Order](db),
	}
}

func (o *Order) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := o.Db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}

// MarkInProgress 只从 pending 推进，其它状态不动
func (o *Order) MarkInProgress(ctx context.Context, orderID int64) error {
	return o.Db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Update("status", models.OrderStatusInProgress).Error
}

// Complete 状态推进与购买记录写入放在同一个事务里，
// 已完成的订单不会重复记购买。
func (o *Order) Complete(ctx context.Context, orderID int64) (*models.Order, error) {
	var order models.Order
	err := o.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			return err
		}
		if order.Status == models.OrderStatusCompleted {
			return nil
		}
		if err := tx.Model(&models.Order{}).
			Where("id = ?", orderID).
			Update("status", models.OrderStatusCompleted).Error; err != nil {
			return err
		}
		order.Status = models.OrderStatusCompleted
		return tx.Create(&models.Purchase{
			UserID:  order.UserID,
			OrderID: order.ID,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}
