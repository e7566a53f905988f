package dao

import (
	"context"
	"time"

	"Meadow/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Purchase struct {
	Repo[models.Purchase]
}

func NewPurchase(db *gorm.DB) *Purchase {
	return &Purchase{
		Repo: NewRepo[models.Purchase](db),
	}
}

// PurchaseRecord 购买历史行：购买时间 + 所属订单快照
type PurchaseRecord struct {
	Products   datatypes.JSON `json:"products"`
	TotalPrice int64          `json:"total_price"`
	CreatedAt  time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (p *Purchase) HistoryByUser(ctx context.Context, userID int64) ([]PurchaseRecord, error) {
	var records []PurchaseRecord
	err := p.Db.WithContext(ctx).
		Model(&models.Purchase{}).
		Select("orders.products, orders.total_price, purchases.created_at").
		Joins("join orders on orders.id = purchases.order_id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.created_at desc").
		Scan(&records).Error
	return records, err
}
