package models

import "time"

// Purchase 购买记录，订单完成时写入一条，只追加。
type Purchase struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_purchases_user_id" json:"user_id"`
	OrderID   int64     `gorm:"column:order_id;not null;index:idx_purchases_order_id" json:"order_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Purchase) TableName() string {
	return "purchases"
}
