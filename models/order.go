package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
)

// Order 订单主表。Products 为下单时购物车的快照。
type Order struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderSn    string         `gorm:"column:order_sn;type:varchar(32);not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	UserID     int64          `gorm:"column:user_id;not null;index:idx_orders_user_id" json:"user_id"`
	Username   string         `gorm:"column:username;size:255" json:"username"`
	Products   datatypes.JSON `gorm:"column:products" json:"products"` // [{name, weight, price}]
	TotalPrice int64          `gorm:"column:total_price;not null;default:0" json:"total_price"`
	Status     string         `gorm:"column:status;type:varchar(16);not null;default:'pending';index:idx_orders_status" json:"status"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
