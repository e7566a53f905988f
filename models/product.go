package models

import "time"

// Product 对应数据库中的 products 表
type Product struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"size:255;not null;column:name" json:"name"`
	Category    string    `gorm:"size:255;default:'';column:category" json:"category"`
	Price       int64     `gorm:"not null;default:0;column:price" json:"price"` // 单位：最小货币单位
	Description string    `gorm:"type:text;column:description" json:"description"`
	Image       string    `gorm:"size:512;default:'';column:image" json:"image"` // 图片文件名，空表示无图
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
