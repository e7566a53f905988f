package dao

import (
	"context"

	"Meadow/models"

	"gorm.io/gorm"
)

type Product struct {
	Repo[models.Product]
}

func NewProduct(db *gorm.DB) *Product {
	return &Product{
		Repo: NewRepo[models.Product](db),
	}
}

// updatable 白名单：单字段编辑只允许这些列
var updatable = map[string]struct{}{
	"name":        {},
	"category":    {},
	"price":       {},
	"description": {},
	"image":       {},
}

func (p *Product) ListOrdered(ctx context.Context) ([]models.Product, error) {
	return p.Repo.FindAll(ctx, "id asc")
}

func (p *Product) UpdateField(ctx context.Context, productID int64, column string, value any) error {
	if _, ok := updatable[column]; !ok {
		return gorm.ErrInvalidField
	}
	return p.Db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Update(column, value).Error
}

// DeleteProduct 返回是否真的删了行，重复删除同一 id 不报错
func (p *Product) DeleteProduct(ctx context.Context, productID int64) (bool, error) {
	tx := p.Db.WithContext(ctx).Where("id = ?", productID).Delete(&models.Product{})
	return tx.RowsAffected > 0, tx.Error
}

func (p *Product) Count(ctx context.Context) (int64, error) {
	var count int64
	err := p.Db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}
