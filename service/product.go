package service

import (
	"context"
	"errors"

	"Meadow/dao"
	"Meadow/models"

	"gorm.io/gorm"
)

const defaultCategory = "Uncategorized"

type ProductService struct {
	ProductDAO *dao.Product
	Catalog    *CatalogService
}

func NewProductService(productDAO *dao.Product, catalog *CatalogService) *ProductService {
	return &ProductService{
		ProductDAO: productDAO,
		Catalog:    catalog,
	}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.ProductDAO.ListOrdered(ctx)
}

func (s *ProductService) Get(ctx context.Context, productID int64) (*models.Product, error) {
	product, err := s.ProductDAO.FindById(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return product, err
}

// CreateDraft 向导第一步就落库，后续步骤逐字段补齐
func (s *ProductService) CreateDraft(ctx context.Context, name string) (*models.Product, error) {
	product := &models.Product{
		Name:     name,
		Category: defaultCategory,
	}
	if err := s.ProductDAO.Create(ctx, product); err != nil {
		return nil, err
	}
	s.refresh(ctx)
	return product, nil
}

func (s *ProductService) UpdateField(ctx context.Context, productID int64, column string, value any) error {
	if err := s.ProductDAO.UpdateField(ctx, productID, column, value); err != nil {
		return err
	}
	s.refresh(ctx)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, productID int64) (bool, error) {
	deleted, err := s.ProductDAO.DeleteProduct(ctx, productID)
	if err != nil {
		return false, err
	}
	s.refresh(ctx)
	return deleted, nil
}

// 投影刷新失败不该挡住主流程
func (s *ProductService) refresh(ctx context.Context) {
	_, _ = s.Catalog.Refresh(ctx)
}
