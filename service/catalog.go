package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"Meadow/config"
	"Meadow/dao"
	"Meadow/models"
	"Meadow/pkg/log"
	"Meadow/types"

	"go.uber.org/zap"
)

// CatalogService 维护目录投影：products 表的反范式 JSON 快照，
// 即 /api/products 的响应体，也写到 web 目录供静态站点读取。
type CatalogService struct {
	Config     *config.Config
	ProductDAO *dao.Product
}

func NewCatalogService(conf *config.Config, productDAO *dao.Product) *CatalogService {
	return &CatalogService{
		Config:     conf,
		ProductDAO: productDAO,
	}
}

// Refresh 全量重算投影并整体覆盖写文件，幂等。
func (s *CatalogService) Refresh(ctx context.Context) ([]types.CatalogItem, error) {
	rows, err := s.ProductDAO.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]types.CatalogItem, 0, len(rows))
	for _, r := range rows {
		image := ""
		if r.Image != "" {
			image = "images/" + r.Image
		}
		items = append(items, types.CatalogItem{
			ID:          r.ID,
			Name:        r.Name,
			Category:    r.Category,
			Price:       r.Price,
			Description: r.Description,
			Image:       image,
		})
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}

	target := s.Config.Web.DataFile()
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return nil, err
	}
	return items, nil
}

// Seed 商品表为空且配置了种子文件时做一次性导入
func (s *CatalogService) Seed(ctx context.Context) error {
	seedFile := s.Config.Web.SeedFile
	if seedFile == "" {
		return nil
	}

	count, err := s.ProductDAO.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(seedFile)
	if err != nil {
		log.L.Warn("seed file not readable, skipping", zap.String("file", seedFile), zap.Error(err))
		return nil
	}

	var items []types.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return err
	}

	for _, item := range items {
		product := &models.Product{
			Name:        item.Name,
			Category:    item.Category,
			Price:       item.Price,
			Description: item.Description,
			Image:       strings.TrimPrefix(item.Image, "images/"),
		}
		if err := s.ProductDAO.Create(ctx, product); err != nil {
			return err
		}
	}
	log.L.Info("seeded products", zap.Int("count", len(items)))
	return nil
}
