package service

import (
	"context"
	"encoding/json"
	"errors"

	"Meadow/dao"
	"Meadow/models"
	"Meadow/pkg/snowflake"
	"Meadow/types"

	"gorm.io/gorm"
)

type OrderService struct {
	OrderDAO    *dao.Order
	PurchaseDAO *dao.Purchase
}

func NewOrderService(orderDAO *dao.Order, purchaseDAO *dao.Purchase) *OrderService {
	return &OrderService{
		OrderDAO:    orderDAO,
		PurchaseDAO: purchaseDAO,
	}
}

func (s *OrderService) Create(ctx context.Context, req *types.CreateOrderRequest) (*models.Order, error) {
	payload, err := json.Marshal(req.Cart)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		OrderSn:    snowflake.GenOrderSn(),
		UserID:     req.UserID,
		Username:   req.Username,
		Products:   payload,
		TotalPrice: req.TotalPrice,
		Status:     models.OrderStatusPending,
	}
	if err := s.OrderDAO.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.OrderDAO.FindById(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return order, err
}

func (s *OrderService) ListRecent(ctx context.Context, limit int) ([]models.Order, error) {
	return s.OrderDAO.ListRecent(ctx, limit)
}

// MarkInProgress 状态不回退
func (s *OrderService) MarkInProgress(ctx context.Context, orderID int64) error {
	return s.OrderDAO.MarkInProgress(ctx, orderID)
}

// Complete 完成订单并记一条购买记录，重复完成不会重复记录
func (s *OrderService) Complete(ctx context.Context, orderID int64) (*models.Order, error) {
	order, err := s.OrderDAO.Complete(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return order, err
}

func (s *OrderService) PurchaseHistory(ctx context.Context, userID int64) ([]dao.PurchaseRecord, error) {
	return s.PurchaseDAO.HistoryByUser(ctx, userID)
}
