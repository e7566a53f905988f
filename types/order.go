package types

type CartItem struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Price  int64   `json:"price"`
}

type CreateOrderRequest struct {
	UserID     int64      `json:"user_id" binding:"required"`
	Username   string     `json:"username"`
	Cart       []CartItem `json:"cart" binding:"required"`
	TotalPrice int64      `json:"total_price"`
}

type CreateOrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"order_id"`
}
