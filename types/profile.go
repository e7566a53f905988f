package types

import "encoding/json"

type ProfilePurchase struct {
	Products   json.RawMessage `json:"products"`
	TotalPrice int64           `json:"total_price"`
	Timestamp  string          `json:"timestamp"`
}

type ProfileResponse struct {
	Username  string            `json:"username"`
	Purchases []ProfilePurchase `json:"purchases"`
}
