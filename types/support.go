package types

type SendSupportRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	Username string `json:"username"`
	Message  string `json:"message" binding:"required"`
}

type SupportHistoryItem struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	FromAdmin bool   `json:"from_admin"`
}

type SupportHistoryResponse struct {
	Messages []SupportHistoryItem `json:"messages"`
}
