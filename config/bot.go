package config

// Bot Telegram 机器人配置。ExternalURL 为空时走长轮询。
type Bot struct {
	Token       string  `json:"token" yaml:"token"`
	AdminIDs    []int64 `json:"admin_ids" yaml:"admin_ids"`
	ExternalURL string  `json:"external_url" yaml:"external_url"`
}

// IsAdmin 管理员白名单
func (b *Bot) IsAdmin(userID int64) bool {
	for _, id := range b.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
