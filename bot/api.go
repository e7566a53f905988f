package bot

import (
	"Meadow/config"
	"Meadow/pkg/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// API 是 *tgbotapi.BotAPI 中用到的那部分，方便测试替换
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// NewAPI 没有 token 无法工作，直接退出
func NewAPI(conf *config.Config) API {
	if conf.Bot == nil || conf.Bot.Token == "" {
		log.L.Fatal("bot token is required")
	}
	api, err := tgbotapi.NewBotAPI(conf.Bot.Token)
	if err != nil {
		log.L.Fatal("failed to create bot api", zap.Error(err))
	}
	log.L.Info("bot authorized", zap.String("username", api.Self.UserName))
	return api
}
