package notifierimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mirrorworks/instamirror/internal/notifier"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

// New builds the Telegram notifier. Without a configured token it degrades to
// log-only, so local setups run without a bot.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("Notifier")

	if opts.Config.Telegram.Token == "" {
		log.Info("Telegram notifier disabled, no token configured")
		return &TelegramImpl{logger: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "error", err)
		return nil, err
	}

	return &TelegramImpl{
		bot:    bot,
		chatID: opts.Config.Telegram.ChatID,
		logger: log,
	}, nil
}

var _ notifier.Client = (*TelegramImpl)(nil)

func (n *TelegramImpl) ReconnectRequired(shop, reason string) {
	n.send(fmt.Sprintf("Reconnect required for %s: %s", shop, reason))
}

func (n *TelegramImpl) RunFailed(shop string, err error) {
	n.send(fmt.Sprintf("Sync run failed for %s: %v", shop, err))
}

func (n *TelegramImpl) send(text string) {
	if n.bot == nil {
		n.logger.Info("Notification suppressed", "text", text)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("Error sending notification", "chat_id", n.chatID, "error", err)
	}
}
