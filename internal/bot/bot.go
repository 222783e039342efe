package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/undefined7887/ai2024-applied-python-hw2/pkg/utils"
)

// BotApp — транспортный слой: long polling Telegram и маршрутизация
// входящего текста в Dispatcher (команда или шаг активного мастера).
type BotApp struct {
	API        *tgbotapi.BotAPI
	dispatcher *Dispatcher
}

func NewBotApp(token string, dispatcher *Dispatcher) (*BotApp, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot api: %w", err)
	}

	return &BotApp{
		API:        botAPI,
		dispatcher: dispatcher,
	}, nil
}

// Run запускает цикл обработки обновлений. Сообщения обрабатываются в
// отдельных горутинах: сериализацию по пользователю обеспечивает Dispatcher,
// поэтому параллельные сообщения разных пользователей друг другу не мешают.
func (b *BotApp) Run() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.API.GetUpdatesChan(u)
	utils.Log.Info("🤖 Bot started")

	for update := range updates {
		if update.Message == nil || update.Message.From == nil || update.Message.Text == "" {
			continue
		}
		go b.handleMessage(update.Message)
	}
}

func (b *BotApp) handleMessage(msg *tgbotapi.Message) {
	userID := msg.From.ID
	text := msg.Text

	// Аудит команд
	if strings.HasPrefix(text, "/") {
		utils.Log.Infof("user id: %d, user name: %s, command: %s", userID, displayName(msg.From), text)
	}

	ctx := context.Background()

	var reply string
	if msg.IsCommand() {
		reply = b.dispatcher.HandleCommand(ctx, userID, msg.Command(), displayName(msg.From))
	} else {
		reply = b.dispatcher.HandleStepInput(ctx, userID, text)
	}

	b.sendText(msg.Chat.ID, reply)
}

func (b *BotApp) sendText(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := b.API.Send(msg); err != nil {
		utils.Log.Errorf("send message to chat %d: %v", chatID, err)
	}
}

func displayName(user *tgbotapi.User) string {
	if user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	return user.FirstName
}
