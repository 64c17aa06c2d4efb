// Package bot adapts Telegram long polling to the session handler:
// it decodes incoming messages into commands and renders replies back
// as messages, keyboards and document uploads.
package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mohammaddehghani/telegramrepbot/internal/logging"
	"github.com/mohammaddehghani/telegramrepbot/internal/server/session"
)

// Handler processes one decoded command and returns the reply to send.
type Handler interface {
	Handle(ctx context.Context, cmd session.Command) session.Reply
}

type Bot struct {
	api         *tgbotapi.BotAPI
	handler     Handler
	logger      logging.Logger
	pollTimeout int
}

// New connects to the Telegram API with the given token.
func New(token string, pollTimeoutSeconds int, handler Handler, logger logging.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram error: %w", err)
	}
	return &Bot{api: api, handler: handler, logger: logger, pollTimeout: pollTimeoutSeconds}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info(ctx, "bot started", "username", b.api.Self.UserName)

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info(ctx, "bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			b.process(ctx, update.Message)
		}
	}
}

func (b *Bot) process(ctx context.Context, msg *tgbotapi.Message) {
	cmd := classify(msg)
	reply := b.handler.Handle(ctx, cmd)
	b.send(ctx, msg.Chat.ID, reply)
}

func (b *Bot) send(ctx context.Context, chatID int64, reply session.Reply) {
	markup := keyboard(reply.Menu)

	for i, text := range reply.Texts {
		out := tgbotapi.NewMessage(chatID, text)
		// the keyboard rides on the last text message
		if markup != nil && i == len(reply.Texts)-1 {
			out.ReplyMarkup = markup
		}
		if _, err := b.api.Send(out); err != nil {
			b.logger.Error(ctx, "send failed", "chat", chatID, "err", err)
		}
	}

	for _, att := range reply.Attachments {
		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: att.Name, Bytes: att.Content})
		if _, err := b.api.Send(doc); err != nil {
			b.logger.Error(ctx, "document send failed", "chat", chatID, "name", att.Name, "err", err)
		}
	}
}
