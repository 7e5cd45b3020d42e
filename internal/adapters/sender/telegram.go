package sender

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

type TelegramBot interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

const TelegramMessageLimit = 4096

// Telegram is the bot reference for Telegram chats. Channel names are chat IDs.
type Telegram struct {
	bot     TelegramBot
	name    string
	limiter *rate.Limiter
}

// NewTelegram creates a sender that sends at most perSecond messages per
// second. A non-positive rate disables throttling.
func NewTelegram(b TelegramBot, name string, perSecond float64) *Telegram {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}

	return &Telegram{
		bot:     b,
		name:    name,
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (s *Telegram) Name() string {
	return s.name
}

func (s *Telegram) Say(ctx context.Context, channel string, text string) error {
	chatID, err := strconv.ParseInt(channel, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram chat id %q: %w", channel, err)
	}

	for _, chunk := range chunkText(text, TelegramMessageLimit) {
		if err := s.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("send throttled: %w", err)
		}

		_, err = s.bot.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   chunk,
		})
		if err != nil {
			log.Error().Err(err).Int64("chatID", chatID).Msg("failed to send message")
			return err
		}
	}

	return nil
}

func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}

	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
