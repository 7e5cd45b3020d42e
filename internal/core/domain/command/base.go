package command

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"context"
	"errors"
)

var errNoBot = errors.New("no bot bound to handler")

// Base carries the per-invocation context. Handlers embed it by value.
type Base struct {
	user    domain.User
	channel domain.Channel
	bot     port.Bot
}

func (b *Base) SetUser(user domain.User) {
	b.user = user
}

func (b *Base) SetChannel(channel domain.Channel) {
	b.channel = channel
}

func (b *Base) SetBot(bot port.Bot) {
	b.bot = bot
}

func (b *Base) User() domain.User {
	return b.user
}

func (b *Base) Channel() domain.Channel {
	return b.channel
}

func (b *Base) Bot() port.Bot {
	return b.bot
}

// Reply sends text to the channel the command came from.
func (b *Base) Reply(ctx context.Context, text string) error {
	if b.bot == nil {
		return errNoBot
	}

	return b.bot.Say(ctx, b.channel.Name, text)
}
