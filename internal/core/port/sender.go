package port

import "context"

// Bot is the reference handlers use to talk back to the chat service.
type Bot interface {
	// Name returns the login name of the bot account.
	Name() string
	// Say sends a plain text message to the given channel.
	Say(ctx context.Context, channel string, text string) error
}
