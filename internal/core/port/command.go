package port

import "cmdbot/internal/core/domain"

type CommandRegistry interface {
	// Get returns the descriptor registered for a command key.
	Get(key string) (domain.Descriptor, bool)
	// ListCommands returns all registered command keys.
	ListCommands() []string
}

// Factory constructs a handler instance.
type Factory func() (any, error)

type InstanceRegistrar interface {
	// TryAddTransient registers a factory for a handler type unless one is already present.
	TryAddTransient(name string, factory Factory) bool
}

type InstanceProvider interface {
	// Resolve returns a handler instance suitable for one invocation.
	Resolve(name string) (any, error)
}

type ContextInjector interface {
	// Inject assigns a single context value (user, channel or bot) onto a handler instance.
	Inject(instance any, value any) error
}

type UserReceiver interface {
	SetUser(user domain.User)
}

type ChannelReceiver interface {
	SetChannel(channel domain.Channel)
}

type BotReceiver interface {
	SetBot(bot Bot)
}

// Receiver is implemented by every handler that can take per-invocation context.
type Receiver interface {
	UserReceiver
	ChannelReceiver
	BotReceiver
}

type UsageRecorder interface {
	Record(key string)
}
