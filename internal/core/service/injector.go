package service

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"fmt"
)

// Injector binds per-invocation context onto handler instances through the
// receiver interfaces in port.
type Injector struct{}

func NewInjector() *Injector {
	return &Injector{}
}

func (i *Injector) Inject(instance any, value any) error {
	switch v := value.(type) {
	case domain.User:
		r, ok := instance.(port.UserReceiver)
		if !ok {
			return bindingError(instance, "user")
		}
		r.SetUser(v)
	case domain.Channel:
		r, ok := instance.(port.ChannelReceiver)
		if !ok {
			return bindingError(instance, "channel")
		}
		r.SetChannel(v)
	case port.Bot:
		r, ok := instance.(port.BotReceiver)
		if !ok {
			return bindingError(instance, "bot")
		}
		r.SetBot(v)
	case nil:
		return fmt.Errorf("%w: nil context value for %T", domain.ErrContextBinding, instance)
	default:
		return fmt.Errorf("%w: unsupported context kind %T", domain.ErrContextBinding, value)
	}

	return nil
}

// InjectAll binds user, bot and channel in that order and stops at the first failure.
func (i *Injector) InjectAll(instance any, user domain.User, channel domain.Channel, bot port.Bot) error {
	for _, value := range []any{user, bot, channel} {
		if err := i.Inject(instance, value); err != nil {
			return err
		}
	}

	return nil
}

func bindingError(instance any, kind string) error {
	return fmt.Errorf("%w: %T has no %s field", domain.ErrContextBinding, instance, kind)
}
