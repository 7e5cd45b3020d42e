package handler

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

type Classifier interface {
	IsCommand(r domain.Response) bool
	Parse(message string) domain.Invocation
}

type Injector interface {
	InjectAll(instance any, user domain.User, channel domain.Channel, bot port.Bot) error
}

type CommandParams struct {
	Registry port.CommandRegistry
	Provider port.InstanceProvider
	Injector Injector
	Parser   Classifier
	Bot      port.Bot
	// Recorder is notified after every successful invocation. Optional.
	Recorder port.UsageRecorder
	// Timeout bounds a single invocation. Zero disables the deadline.
	Timeout time.Duration
	// Strict rejects commands carrying more tokens than the method declares.
	Strict bool
}

// Command dispatches inbound chat events to registered command handlers.
type Command struct {
	registry port.CommandRegistry
	provider port.InstanceProvider
	injector Injector
	parser   Classifier
	bot      port.Bot
	recorder port.UsageRecorder
	timeout  time.Duration
	strict   bool
}

var ErrMissingDependency = errors.New("command handler dependency missing")

func NewCommand(p CommandParams) (*Command, error) {
	switch {
	case p.Registry == nil:
		return nil, fmt.Errorf("%w: registry", ErrMissingDependency)
	case p.Provider == nil:
		return nil, fmt.Errorf("%w: instance provider", ErrMissingDependency)
	case p.Injector == nil:
		return nil, fmt.Errorf("%w: injector", ErrMissingDependency)
	case p.Parser == nil:
		return nil, fmt.Errorf("%w: parser", ErrMissingDependency)
	case p.Bot == nil:
		return nil, fmt.Errorf("%w: bot", ErrMissingDependency)
	}

	return &Command{
		registry: p.Registry,
		provider: p.Provider,
		injector: p.Injector,
		parser:   p.Parser,
		bot:      p.Bot,
		recorder: p.Recorder,
		timeout:  p.Timeout,
		strict:   p.Strict,
	}, nil
}

// Listen subscribes to the source and dispatches every event concurrently.
// It returns once the stream is closed or ctx is done and all in-flight
// dispatches have finished.
func (c *Command) Listen(ctx context.Context, source port.MessageSource) error {
	events, err := source.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to subscribe to message source: %w", err)
	}

	var wg conc.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("context done, waiting for in-flight commands")
			return nil
		case event, ok := <-events:
			if !ok {
				log.Debug().Msg("message source closed, waiting for in-flight commands")
				return nil
			}

			wg.Go(func() {
				c.Handle(ctx, event)
			})
		}
	}
}

// Handle dispatches a single event. Failures are logged and never propagated.
func (c *Command) Handle(ctx context.Context, event domain.Response) {
	var (
		err error
		pc  panics.Catcher
	)

	pc.Try(func() {
		err = c.Dispatch(ctx, event)
	})
	if r := pc.Recovered(); r != nil {
		err = fmt.Errorf("command handler panicked: %w", r.AsError())
	}

	if err != nil {
		log.Err(err).
			Str("channel", event.Channel).
			Str("user", event.Name).
			Str("message", event.Message).
			Msg("failed to dispatch command")
	}
}

// Dispatch runs classification, lookup, resolution, injection and invocation
// for one event. Non-commands and unknown commands return nil.
func (c *Command) Dispatch(ctx context.Context, event domain.Response) error {
	if !c.parser.IsCommand(event) {
		return nil
	}

	invocation := c.parser.Parse(event.Message)

	descriptor, ok := c.registry.Get(invocation.Key)
	if !ok {
		log.Debug().Str("command", invocation.Key).Msg("no handler for command")
		return nil
	}

	id, err := uuid.NewV4()
	if err != nil {
		log.Debug().Err(err).Str("command", invocation.Key).Msg("failed to generate invocation id")
	} else {
		invocation.ID = id.String()
	}

	l := log.With().
		Str("invocation", invocation.ID).
		Str("command", invocation.Key).
		Str("handler", descriptor.Handler).
		Str("channel", event.Channel).
		Logger()

	l.Info().Str("user", event.Name).Str("message", event.Message).Msg("executing command")

	instance, err := c.provider.Resolve(descriptor.Handler)
	if err != nil {
		return err
	}

	err = c.injector.InjectAll(instance, event.User(), event.ChannelRef(), c.bot)
	if err != nil {
		return err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	err = descriptor.Call(ctx, instance, invocation.Parameters, c.strict)
	if err != nil {
		return fmt.Errorf("command %s failed: %w", invocation.Key, err)
	}

	l.Debug().Msg("command finished")

	if c.recorder != nil {
		c.recorder.Record(invocation.Key)
	}

	return nil
}
