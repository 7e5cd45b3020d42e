package command

import (
	"cmdbot/internal/core/port"
	"cmdbot/internal/core/service"
	"context"
)

// Builtins holds the collaborators the built-in handlers need.
type Builtins struct {
	Prefix  string
	Tracker service.Tracker
	// Generator enables the ask command when set.
	Generator port.TextGenerator
	// ListCommands enables the commands handler. It is only called at dispatch
	// time, so it may read a registry that is built after registration.
	ListCommands func() []string
}

func RegisterBuiltins(b *Builder, deps Builtins) {
	Register(b, "ping", NewPing, Method[*Ping]{
		Key:  "ping",
		Name: "Pong",
		Run: func(h *Ping, ctx context.Context, _ []string) error {
			return h.Pong(ctx)
		},
	})

	Register(b, "echo", NewEcho,
		Method[*Echo]{
			Key:    "echo",
			Name:   "Echo",
			Params: 1,
			Run: func(h *Echo, ctx context.Context, params []string) error {
				return h.Echo(ctx, params[0])
			},
		},
		Method[*Echo]{
			Key:      "say",
			Name:     "Say",
			Params:   1,
			Variadic: true,
			Run: func(h *Echo, ctx context.Context, params []string) error {
				return h.Say(ctx, params)
			},
		},
	)

	Register(b, "debug", NewDebug, Method[*Debug]{
		Key:  "debug",
		Name: "Stats",
		Run: func(h *Debug, ctx context.Context, _ []string) error {
			return h.Stats(ctx)
		},
	})

	if deps.ListCommands != nil {
		Register(b, "commands", func() *Commands { return NewCommands(deps.ListCommands, deps.Prefix) },
			Method[*Commands]{
				Key:  "commands",
				Name: "List",
				Run: func(h *Commands, ctx context.Context, _ []string) error {
					return h.List(ctx)
				},
			})
	}

	if deps.Tracker != nil {
		Register(b, "uses", func() *Uses { return NewUses(deps.Tracker) }, Method[*Uses]{
			Key:    "uses",
			Name:   "Show",
			Params: 1,
			Run: func(h *Uses, ctx context.Context, params []string) error {
				return h.Show(ctx, deps.Prefix, params[0])
			},
		})
	}

	if deps.Generator != nil {
		Register(b, "ask", func() *Ask { return NewAsk(deps.Generator) }, Method[*Ask]{
			Key:      "ask",
			Name:     "Ask",
			Params:   1,
			Variadic: true,
			Run: func(h *Ask, ctx context.Context, params []string) error {
				return h.Ask(ctx, params)
			},
		})
	}
}
