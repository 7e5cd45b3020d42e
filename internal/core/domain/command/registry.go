package command

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"
)

// Method binds a command key to a method of handler type T.
type Method[T port.Receiver] struct {
	Key string
	// Name identifies the method in logs and errors.
	Name string
	// Params is the number of parameters the method consumes.
	Params int
	// Variadic methods receive every token, with Params as the minimum.
	Variadic bool
	Run      func(h T, ctx context.Context, params []string) error
}

type handlerEntry struct {
	name        string
	factory     port.Factory
	descriptors []domain.Descriptor
}

// Builder collects handler registrations before the registry is built.
type Builder struct {
	handlers []handlerEntry
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Register adds a handler type and its command methods to the builder.
func Register[T port.Receiver](b *Builder, name string, factory func() T, methods ...Method[T]) {
	entry := handlerEntry{
		name: name,
		factory: func() (any, error) {
			return factory(), nil
		},
	}

	for _, m := range methods {
		run := m.Run
		entry.descriptors = append(entry.descriptors, domain.Descriptor{
			Key:      m.Key,
			Handler:  name,
			Method:   m.Name,
			Params:   m.Params,
			Variadic: m.Variadic,
			Invoke: func(ctx context.Context, instance any, params []string) error {
				h, ok := instance.(T)
				if !ok {
					return fmt.Errorf("%w: %T is not a %s", domain.ErrResolution, instance, name)
				}
				return run(h, ctx, params)
			},
		})
	}

	b.handlers = append(b.handlers, entry)
}

// Build creates the registry and registers every handler type with the
// registrar. It fails on the first duplicate handler name or command key.
func (b *Builder) Build(registrar port.InstanceRegistrar) (*Registry, error) {
	commands := make(map[string]domain.Descriptor)
	handlers := make(map[string]struct{}, len(b.handlers))

	for _, h := range b.handlers {
		if _, ok := handlers[h.name]; ok {
			return nil, fmt.Errorf("%w: %q registered more than once", domain.ErrDuplicateHandler, h.name)
		}
		handlers[h.name] = struct{}{}

		for _, d := range h.descriptors {
			if existing, ok := commands[d.Key]; ok {
				return nil, fmt.Errorf("%w: %q on method %s.%s, already bound to %s.%s",
					domain.ErrDuplicateCommand, d.Key, d.Handler, d.Method, existing.Handler, existing.Method)
			}

			log.Info().Str("command", d.Key).Str("handler", d.Handler).Str("method", d.Method).
				Msg("adding command to registry")
			commands[d.Key] = d
		}
	}

	for _, h := range b.handlers {
		registrar.TryAddTransient(h.name, h.factory)
	}

	return &Registry{commands: commands}, nil
}

// Registry maps command keys to descriptors. It is immutable once built.
type Registry struct {
	commands map[string]domain.Descriptor
}

func (r *Registry) Get(key string) (domain.Descriptor, bool) {
	log.Trace().Str("command", key).Msg("fetching command from registry")

	d, ok := r.commands[key]
	return d, ok
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, 0, len(r.commands))
	for k := range r.commands {
		keys = append(keys, k)
	}

	slices.Sort(keys)
	return keys
}
