package command

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Greeter struct {
	Base
	greeted []string
}

type MockRegistrar struct {
	names []string
	added map[string]port.Factory
}

func (m *MockRegistrar) TryAddTransient(name string, factory port.Factory) bool {
	if m.added == nil {
		m.added = make(map[string]port.Factory)
	}
	m.names = append(m.names, name)
	m.added[name] = factory
	return true
}

func greetMethod(key string, params int) Method[*Greeter] {
	return Method[*Greeter]{
		Key:    key,
		Name:   "Greet",
		Params: params,
		Run: func(h *Greeter, _ context.Context, p []string) error {
			h.greeted = append(h.greeted, p...)
			return nil
		},
	}
}

func TestBuild(t *testing.T) {
	b := NewBuilder()
	Register(b, "greeter", func() *Greeter { return &Greeter{} }, greetMethod("greet", 1), greetMethod("hi", 0))
	Register(b, "ping", NewPing, Method[*Ping]{Key: "ping", Name: "Pong"})

	registrar := &MockRegistrar{}
	reg, err := b.Build(registrar)
	require.NoError(t, err)

	assert.Len(t, reg.commands, 3)
	assert.Equal(t, []string{"greeter", "ping"}, registrar.names)

	d, ok := reg.Get("greet")
	require.True(t, ok)
	assert.Equal(t, "greet", d.Key)
	assert.Equal(t, "greeter", d.Handler)
	assert.Equal(t, "Greet", d.Method)
	assert.Equal(t, 1, d.Params)

	instance, err := registrar.added["greeter"]()
	require.NoError(t, err)
	assert.IsType(t, &Greeter{}, instance)
}

func TestBuildDuplicateAcrossHandlers(t *testing.T) {
	b := NewBuilder()
	Register(b, "greeter", func() *Greeter { return &Greeter{} }, greetMethod("ping", 0))
	Register(b, "ping", NewPing, Method[*Ping]{Key: "ping", Name: "Pong"})

	registrar := &MockRegistrar{}
	reg, err := b.Build(registrar)

	require.ErrorIs(t, err, domain.ErrDuplicateCommand)
	assert.ErrorContains(t, err, `"ping"`)
	assert.ErrorContains(t, err, "ping.Pong")
	assert.Nil(t, reg)
	assert.Empty(t, registrar.names)
}

func TestBuildDuplicateWithinHandler(t *testing.T) {
	b := NewBuilder()
	Register(b, "greeter", func() *Greeter { return &Greeter{} }, greetMethod("greet", 0), greetMethod("greet", 1))

	_, err := b.Build(&MockRegistrar{})
	require.ErrorIs(t, err, domain.ErrDuplicateCommand)
}

func TestBuildDuplicateHandlerName(t *testing.T) {
	b := NewBuilder()
	Register(b, "shared", NewPing, Method[*Ping]{Key: "ping", Name: "Pong"})
	Register(b, "shared", NewEcho, Method[*Echo]{Key: "echo", Name: "Echo", Params: 1})

	registrar := &MockRegistrar{}
	reg, err := b.Build(registrar)

	require.ErrorIs(t, err, domain.ErrDuplicateHandler)
	assert.ErrorContains(t, err, `"shared"`)
	assert.Nil(t, reg)
	assert.Empty(t, registrar.names)
}

func TestGetCommandNotFound(t *testing.T) {
	reg, err := NewBuilder().Build(&MockRegistrar{})
	require.NoError(t, err)

	_, ok := reg.Get("foo")
	assert.False(t, ok)

	_, ok = reg.Get("")
	assert.False(t, ok)
}

func TestDescriptorInvokesHandler(t *testing.T) {
	b := NewBuilder()
	Register(b, "greeter", func() *Greeter { return &Greeter{} }, greetMethod("greet", 1))

	reg, err := b.Build(&MockRegistrar{})
	require.NoError(t, err)

	d, ok := reg.Get("greet")
	require.True(t, ok)

	g := &Greeter{}
	err = d.Call(t.Context(), g, []string{"alice", "bob"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice"}, g.greeted)

	err = d.Call(t.Context(), &Ping{}, []string{"alice"}, false)
	require.ErrorIs(t, err, domain.ErrResolution)
}

func TestListCommands(t *testing.T) {
	b := NewBuilder()
	Register(b, "greeter", func() *Greeter { return &Greeter{} }, greetMethod("foo", 0), greetMethod("bar", 0))

	reg, err := b.Build(&MockRegistrar{})
	require.NoError(t, err)

	assert.Equal(t, []string{"bar", "foo"}, reg.ListCommands())
}

func TestRegisterBuiltins(t *testing.T) {
	tests := []struct {
		name string
		deps Builtins
		want []string
	}{
		{
			name: "minimal",
			deps: Builtins{Prefix: "!"},
			want: []string{"debug", "echo", "ping", "say"},
		},
		{
			name: "all optional handlers",
			deps: Builtins{
				Prefix:       "!",
				Tracker:      &MockTracker{},
				Generator:    &MockGenerator{},
				ListCommands: func() []string { return nil },
			},
			want: []string{"ask", "commands", "debug", "echo", "ping", "say", "uses"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			RegisterBuiltins(b, tt.deps)

			reg, err := b.Build(&MockRegistrar{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, reg.ListCommands())
		})
	}
}
