package service

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/panics"
)

type Lifetime int

const (
	Transient Lifetime = iota
	Singleton
)

type registration struct {
	factory  port.Factory
	lifetime Lifetime

	once     sync.Once
	instance any
	err      error
}

// Container resolves handler instances by handler type name. Transient
// registrations build a fresh instance per call, singletons are built once
// and shared.
type Container struct {
	mutex         sync.RWMutex
	registrations map[string]*registration
}

func NewContainer() *Container {
	return &Container{registrations: make(map[string]*registration)}
}

func (c *Container) TryAddTransient(name string, factory port.Factory) bool {
	return c.add(name, factory, Transient, false)
}

// AddSingleton registers or replaces a shared instance factory. The shared
// instance may be resolved by concurrent invocations, so Resolve rejects it
// when it accepts per-invocation context through any of the port receivers.
func (c *Container) AddSingleton(name string, factory port.Factory) {
	c.add(name, factory, Singleton, true)
}

func (c *Container) add(name string, factory port.Factory, lifetime Lifetime, replace bool) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.registrations[name]; ok && !replace {
		log.Debug().Str("handler", name).Msg("handler already registered, keeping existing registration")
		return false
	}

	c.registrations[name] = &registration{factory: factory, lifetime: lifetime}
	return true
}

func (c *Container) Resolve(name string) (any, error) {
	c.mutex.RLock()
	reg, ok := c.registrations[name]
	c.mutex.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s is not registered", domain.ErrResolution, name)
	}

	if reg.lifetime == Singleton {
		reg.once.Do(func() {
			reg.instance, reg.err = construct(name, reg.factory)
			if reg.err == nil && acceptsContext(reg.instance) {
				reg.instance, reg.err = nil, fmt.Errorf("%w: singleton %s accepts per-invocation context, register it as transient",
					domain.ErrResolution, name)
			}
		})
		return reg.instance, reg.err
	}

	return construct(name, reg.factory)
}

func construct(name string, factory port.Factory) (any, error) {
	var (
		instance any
		err      error
		pc       panics.Catcher
	)

	pc.Try(func() {
		instance, err = factory()
	})
	if r := pc.Recovered(); r != nil {
		return nil, fmt.Errorf("%w: %s factory panicked: %w", domain.ErrResolution, name, r.AsError())
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrResolution, name, err)
	}

	if instance == nil {
		return nil, fmt.Errorf("%w: %s factory returned nil", domain.ErrResolution, name)
	}

	return instance, nil
}

func acceptsContext(instance any) bool {
	switch instance.(type) {
	case port.UserReceiver, port.ChannelReceiver, port.BotReceiver:
		return true
	}
	return false
}
