package domain

import (
	"context"
	"fmt"
)

// Invocation is a parsed command message. It lives for a single dispatch.
type Invocation struct {
	ID         string
	Key        string
	Parameters []string
}

// InvokeFunc calls a command method on a resolved handler instance.
type InvokeFunc func(ctx context.Context, instance any, params []string) error

// Descriptor describes one registered command method.
type Descriptor struct {
	Key     string
	Handler string
	Method  string
	Params  int
	// Variadic methods receive every token instead of exactly Params; Params is the minimum.
	Variadic bool
	Invoke   InvokeFunc
}

// Arguments returns the parameters a handler receives for the given tokens.
// Tokens beyond the declared count are dropped unless strict is set or the
// method is variadic.
func (d Descriptor) Arguments(tokens []string, strict bool) ([]string, error) {
	if len(tokens) < d.Params {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrParameterUnderflow, d.Key, d.Params, len(tokens))
	}

	if d.Variadic {
		return tokens, nil
	}

	if strict && len(tokens) > d.Params {
		return nil, fmt.Errorf("%w: %s wants %d, got %d", ErrParameterMismatch, d.Key, d.Params, len(tokens))
	}

	return tokens[:d.Params], nil
}

// Call slices the tokens to the declared parameter count and invokes the method.
func (d Descriptor) Call(ctx context.Context, instance any, tokens []string, strict bool) error {
	args, err := d.Arguments(tokens, strict)
	if err != nil {
		return err
	}

	return d.Invoke(ctx, instance, args)
}
