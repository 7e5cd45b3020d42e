package command

import (
	"context"
	"strings"
)

type Echo struct {
	Base
}

func NewEcho() *Echo {
	return &Echo{}
}

// Echo repeats the first word after the command.
func (e *Echo) Echo(ctx context.Context, word string) error {
	return e.Reply(ctx, word)
}

// Say repeats everything after the command.
func (e *Echo) Say(ctx context.Context, words []string) error {
	return e.Reply(ctx, strings.Join(words, " "))
}
