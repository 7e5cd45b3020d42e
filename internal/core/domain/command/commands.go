package command

import (
	"context"
	"fmt"
	"strings"
)

type Commands struct {
	Base
	list   func() []string
	prefix string
}

func NewCommands(list func() []string, prefix string) *Commands {
	return &Commands{list: list, prefix: prefix}
}

func (c *Commands) List(ctx context.Context) error {
	keys := c.list()
	if len(keys) == 0 {
		return c.Reply(ctx, "no commands registered")
	}

	sb := &strings.Builder{}
	for i, key := range keys {
		if i > 0 {
			sb.WriteString(" ")
		}
		_, err := fmt.Fprintf(sb, "%s%s", c.prefix, key)
		if err != nil {
			return fmt.Errorf("failed to construct response: %w", err)
		}
	}

	return c.Reply(ctx, "available commands: "+sb.String())
}
