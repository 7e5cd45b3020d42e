package sender

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console writes replies to an io.Writer, one line per message.
type Console struct {
	name  string
	out   io.Writer
	mutex sync.Mutex
}

func NewConsole(name string, out io.Writer) *Console {
	return &Console{name: name, out: out}
}

func (c *Console) Name() string {
	return c.name
}

func (c *Console) Say(_ context.Context, channel string, text string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	_, err := fmt.Fprintf(c.out, "[%s] %s: %s\n", channel, c.name, text)
	return err
}
