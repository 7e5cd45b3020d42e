package command

import (
	"context"
	"fmt"
)

type Ping struct {
	Base
}

func NewPing() *Ping {
	return &Ping{}
}

func (p *Ping) Pong(ctx context.Context) error {
	return p.Reply(ctx, fmt.Sprintf("@%s pong", p.User().Name))
}
