package source

import (
	"bufio"
	"cmdbot/internal/core/domain"
	"context"
	"io"

	"github.com/rs/zerolog/log"
)

const ConsoleChannel = "console"

// Console reads chat lines from a reader, each sent by the same broadcaster user.
type Console struct {
	reader io.Reader
	user   string
}

func NewConsole(reader io.Reader, user string) *Console {
	return &Console{reader: reader, user: user}
}

func (c *Console) Subscribe(ctx context.Context) (<-chan domain.Response, error) {
	events := make(chan domain.Response)

	go func() {
		defer close(events)

		scanner := bufio.NewScanner(c.reader)
		for scanner.Scan() {
			r := domain.Response{
				Kind:          domain.ChatMessage,
				Name:          c.user,
				IsBroadcaster: true,
				Channel:       ConsoleChannel,
				Message:       scanner.Text(),
			}

			select {
			case events <- r:
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			log.Err(err).Msg("failed reading console input")
		}
	}()

	return events, nil
}
