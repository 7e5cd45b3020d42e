package port

import (
	"cmdbot/internal/core/domain"
	"context"
)

type MessageSource interface {
	// Subscribe returns a stream of parsed events. The channel is closed when the source stops.
	Subscribe(ctx context.Context) (<-chan domain.Response, error)
}
