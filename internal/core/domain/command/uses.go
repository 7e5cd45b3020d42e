package command

import (
	"cmdbot/internal/core/service"
	"context"
	"fmt"
)

type Uses struct {
	Base
	tracker service.Tracker
}

func NewUses(tracker service.Tracker) *Uses {
	return &Uses{tracker: tracker}
}

const usesMessage = "%s%s was used %d times today"

func (u *Uses) Show(ctx context.Context, prefix, key string) error {
	err := u.Reply(ctx, fmt.Sprintf(usesMessage, prefix, key, u.tracker.Count(key)))
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}
