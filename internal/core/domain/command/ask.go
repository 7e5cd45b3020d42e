package command

import (
	"cmdbot/internal/core/domain"
	"cmdbot/internal/core/port"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Ask struct {
	Base
	textGenerator port.TextGenerator
}

func NewAsk(textGenerator port.TextGenerator) *Ask {
	return &Ask{textGenerator: textGenerator}
}

func (a *Ask) Ask(ctx context.Context, words []string) error {
	l := log.With().
		Str("channel", a.Channel().Name).
		Str("user", a.User().Name).
		Str("handler", "ask").
		Logger()

	prompt := strings.TrimSpace(strings.Join(words, " "))
	if prompt == "" {
		return domain.ErrEmptyPrompt
	}

	l.Debug().Str("prompt", prompt).Msg("handling request")

	response, err := a.textGenerator.GenerateFromPrompt(ctx, []domain.Prompt{{
		Author: domain.UserAuthor,
		Prompt: a.User().Name + ": " + prompt,
	}})
	if err != nil {
		err = fmt.Errorf("failed to generate response: %w", err)
		if replyErr := a.Reply(ctx, "sorry, something went wrong"); replyErr != nil {
			l.Warn().Err(replyErr).Msg(domain.ErrSendingReplyFailed.Error())
		}
		return err
	}

	l.Debug().
		Str("model", response.Metadata.Model).
		Int("totalTokens", response.Metadata.TotalTokens).
		Msg("generated response")

	return a.Reply(ctx, fmt.Sprintf("@%s %s", a.User().Name, response.Response))
}
