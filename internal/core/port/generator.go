package port

import (
	"cmdbot/internal/core/domain"
	"context"
)

type TextGenerator interface {
	GenerateFromPrompt(ctx context.Context, prompts []domain.Prompt) (domain.ModelResponse, error)
}
