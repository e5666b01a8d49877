package repository

import (
	"context"

	"github.com/pep299/learntube/internal/completion"
)

type CompletionRepository interface {
	Complete(ctx context.Context, prompt completion.Prompt) (string, error)
}

type completionRepository struct {
	client completion.Client
}

// NewCompletionRepository wraps the single process-wide completion client.
func NewCompletionRepository(client completion.Client) CompletionRepository {
	return &completionRepository{
		client: client,
	}
}

func (c *completionRepository) Complete(ctx context.Context, prompt completion.Prompt) (string, error) {
	return c.client.Complete(ctx, prompt)
}
