package repository

import (
	"context"

	"github.com/pep299/learntube/internal/youtube"
)

type TranscriptRepository interface {
	FetchTranscript(ctx context.Context, videoID string) (*youtube.Transcript, error)
}

type transcriptRepository struct {
	client *youtube.Client
}

func NewTranscriptRepository(client *youtube.Client) TranscriptRepository {
	return &transcriptRepository{
		client: client,
	}
}

func (t *transcriptRepository) FetchTranscript(ctx context.Context, videoID string) (*youtube.Transcript, error) {
	return t.client.FetchTranscript(ctx, videoID)
}
