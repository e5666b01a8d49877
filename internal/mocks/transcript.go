package mocks

import (
	"context"
	"strings"

	"github.com/pep299/learntube/internal/youtube"
)

// Mock Transcript Repository
type MockTranscriptRepo struct {
	Transcript *youtube.Transcript
	Err        error
	Calls      int
	LastID     string
}

// NewMockTranscriptRepo returns a repository serving the given lines as segments.
func NewMockTranscriptRepo(lines ...string) *MockTranscriptRepo {
	segments := make([]youtube.Segment, 0, len(lines))
	for _, line := range lines {
		segments = append(segments, youtube.Segment{Text: line})
	}
	return &MockTranscriptRepo{
		Transcript: &youtube.Transcript{Title: "Mock Video", Language: "en", Segments: segments},
	}
}

// Words returns a transcript line of exactly n characters.
func Words(n int) string {
	return strings.Repeat("a", n)
}

func (m *MockTranscriptRepo) FetchTranscript(ctx context.Context, videoID string) (*youtube.Transcript, error) {
	m.Calls++
	m.LastID = videoID
	if m.Err != nil {
		return nil, m.Err
	}
	t := *m.Transcript
	t.VideoID = videoID
	return &t, nil
}
