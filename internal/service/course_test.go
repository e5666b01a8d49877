package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep299/learntube/internal/mocks"
	"github.com/pep299/learntube/internal/model"
	"github.com/pep299/learntube/internal/youtube"
)

const testURL = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"

func newTestService(transcripts *mocks.MockTranscriptRepo, completion *mocks.MockCompletionRepo) *CourseService {
	return NewCourseService(transcripts, completion, nil, true)
}

func assertKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()
	var e *Error
	require.True(t, errors.As(err, &e), "expected *service.Error, got %T: %v", err, err)
	assert.Equal(t, kind, e.Kind)
	return e
}

func TestGenerateSuccess(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(60), "  ", mocks.Words(60))
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}
	archive := &mocks.MockArchiveRepo{}
	svc := NewCourseService(transcripts, completion, archive, true)

	got, err := svc.Generate(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", got.VideoThumbnail)
	assert.Equal(t, "Getting Started with Git", got.Course.Title)
	assert.Equal(t, 121, got.TranscriptLength)

	require.Len(t, got.Course.Chapters, 1)
	points := got.Course.Chapters[0].KeyPoints
	require.Len(t, points, 2)
	assert.Equal(t, model.PlainKeyPoint, points[0].Kind())
	assert.Equal(t, model.DetailedKeyPoint, points[1].Kind())

	assert.Equal(t, "dQw4w9WgXcQ", transcripts.LastID)
	assert.Equal(t, 1, completion.Calls)
	assert.Equal(t, systemInstruction, completion.LastPrompt.System)
	assert.Contains(t, completion.LastPrompt.User, "Video Title: Mock Video")
	assert.Contains(t, completion.LastPrompt.User, "Transcript: "+mocks.Words(60)+" "+mocks.Words(60))

	require.Len(t, archive.Saved, 1)
	assert.Equal(t, testURL, archive.Saved[0].VideoURL)
}

func TestGenerateArchiveFailureIsNotFatal(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(120))
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}
	archive := &mocks.MockArchiveRepo{Err: errors.New("bucket gone")}

	_, err := NewCourseService(transcripts, completion, archive, true).Generate(context.Background(), testURL)
	assert.NoError(t, err)
}

func TestGenerateInvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		msg  string
	}{
		{"missing", "", "URL is required"},
		{"not youtube", "https://example.com/video", "Invalid YouTube URL"},
		{"no id", "https://youtu.be/", "Invalid YouTube URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcripts := mocks.NewMockTranscriptRepo(mocks.Words(200))
			completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

			_, err := newTestService(transcripts, completion).Generate(context.Background(), tt.url)
			e := assertKind(t, err, KindInvalidURL)
			assert.Equal(t, tt.msg, e.Message)
			assert.Equal(t, http.StatusBadRequest, StatusCode(err))
			assert.Zero(t, transcripts.Calls)
			assert.Zero(t, completion.Calls)
		})
	}
}

func TestGenerateTranscriptChecks(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		wantMsg string
	}{
		{"no segments", nil, "Could not fetch transcript: Could not fetch video transcript: No transcript data returned"},
		{"all blank", []string{"  ", "\n", ""}, "Could not fetch transcript: Could not fetch video transcript: Transcript too short or empty"},
		{"49 characters", []string{mocks.Words(49)}, "Could not fetch transcript: Could not fetch video transcript: Transcript too short or empty"},
		{"50 characters", []string{mocks.Words(50)}, "Could not fetch transcript or transcript too short. Length: 50"},
		{"99 characters", []string{mocks.Words(49), mocks.Words(49)}, "Could not fetch transcript or transcript too short. Length: 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcripts := mocks.NewMockTranscriptRepo(tt.lines...)
			completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

			_, err := newTestService(transcripts, completion).Generate(context.Background(), testURL)
			e := assertKind(t, err, KindTranscriptUnavailable)
			assert.Equal(t, tt.wantMsg, e.Message)
			assert.Equal(t, http.StatusBadRequest, StatusCode(err))
			assert.Zero(t, completion.Calls, "completion must not be called")
		})
	}
}

func TestGenerateTranscriptAccepts100(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(100))
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

	_, err := newTestService(transcripts, completion).Generate(context.Background(), testURL)
	require.NoError(t, err)
	assert.Equal(t, 1, completion.Calls)
}

func TestGenerateUsesContentFallback(t *testing.T) {
	transcripts := &mocks.MockTranscriptRepo{Transcript: &youtube.Transcript{Segments: []youtube.Segment{
		{Content: mocks.Words(60)},
		{Text: mocks.Words(60), Content: "ignored"},
	}}}
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

	_, err := newTestService(transcripts, completion).Generate(context.Background(), testURL)
	require.NoError(t, err)
	assert.Contains(t, completion.LastPrompt.User, "Video Title: Unknown")
	assert.NotContains(t, completion.LastPrompt.User, "ignored")
}

func TestGenerateProviderFailure(t *testing.T) {
	providerErr := errors.New("captions disabled")
	transcripts := &mocks.MockTranscriptRepo{Err: providerErr}
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

	_, err := newTestService(transcripts, completion).Generate(context.Background(), testURL)
	e := assertKind(t, err, KindTranscriptUnavailable)
	assert.Equal(t, "Could not fetch transcript: Could not fetch video transcript: captions disabled", e.Message)
	assert.ErrorIs(t, err, providerErr)
}

func TestGenerateMissingCredential(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(200))
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

	_, err := NewCourseService(transcripts, completion, nil, false).Generate(context.Background(), testURL)
	e := assertKind(t, err, KindConfiguration)
	assert.Equal(t, "OpenAI API key is required to generate course content. Please add your API key to the environment variables.", e.Message)
	assert.Equal(t, http.StatusBadRequest, StatusCode(err))
	assert.Zero(t, completion.Calls)
}

func TestGenerateMissingCredentialNamesProvider(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(200))
	completion := &mocks.MockCompletionRepo{Response: mocks.CourseJSON}

	svc := NewCourseService(transcripts, completion, nil, false, WithProviderName("Gemini"))
	_, err := svc.Generate(context.Background(), testURL)
	e := assertKind(t, err, KindConfiguration)
	assert.Equal(t, "Gemini API key is required to generate course content. Please add your API key to the environment variables.", e.Message)
}

func TestGenerateCompletionFailures(t *testing.T) {
	tests := []struct {
		name       string
		completion *mocks.MockCompletionRepo
		kind       Kind
		msgPrefix  string
	}{
		{"api error", &mocks.MockCompletionRepo{Err: errors.New("rate limited")}, KindGeneration, "Could not generate course content: rate limited"},
		{"empty content", &mocks.MockCompletionRepo{Response: ""}, KindGeneration, "Could not generate course content: No content generated"},
		{"not json", &mocks.MockCompletionRepo{Response: "Here is your course!"}, KindMalformedResponse, "Invalid JSON response from AI: "},
		{"wrong types", &mocks.MockCompletionRepo{Response: `{"chapters":"none"}`}, KindMalformedResponse, "Invalid JSON response from AI: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcripts := mocks.NewMockTranscriptRepo(mocks.Words(200))

			_, err := newTestService(transcripts, tt.completion).Generate(context.Background(), testURL)
			e := assertKind(t, err, tt.kind)
			assert.True(t, strings.HasPrefix(e.Message, tt.msgPrefix), e.Message)
			assert.Equal(t, http.StatusInternalServerError, StatusCode(err))
		})
	}
}

func TestGenerateAcceptsFencedResponse(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(200))

	plain, err := newTestService(transcripts, &mocks.MockCompletionRepo{Response: mocks.CourseJSON}).Generate(context.Background(), testURL)
	require.NoError(t, err)

	fenced, err := newTestService(transcripts, &mocks.MockCompletionRepo{Response: "```json\n" + mocks.CourseJSON + "\n```"}).Generate(context.Background(), testURL)
	require.NoError(t, err)

	assert.Equal(t, plain.Course, fenced.Course)
}
