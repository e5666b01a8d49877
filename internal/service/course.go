package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"

	"github.com/pep299/learntube/internal/infrastructure"
	"github.com/pep299/learntube/internal/model"
	"github.com/pep299/learntube/internal/repository"
	"github.com/pep299/learntube/internal/youtube"
)

const (
	// minTranscriptLength rejects transcripts at retrieval time.
	minTranscriptLength = 50
	// minGenerationLength is the floor the endpoint applies before synthesis.
	minGenerationLength = 100
)

var errNoContent = errors.New("No content generated")

// GeneratedCourse is a successful generation.
type GeneratedCourse struct {
	Course           *model.Course
	VideoID          string
	VideoTitle       string
	VideoThumbnail   string
	TranscriptLength int
}

// CourseService turns a video URL into a course.
type CourseService struct {
	transcripts   repository.TranscriptRepository
	completion    repository.CompletionRepository
	archive       repository.ArchiveRepository
	hasCredential bool
	providerName  string
}

// Option configures a CourseService.
type Option func(*CourseService)

// WithProviderName names the completion provider in credential errors.
func WithProviderName(name string) Option {
	return func(s *CourseService) {
		if name != "" {
			s.providerName = name
		}
	}
}

// NewCourseService creates the service. archive may be nil.
func NewCourseService(
	transcripts repository.TranscriptRepository,
	completion repository.CompletionRepository,
	archive repository.ArchiveRepository,
	hasCredential bool,
	opts ...Option,
) *CourseService {
	s := &CourseService{
		transcripts:   transcripts,
		completion:    completion,
		archive:       archive,
		hasCredential: hasCredential,
		providerName:  "OpenAI",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs the whole pipeline: extract the id, fetch the transcript,
// check the credential, synthesize and parse. Each step either advances or
// fails with a *Error; nothing is retried.
func (s *CourseService) Generate(ctx context.Context, rawURL string) (*GeneratedCourse, error) {
	logger := log.New(funcframework.LogWriter(ctx), "", 0)
	start := time.Now()

	if rawURL == "" {
		return nil, newError(KindInvalidURL, "URL is required", nil)
	}

	videoID, ok := youtube.ExtractVideoID(rawURL)
	if !ok {
		return nil, newError(KindInvalidURL, "Invalid YouTube URL", nil)
	}

	transcriptStart := time.Now()
	transcript, title, err := s.fetchTranscript(ctx, videoID)
	if err != nil {
		logger.Printf("Transcript fetch failed video_id=%s error=%v", videoID, err)
		return nil, newError(KindTranscriptUnavailable, "Could not fetch transcript: "+err.Error(), err)
	}
	length := utf8.RuneCountInString(transcript)
	logger.Printf("Transcript fetched video_id=%s length=%d duration_ms=%d", videoID, length, time.Since(transcriptStart).Milliseconds())

	if length < minGenerationLength {
		return nil, newError(KindTranscriptUnavailable, fmt.Sprintf("Could not fetch transcript or transcript too short. Length: %d", length), nil)
	}

	if !s.hasCredential {
		return nil, newError(KindConfiguration, s.providerName+" API key is required to generate course content. Please add your API key to the environment variables.", nil)
	}

	completionStart := time.Now()
	content, err := s.completion.Complete(ctx, BuildCoursePrompt(transcript, title))
	if err != nil {
		logger.Printf("Course generation failed video_id=%s error=%v", videoID, err)
		return nil, newError(KindGeneration, "Could not generate course content: "+err.Error(), err)
	}
	if content == "" {
		return nil, newError(KindGeneration, "Could not generate course content: "+errNoContent.Error(), errNoContent)
	}
	logger.Printf("Completion received video_id=%s chars=%d duration_ms=%d", videoID, len(content), time.Since(completionStart).Milliseconds())

	course, err := parseCourse(content)
	if err != nil {
		logger.Printf("Course parse failed video_id=%s error=%v", videoID, err)
		return nil, err
	}
	if problems := course.Validate(); problems != nil {
		logger.Printf("Course has structural problems video_id=%s problems=%q", videoID, problems.Error())
	}

	result := &GeneratedCourse{
		Course:           course,
		VideoID:          videoID,
		VideoTitle:       title,
		VideoThumbnail:   youtube.ThumbnailURL(videoID),
		TranscriptLength: length,
	}
	s.archiveCourse(ctx, logger, rawURL, result)

	logger.Printf("Course generated video_id=%s chapters=%d quiz=%d total_duration_ms=%d",
		videoID, len(course.Chapters), len(course.Quiz), time.Since(start).Milliseconds())
	return result, nil
}

// transcriptError is a retrieval failure as reported to the user.
type transcriptError struct {
	msg string
	err error
}

func (e *transcriptError) Error() string {
	return "Could not fetch video transcript: " + e.msg
}

func (e *transcriptError) Unwrap() error {
	return e.err
}

// fetchTranscript returns the joined transcript text and the video title.
func (s *CourseService) fetchTranscript(ctx context.Context, videoID string) (string, string, error) {
	t, err := s.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		return "", "", &transcriptError{msg: err.Error(), err: err}
	}
	if t == nil || len(t.Segments) == 0 {
		return "", "", &transcriptError{msg: "No transcript data returned"}
	}

	text := joinSegments(t.Segments)
	if utf8.RuneCountInString(text) < minTranscriptLength {
		return "", "", &transcriptError{msg: "Transcript too short or empty"}
	}
	return text, t.Title, nil
}

// joinSegments concatenates segment text, or content when text is empty,
// skipping blank segments.
func joinSegments(segments []youtube.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := seg.Text
		if text == "" {
			text = seg.Content
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}

func (s *CourseService) archiveCourse(ctx context.Context, logger *log.Logger, rawURL string, result *GeneratedCourse) {
	if s.archive == nil {
		return
	}

	name, err := s.archive.Save(ctx, &infrastructure.ArchivedCourse{
		VideoID:          result.VideoID,
		VideoURL:         rawURL,
		VideoThumbnail:   result.VideoThumbnail,
		TranscriptLength: result.TranscriptLength,
		Course:           *result.Course,
	})
	if err != nil {
		logger.Printf("Course archive failed video_id=%s error=%v", result.VideoID, err)
		return
	}
	logger.Printf("Course archived video_id=%s object=%s", result.VideoID, name)
}
