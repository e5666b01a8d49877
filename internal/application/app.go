package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pep299/learntube/internal/cache"
	"github.com/pep299/learntube/internal/completion"
	"github.com/pep299/learntube/internal/infrastructure"
	"github.com/pep299/learntube/internal/repository"
	"github.com/pep299/learntube/internal/service"
	"github.com/pep299/learntube/internal/transport/handler"
	"github.com/pep299/learntube/internal/ui"
	"github.com/pep299/learntube/internal/youtube"
)

// Application represents the application with all business logic components
type Application struct {
	Config          *infrastructure.Config
	Courses         *service.CourseService
	Archive         repository.ArchiveRepository
	Sessions        *cache.MemoryCache[*ui.Session]
	GenerateHandler *handler.Generate
	HealthHandler   *handler.Health
	Pages           *handler.Pages
	cleanup         func() error
}

// New creates a new application instance with all dependencies. Every
// external client is built here once and shared by all requests.
func New(ctx context.Context, version string) (*Application, error) {
	// Load configuration
	cfg, err := infrastructure.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Archive is optional
	var archive *infrastructure.CourseArchive
	var archiveRepo repository.ArchiveRepository
	if cfg.ArchiveEnabled() {
		archive, err = infrastructure.NewCourseArchive(ctx, cfg.ArchiveBucket, cfg.ArchivePrefix)
		if err != nil {
			return nil, fmt.Errorf("creating course archive: %w", err)
		}
		archiveRepo = repository.NewArchiveRepository(archive)
	}

	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// Create repositories
	transcriptRepo := repository.NewTranscriptRepository(youtube.NewClient(
		youtube.WithBaseURL(cfg.YouTubeBaseURL),
		youtube.WithLanguages(cfg.TranscriptLanguages...),
	))
	completionRepo := repository.NewCompletionRepository(NewCompletionClient(cfg))

	// Create services (business logic)
	courses := service.NewCourseService(transcriptRepo, completionRepo, archiveRepo,
		cfg.HasCompletionCredential(), service.WithProviderName(cfg.CompletionProviderName()))

	// Presentation sessions close their timers when they leave the store
	sessions := cache.NewMemoryCache[*ui.Session](
		time.Duration(cfg.SessionTTLMinutes)*time.Minute,
		func(_ string, s *ui.Session) { s.Close() },
	)

	// Cleanup function
	cleanup := func() error {
		sessions.Clear()
		if archive != nil {
			return archive.Close()
		}
		return nil
	}

	return &Application{
		Config:          cfg,
		Courses:         courses,
		Archive:         archiveRepo,
		Sessions:        sessions,
		GenerateHandler: handler.NewGenerate(courses),
		HealthHandler:   handler.NewHealth(version),
		Pages:           handler.NewPages(courses, sessions, renderer),
		cleanup:         cleanup,
	}, nil
}

// NewCompletionClient builds the client for the configured provider.
func NewCompletionClient(cfg *infrastructure.Config) completion.Client {
	switch cfg.CompletionProvider {
	case infrastructure.ProviderGemini:
		return completion.NewGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL, completion.Settings{Model: cfg.GeminiModel})
	default:
		return completion.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, completion.Settings{Model: cfg.OpenAIModel})
	}
}

// SweepSessions drops idle course pages and reports what is left.
func (a *Application) SweepSessions() (int, cache.Stats) {
	dropped := a.Sessions.CleanupExpired()
	return dropped, a.Sessions.GetStats()
}

// Close cleans up application resources
func (a *Application) Close() error {
	if a.cleanup != nil {
		return a.cleanup()
	}
	return nil
}
