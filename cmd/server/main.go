package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pep299/learntube/internal/application"
	"github.com/pep299/learntube/internal/transport/server"
)

var (
	Version   string = "dev"
	Commit    string = "unknown"
	BuildTime string = "unknown"
)

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showHelp {
		fmt.Printf("LearnTube Server\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nEnvironment Variables:\n")
		fmt.Printf("  COMPLETION_PROVIDER     openai or gemini (default: openai)\n")
		fmt.Printf("  OPENAI_API_KEY          OpenAI API key (required for openai)\n")
		fmt.Printf("  GEMINI_API_KEY          Gemini API key (required for gemini)\n")
		fmt.Printf("  PORT                    Server port (default: 8080)\n")
		fmt.Printf("  HOST                    Server host (default: 0.0.0.0)\n")
		fmt.Printf("  API_AUTH_TOKEN          Bearer token for /api/generate-course (optional)\n")
		fmt.Printf("  RATE_LIMIT_PER_MINUTE   Generation requests per minute, 0 disables (default: 10)\n")
		fmt.Printf("  SESSION_TTL_MINUTES     Idle lifetime of a course page (default: 60)\n")
		fmt.Printf("  SESSION_SWEEP_SCHEDULE  Cron schedule for dropping idle pages (default: @every 10m)\n")
		fmt.Printf("  COURSE_ARCHIVE_BUCKET   Cloud Storage bucket for generated courses (optional)\n")
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("LearnTube Server\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Commit: %s\n", Commit)
		fmt.Printf("Build Time: %s\n", BuildTime)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application
	app, err := application.New(ctx, Version)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	if !app.Config.HasCompletionCredential() {
		log.Printf("⚠️  No %s API key configured; course generation will be rejected", app.Config.CompletionProvider)
	}

	// Create HTTP server. Responses have no write deadline.
	httpServer := &http.Server{
		Addr:        fmt.Sprintf("%s:%s", app.Config.Host, app.Config.Port),
		Handler:     server.NewRouter(app),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Drop idle course pages on a schedule
	c := cron.New()
	_, err = c.AddFunc(app.Config.SessionSweepSchedule, func() {
		dropped, stats := app.SweepSessions()
		if dropped > 0 {
			log.Printf("🧹 Dropped %d expired course sessions", dropped)
		}
		log.Printf("📊 Sessions active=%d hit_rate=%.2f average_age=%s", stats.TotalEntries, stats.HitRate, stats.AverageAge.Round(time.Second))
	})
	if err != nil {
		log.Fatalf("❌ Invalid session sweep schedule %q: %v", app.Config.SessionSweepSchedule, err)
	}
	log.Printf("📅 Scheduled session sweep with cron: %s", app.Config.SessionSweepSchedule)

	// Start cron scheduler
	c.Start()
	defer c.Stop()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server
	go func() {
		log.Printf("🚀 Starting server on %s:%s", app.Config.Host, app.Config.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("🛑 Shutting down server...")

	// Cancel background tasks
	cancel()

	// Stop cron scheduler
	c.Stop()

	// Shutdown HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("✅ Server stopped")
}
