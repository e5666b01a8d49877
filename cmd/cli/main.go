package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pep299/learntube/internal/application"
	"github.com/pep299/learntube/internal/service"
)

var Version string = "dev"

func main() {
	var (
		videoURL    = flag.String("url", "", "YouTube video URL to turn into a course")
		serverURL   = flag.String("server", "", "Generate through a running server at this base URL instead of locally")
		token       = flag.String("token", os.Getenv("API_AUTH_TOKEN"), "Bearer token for -server")
		listArchive = flag.String("list-archive", "", "List archived courses for a video ID (use \"all\" for every video)")
		showArchive = flag.String("show-archive", "", "Print an archived course by object name (see -list-archive)")
		limit       = flag.Int("limit", 20, "Maximum archive entries to list")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("LearnTube CLI %s\n", Version)
		return
	}

	ctx := context.Background()

	if *serverURL != "" && *videoURL != "" {
		raw, err := generateRemote(ctx, http.DefaultClient, *serverURL, *token, *videoURL)
		if err != nil {
			log.Fatalf("Failed to generate course: %v", err)
		}
		fmt.Println(string(raw))
		return
	}

	app, err := application.New(ctx, Version)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	switch {
	case *listArchive != "":
		if err := listCourses(ctx, os.Stdout, app.Archive, *listArchive, *limit); err != nil {
			log.Fatalf("Listing archive failed: %v", err)
		}
	case *showArchive != "":
		if err := showCourse(ctx, os.Stdout, app.Archive, *showArchive); err != nil {
			log.Fatalf("Reading archived course failed: %v", err)
		}
	case *videoURL != "":
		if err := generate(ctx, app, *videoURL); err != nil {
			log.Fatalf("Failed to generate course: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func generate(ctx context.Context, app *application.Application, videoURL string) error {
	result, err := app.Courses.Generate(ctx, videoURL)
	if err != nil {
		return fmt.Errorf("%s (%s)", service.Message(err), service.KindOf(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"success":        true,
		"course":         result.Course,
		"videoId":        result.VideoID,
		"videoThumbnail": result.VideoThumbnail,
	})
}
