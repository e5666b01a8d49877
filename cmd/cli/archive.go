package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pep299/learntube/internal/repository"
)

var errArchiveDisabled = errors.New("course archive is disabled; set COURSE_ARCHIVE_BUCKET")

func listCourses(ctx context.Context, w io.Writer, archive repository.ArchiveRepository, videoID string, limit int) error {
	if archive == nil {
		return errArchiveDisabled
	}
	if videoID == "all" {
		videoID = ""
	}

	entries, err := archive.List(ctx, videoID, limit)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d bytes\t%s\n", e.Created.Format("2006-01-02 15:04:05"), e.VideoID, e.Size, e.Name)
	}
	fmt.Fprintf(w, "%d archived courses\n", len(entries))
	return nil
}

// showCourse prints one archived generation in the endpoint's success shape.
func showCourse(ctx context.Context, w io.Writer, archive repository.ArchiveRepository, name string) error {
	if archive == nil {
		return errArchiveDisabled
	}

	record, err := archive.Load(ctx, name)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"success":        true,
		"course":         record.Course,
		"videoId":        record.VideoID,
		"videoThumbnail": record.VideoThumbnail,
	})
}
