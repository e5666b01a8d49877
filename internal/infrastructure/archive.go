package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"

	"github.com/pep299/learntube/internal/model"
)

// ArchivedCourse is the JSON document stored for every generated course.
type ArchivedCourse struct {
	VideoID          string       `json:"videoId"`
	VideoURL         string       `json:"videoUrl"`
	VideoThumbnail   string       `json:"videoThumbnail"`
	TranscriptLength int          `json:"transcriptLength"`
	Course           model.Course `json:"course"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// ArchiveEntry describes a stored course without downloading it.
type ArchiveEntry struct {
	Name    string    `json:"name"`
	VideoID string    `json:"videoId"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

// CourseArchive stores generated courses as JSON objects in Cloud Storage
type CourseArchive struct {
	client     *storage.Client
	bucketName string
	prefix     string
}

// NewCourseArchive creates a new Cloud Storage course archive
func NewCourseArchive(ctx context.Context, bucketName, prefix string) (*CourseArchive, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating storage client: %w", err)
	}

	return &CourseArchive{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}, nil
}

// objectName lays courses out as <prefix><videoId>/<timestamp>.json so a
// video's generations list together.
func objectName(prefix, videoID string, created time.Time) string {
	return fmt.Sprintf("%s%s/%s.json", prefix, videoID, created.UTC().Format("20060102T150405Z"))
}

// videoIDFromObject recovers the video id from an object name.
func videoIDFromObject(prefix, name string) string {
	rest := strings.TrimPrefix(name, prefix)
	if i := strings.Index(rest, "/"); i >= 0 {
		return rest[:i]
	}
	return ""
}

// Save stores a generated course
func (a *CourseArchive) Save(ctx context.Context, record *ArchivedCourse) (string, error) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	name := objectName(a.prefix, record.VideoID, record.CreatedAt)

	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshaling archived course: %w", err)
	}

	writer := a.client.Bucket(a.bucketName).Object(name).NewWriter(ctx)
	writer.ContentType = "application/json"

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return "", fmt.Errorf("writing object data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("closing object writer: %w", err)
	}

	return name, nil
}

// Load reads one archived course by object name
func (a *CourseArchive) Load(ctx context.Context, name string) (*ArchivedCourse, error) {
	reader, err := a.client.Bucket(a.bucketName).Object(name).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening object reader: %w", err)
	}
	defer reader.Close()

	return decodeArchivedCourse(reader)
}

func decodeArchivedCourse(r io.Reader) (*ArchivedCourse, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading object data: %w", err)
	}

	var record ArchivedCourse
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("unmarshaling archived course: %w", err)
	}
	return &record, nil
}

// List returns up to limit archived courses, optionally for one video.
// A limit of zero or less lists everything.
func (a *CourseArchive) List(ctx context.Context, videoID string, limit int) ([]ArchiveEntry, error) {
	query := &storage.Query{Prefix: a.prefix}
	if videoID != "" {
		query.Prefix = a.prefix + videoID + "/"
	}

	it := a.client.Bucket(a.bucketName).Objects(ctx, query)

	var entries []ArchiveEntry
	for limit <= 0 || len(entries) < limit {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing objects: %w", err)
		}

		entries = append(entries, ArchiveEntry{
			Name:    attrs.Name,
			VideoID: videoIDFromObject(a.prefix, attrs.Name),
			Size:    attrs.Size,
			Created: attrs.Created,
		})
	}

	return entries, nil
}

// Close closes the storage client
func (a *CourseArchive) Close() error {
	return a.client.Close()
}
