package repository

import (
	"context"

	"github.com/pep299/learntube/internal/infrastructure"
)

type ArchiveRepository interface {
	Save(ctx context.Context, record *infrastructure.ArchivedCourse) (string, error)
	Load(ctx context.Context, name string) (*infrastructure.ArchivedCourse, error)
	List(ctx context.Context, videoID string, limit int) ([]infrastructure.ArchiveEntry, error)
	Close() error
}

type archiveRepository struct {
	archive *infrastructure.CourseArchive
}

func NewArchiveRepository(archive *infrastructure.CourseArchive) ArchiveRepository {
	return &archiveRepository{
		archive: archive,
	}
}

func (a *archiveRepository) Save(ctx context.Context, record *infrastructure.ArchivedCourse) (string, error) {
	return a.archive.Save(ctx, record)
}

func (a *archiveRepository) Load(ctx context.Context, name string) (*infrastructure.ArchivedCourse, error) {
	return a.archive.Load(ctx, name)
}

func (a *archiveRepository) List(ctx context.Context, videoID string, limit int) ([]infrastructure.ArchiveEntry, error) {
	return a.archive.List(ctx, videoID, limit)
}

func (a *archiveRepository) Close() error {
	return a.archive.Close()
}
