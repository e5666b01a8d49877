package mocks

import (
	"context"
	"fmt"

	"github.com/pep299/learntube/internal/infrastructure"
)

// Mock Archive Repository
type MockArchiveRepo struct {
	Saved  []*infrastructure.ArchivedCourse
	Err    error
	Closed bool
}

func (m *MockArchiveRepo) Save(ctx context.Context, record *infrastructure.ArchivedCourse) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.Saved = append(m.Saved, record)
	return "courses/" + record.VideoID + "/mock.json", nil
}

func (m *MockArchiveRepo) Load(ctx context.Context, name string) (*infrastructure.ArchivedCourse, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, rec := range m.Saved {
		if name == "courses/"+rec.VideoID+"/mock.json" {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("object %s not found", name)
}

func (m *MockArchiveRepo) List(ctx context.Context, videoID string, limit int) ([]infrastructure.ArchiveEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var entries []infrastructure.ArchiveEntry
	for _, rec := range m.Saved {
		if videoID != "" && rec.VideoID != videoID {
			continue
		}
		entries = append(entries, infrastructure.ArchiveEntry{Name: "courses/" + rec.VideoID + "/mock.json", VideoID: rec.VideoID})
	}
	return entries, nil
}

func (m *MockArchiveRepo) Close() error {
	m.Closed = true
	return nil
}
