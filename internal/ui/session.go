package ui

import (
	"sync"

	"github.com/pep299/learntube/internal/model"
)

// Session is one presented course and its view state.
type Session struct {
	ID        string
	Course    *model.Course
	VideoID   string
	Thumbnail string

	mu    sync.Mutex
	state *State
}

// NewSession wraps a generated course for presentation.
func NewSession(id string, course *model.Course, videoID, thumbnail string) *Session {
	return &Session{
		ID:        id,
		Course:    course,
		VideoID:   videoID,
		Thumbnail: thumbnail,
		state:     NewState(course),
	}
}

// Update applies fn to the view state under the session lock.
func (s *Session) Update(fn func(st *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Page builds the view model for the current state.
func (s *Session) Page() *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return BuildPage(s, s.state)
}

// Close stops the session's timers.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}
