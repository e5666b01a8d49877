package ui

import (
	"fmt"

	"github.com/pep299/learntube/internal/model"
)

// Focus is the key point the learner jumped to from the content view.
type Focus struct {
	ChapterIndex int
	PointIndex   int
}

// State is everything a course page remembers between interactions. It
// is not safe for concurrent use; Session serialises access.
type State struct {
	tab              Tab
	expandedPoints   map[string]bool
	expandedConcepts map[int]bool
	focus            *Focus
	quiz             *Quiz
	copied           *CopyAck
}

// NewState returns the initial view state for course.
func NewState(course *model.Course) *State {
	return &State{
		tab:              TabContent,
		expandedPoints:   make(map[string]bool),
		expandedConcepts: make(map[int]bool),
		quiz:             NewQuiz(course.Quiz),
		copied:           NewCopyAck(CopyAckDuration),
	}
}

func pointKey(chapterIndex, pointIndex int) string {
	return fmt.Sprintf("%d-%d", chapterIndex, pointIndex)
}

func (s *State) Tab() Tab { return s.tab }

// SetTab switches the active view. Other view state is kept.
func (s *State) SetTab(t Tab) {
	s.tab = t
}

// TogglePoint flips the disclosure of one key point in the content view.
func (s *State) TogglePoint(chapterIndex, pointIndex int) {
	key := pointKey(chapterIndex, pointIndex)
	if s.expandedPoints[key] {
		delete(s.expandedPoints, key)
		return
	}
	s.expandedPoints[key] = true
}

func (s *State) PointExpanded(chapterIndex, pointIndex int) bool {
	return s.expandedPoints[pointKey(chapterIndex, pointIndex)]
}

// ToggleConcept flips the disclosure of one key concept card.
func (s *State) ToggleConcept(index int) {
	if s.expandedConcepts[index] {
		delete(s.expandedConcepts, index)
		return
	}
	s.expandedConcepts[index] = true
}

func (s *State) ConceptExpanded(index int) bool {
	return s.expandedConcepts[index]
}

// LearnPoint focuses a key point and switches to the learn view.
func (s *State) LearnPoint(chapterIndex, pointIndex int) {
	s.focus = &Focus{ChapterIndex: chapterIndex, PointIndex: pointIndex}
	s.tab = TabLearn
}

// Focus returns the focused key point, if any.
func (s *State) Focus() (Focus, bool) {
	if s.focus == nil {
		return Focus{}, false
	}
	return *s.focus, true
}

func (s *State) Quiz() *Quiz { return s.quiz }

func (s *State) Copied() *CopyAck { return s.copied }

// Close releases the timers the state owns.
func (s *State) Close() {
	s.copied.Close()
}
