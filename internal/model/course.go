package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Course is the structured learning course synthesized from a video transcript.
// A decoded course re-encodes to the bytes it was decoded from, so fields the
// model omitted stay omitted.
type Course struct {
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Chapters     []Chapter      `json:"chapters"`
	KeyConcepts  []string       `json:"keyConcepts"`
	Summary      string         `json:"summary"`
	Quiz         []QuizQuestion `json:"quiz"`
	QualityScore *float64       `json:"qualityScore,omitempty"`

	raw json.RawMessage
}

type courseFields Course

func (c *Course) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var fields courseFields
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return err
	}
	raw, err := compactJSON(trimmed)
	if err != nil {
		return err
	}
	*c = Course(fields)
	c.raw = raw
	return nil
}

func (c Course) MarshalJSON() ([]byte, error) {
	if c.raw != nil {
		return c.raw, nil
	}
	return json.Marshal(courseFields(c))
}

// Chapter groups the key points of one section of the video.
type Chapter struct {
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	KeyPoints []KeyPoint `json:"keyPoints"`
}

// QuizQuestion is a multiple choice question. CorrectAnswer indexes Options.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// StepImage attaches an illustration to a step of a detailed key point.
type StepImage struct {
	StepIndex   int    `json:"stepIndex"`
	Description string `json:"description"`
	SearchQuery string `json:"searchQuery"`
}

// LinkType categorises a resource link.
type LinkType string

const (
	LinkDocumentation LinkType = "documentation"
	LinkTutorial      LinkType = "tutorial"
	LinkTool          LinkType = "tool"
	LinkDownload      LinkType = "download"
	LinkExample       LinkType = "example"
)

// Valid reports whether t is one of the known link categories.
func (t LinkType) Valid() bool {
	switch t {
	case LinkDocumentation, LinkTutorial, LinkTool, LinkDownload, LinkExample:
		return true
	}
	return false
}

// ResourceLink points the learner at external material.
type ResourceLink struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Type        LinkType `json:"type"`
}

// Validate checks the structural invariants of a generated course.
// Generated courses are not rejected on these findings; callers decide.
func (c *Course) Validate() error {
	var errs []error
	if len(c.Chapters) == 0 {
		errs = append(errs, errors.New("course has no chapters"))
	}
	for i, ch := range c.Chapters {
		if len(ch.KeyPoints) == 0 {
			errs = append(errs, fmt.Errorf("chapter %d has no key points", i+1))
		}
		for j, kp := range ch.KeyPoints {
			d, ok := kp.Detail()
			if !ok {
				continue
			}
			for _, link := range d.ResourceLinks {
				if !link.Type.Valid() {
					errs = append(errs, fmt.Errorf("chapter %d key point %d: unknown link type %q", i+1, j+1, link.Type))
				}
			}
		}
	}
	if len(c.KeyConcepts) == 0 {
		errs = append(errs, errors.New("course has no key concepts"))
	}
	if len(c.Quiz) == 0 {
		errs = append(errs, errors.New("course has no quiz questions"))
	}
	for i, q := range c.Quiz {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			errs = append(errs, fmt.Errorf("quiz question %d: correct answer %d out of range for %d options", i+1, q.CorrectAnswer, len(q.Options)))
		}
	}
	return errors.Join(errs...)
}
