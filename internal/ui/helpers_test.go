package ui

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pep299/learntube/internal/mocks"
	"github.com/pep299/learntube/internal/model"
)

func testCourse(t *testing.T) *model.Course {
	t.Helper()
	var course model.Course
	require.NoError(t, json.Unmarshal([]byte(mocks.CourseJSON), &course))
	return &course
}

func fourQuestions() []model.QuizQuestion {
	q := func(text string, correct int) model.QuizQuestion {
		return model.QuizQuestion{
			Question:      text,
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: correct,
			Explanation:   text + " explained",
		}
	}
	return []model.QuizQuestion{q("Q1", 0), q("Q2", 1), q("Q3", 2), q("Q4", 3)}
}
