package ui

import (
	"math"

	"github.com/pep299/learntube/internal/model"
)

const (
	unanswered = -1
	// PassingScore is the percentage at which results are shown as a pass.
	PassingScore = 70
)

// Quiz tracks one pass through the course questions. Answers survive
// moving back and forth; only Reset clears them.
type Quiz struct {
	questions   []model.QuizQuestion
	answers     []int
	current     int
	showResults bool
}

// NewQuiz starts a quiz at the first question with nothing answered.
func NewQuiz(questions []model.QuizQuestion) *Quiz {
	q := &Quiz{questions: questions}
	q.Reset()
	return q
}

// Reset clears all answers and returns to the first question.
func (q *Quiz) Reset() {
	q.answers = make([]int, len(q.questions))
	for i := range q.answers {
		q.answers[i] = unanswered
	}
	q.current = 0
	q.showResults = false
}

func (q *Quiz) Len() int { return len(q.questions) }
func (q *Quiz) Current() int { return q.current }
func (q *Quiz) ShowingResults() bool { return q.showResults }
func (q *Quiz) IsLast() bool { return q.current == len(q.questions)-1 }
func (q *Quiz) Question() model.QuizQuestion { return q.questions[q.current] }

// Answer returns the option chosen for question i.
func (q *Quiz) Answer(i int) (int, bool) {
	if i < 0 || i >= len(q.answers) || q.answers[i] == unanswered {
		return 0, false
	}
	return q.answers[i], true
}

// Select records an answer for the current question, replacing any
// previous one. Out of range options are ignored.
func (q *Quiz) Select(option int) bool {
	if q.showResults || len(q.questions) == 0 {
		return false
	}
	if option < 0 || option >= len(q.questions[q.current].Options) {
		return false
	}
	q.answers[q.current] = option
	return true
}

// CanNext is false exactly while the current question is unanswered.
func (q *Quiz) CanNext() bool {
	return !q.showResults && len(q.questions) > 0 && q.answers[q.current] != unanswered
}

// CanPrev is false on the first question.
func (q *Quiz) CanPrev() bool {
	return !q.showResults && q.current > 0
}

// Next advances, or shows results after the last question.
func (q *Quiz) Next() {
	if !q.CanNext() {
		return
	}
	if q.IsLast() {
		q.showResults = true
		return
	}
	q.current++
}

// Prev goes back one question.
func (q *Quiz) Prev() {
	if q.CanPrev() {
		q.current--
	}
}

// CorrectCount counts given answers equal to the question's correct answer.
func (q *Quiz) CorrectCount() int {
	correct := 0
	for i, question := range q.questions {
		if q.answers[i] != unanswered && q.answers[i] == question.CorrectAnswer {
			correct++
		}
	}
	return correct
}

// Score is the rounded percentage of correct answers, 0 for an empty quiz.
func (q *Quiz) Score() int {
	if len(q.questions) == 0 {
		return 0
	}
	return int(math.Round(float64(q.CorrectCount()) / float64(len(q.questions)) * 100))
}

// Passed reports whether the score reaches PassingScore.
func (q *Quiz) Passed() bool {
	return q.Score() >= PassingScore
}

// QuestionResult is the review of one answered question.
type QuestionResult struct {
	Number        int
	Question      string
	Chosen        string
	Correct       bool
	CorrectOption string
	Explanation   string
}

// Results lists every question with the learner's answer.
func (q *Quiz) Results() []QuestionResult {
	results := make([]QuestionResult, 0, len(q.questions))
	for i, question := range q.questions {
		results = append(results, QuestionResult{
			Number:        i + 1,
			Question:      question.Question,
			Chosen:        optionText(question, q.answers[i]),
			Correct:       q.answers[i] != unanswered && q.answers[i] == question.CorrectAnswer,
			CorrectOption: optionText(question, question.CorrectAnswer),
			Explanation:   question.Explanation,
		})
	}
	return results
}

func optionText(q model.QuizQuestion, i int) string {
	if i < 0 || i >= len(q.Options) {
		return ""
	}
	return q.Options[i]
}
