package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep299/learntube/internal/lookup"
	"github.com/pep299/learntube/internal/model"
)

const testThumb = "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg"

func newTestSession(t *testing.T) *Session {
	t.Helper()
	sess := NewSession("sess-1", testCourse(t), "dQw4w9WgXcQ", testThumb)
	t.Cleanup(sess.Close)
	return sess
}

func TestBuildPage_OnlyActiveTab(t *testing.T) {
	sess := newTestSession(t)

	page := sess.Page()
	assert.Equal(t, "sess-1", page.SessionID)
	assert.Equal(t, "Getting Started with Git", page.Title)
	assert.Equal(t, testThumb, page.Thumbnail)
	assert.Equal(t, TabContent, page.ActiveTab)
	require.Len(t, page.Tabs, 5)
	assert.True(t, page.Tabs[0].Active)
	assert.Equal(t, "Course Content", page.Tabs[0].Label)

	assert.NotEmpty(t, page.Content)
	assert.Nil(t, page.Learn)
	assert.Nil(t, page.Quiz)
	assert.Empty(t, page.Concepts)
	assert.Empty(t, page.Summary)

	sess.Update(func(st *State) { st.SetTab(TabSummary) })
	page = sess.Page()
	assert.Equal(t, "You installed git.", page.Summary)
	assert.Empty(t, page.Content)
}

func TestBuildPage_Content(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) { st.TogglePoint(0, 0) })

	page := sess.Page()
	require.Len(t, page.Content, 1)
	points := page.Content[0].Points
	require.Len(t, points, 2)

	assert.Equal(t, "Why version control matters", points[0].Title)
	assert.True(t, points[0].Expanded)
	assert.Equal(t, lookup.Explain("Why version control matters"), points[0].Explanation)

	assert.Equal(t, "Install Git", points[1].Title, "detailed points show their title")
	assert.False(t, points[1].Expanded)
	assert.Empty(t, points[1].Explanation)
}

func TestBuildPage_Learn(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) { st.LearnPoint(0, 1) })

	page := sess.Page()
	require.NotNil(t, page.Learn)
	assert.True(t, page.Learn.HasFocus)
	assert.Equal(t, 1, page.Learn.FocusChapter)

	require.Len(t, page.Learn.Modules, 1)
	module := page.Learn.Modules[0]
	assert.True(t, module.Focused)
	assert.Equal(t, 1, module.Number)
	assert.Equal(t, 1, module.Total)
	assert.Equal(t, []bool{true}, module.Progress)

	require.Len(t, module.Points, 2)

	plain := module.Points[0]
	assert.False(t, plain.Detailed)
	assert.False(t, plain.Focused)
	assert.Empty(t, plain.Thumbnail)
	assert.Equal(t, lookup.Explain("Why version control matters"), plain.CoreConcept)

	detailed := module.Points[1]
	assert.True(t, detailed.Detailed)
	assert.True(t, detailed.Focused)
	assert.Equal(t, testThumb, detailed.Thumbnail)
	require.Len(t, detailed.Steps, 3)
	assert.Equal(t, "Download the installer", detailed.Steps[0].Text)

	require.NotNil(t, detailed.Steps[0].Image)
	assert.Equal(t, lookup.StepImageURL("git download", 0), detailed.Steps[0].Image.URL)
	assert.Equal(t, "Download page", detailed.Steps[0].Image.Caption)
	assert.Nil(t, detailed.Steps[1].Image, "only steps with a positional image get one")

	require.Len(t, detailed.Commands, 2)
	assert.False(t, detailed.Commands[0].Copied)
	require.Len(t, detailed.Links, 1)
	assert.Equal(t, "📚", detailed.Links[0].Icon)
}

func TestBuildPage_LearnWithoutFocus(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) { st.SetTab(TabLearn) })

	page := sess.Page()
	require.NotNil(t, page.Learn)
	assert.False(t, page.Learn.HasFocus)
	assert.False(t, page.Learn.Modules[0].Focused)
	for _, p := range page.Learn.Modules[0].Points {
		assert.False(t, p.Focused)
		assert.Empty(t, p.Thumbnail)
	}
}

func TestBuildPage_CopiedCommand(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) {
		st.SetTab(TabLearn)
		st.Copied().Acknowledge("git --version")
	})

	cmds := sess.Page().Learn.Modules[0].Points[1].Commands
	assert.True(t, cmds[0].Copied)
	assert.False(t, cmds[1].Copied)
}

func TestStepImage(t *testing.T) {
	t.Run("defaults when empty", func(t *testing.T) {
		img := stepImage(model.StepImage{}, 2)
		assert.Equal(t, lookup.StepImageURL(defaultImageQuery, 2), img.URL)
		assert.Equal(t, "Step 3 example", img.Alt)
		assert.Equal(t, "Example visualization for step 3", img.Caption)
		assert.Equal(t, "https://via.placeholder.com/600x400/4F46E5/FFFFFF?text=Step%203", img.FallbackURL)
	})

	t.Run("uses description", func(t *testing.T) {
		img := stepImage(model.StepImage{Description: "Open terminal & type", SearchQuery: "terminal"}, 0)
		assert.Equal(t, "Open terminal & type", img.Alt)
		assert.True(t, strings.HasSuffix(img.FallbackURL, "?text=Open%20terminal%20%26%20type"))
	})
}

func TestBuildPage_Concepts(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) {
		st.SetTab(TabConcepts)
		st.ToggleConcept(1)
	})

	cards := sess.Page().Concepts
	require.Len(t, cards, 2)
	assert.False(t, cards[0].Expanded)
	assert.Empty(t, cards[0].Explanation)
	assert.True(t, cards[1].Expanded)
	assert.Equal(t, lookup.Explain("AI integration"), cards[1].Explanation)
}

func TestBuildPage_Quiz(t *testing.T) {
	sess := newTestSession(t)
	sess.Update(func(st *State) { st.SetTab(TabQuiz) })

	view := sess.Page().Quiz
	require.NotNil(t, view)
	assert.Equal(t, 1, view.Number)
	assert.Equal(t, 1, view.Total)
	assert.Equal(t, float64(100), view.ProgressPercent)
	assert.Equal(t, "Finish Quiz", view.NextLabel)
	assert.False(t, view.CanNext)
	require.Len(t, view.Options, 4)

	sess.Update(func(st *State) { st.Quiz().Select(1) })
	view = sess.Page().Quiz
	assert.True(t, view.Options[1].Selected)
	assert.True(t, view.CanNext)

	sess.Update(func(st *State) { st.Quiz().Next() })
	view = sess.Page().Quiz
	assert.True(t, view.ShowResults)
	assert.Equal(t, 100, view.Score)
	assert.True(t, view.Passed)
}

func TestBuildPage_EmptyQuiz(t *testing.T) {
	course := testCourse(t)
	course.Quiz = nil
	sess := NewSession("s", course, "dQw4w9WgXcQ", testThumb)
	defer sess.Close()
	sess.Update(func(st *State) { st.SetTab(TabQuiz) })

	view := sess.Page().Quiz
	require.NotNil(t, view)
	assert.True(t, view.Empty)
}
