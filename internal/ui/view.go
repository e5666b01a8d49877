package ui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pep299/learntube/internal/lookup"
	"github.com/pep299/learntube/internal/model"
)

const defaultImageQuery = "development interface"

// Page is the view model for one render of a course page. Only the view
// for the active tab is populated.
type Page struct {
	SessionID   string
	Title       string
	Description string
	Thumbnail   string
	ActiveTab   Tab
	Tabs        []TabLink

	Content  []ContentChapter
	Learn    *LearnView
	Concepts []ConceptCard
	Summary  string
	Quiz     *QuizView
}

type TabLink struct {
	Tab    Tab
	Label  string
	Active bool
}

type ContentChapter struct {
	Index   int
	Title   string
	Content string
	Points  []ContentPoint
}

type ContentPoint struct {
	ChapterIndex int
	PointIndex   int
	Title        string
	Expanded     bool
	Explanation  string
}

type LearnView struct {
	HasFocus     bool
	FocusChapter int
	Modules      []LearnModule
}

type LearnModule struct {
	Index     int
	Number    int
	Total     int
	Title     string
	Objective string
	Focused   bool
	Points    []LearnPoint
	Progress  []bool
}

type LearnPoint struct {
	Number    int
	Title     string
	Focused   bool
	Thumbnail string
	Detailed  bool

	Steps           []LearnStep
	Commands        []CommandView
	Example         string
	TryThis         string
	Troubleshooting string
	Links           []LinkView

	CoreConcept string
}

type LearnStep struct {
	Number int
	Text   string
	Image  *StepImageView
}

type StepImageView struct {
	URL         string
	FallbackURL string
	Alt         string
	Caption     string
}

type CommandView struct {
	Text   string
	Copied bool
}

type LinkView struct {
	Title       string
	URL         string
	Description string
	Icon        string
}

type ConceptCard struct {
	Index       int
	Text        string
	Expanded    bool
	Explanation string
}

type QuizView struct {
	Empty bool

	// In progress
	Number          int
	Total           int
	ProgressPercent float64
	Question        string
	Options         []QuizOption
	CanPrev         bool
	CanNext         bool
	NextLabel       string

	// Finished
	ShowResults  bool
	Score        int
	CorrectCount int
	Passed       bool
	Results      []QuestionResult
}

type QuizOption struct {
	Index    int
	Text     string
	Selected bool
}

// BuildPage assembles the view model for sess in state st.
func BuildPage(sess *Session, st *State) *Page {
	course := sess.Course
	page := &Page{
		SessionID:   sess.ID,
		Title:       course.Title,
		Description: course.Description,
		Thumbnail:   sess.Thumbnail,
		ActiveTab:   st.Tab(),
	}
	for _, tl := range tabLabels {
		page.Tabs = append(page.Tabs, TabLink{Tab: tl.tab, Label: tl.label, Active: tl.tab == st.Tab()})
	}

	switch st.Tab() {
	case TabContent:
		page.Content = buildContent(course, st)
	case TabLearn:
		page.Learn = buildLearn(course, st, sess.Thumbnail)
	case TabConcepts:
		page.Concepts = buildConcepts(course, st)
	case TabSummary:
		page.Summary = course.Summary
	case TabQuiz:
		page.Quiz = buildQuiz(st.Quiz())
	}
	return page
}

func buildContent(course *model.Course, st *State) []ContentChapter {
	chapters := make([]ContentChapter, 0, len(course.Chapters))
	for ci, ch := range course.Chapters {
		cc := ContentChapter{Index: ci, Title: ch.Title, Content: ch.Content}
		for pi, kp := range ch.KeyPoints {
			point := ContentPoint{
				ChapterIndex: ci,
				PointIndex:   pi,
				Title:        kp.Title(),
				Expanded:     st.PointExpanded(ci, pi),
			}
			if point.Expanded {
				point.Explanation = lookup.Explain(point.Title)
			}
			cc.Points = append(cc.Points, point)
		}
		chapters = append(chapters, cc)
	}
	return chapters
}

func buildLearn(course *model.Course, st *State, thumbnail string) *LearnView {
	focus, hasFocus := st.Focus()
	view := &LearnView{HasFocus: hasFocus, FocusChapter: focus.ChapterIndex + 1}

	total := len(course.Chapters)
	for ci, ch := range course.Chapters {
		module := LearnModule{
			Index:     ci,
			Number:    ci + 1,
			Total:     total,
			Title:     ch.Title,
			Objective: ch.Content,
			Focused:   hasFocus && focus.ChapterIndex == ci,
			Progress:  make([]bool, total),
		}
		module.Progress[ci] = true

		for pi, kp := range ch.KeyPoints {
			focused := module.Focused && focus.PointIndex == pi
			module.Points = append(module.Points, buildLearnPoint(kp, pi, focused, thumbnail, st.Copied()))
		}
		view.Modules = append(view.Modules, module)
	}
	return view
}

func buildLearnPoint(kp model.KeyPoint, index int, focused bool, thumbnail string, copied *CopyAck) LearnPoint {
	point := LearnPoint{
		Number:  index + 1,
		Title:   kp.Title(),
		Focused: focused,
	}
	if focused {
		point.Thumbnail = thumbnail
	}

	detail, ok := kp.Detail()
	if !ok {
		point.CoreConcept = lookup.Explain(point.Title)
		return point
	}

	point.Detailed = true
	point.Example = detail.Example
	point.TryThis = detail.TryThis
	point.Troubleshooting = detail.Troubleshooting

	for si, step := range detail.Steps {
		ls := LearnStep{Number: si + 1, Text: step}
		// stepImages is matched to steps by position, not by its stepIndex field.
		if si < len(detail.StepImages) {
			ls.Image = stepImage(detail.StepImages[si], si)
		}
		point.Steps = append(point.Steps, ls)
	}

	for _, cmd := range detail.Commands {
		point.Commands = append(point.Commands, CommandView{Text: cmd, Copied: copied.IsCopied(cmd)})
	}

	for _, link := range detail.ResourceLinks {
		icon, _ := lookup.LinkIcon(link.Type)
		point.Links = append(point.Links, LinkView{
			Title:       link.Title,
			URL:         link.URL,
			Description: link.Description,
			Icon:        icon,
		})
	}
	return point
}

func stepImage(img model.StepImage, stepIndex int) *StepImageView {
	query := img.SearchQuery
	if query == "" {
		query = defaultImageQuery
	}

	alt := img.Description
	if alt == "" {
		alt = fmt.Sprintf("Step %d example", stepIndex+1)
	}
	caption := img.Description
	if caption == "" {
		caption = fmt.Sprintf("Example visualization for step %d", stepIndex+1)
	}
	placeholderText := img.Description
	if placeholderText == "" {
		placeholderText = fmt.Sprintf("Step %d", stepIndex+1)
	}

	return &StepImageView{
		URL:         lookup.StepImageURL(query, stepIndex),
		FallbackURL: "https://via.placeholder.com/600x400/4F46E5/FFFFFF?text=" + strings.ReplaceAll(url.QueryEscape(placeholderText), "+", "%20"),
		Alt:         alt,
		Caption:     caption,
	}
}

func buildConcepts(course *model.Course, st *State) []ConceptCard {
	cards := make([]ConceptCard, 0, len(course.KeyConcepts))
	for i, concept := range course.KeyConcepts {
		card := ConceptCard{Index: i, Text: concept, Expanded: st.ConceptExpanded(i)}
		if card.Expanded {
			card.Explanation = lookup.Explain(concept)
		}
		cards = append(cards, card)
	}
	return cards
}

func buildQuiz(q *Quiz) *QuizView {
	if q.Len() == 0 {
		return &QuizView{Empty: true}
	}

	if q.ShowingResults() {
		return &QuizView{
			ShowResults:  true,
			Total:        q.Len(),
			Score:        q.Score(),
			CorrectCount: q.CorrectCount(),
			Passed:       q.Passed(),
			Results:      q.Results(),
		}
	}

	question := q.Question()
	chosen, answered := q.Answer(q.Current())
	view := &QuizView{
		Number:          q.Current() + 1,
		Total:           q.Len(),
		ProgressPercent: float64(q.Current()+1) / float64(q.Len()) * 100,
		Question:        question.Question,
		CanPrev:         q.CanPrev(),
		CanNext:         q.CanNext(),
		NextLabel:       "Next Question",
	}
	if q.IsLast() {
		view.NextLabel = "Finish Quiz"
	}
	for i, opt := range question.Options {
		view.Options = append(view.Options, QuizOption{Index: i, Text: opt, Selected: answered && chosen == i})
	}
	return view
}
