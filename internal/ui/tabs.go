package ui

// Tab is one of the five course views.
type Tab string

const (
	TabContent  Tab = "content"
	TabLearn    Tab = "learn"
	TabConcepts Tab = "concepts"
	TabSummary  Tab = "summary"
	TabQuiz     Tab = "quiz"
)

var tabLabels = []struct {
	tab   Tab
	label string
}{
	{TabContent, "Course Content"},
	{TabLearn, "Learn"},
	{TabConcepts, "Key Concepts"},
	{TabSummary, "Summary"},
	{TabQuiz, "Quiz"},
}

// Label returns the tab bar caption.
func (t Tab) Label() string {
	for _, tl := range tabLabels {
		if tl.tab == t {
			return tl.label
		}
	}
	return ""
}

// ParseTab validates a tab name from a request.
func ParseTab(s string) (Tab, bool) {
	for _, tl := range tabLabels {
		if string(tl.tab) == s {
			return tl.tab, true
		}
	}
	return "", false
}
