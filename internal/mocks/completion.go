package mocks

import (
	"context"

	"github.com/pep299/learntube/internal/completion"
)

// Mock Completion Repository
type MockCompletionRepo struct {
	Response   string
	Err        error
	Calls      int
	LastPrompt completion.Prompt
}

func (m *MockCompletionRepo) Complete(ctx context.Context, prompt completion.Prompt) (string, error) {
	m.Calls++
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// CourseJSON is a minimal well formed course as a model would return it.
const CourseJSON = `{
  "title": "Getting Started with Git",
  "description": "Version control basics.",
  "chapters": [
    {
      "title": "Setup",
      "content": "Install git and configure it.",
      "keyPoints": [
        "Why version control matters",
        {
          "title": "Install Git",
          "steps": ["Download the installer", "Run it", "Verify the version"],
          "example": "git --version",
          "commands": ["git --version", "git config --global user.name \"You\""],
          "tryThis": "Configure your email.",
          "troubleshooting": "Restart the terminal if git is not found.",
          "stepImages": [{"stepIndex": 0, "description": "Download page", "searchQuery": "git download"}],
          "resourceLinks": [{"title": "Git docs", "url": "https://git-scm.com/doc", "description": "Reference", "type": "documentation"}]
        }
      ]
    }
  ],
  "keyConcepts": ["Version control", "AI integration"],
  "summary": "You installed git.",
  "quiz": [
    {"question": "Which command shows the version?", "options": ["git -v", "git --version", "git show", "git log"], "correctAnswer": 1, "explanation": "--version prints it."}
  ]
}`
