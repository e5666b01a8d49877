package service

import (
	"encoding/json"
	"strings"

	"github.com/pep299/learntube/internal/model"
)

// stripCodeFence removes a markdown code fence the model may wrap its
// answer in despite being told not to.
func stripCodeFence(content string) string {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseCourse decodes model output into a course. Syntax and type errors
// both mean the model did not follow the schema.
func parseCourse(content string) (*model.Course, error) {
	var course model.Course
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &course); err != nil {
		return nil, newError(KindMalformedResponse, "Invalid JSON response from AI: "+err.Error(), err)
	}
	return &course, nil
}
