package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pep299/learntube/internal/mocks"
	"github.com/pep299/learntube/internal/service"
)

const testVideoURL = "https://youtu.be/dQw4w9WgXcQ"

func newTestGenerator(completion *mocks.MockCompletionRepo, hasCredential bool) *service.CourseService {
	transcripts := mocks.NewMockTranscriptRepo(mocks.Words(80), mocks.Words(80))
	return service.NewCourseService(transcripts, completion, nil, hasCredential)
}

func postGenerate(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate-course", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestGenerate_Success(t *testing.T) {
	completion := &mocks.MockCompletionRepo{Response: "```json\n" + mocks.CourseJSON + "\n```"}
	h := NewGenerate(newTestGenerator(completion, true))

	w, body := postGenerate(t, h, `{"url":"`+testVideoURL+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "dQw4w9WgXcQ", body["videoId"])
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", body["videoThumbnail"])

	course, ok := body["course"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Getting Started with Git", course["title"])

	chapters := course["chapters"].([]any)
	points := chapters[0].(map[string]any)["keyPoints"].([]any)
	assert.Equal(t, "Why version control matters", points[0], "plain key points stay strings")
	assert.Equal(t, "Install Git", points[1].(map[string]any)["title"])
}

func TestGenerate_CourseBodyMatchesModelOutput(t *testing.T) {
	courseJSON := `{"title":"t","description":"d","chapters":[{"title":"c","content":"x","keyPoints":[{"title":"q","example":""}]}],"keyConcepts":["k"],"summary":"s"}`
	completion := &mocks.MockCompletionRepo{Response: courseJSON}
	h := NewGenerate(newTestGenerator(completion, true))

	req := httptest.NewRequest("POST", "/api/generate-course", strings.NewReader(`{"url":"`+testVideoURL+`"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Course json.RawMessage `json:"course"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, courseJSON, string(body.Course))
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		completion    *mocks.MockCompletionRepo
		hasCredential bool
		wantStatus    int
		wantError     string
	}{
		{
			name:          "invalid json",
			body:          `{"url":`,
			completion:    &mocks.MockCompletionRepo{},
			hasCredential: true,
			wantStatus:    http.StatusBadRequest,
			wantError:     "Invalid JSON",
		},
		{
			name:          "missing url",
			body:          `{}`,
			completion:    &mocks.MockCompletionRepo{},
			hasCredential: true,
			wantStatus:    http.StatusBadRequest,
			wantError:     "URL is required",
		},
		{
			name:          "invalid url",
			body:          `{"url":"https://example.com/video"}`,
			completion:    &mocks.MockCompletionRepo{},
			hasCredential: true,
			wantStatus:    http.StatusBadRequest,
			wantError:     "Invalid YouTube URL",
		},
		{
			name:          "missing credential",
			body:          `{"url":"` + testVideoURL + `"}`,
			completion:    &mocks.MockCompletionRepo{},
			hasCredential: false,
			wantStatus:    http.StatusBadRequest,
			wantError:     "OpenAI API key is required to generate course content. Please add your API key to the environment variables.",
		},
		{
			name:          "completion failure",
			body:          `{"url":"` + testVideoURL + `"}`,
			completion:    &mocks.MockCompletionRepo{Err: errors.New("upstream 503")},
			hasCredential: true,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Could not generate course content: upstream 503",
		},
		{
			name:          "malformed completion",
			body:          `{"url":"` + testVideoURL + `"}`,
			completion:    &mocks.MockCompletionRepo{Response: "not json"},
			hasCredential: true,
			wantStatus:    http.StatusInternalServerError,
			wantError:     "Invalid JSON response from AI: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewGenerate(newTestGenerator(tt.completion, tt.hasCredential))

			w, body := postGenerate(t, h, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Len(t, body, 1, "error bodies carry only the error field")
			assert.True(t, strings.HasPrefix(body["error"].(string), tt.wantError), "got %q", body["error"])
		})
	}
}

func TestGenerate_TranscriptUnavailable(t *testing.T) {
	transcripts := mocks.NewMockTranscriptRepo()
	transcripts.Err = errors.New("transcript is disabled on this video")
	completion := &mocks.MockCompletionRepo{}
	h := NewGenerate(service.NewCourseService(transcripts, completion, nil, true))

	w, body := postGenerate(t, h, `{"url":"`+testVideoURL+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Could not fetch transcript: Could not fetch video transcript: transcript is disabled on this video", body["error"])
	assert.Equal(t, 0, completion.Calls)
}

func TestHealth(t *testing.T) {
	h := NewHealth("v1.2.3")
	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %v", body["status"])
	}
	if body["version"] != "v1.2.3" {
		t.Errorf("Expected version 'v1.2.3', got %v", body["version"])
	}
	if _, ok := body["timestamp"].(float64); !ok {
		t.Errorf("Expected numeric timestamp, got %T", body["timestamp"])
	}
}
