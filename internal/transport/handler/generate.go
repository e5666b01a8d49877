package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pep299/learntube/internal/model"
	"github.com/pep299/learntube/internal/service"
	"github.com/pep299/learntube/internal/transport/response"
)

// CourseGenerator produces a course from a video URL.
type CourseGenerator interface {
	Generate(ctx context.Context, rawURL string) (*service.GeneratedCourse, error)
}

// Generate serves POST /api/generate-course.
type Generate struct {
	generator CourseGenerator
}

func NewGenerate(generator CourseGenerator) *Generate {
	return &Generate{
		generator: generator,
	}
}

type generateRequest struct {
	URL string `json:"url"`
}

type generateResponse struct {
	Success        bool          `json:"success"`
	Course         *model.Course `json:"course"`
	VideoID        string        `json:"videoId"`
	VideoThumbnail string        `json:"videoThumbnail"`
}

func (h *Generate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "Invalid JSON")
		return
	}

	result, err := h.generator.Generate(r.Context(), req.URL)
	if err != nil {
		response.WriteError(w, service.StatusCode(err), service.Message(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, generateResponse{
		Success:        true,
		Course:         result.Course,
		VideoID:        result.VideoID,
		VideoThumbnail: result.VideoThumbnail,
	})
}
