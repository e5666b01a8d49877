package server

import (
	"context"
	"log"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/gorilla/mux"

	"github.com/pep299/learntube/internal/application"
	"github.com/pep299/learntube/internal/transport/middleware"
)

// Version is reported by the health endpoint of function deployments.
var Version = "dev"

// NewRouter wires the JSON API and the course pages onto one router.
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Logging)

	// API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.CORS)

	api.Handle("/health", app.HealthHandler).Methods("GET")

	generate := middleware.Auth(app.Config.APIAuthToken)(
		middleware.RateLimit(app.Config.RateLimitPerMinute)(app.GenerateHandler),
	)
	api.Handle("/generate-course", generate).Methods("POST", "OPTIONS")

	// Course pages
	p := app.Pages
	r.HandleFunc("/", p.Home).Methods("GET")
	r.Handle("/courses", middleware.RateLimit(app.Config.RateLimitPerMinute)(http.HandlerFunc(p.Create))).Methods("POST")

	course := r.PathPrefix("/courses/{id}").Subrouter()
	course.HandleFunc("", p.Show).Methods("GET")
	course.HandleFunc("/tab", p.SelectTab).Methods("POST")
	course.HandleFunc("/points/{chapter:[0-9]+}/{point:[0-9]+}/toggle", p.TogglePoint).Methods("POST")
	course.HandleFunc("/points/{chapter:[0-9]+}/{point:[0-9]+}/learn", p.LearnPoint).Methods("POST")
	course.HandleFunc("/concepts/{index:[0-9]+}/toggle", p.ToggleConcept).Methods("POST")
	course.HandleFunc("/quiz/answer", p.AnswerQuiz).Methods("POST")
	course.HandleFunc("/quiz/next", p.NextQuestion).Methods("POST")
	course.HandleFunc("/quiz/prev", p.PrevQuestion).Methods("POST")
	course.HandleFunc("/quiz/reset", p.ResetQuiz).Methods("POST")
	course.HandleFunc("/commands/copy", p.CopyCommand).Methods("POST")

	r.NotFoundHandler = http.HandlerFunc(p.NotFound)

	return r
}

// CreateHandler creates the main HTTP handler for the application
func CreateHandler(version string) (http.Handler, func(), error) {
	// Create application (handles all DI and business logic)
	app, err := application.New(context.Background(), version)
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	// Return handler and cleanup function
	cleanup := func() {
		if err := app.Close(); err != nil {
			log.Printf("Error closing application: %v", err)
		}
	}

	return NewRouter(app), cleanup, nil
}

var (
	functionOnce    sync.Once
	functionHandler http.Handler
	functionErr     error
)

// HandleRequest handles a single HTTP request (for Cloud Functions). The
// application is built on the first request and reused by the instance so
// presentation sessions survive between requests.
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	functionOnce.Do(func() {
		functionHandler, _, functionErr = CreateHandler(Version)
	})
	if functionErr != nil {
		log.Printf("Failed to create handler: %v\nStack:\n%s", functionErr, debug.Stack())
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	functionHandler.ServeHTTP(w, r)
}
