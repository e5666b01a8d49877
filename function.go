// Package learntube is the Cloud Functions entry point. The whole
// application, JSON API and course pages, is served from one HTTP function.
package learntube

import (
	"log"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/learntube/internal/transport/server"
)

const defaultFunctionTarget = "GenerateCourse"

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		functionTarget = defaultFunctionTarget
	}

	log.Printf("✅ Registering function: %s", functionTarget)
	functions.HTTP(functionTarget, GenerateCourse)
}

// GenerateCourse handles every request routed to the function.
func GenerateCourse(w http.ResponseWriter, r *http.Request) {
	server.HandleRequest(w, r)
}
