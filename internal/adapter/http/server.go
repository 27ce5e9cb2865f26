// Package adapthttp is the driving HTTP adapter that routes requests to
// the plan service.
package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"mealplanner/internal/app"
)

// PlanRenderer converts plan text and a title into a downloadable
// document byte stream.
type PlanRenderer interface {
	Render(text, title string) ([]byte, error)
}

// Server routes requests to the plan service and serves the submission
// form from the web dir.
type Server struct {
	plans    *app.PlanService
	renderer PlanRenderer
	webDir   string
}

// New creates a Server wired to the given service and renderer.
func New(ps *app.PlanService, r PlanRenderer, webDir string) *Server {
	return &Server{plans: ps, renderer: r, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/macros", s.handleMacros).Methods(http.MethodPost)
	api.HandleFunc("/plans", s.handleGeneratePlan).Methods(http.MethodPost)
	api.HandleFunc("/plans", s.handleRecentPlans).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id}/pdf", s.handlePlanPDF).Methods(http.MethodGet)

	// Anything that is not an API route falls through to the form; a
	// catch-all route would also swallow method mismatches on /api paths.
	r.NotFoundHandler = formFromDisk(s.webDir)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return s.loggingMiddleware(withNoCache(c.Handler(r)))
}
