package adapthttp

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"mealplanner/internal/app"
	"mealplanner/internal/domain"
)

// pdfContentType is the fixed media type of the produced document.
const pdfContentType = "application/pdf"

// pdfFilename is the download name offered to the end user.
const pdfFilename = "meal_plan.pdf"

func (s *Server) handleMacros(w http.ResponseWriter, r *http.Request) {
	var in domain.CalculationInput
	if err := parseJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	macros, err := s.plans.Calculate(in)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"macros": macros})
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		domain.CalculationInput
		Preferences domain.PlanPreferences `json:"preferences"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	macros, rec, err := s.plans.GeneratePlan(r.Context(), body.CalculationInput, body.Preferences)
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err)
	case errors.Is(err, app.ErrPlanGeneration):
		// The external call failed, but the macros were already computed;
		// keep them in the payload so the caller can still display them.
		writeJSON(w, http.StatusBadGateway, map[string]any{
			"macros": macros,
			"error":  err.Error(),
		})
	case err != nil:
		writeError(w, http.StatusInternalServerError, err)
	default:
		writeJSON(w, http.StatusOK, map[string]any{"macros": macros, "plan": rec})
	}
}

func (s *Server) handleRecentPlans(w http.ResponseWriter, r *http.Request) {
	limit := intQuery(r, "limit", 20)
	items, err := s.plans.RecentPlans(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handlePlanPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := s.plans.PlanByID(r.Context(), id)
	if errors.Is(err, app.ErrPlanNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	doc, err := s.renderer.Render(rec.PlanText, rec.Title)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", pdfContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfFilename))
	w.Header().Set("Content-Length", fmt.Sprint(len(doc)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
