package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digital-aware/portal/internal/catalog"
	"github.com/digital-aware/portal/internal/portal"
)

// POST /modules
func CreateModuleHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m catalog.Module
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if err := svc.CreateModule(r.Context(), m); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]string{"status": "ok", "id": m.ID})
	}
}

// PUT /modules/{moduleID}
func UpdateModuleHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m catalog.Module
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		m.ID = chi.URLParam(r, "moduleID")
		if err := svc.UpdateModule(r.Context(), m); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]string{"status": "ok", "id": m.ID})
	}
}

// DELETE /modules/{moduleID}
func DeleteModuleHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.DeleteModule(r.Context(), chi.URLParam(r, "moduleID")); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	}
}

// POST /assignments/{assignmentID}/grade  { "grade": 85, "feedback": "..." }
func GradeAssignmentHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Grade    int    `json:"grade"`
			Feedback string `json:"feedback"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		a, err := svc.GradeAssignment(r.Context(), chi.URLParam(r, "assignmentID"), req.Grade, req.Feedback)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}
