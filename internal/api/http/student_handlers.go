package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/digital-aware/portal/internal/portal"
	"github.com/digital-aware/portal/internal/quiz"
	"github.com/digital-aware/portal/internal/rbac"
)

func studentFromContext(r *http.Request) quiz.Student {
	return quiz.Student{
		ID:   rbac.SubjectFromContext(r.Context()),
		Name: rbac.NameFromContext(r.Context()),
	}
}

// GET /modules
func ListModulesHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Modules())
	}
}

// GET /modules/{moduleID}
func GetModuleHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Module(chi.URLParam(r, "moduleID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, m)
	}
}

// POST /modules/{moduleID}/quiz  — start an attempt
func StartQuizHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.StartQuiz(studentFromContext(r), chi.URLParam(r, "moduleID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, v)
	}
}

// POST /attempts/{attemptID}/answer  { "option_id": "b" }
func SubmitAnswerHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			OptionID string `json:"option_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		fb, err := svc.SubmitAnswer(chi.URLParam(r, "attemptID"), req.OptionID)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, fb)
	}
}

// POST /attempts/{attemptID}/finish
func FinishQuizHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.FinishQuiz(r.Context(), chi.URLParam(r, "attemptID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// GET /results?student_id=...&module_id=...
// Callers without result:view-all are forced onto their own student ID.
func ListResultsHandler(svc *portal.Service) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		studentID := strings.TrimSpace(r.URL.Query().Get("student_id"))
		moduleID := strings.TrimSpace(r.URL.Query().Get("module_id"))
		if !checker.Has(rbac.RoleFromContext(r.Context()), "result:view-all") {
			studentID = rbac.SubjectFromContext(r.Context())
		}
		writeJSON(w, svc.Results(studentID, moduleID))
	}
}

// POST /modules/{moduleID}/assignments  { "file_name": "...", "data_url": "data:..;base64,..." }
func UploadAssignmentHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FileName string `json:"file_name"`
			DataURL  string `json:"data_url"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.FileName == "" || req.DataURL == "" {
			http.Error(w, "file_name and data_url required", http.StatusBadRequest)
			return
		}
		a, err := svc.UploadAssignment(r.Context(), studentFromContext(r), chi.URLParam(r, "moduleID"), req.FileName, req.DataURL)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, a)
	}
}

// GET /assignments?module_id=...&student_id=...
func ListAssignmentsHandler(svc *portal.Service) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		moduleID := strings.TrimSpace(r.URL.Query().Get("module_id"))
		studentID := strings.TrimSpace(r.URL.Query().Get("student_id"))
		if !checker.Has(rbac.RoleFromContext(r.Context()), "assignment:view-all") {
			studentID = rbac.SubjectFromContext(r.Context())
		}
		writeJSON(w, svc.Assignments(moduleID, studentID))
	}
}

// GET /assignments/{assignmentID}/file
func AssignmentFileHandler(svc *portal.Service) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		rc, a, err := svc.OpenAssignmentFile(chi.URLParam(r, "assignmentID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		defer rc.Close()
		if !checker.Has(rbac.RoleFromContext(r.Context()), "assignment:view-all") &&
			a.StudentID != rbac.SubjectFromContext(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if a.ContentType != "" {
			w.Header().Set("Content-Type", a.ContentType)
		}
		w.Header().Set("Content-Disposition", `attachment; filename="`+a.FileName+`"`)
		_, _ = io.Copy(w, rc)
	}
}

// DELETE /assignments/{assignmentID}
func DeleteAssignmentHandler(svc *portal.Service) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assignmentID")
		if !checker.Has(rbac.RoleFromContext(r.Context()), "assignment:delete-any") {
			a, err := svc.Assignment(id)
			if err != nil {
				writeErr(w, err)
				return
			}
			if a.StudentID != rbac.SubjectFromContext(r.Context()) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
		}
		if err := svc.DeleteAssignment(r.Context(), id); err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	}
}
