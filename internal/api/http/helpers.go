package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/digital-aware/portal/internal/assignment"
	"github.com/digital-aware/portal/internal/catalog"
	"github.com/digital-aware/portal/internal/portal"
	"github.com/digital-aware/portal/internal/quiz"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps domain errors onto HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound),
		errors.Is(err, assignment.ErrNotFound),
		errors.Is(err, portal.ErrResultNotFound),
		errors.Is(err, portal.ErrAttemptNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, quiz.ErrNoQuiz):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, quiz.ErrScoreRange),
		errors.Is(err, quiz.ErrAnswerMissing),
		errors.Is(err, quiz.ErrAlreadyAnswered),
		errors.Is(err, quiz.ErrUnknownOption),
		errors.Is(err, quiz.ErrFinished),
		errors.Is(err, quiz.ErrNotFinished),
		errors.Is(err, assignment.ErrGradeRange),
		errors.Is(err, assignment.ErrBadDataURL),
		errors.Is(err, portal.ErrModuleExists):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
