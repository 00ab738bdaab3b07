package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digital-aware/portal/internal/catalog"
	"github.com/digital-aware/portal/internal/portal"
	"github.com/digital-aware/portal/internal/quiz"
)

// gradingItem pairs a question with the student's recorded answer so the
// teacher UI can edit per-question points next to the full question text.
type gradingItem struct {
	Question catalog.Question   `json:"question"`
	Answer   *quiz.AnswerRecord `json:"answer,omitempty"`
}

// GET /results/{resultID}/grading
func GetResultGradingHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Result(chi.URLParam(r, "resultID"))
		if err != nil {
			writeErr(w, err)
			return
		}
		m, err := svc.Module(res.ModuleID)
		if err != nil {
			writeErr(w, err)
			return
		}
		byQ := make(map[string]quiz.AnswerRecord, len(res.Answers))
		for _, a := range res.Answers {
			byQ[a.QuestionID] = a
		}
		items := make([]gradingItem, 0, len(m.Questions))
		for _, q := range m.Questions {
			it := gradingItem{Question: q}
			if a, ok := byQ[q.ID]; ok {
				rec := a
				it.Answer = &rec
			}
			items = append(items, it)
		}
		writeJSON(w, items)
	}
}

// POST /results/{resultID}/score  { "score": 88, "feedback": "Good effort" }
func OverrideScoreHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Score    float64 `json:"score"`
			Feedback string  `json:"feedback"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		res, err := svc.OverrideResultScore(r.Context(), chi.URLParam(r, "resultID"), req.Score, req.Feedback)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// POST /results/{resultID}/answers  { "answers": [ {question_id, selected_option_id, is_correct, earned_points}, ... ] }
func OverrideAnswersHandler(svc *portal.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers []quiz.AnswerRecord `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		res, err := svc.OverrideResultAnswers(r.Context(), chi.URLParam(r, "resultID"), req.Answers)
		if err != nil {
			writeErr(w, err)
			return
		}
		writeJSON(w, res)
	}
}
