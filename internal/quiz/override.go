package quiz

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/digital-aware/portal/internal/catalog"
)

var (
	ErrScoreRange    = errors.New("score out of range [0,100]")
	ErrAnswerMissing = errors.New("edited answers missing a question")
)

// Student identifies who took an attempt. The portal trusts this pair as-is;
// it carries no authentication weight of its own.
type Student struct {
	ID   string
	Name string
}

// Finalize turns a finished attempt into a stored Result with a
// system-computed score. It is the only way a Result comes into existence.
func Finalize(m catalog.Module, a *Attempt, s Student) (Result, error) {
	if !a.Finished() {
		return Result{}, ErrNotFinished
	}
	return Result{
		ID:          uuid.NewString(),
		StudentID:   s.ID,
		StudentName: s.Name,
		ModuleID:    m.ID,
		Score:       Score(m.Questions, a.Answers()),
		Timestamp:   time.Now().UTC(),
		Answers:     a.Answers(),
	}, nil
}

// OverrideScore replaces the aggregate score with a teacher-set value,
// leaving the per-question records untouched. The range invariant is
// enforced here rather than trusted to the caller's input control.
// A non-empty feedback replaces the stored feedback.
func OverrideScore(r Result, newScore float64, feedback string) (Result, error) {
	if newScore < 0 || newScore > 100 {
		return Result{}, fmt.Errorf("%w: %v", ErrScoreRange, newScore)
	}
	r.Score = newScore
	r.IsManualOverride = true
	if feedback != "" {
		r.Feedback = feedback
	}
	return r, nil
}

// OverrideAnswers applies teacher-edited per-question point awards and
// recomputes the aggregate from them. Every question of the module must have
// a matching edited record; a missing one fails the whole operation so the
// previous score is preserved rather than silently zeroed. Edited points are
// clamped to [0, question.Points].
func OverrideAnswers(r Result, m catalog.Module, edited []AnswerRecord) (Result, error) {
	byQ := make(map[string]AnswerRecord, len(edited))
	for _, a := range edited {
		byQ[a.QuestionID] = a
	}
	revised := make([]AnswerRecord, 0, len(m.Questions))
	for _, q := range m.Questions {
		rec, ok := byQ[q.ID]
		if !ok {
			return Result{}, fmt.Errorf("%w: %s", ErrAnswerMissing, q.ID)
		}
		if rec.EarnedPoints < 0 {
			rec.EarnedPoints = 0
		}
		if rec.EarnedPoints > q.Points {
			rec.EarnedPoints = q.Points
		}
		revised = append(revised, rec)
	}
	r.Answers = revised
	r.Score = Score(m.Questions, revised)
	r.IsManualOverride = true
	return r, nil
}
