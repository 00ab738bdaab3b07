package quiz

import (
	"errors"

	"github.com/digital-aware/portal/internal/catalog"
)

var (
	ErrNoQuiz          = errors.New("module has no quiz")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrNotAnswered     = errors.New("current question not answered yet")
	ErrUnknownOption   = errors.New("selected option not among question options")
	ErrFinished        = errors.New("attempt already finished")
	ErrNotFinished     = errors.New("attempt not finished")
)

// Attempt walks a module's questions as a strict sequential state machine:
// each question must be answered exactly once before advancing, answers
// cannot be revised, and the attempt is finished when the last question has
// been answered and advanced past.
type Attempt struct {
	moduleID string
	qs       []catalog.Question
	index    int
	answered bool
	answers  []AnswerRecord
}

// NewAttempt starts an attempt over the module's question set. A module
// without questions never produces an attempt (ErrNoQuiz); callers must
// branch to a "no quiz available" state instead.
func NewAttempt(m catalog.Module) (*Attempt, error) {
	if !m.HasQuiz() {
		return nil, ErrNoQuiz
	}
	return &Attempt{
		moduleID: m.ID,
		qs:       m.Questions,
		answers:  make([]AnswerRecord, 0, len(m.Questions)),
	}, nil
}

func (a *Attempt) ModuleID() string { return a.moduleID }

// Current returns the question awaiting an answer.
func (a *Attempt) Current() (catalog.Question, error) {
	if a.Finished() {
		return catalog.Question{}, ErrFinished
	}
	return a.qs[a.index], nil
}

// Record captures the student's choice for the current question. The record
// is appended in question order; correctness and earned points are fixed at
// recording time.
func (a *Attempt) Record(selectedOptionID string) (AnswerRecord, error) {
	if a.Finished() {
		return AnswerRecord{}, ErrFinished
	}
	if a.answered {
		return AnswerRecord{}, ErrAlreadyAnswered
	}
	q := a.qs[a.index]
	valid := false
	for _, o := range q.Options {
		if o.ID == selectedOptionID {
			valid = true
			break
		}
	}
	if !valid {
		return AnswerRecord{}, ErrUnknownOption
	}
	rec := AnswerRecord{
		QuestionID:       q.ID,
		SelectedOptionID: selectedOptionID,
		IsCorrect:        selectedOptionID == q.CorrectOptionID,
	}
	if rec.IsCorrect {
		rec.EarnedPoints = q.Points
	}
	a.answers = append(a.answers, rec)
	a.answered = true
	return rec, nil
}

// Next advances to the following question. Advancing is permitted only
// after the current question has been recorded; there is no skipping and no
// going back.
func (a *Attempt) Next() error {
	if a.Finished() {
		return ErrFinished
	}
	if !a.answered {
		return ErrNotAnswered
	}
	a.index++
	a.answered = false
	return nil
}

// Finished reports whether every question has been answered and advanced
// past.
func (a *Attempt) Finished() bool { return a.index >= len(a.qs) }

// Progress returns the zero-based index of the current question and the
// total question count.
func (a *Attempt) Progress() (current, total int) { return a.index, len(a.qs) }

// Answers returns the records produced so far, in question order.
func (a *Attempt) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(a.answers))
	copy(out, a.answers)
	return out
}
