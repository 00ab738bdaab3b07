package portal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/digital-aware/portal/internal/assignment"
	"github.com/digital-aware/portal/internal/catalog"
	"github.com/digital-aware/portal/internal/quiz"
	"github.com/digital-aware/portal/internal/storage"
)

var (
	ErrAttemptNotFound = errors.New("attempt not found")
	ErrResultNotFound  = errors.New("quiz result not found")
	ErrModuleExists    = errors.New("module id already in use")
)

// Service owns the application state and mediates every operation on it.
// Handlers never touch State directly: each mutation here is a
// read-modify-write on the in-memory snapshot followed by an explicit Save.
// In-flight quiz attempts are transient; only finished results persist.
type Service struct {
	mu       sync.Mutex
	st       State
	store    Store
	blobs    storage.BlobStore
	attempts map[string]*session
}

type session struct {
	attempt *quiz.Attempt
	student quiz.Student
}

func NewService(ctx context.Context, store Store, blobs storage.BlobStore) (*Service, error) {
	st, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return &Service{
		st:       st,
		store:    store,
		blobs:    blobs,
		attempts: map[string]*session{},
	}, nil
}

func (s *Service) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.st)
}

// --- Module catalog ---

func (s *Service) Modules() []catalog.Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Module, len(s.st.Modules))
	copy(out, s.st.Modules)
	return out
}

func (s *Service) Module(id string) (catalog.Module, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.moduleLocked(id)
}

func (s *Service) moduleLocked(id string) (catalog.Module, error) {
	for _, m := range s.st.Modules {
		if m.ID == id {
			return m, nil
		}
	}
	return catalog.Module{}, catalog.ErrNotFound
}

func (s *Service) CreateModule(ctx context.Context, m catalog.Module) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.moduleLocked(m.ID); err == nil {
		return fmt.Errorf("%w: %s", ErrModuleExists, m.ID)
	}
	s.st.Modules = append(s.st.Modules, m)
	return s.persist(ctx)
}

func (s *Service) UpdateModule(ctx context.Context, m catalog.Module) error {
	if err := m.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.Modules {
		if s.st.Modules[i].ID == m.ID {
			s.st.Modules[i] = m
			return s.persist(ctx)
		}
	}
	return catalog.ErrNotFound
}

func (s *Service) DeleteModule(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.Modules {
		if s.st.Modules[i].ID == id {
			s.st.Modules = append(s.st.Modules[:i], s.st.Modules[i+1:]...)
			return s.persist(ctx)
		}
	}
	return catalog.ErrNotFound
}

// --- Quiz flow ---

// QuestionView is a student-safe question: no correct-option ID.
type QuestionView struct {
	ID       string           `json:"id"`
	Text     string           `json:"text"`
	ImageURL string           `json:"image_url,omitempty"`
	Options  []catalog.Option `json:"options"`
	Points   int              `json:"points"`
}

func viewOf(q catalog.Question) QuestionView {
	return QuestionView{ID: q.ID, Text: q.Text, ImageURL: q.ImageURL, Options: q.Options, Points: q.Points}
}

type AttemptView struct {
	AttemptID string       `json:"attempt_id"`
	ModuleID  string       `json:"module_id"`
	Index     int          `json:"index"`
	Total     int          `json:"total"`
	Question  QuestionView `json:"question"`
}

// AnswerFeedback is what the UI reveals after a submission: whether the
// choice was right, which option was, and what comes next.
type AnswerFeedback struct {
	IsCorrect       bool          `json:"is_correct"`
	CorrectOptionID string        `json:"correct_option_id"`
	EarnedPoints    int           `json:"earned_points"`
	Finished        bool          `json:"finished"`
	Next            *QuestionView `json:"next,omitempty"`
}

// StartQuiz opens a sequential attempt over the module's questions.
// Modules without questions return quiz.ErrNoQuiz; no attempt or result is
// ever created for them.
func (s *Service) StartQuiz(student quiz.Student, moduleID string) (AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.moduleLocked(moduleID)
	if err != nil {
		return AttemptView{}, err
	}
	a, err := quiz.NewAttempt(m)
	if err != nil {
		return AttemptView{}, err
	}
	id := uuid.NewString()
	s.attempts[id] = &session{attempt: a, student: student}
	q, _ := a.Current()
	idx, total := a.Progress()
	return AttemptView{AttemptID: id, ModuleID: moduleID, Index: idx, Total: total, Question: viewOf(q)}, nil
}

// SubmitAnswer records the choice for the attempt's current question and
// advances the state machine.
func (s *Service) SubmitAnswer(attemptID, optionID string) (AnswerFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.attempts[attemptID]
	if !ok {
		return AnswerFeedback{}, ErrAttemptNotFound
	}
	cur, err := sess.attempt.Current()
	if err != nil {
		return AnswerFeedback{}, err
	}
	rec, err := sess.attempt.Record(optionID)
	if err != nil {
		return AnswerFeedback{}, err
	}
	if err := sess.attempt.Next(); err != nil {
		return AnswerFeedback{}, err
	}
	fb := AnswerFeedback{
		IsCorrect:       rec.IsCorrect,
		CorrectOptionID: cur.CorrectOptionID,
		EarnedPoints:    rec.EarnedPoints,
		Finished:        sess.attempt.Finished(),
	}
	if !fb.Finished {
		next, _ := sess.attempt.Current()
		v := viewOf(next)
		fb.Next = &v
	}
	return fb, nil
}

// FinishQuiz finalizes a completed attempt into a Result, appends it to the
// results collection and persists the snapshot. The in-flight attempt is
// dropped afterwards.
func (s *Service) FinishQuiz(ctx context.Context, attemptID string) (quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.attempts[attemptID]
	if !ok {
		return quiz.Result{}, ErrAttemptNotFound
	}
	m, err := s.moduleLocked(sess.attempt.ModuleID())
	if err != nil {
		return quiz.Result{}, err
	}
	res, err := quiz.Finalize(m, sess.attempt, sess.student)
	if err != nil {
		return quiz.Result{}, err
	}
	s.st.Results = append(s.st.Results, res)
	if err := s.persist(ctx); err != nil {
		return quiz.Result{}, err
	}
	delete(s.attempts, attemptID)
	return res, nil
}

// Results returns stored results, optionally filtered by student and/or
// module. Empty filter strings match everything.
func (s *Service) Results(studentID, moduleID string) []quiz.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []quiz.Result{}
	for _, r := range s.st.Results {
		if studentID != "" && r.StudentID != studentID {
			continue
		}
		if moduleID != "" && r.ModuleID != moduleID {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s *Service) Result(id string) (quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.st.Results {
		if r.ID == id {
			return r, nil
		}
	}
	return quiz.Result{}, ErrResultNotFound
}

// OverrideResultScore applies an aggregate teacher override and replaces the
// stored result by ID.
func (s *Service) OverrideResultScore(ctx context.Context, resultID string, score float64, feedback string) (quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceResultLocked(ctx, resultID, func(r quiz.Result) (quiz.Result, error) {
		return quiz.OverrideScore(r, score, feedback)
	})
}

// OverrideResultAnswers applies per-question teacher edits and recomputes
// the aggregate. A missing module is fatal to the operation: the stored
// score is preserved rather than recomputed against nothing.
func (s *Service) OverrideResultAnswers(ctx context.Context, resultID string, edited []quiz.AnswerRecord) (quiz.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceResultLocked(ctx, resultID, func(r quiz.Result) (quiz.Result, error) {
		m, err := s.moduleLocked(r.ModuleID)
		if err != nil {
			return quiz.Result{}, err
		}
		return quiz.OverrideAnswers(r, m, edited)
	})
}

func (s *Service) replaceResultLocked(ctx context.Context, id string, edit func(quiz.Result) (quiz.Result, error)) (quiz.Result, error) {
	for i, r := range s.st.Results {
		if r.ID != id {
			continue
		}
		next, err := edit(r)
		if err != nil {
			return quiz.Result{}, err
		}
		s.st.Results[i] = next
		if err := s.persist(ctx); err != nil {
			return quiz.Result{}, err
		}
		return next, nil
	}
	return quiz.Result{}, ErrResultNotFound
}

// --- Assignments ---

// UploadAssignment decodes a data-URL upload, stores the bytes through the
// blob store and records the submission.
func (s *Service) UploadAssignment(ctx context.Context, student quiz.Student, moduleID, fileName, dataURL string) (assignment.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.moduleLocked(moduleID); err != nil {
		return assignment.Assignment{}, err
	}
	contentType, data, err := assignment.DecodeDataURL(dataURL)
	if err != nil {
		return assignment.Assignment{}, err
	}
	id := uuid.NewString()
	key := path.Join("assignments", moduleID, id+"_"+fileName)
	if _, err := s.blobs.Put(key, bytes.NewReader(data)); err != nil {
		return assignment.Assignment{}, fmt.Errorf("store upload: %w", err)
	}
	a := assignment.Assignment{
		ID:          id,
		StudentID:   student.ID,
		StudentName: student.Name,
		ModuleID:    moduleID,
		FileName:    fileName,
		FileKey:     key,
		ContentType: contentType,
		Timestamp:   time.Now().UTC(),
	}
	s.st.Assignments = append(s.st.Assignments, a)
	if err := s.persist(ctx); err != nil {
		return assignment.Assignment{}, err
	}
	return a, nil
}

// Assignments returns submissions, optionally filtered by module and/or
// student.
func (s *Service) Assignments(moduleID, studentID string) []assignment.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []assignment.Assignment{}
	for _, a := range s.st.Assignments {
		if moduleID != "" && a.ModuleID != moduleID {
			continue
		}
		if studentID != "" && a.StudentID != studentID {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *Service) Assignment(id string) (assignment.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assignmentLocked(id)
}

func (s *Service) assignmentLocked(id string) (assignment.Assignment, error) {
	for _, a := range s.st.Assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

// OpenAssignmentFile streams back a stored upload.
func (s *Service) OpenAssignmentFile(id string) (io.ReadCloser, assignment.Assignment, error) {
	a, err := s.Assignment(id)
	if err != nil {
		return nil, assignment.Assignment{}, err
	}
	rc, err := s.blobs.Get(a.FileKey)
	if err != nil {
		return nil, assignment.Assignment{}, err
	}
	return rc, a, nil
}

func (s *Service) DeleteAssignment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.Assignments {
		if s.st.Assignments[i].ID == id {
			key := s.st.Assignments[i].FileKey
			s.st.Assignments = append(s.st.Assignments[:i], s.st.Assignments[i+1:]...)
			if err := s.persist(ctx); err != nil {
				return err
			}
			// Best effort: the record is authoritative, the blob is not.
			_ = s.blobs.Delete(key)
			return nil
		}
	}
	return assignment.ErrNotFound
}

// GradeAssignment sets grade and feedback directly. Unlike quiz overrides
// there is nothing to recompute.
func (s *Service) GradeAssignment(ctx context.Context, id string, grade int, feedback string) (assignment.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.Assignments {
		if s.st.Assignments[i].ID != id {
			continue
		}
		if err := s.st.Assignments[i].SetGrade(grade, feedback); err != nil {
			return assignment.Assignment{}, err
		}
		if err := s.persist(ctx); err != nil {
			return assignment.Assignment{}, err
		}
		return s.st.Assignments[i], nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}
