package quiz

import (
	"errors"
	"testing"

	"github.com/digital-aware/portal/internal/catalog"
)

func quizModule(points ...int) catalog.Module {
	return catalog.Module{ID: "m1", Title: "Module", Questions: questions(points...)}
}

func TestNewAttemptNoQuiz(t *testing.T) {
	_, err := NewAttempt(catalog.Module{ID: "m0", Title: "Empty"})
	if !errors.Is(err, ErrNoQuiz) {
		t.Fatalf("got %v, want ErrNoQuiz", err)
	}
}

func TestAttemptSequentialFlow(t *testing.T) {
	a, err := NewAttempt(quizModule(10, 30))
	if err != nil {
		t.Fatal(err)
	}

	// cannot advance before answering
	if err := a.Next(); !errors.Is(err, ErrNotAnswered) {
		t.Fatalf("Next before answer: got %v, want ErrNotAnswered", err)
	}

	rec, err := a.Record("a")
	if err != nil {
		t.Fatal(err)
	}
	if !rec.IsCorrect || rec.EarnedPoints != 10 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	// cannot answer the same question twice
	if _, err := a.Record("b"); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("double record: got %v, want ErrAlreadyAnswered", err)
	}

	if err := a.Next(); err != nil {
		t.Fatal(err)
	}
	rec, err = a.Record("b")
	if err != nil {
		t.Fatal(err)
	}
	if rec.IsCorrect || rec.EarnedPoints != 0 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if err := a.Next(); err != nil {
		t.Fatal(err)
	}

	if !a.Finished() {
		t.Fatal("attempt should be finished")
	}
	if _, err := a.Record("a"); !errors.Is(err, ErrFinished) {
		t.Fatalf("record after finish: got %v, want ErrFinished", err)
	}
	if got := len(a.Answers()); got != 2 {
		t.Fatalf("got %d answers, want 2", got)
	}
}

func TestAttemptRejectsUnknownOption(t *testing.T) {
	a, _ := NewAttempt(quizModule(10))
	if _, err := a.Record("z"); !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("got %v, want ErrUnknownOption", err)
	}
	// attempt state unchanged: the real option still records fine
	if _, err := a.Record("a"); err != nil {
		t.Fatal(err)
	}
}
