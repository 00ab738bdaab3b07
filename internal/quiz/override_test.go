package quiz

import (
	"errors"
	"reflect"
	"testing"
)

// finishedResult runs a two-question attempt (weights 10/30, second answered
// wrong) through Finalize.
func finishedResult(t *testing.T) Result {
	t.Helper()
	m := quizModule(10, 30)
	a, err := NewAttempt(m)
	if err != nil {
		t.Fatal(err)
	}
	for _, opt := range []string{"a", "b"} {
		if _, err := a.Record(opt); err != nil {
			t.Fatal(err)
		}
		if err := a.Next(); err != nil {
			t.Fatal(err)
		}
	}
	res, err := Finalize(m, a, Student{ID: "s-007", Name: "Sam"})
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestFinalize(t *testing.T) {
	res := finishedResult(t)
	if res.ID == "" {
		t.Fatal("result id not assigned")
	}
	if res.Score != 25.0 {
		t.Fatalf("got score %v, want 25.0", res.Score)
	}
	if res.IsManualOverride {
		t.Fatal("fresh result must not be flagged as override")
	}
	if len(res.Answers) != 2 {
		t.Fatalf("got %d answers, want 2", len(res.Answers))
	}
}

func TestFinalizeUnfinishedAttempt(t *testing.T) {
	m := quizModule(10, 30)
	a, _ := NewAttempt(m)
	if _, err := Finalize(m, a, Student{ID: "s", Name: "S"}); !errors.Is(err, ErrNotFinished) {
		t.Fatalf("got %v, want ErrNotFinished", err)
	}
}

func TestOverrideScore(t *testing.T) {
	res := finishedResult(t)
	before := res.Answers

	got, err := OverrideScore(res, 88, "Good effort")
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 88 {
		t.Fatalf("got score %v, want 88", got.Score)
	}
	if !got.IsManualOverride {
		t.Fatal("override flag not set")
	}
	if got.Feedback != "Good effort" {
		t.Fatalf("got feedback %q", got.Feedback)
	}
	if !reflect.DeepEqual(got.Answers, before) {
		t.Fatal("aggregate override must not touch answers")
	}
}

func TestOverrideScoreRejectsOutOfRange(t *testing.T) {
	res := finishedResult(t)
	for _, bad := range []float64{-1, 100.5, 1000} {
		if _, err := OverrideScore(res, bad, ""); !errors.Is(err, ErrScoreRange) {
			t.Errorf("score %v: got %v, want ErrScoreRange", bad, err)
		}
	}
}

func TestOverrideScoreKeepsFeedbackWhenEmpty(t *testing.T) {
	res := finishedResult(t)
	res.Feedback = "earlier note"
	got, err := OverrideScore(res, 50, "")
	if err != nil {
		t.Fatal(err)
	}
	if got.Feedback != "earlier note" {
		t.Fatalf("empty feedback replaced existing: %q", got.Feedback)
	}
}

func TestOverrideAnswersRecomputes(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)

	// teacher awards the second question its full 30 points
	edited := append([]AnswerRecord(nil), res.Answers...)
	edited[1].EarnedPoints = 30

	got, err := OverrideAnswers(res, m, edited)
	if err != nil {
		t.Fatal(err)
	}
	if got.Score != 100.0 {
		t.Fatalf("got score %v, want 100.0", got.Score)
	}
	if !got.IsManualOverride {
		t.Fatal("override flag not set")
	}
}

func TestOverrideAnswersIdempotent(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)
	edited := append([]AnswerRecord(nil), res.Answers...)
	edited[1].EarnedPoints = 15

	first, err := OverrideAnswers(res, m, edited)
	if err != nil {
		t.Fatal(err)
	}
	second, err := OverrideAnswers(first, m, edited)
	if err != nil {
		t.Fatal(err)
	}
	if first.Score != second.Score || !reflect.DeepEqual(first.Answers, second.Answers) {
		t.Fatalf("not idempotent: %+v vs %+v", first, second)
	}
}

func TestOverrideAnswersMonotone(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)
	prev := -1.0
	for pts := 0; pts <= 30; pts += 5 {
		edited := append([]AnswerRecord(nil), res.Answers...)
		edited[1].EarnedPoints = pts
		got, err := OverrideAnswers(res, m, edited)
		if err != nil {
			t.Fatal(err)
		}
		if got.Score < prev {
			t.Fatalf("score decreased: %v after %v", got.Score, prev)
		}
		prev = got.Score
	}
}

func TestOverrideAnswersClampsToCap(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)
	edited := append([]AnswerRecord(nil), res.Answers...)
	edited[0].EarnedPoints = 9999
	edited[1].EarnedPoints = -5

	got, err := OverrideAnswers(res, m, edited)
	if err != nil {
		t.Fatal(err)
	}
	if got.Answers[0].EarnedPoints != 10 || got.Answers[1].EarnedPoints != 0 {
		t.Fatalf("points not clamped: %+v", got.Answers)
	}
	if got.Score != 25.0 {
		t.Fatalf("got score %v, want 25.0", got.Score)
	}
}

func TestOverrideAnswersMissingQuestionFails(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)
	if _, err := OverrideAnswers(res, m, res.Answers[:1]); !errors.Is(err, ErrAnswerMissing) {
		t.Fatalf("got %v, want ErrAnswerMissing", err)
	}
}

func TestOverrideFlagIsOneWay(t *testing.T) {
	m := quizModule(10, 30)
	res := finishedResult(t)
	res, err := OverrideScore(res, 60, "")
	if err != nil {
		t.Fatal(err)
	}
	// a later per-question pass keeps the flag set
	res, err = OverrideAnswers(res, m, res.Answers)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsManualOverride {
		t.Fatal("override flag was reset")
	}
}
