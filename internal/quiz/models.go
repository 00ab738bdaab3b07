package quiz

import "time"

// AnswerRecord captures one student choice for one question. It is created
// exactly once per question per attempt; only the override path may later
// edit EarnedPoints.
type AnswerRecord struct {
	QuestionID       string `json:"question_id"`
	SelectedOptionID string `json:"selected_option_id"`
	IsCorrect        bool   `json:"is_correct"`
	EarnedPoints     int    `json:"earned_points"`
}

// Result is a finished quiz attempt as stored in the portal state.
//
// IsManualOverride distinguishes a system-computed score from one a teacher
// has revised; once set it is never cleared.
type Result struct {
	ID               string         `json:"id"`
	StudentID        string         `json:"student_id"`
	StudentName      string         `json:"student_name"`
	ModuleID         string         `json:"module_id"`
	Score            float64        `json:"score"`
	Timestamp        time.Time      `json:"timestamp"`
	IsManualOverride bool           `json:"is_manual_override"`
	Answers          []AnswerRecord `json:"answers,omitempty"`
	Feedback         string         `json:"feedback,omitempty"`
}
