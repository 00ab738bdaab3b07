package catalog

import (
	"errors"
	"fmt"
)

// Option is one selectable answer of a multiple-choice question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	ImageURL        string   `json:"image_url,omitempty"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correct_option_id"`
	Points          int      `json:"points"`
}

type ContentBlockType string

const (
	BlockText  ContentBlockType = "text"
	BlockImage ContentBlockType = "image"
)

// ContentBlock is one unit of block-based module content.
type ContentBlock struct {
	ID    string           `json:"id"`
	Type  ContentBlockType `json:"type"`
	Value string           `json:"value"`
}

// Module is a named unit of learning content: reading material, a video,
// a PDF, an assignment prompt and an optional quiz (question set).
type Module struct {
	ID                    string         `json:"id"`
	Title                 string         `json:"title"`
	Topic                 string         `json:"topic"`
	Description           string         `json:"description"`
	VideoURL              string         `json:"video_url,omitempty"`
	VideoDescription      string         `json:"video_description,omitempty"`
	PDFURL                string         `json:"pdf_url,omitempty"`
	PDFDescription        string         `json:"pdf_description,omitempty"`
	Content               string         `json:"content,omitempty"`
	ContentBlocks         []ContentBlock `json:"content_blocks,omitempty"`
	AssignmentInstruction string         `json:"assignment_instruction,omitempty"`
	Questions             []Question     `json:"questions"`
	Icon                  string         `json:"icon,omitempty"`
	ExternalQuizURL       string         `json:"external_quiz_url,omitempty"`
	ExternalQuizType      string         `json:"external_quiz_type,omitempty"`
}

var ErrNotFound = errors.New("module not found")

// Validate checks the structural invariants of a question: at least two
// options, option IDs unique within the question, the correct-option ID
// naming an existing option, and a non-negative weight.
func (q Question) Validate() error {
	if q.ID == "" {
		return errors.New("question id required")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("question %s: at least two options required", q.ID)
	}
	seen := make(map[string]struct{}, len(q.Options))
	for _, o := range q.Options {
		if o.ID == "" {
			return fmt.Errorf("question %s: option id required", q.ID)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("question %s: duplicate option id %q", q.ID, o.ID)
		}
		seen[o.ID] = struct{}{}
	}
	if _, ok := seen[q.CorrectOptionID]; !ok {
		return fmt.Errorf("question %s: correct option %q not among options", q.ID, q.CorrectOptionID)
	}
	if q.Points < 0 {
		return fmt.Errorf("question %s: negative points", q.ID)
	}
	return nil
}

func (m Module) Validate() error {
	if m.ID == "" {
		return errors.New("module id required")
	}
	if m.Title == "" {
		return errors.New("module title required")
	}
	for _, q := range m.Questions {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasQuiz reports whether the module carries a question set. A module
// without questions is a terminal "no quiz available" state.
func (m Module) HasQuiz() bool { return len(m.Questions) > 0 }

// Question returns the question with the given id.
func (m Module) Question(id string) (Question, bool) {
	for _, q := range m.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
