package assignment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound   = errors.New("assignment not found")
	ErrGradeRange = errors.New("grade out of range [0,100]")
	ErrBadDataURL = errors.New("malformed data url")
)

// Assignment is one student file submission for a module. Grade is nil until
// a teacher grades it; grading sets the number directly, there is no
// computed-score concept here.
type Assignment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
	ModuleID    string    `json:"module_id"`
	FileName    string    `json:"file_name"`
	FileKey     string    `json:"file_key"`
	ContentType string    `json:"content_type,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Grade       *int      `json:"grade"`
	Feedback    string    `json:"feedback,omitempty"`
}

// SetGrade records a teacher grade and feedback.
func (a *Assignment) SetGrade(grade int, feedback string) error {
	if grade < 0 || grade > 100 {
		return fmt.Errorf("%w: %d", ErrGradeRange, grade)
	}
	a.Grade = &grade
	a.Feedback = feedback
	return nil
}

// DecodeDataURL splits a "data:<mime>;base64,<payload>" upload into its
// content type and raw bytes. Browser clients submit files this way.
func DecodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(dataURL, "data:") {
		return "", nil, ErrBadDataURL
	}
	meta, payload, ok := strings.Cut(dataURL[len("data:"):], ",")
	if !ok {
		return "", nil, ErrBadDataURL
	}
	if !strings.HasSuffix(meta, ";base64") {
		return "", nil, fmt.Errorf("%w: only base64 payloads supported", ErrBadDataURL)
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURL, err)
	}
	return contentType, data, nil
}
