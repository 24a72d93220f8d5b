package httpserver

import (
	"fmt"
	"strings"
)

// AnalyzeRequest is the inbound submission shape.
// word_count is caller-supplied advisory metadata, not checked against len(content).
type AnalyzeRequest struct {
	QuestionType string  `json:"question_type"`
	QuestionText string  `json:"question_text"`
	Content      string  `json:"content"`
	WordCount    int     `json:"word_count"`
	CompanyName  *string `json:"company_name,omitempty"`
	Industry     *string `json:"industry,omitempty"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries all failed fields of one request.
type ValidationError struct {
	Fields []FieldError `json:"detail"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks the declarative constraints of a submission.
func (r *AnalyzeRequest) Validate() error {
	var fields []FieldError

	if strings.TrimSpace(r.QuestionType) == "" {
		fields = append(fields, FieldError{Field: "question_type", Message: "required"})
	}
	if strings.TrimSpace(r.QuestionText) == "" {
		fields = append(fields, FieldError{Field: "question_text", Message: "required"})
	}
	if strings.TrimSpace(r.Content) == "" {
		fields = append(fields, FieldError{Field: "content", Message: "required"})
	}
	if r.WordCount < 0 {
		fields = append(fields, FieldError{Field: "word_count", Message: "must be >= 0"})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
