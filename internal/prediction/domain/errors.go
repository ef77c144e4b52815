package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrResultNotFound       = errors.New("prediction result not found")
	ErrSubmissionInProgress = errors.New("prediction already in progress")
	ErrMalformedResult      = errors.New("malformed prediction result")
)

// FieldError describes one out-of-range form value.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...interface{}) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// ErrPredictorUnreachable marks transport-level failures talking to the
// model service.
var ErrPredictorUnreachable = errors.New("prediction service unreachable")

// GenericUpstreamDetail is used when an error response carries no usable
// detail message.
const GenericUpstreamDetail = "Internal Server Error"

// UpstreamError is a non-success HTTP status from the model service.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("prediction service returned status %d: %s", e.StatusCode, e.Detail)
}
