package ai

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// AnalysisError wraps any scorer failure (transport error, malformed reply, parse failure).
// The cause message is surfaced to the HTTP caller as-is.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("es analysis failed: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
