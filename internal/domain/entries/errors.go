package entries

import "errors"

// ErrEntryNotFound indicates the requested ES entry does not exist.
var ErrEntryNotFound = errors.New("es entry not found")

// ErrAnalysisNotFound indicates the entry exists but has no analysis yet.
var ErrAnalysisNotFound = errors.New("analysis not found")
