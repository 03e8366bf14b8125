package tabcast

import (
	"errors"
	"fmt"
)

// ErrNotReadingMode indicates the document view is not in reading mode.
var ErrNotReadingMode = errors.New("active view is not in reading mode")

// ErrNoTables indicates no table was found in the document.
var ErrNoTables = errors.New("no table found")

// ErrEmptySelection indicates export was confirmed with no tables selected.
var ErrEmptySelection = errors.New("no tables selected")

// ErrEmptyResult indicates the selected tables converted to an empty body.
var ErrEmptyResult = errors.New("no data to export")

// SinkError represents a failure of an output sink during export.
type SinkError struct {
	Sink string // "storage" or "clipboard"
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s write failed: %v", e.Sink, e.Err)
}

func (e *SinkError) Unwrap() error {
	return e.Err
}
