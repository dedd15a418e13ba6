package edits

import (
	"fmt"
	"sort"
)

// ValidationError describes an edit whose span does not fit the text.
type ValidationError struct {
	Edit    TextEdit
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid edit [%d:%d]: %s", e.Edit.Start, e.Edit.End, e.Message)
}

// ConflictError describes two overlapping edits.
type ConflictError struct {
	First  TextEdit
	Second TextEdit
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("overlapping edits: [%d:%d] and [%d:%d]",
		e.First.Start, e.First.End, e.Second.Start, e.Second.End)
}

// Validate checks that every edit has a valid span for a text of textLen
// runes. Returns the first invalid edit found.
func Validate(es []TextEdit, textLen int) error {
	for _, e := range es {
		if e.Start < 0 {
			return &ValidationError{Edit: e, Message: "start offset is negative"}
		}
		if e.End < e.Start {
			return &ValidationError{Edit: e, Message: "end offset is before start offset"}
		}
		if e.End > textLen {
			return &ValidationError{
				Edit:    e,
				Message: fmt.Sprintf("end offset %d exceeds text length %d", e.End, textLen),
			}
		}
	}
	return nil
}

// Sort orders edits by start offset, then end offset, for deterministic
// application.
func Sort(es []TextEdit) {
	sort.Slice(es, func(i, j int) bool {
		if es[i].Start != es[j].Start {
			return es[i].Start < es[j].Start
		}
		return es[i].End < es[j].End
	})
}

// DetectConflicts returns the first pair of overlapping edits in a sorted
// slice, or nil when none overlap.
func DetectConflicts(es []TextEdit) error {
	for i := 1; i < len(es); i++ {
		if es[i].Start < es[i-1].End {
			return &ConflictError{First: es[i-1], Second: es[i]}
		}
	}
	return nil
}

// Prepare validates, sorts, and conflict-checks edits, returning a sorted
// copy ready for Apply. Edits that insert nothing are dropped.
func Prepare(es []TextEdit, textLen int) ([]TextEdit, error) {
	if err := Validate(es, textLen); err != nil {
		return nil, err
	}

	sorted := make([]TextEdit, 0, len(es))
	for _, e := range es {
		if e.IsInsert() && e.Text == "" {
			continue
		}
		sorted = append(sorted, e)
	}
	if len(sorted) == 0 {
		return nil, nil
	}
	Sort(sorted)

	if err := DetectConflicts(sorted); err != nil {
		return nil, err
	}
	return sorted, nil
}
