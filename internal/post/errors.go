package post

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by BeginEdit for an unknown id.
var ErrNotFound = errors.New("post not found")

// Field messages shown next to the form inputs.
const (
	MsgTitleRequired   = "Title is required."
	MsgContentRequired = "Content is required."
)

// ValidationError reports which required fields were blank after trimming.
// At least one flag is set.
type ValidationError struct {
	MissingTitle   bool
	MissingContent bool
}

func (e *ValidationError) Error() string {
	var missing []string
	if e.MissingTitle {
		missing = append(missing, "title")
	}
	if e.MissingContent {
		missing = append(missing, "content")
	}
	return "missing " + strings.Join(missing, " and ")
}

// Messages returns the per-field messages in form order.
func (e *ValidationError) Messages() []string {
	var out []string
	if e.MissingTitle {
		out = append(out, MsgTitleRequired)
	}
	if e.MissingContent {
		out = append(out, MsgContentRequired)
	}
	return out
}

func validate(title, content string) *ValidationError {
	verr := &ValidationError{
		MissingTitle:   title == "",
		MissingContent: content == "",
	}
	if verr.MissingTitle || verr.MissingContent {
		return verr
	}
	return nil
}
