// Package command implements the user actions of the internship tracker.
// Each command validates against the current model state and applies at
// most one mutation.
package command

import (
	"errors"

	"github.com/Tiliavir/intrack/internal/messages"
	"github.com/Tiliavir/intrack/internal/model"
)

// Command is a parsed user action.
type Command interface {
	Execute(m model.Model) (Result, error)
	String() string
}

// Result is the outcome shown to the user.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
}

// Kind discriminates command failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindUnknownCommand
	KindInvalidFormat
	KindInvalidValue
	KindInvalidInternshipIndex
	KindInvalidTaskIndex
	KindDuplicateInternship
	KindNothingToEdit
)

func (k Kind) String() string {
	switch k {
	case KindUnknownCommand:
		return "unknown command"
	case KindInvalidFormat:
		return "invalid format"
	case KindInvalidValue:
		return "invalid value"
	case KindInvalidInternshipIndex:
		return "invalid internship index"
	case KindInvalidTaskIndex:
		return "invalid task index"
	case KindDuplicateInternship:
		return "duplicate internship"
	case KindNothingToEdit:
		return "nothing to edit"
	}
	return "unknown"
}

// Error is a user-input failure. Message is shown verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Fail builds an *Error.
func Fail(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// displayedInternship resolves idx against the filtered list.
func displayedInternship(m model.Model, idx model.Index) (model.Internship, error) {
	shown := m.FilteredInternships()
	if idx.OneBased() > len(shown) {
		return model.Internship{}, Fail(KindInvalidInternshipIndex, messages.InvalidInternshipDisplayedIndex)
	}
	return shown[idx.ZeroBased()], nil
}
