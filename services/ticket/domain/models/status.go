package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStatus is matched by every *StatusError.
var ErrInvalidStatus = errors.New("invalid ticket status")

// Status is the workflow state of a ticket.
type Status uint8

const (
	StatusToDo Status = iota + 1
	StatusInProgress
	StatusDone
)

// StatusError is returned by ParseStatus for unrecognized input.
type StatusError struct {
	input string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%q is not a valid status", e.input)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrInvalidStatus
}

// ParseStatus maps user input to a Status. Matching ignores case, spaces and dashes,
// so "todo", "To-Do" and "TO DO" all yield StatusToDo.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
	switch key {
	case "todo":
		return StatusToDo, nil
	case "inprogress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return 0, &StatusError{input: s}
	}
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= StatusToDo && s <= StatusDone
}

func (s Status) String() string {
	switch s {
	case StatusToDo:
		return "To-Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &StatusError{input: s.String()}
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	parsed, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
