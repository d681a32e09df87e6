package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidTitle is matched by every *TitleError. Use errors.Is() to check it.
var ErrInvalidTitle = errors.New("invalid ticket title")

// MaxTitleBytes is the largest title, measured in encoded bytes, that NewTitle accepts.
const MaxTitleBytes = 50

// TitleError reports which title invariant a candidate violated.
type TitleError struct {
	message string
}

func (e *TitleError) Error() string {
	return e.message
}

// Is lets errors.Is(err, ErrInvalidTitle) match without exposing the message.
func (e *TitleError) Is(target error) bool {
	return target == ErrInvalidTitle
}

// Title is a value object holding a ticket title.
// Encapsulates validation rules: 0 < len(title) <= 50 bytes.
// The zero Title is not a valid title; obtain one through NewTitle.
type Title struct {
	value string
}

const emptyTitleMessage = "The title cannot be empty"

// NewTitle constructs a valid Title or returns a *TitleError if constraints are violated.
// The input is stored verbatim; nothing is trimmed or normalized.
func NewTitle(s string) (Title, error) {
	if len(s) == 0 {
		return Title{}, &TitleError{message: emptyTitleMessage}
	}
	if len(s) > MaxTitleBytes {
		return Title{}, &TitleError{message: fmt.Sprintf("The title cannot be longer than %d bytes", MaxTitleBytes)}
	}
	return Title{value: s}, nil
}

// TitleFromBytes converts b to a string and delegates to NewTitle.
// The returned Title does not alias b.
func TitleFromBytes(b []byte) (Title, error) {
	return NewTitle(string(b))
}

// MustTitle is like NewTitle but panics on invalid input.
// Intended for literals in tests and fixtures.
func MustTitle(s string) Title {
	t, err := NewTitle(s)
	if err != nil {
		panic(fmt.Errorf("models: MustTitle(%q): %w", s, err))
	}
	return t
}

// String returns the underlying string value.
func (t Title) String() string {
	return t.value
}

// IsZero reports whether t was never constructed.
func (t Title) IsZero() bool {
	return t.value == ""
}

// MarshalText implements encoding.TextMarshaler.
func (t Title) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler through TitleFromBytes,
// so decoded titles obey the same rules as constructed ones.
func (t *Title) UnmarshalText(b []byte) error {
	parsed, err := TitleFromBytes(b)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// UnmarshalJSON decodes a JSON string through NewTitle. A JSON null is
// rejected like an empty title instead of leaving the zero Title behind.
func (t *Title) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return &TitleError{message: emptyTitleMessage}
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("title must be a JSON string: %w", err)
	}
	parsed, err := NewTitle(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
