package models

import (
	"errors"
	"fmt"
)

// ErrInvalidDescription is matched by every *DescriptionError.
var ErrInvalidDescription = errors.New("invalid ticket description")

// MaxDescriptionBytes is the largest description NewDescription accepts.
const MaxDescriptionBytes = 500

// DescriptionError reports which description invariant a candidate violated.
type DescriptionError struct {
	message string
}

func (e *DescriptionError) Error() string {
	return e.message
}

func (e *DescriptionError) Is(target error) bool {
	return target == ErrInvalidDescription
}

// Description is a value object holding a ticket description (1..500 bytes).
type Description struct {
	value string
}

// NewDescription constructs a valid Description or returns a *DescriptionError.
func NewDescription(s string) (Description, error) {
	if len(s) == 0 {
		return Description{}, &DescriptionError{message: "The description cannot be empty"}
	}
	if len(s) > MaxDescriptionBytes {
		return Description{}, &DescriptionError{
			message: fmt.Sprintf("The description cannot be longer than %d bytes", MaxDescriptionBytes),
		}
	}
	return Description{value: s}, nil
}

// DescriptionFromBytes converts b to a string and delegates to NewDescription.
func DescriptionFromBytes(b []byte) (Description, error) {
	return NewDescription(string(b))
}

// String returns the underlying string value.
func (d Description) String() string {
	return d.value
}

func (d Description) MarshalText() ([]byte, error) {
	return []byte(d.value), nil
}

func (d *Description) UnmarshalText(b []byte) error {
	parsed, err := DescriptionFromBytes(b)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
