package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const longTitle = "A title that's definitely longer than what should be allowed in a development ticket"

func TestNewTitle(t *testing.T) {
	t.Run("valid title", func(t *testing.T) {
		title, err := NewTitle("A title")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title.String() != "A title" {
			t.Fatalf("expected %q, got %q", "A title", title.String())
		}
	})

	t.Run("valid single byte", func(t *testing.T) {
		title, err := NewTitle("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", title.String())
		}
	})

	t.Run("valid 50 bytes", func(t *testing.T) {
		s := strings.Repeat("x", 50)
		title, err := NewTitle(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title.String() != s {
			t.Fatalf("expected string of length 50, got %d", len(title.String()))
		}
	})

	t.Run("surrounding whitespace is kept verbatim", func(t *testing.T) {
		title, err := NewTitle("  padded  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if title.String() != "  padded  " {
			t.Fatalf("expected untouched input, got %q", title.String())
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewTitle("")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "The title cannot be empty" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("51 bytes returns error", func(t *testing.T) {
		_, err := NewTitle(strings.Repeat("x", 51))
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "The title cannot be longer than 50 bytes" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("long sentence returns error", func(t *testing.T) {
		// The sentence is 84 bytes, well past the bound.
		if len(longTitle) <= MaxTitleBytes {
			t.Fatalf("fixture should exceed %d bytes, got %d", MaxTitleBytes, len(longTitle))
		}
		_, err := NewTitle(longTitle)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if err.Error() != "The title cannot be longer than 50 bytes" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("limit counts bytes not runes", func(t *testing.T) {
		// 26 two-byte runes: 26 characters, 52 bytes.
		s := strings.Repeat("é", 26)
		if _, err := NewTitle(s); err == nil {
			t.Fatal("expected error for 52-byte title")
		}
		// 25 two-byte runes: exactly 50 bytes.
		if _, err := NewTitle(strings.Repeat("é", 25)); err != nil {
			t.Fatalf("unexpected error for 50-byte title: %v", err)
		}
	})
}

func TestNewTitle_ErrorsMatchSentinel(t *testing.T) {
	for _, in := range []string{"", longTitle} {
		_, err := NewTitle(in)
		if !errors.Is(err, ErrInvalidTitle) {
			t.Errorf("NewTitle(%q): expected errors.Is(err, ErrInvalidTitle)", in)
		}
		var te *TitleError
		if !errors.As(err, &te) {
			t.Errorf("NewTitle(%q): expected *TitleError, got %T", in, err)
		}
	}
}

func TestTitleFromBytes(t *testing.T) {
	t.Run("agrees with NewTitle", func(t *testing.T) {
		inputs := []string{"", "A title", strings.Repeat("x", 50), strings.Repeat("x", 51), longTitle}
		for _, in := range inputs {
			fromString, errString := NewTitle(in)
			fromBytes, errBytes := TitleFromBytes([]byte(in))
			if fromString != fromBytes {
				t.Errorf("%q: titles differ: %q vs %q", in, fromString, fromBytes)
			}
			if (errString == nil) != (errBytes == nil) {
				t.Fatalf("%q: error mismatch: %v vs %v", in, errString, errBytes)
			}
			if errString != nil && errString.Error() != errBytes.Error() {
				t.Errorf("%q: message mismatch: %q vs %q", in, errString.Error(), errBytes.Error())
			}
		}
	})

	t.Run("does not alias the input buffer", func(t *testing.T) {
		buf := []byte("A title")
		title, err := TitleFromBytes(buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		buf[0] = 'B'
		if title.String() != "A title" {
			t.Fatalf("title changed with its source buffer: %q", title.String())
		}
	})
}

func TestTitle_Equality(t *testing.T) {
	a := MustTitle("A title")
	b := MustTitle("A title")
	if a != b {
		t.Fatal("titles with the same text must be equal")
	}
	c := a
	if c != a || c.String() != "A title" {
		t.Fatal("copy must equal its source")
	}
	if a == MustTitle("Another title") {
		t.Fatal("titles with different text must not be equal")
	}
}

func TestMustTitle_PanicsOnInvalid(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle panic value, got %v", r)
		}
	}()
	_ = MustTitle("")
}

func TestTitle_ZeroValue(t *testing.T) {
	var title Title
	if !title.IsZero() {
		t.Fatal("zero Title must report IsZero")
	}
	if MustTitle("x").IsZero() {
		t.Fatal("constructed Title must not report IsZero")
	}
}

func TestTitle_JSON(t *testing.T) {
	type payload struct {
		Title Title `json:"title"`
	}

	t.Run("encodes as a string", func(t *testing.T) {
		data, err := json.Marshal(payload{Title: MustTitle("A title")})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(data) != `{"title":"A title"}` {
			t.Fatalf("unexpected JSON: %s", data)
		}
	})

	t.Run("decoding validates", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"title":"A title"}`), &p); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if p.Title.String() != "A title" {
			t.Fatalf("unexpected title: %q", p.Title)
		}

		err := json.Unmarshal([]byte(`{"title":""}`), &p)
		if !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("null is rejected", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"title":null}`), &p)
		if !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
		if err.Error() != "The title cannot be empty" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if !p.Title.IsZero() {
			t.Fatalf("title must stay unset, got %q", p.Title)
		}
	})

	t.Run("non-string is rejected", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"title":42}`), &p); err == nil {
			t.Fatal("expected error for numeric title")
		}
	})

	t.Run("over-long title is rejected", func(t *testing.T) {
		var p payload
		err := json.Unmarshal([]byte(`{"title":"`+longTitle+`"}`), &p)
		if err == nil || err.Error() != "The title cannot be longer than 50 bytes" {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
