package kverrors

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	t.Run("matches regardless of reason and key", func(t *testing.T) {
		err := NotFound("missing key", []byte("a"))
		if !IsNotFound(err) {
			t.Fatalf("expected IsNotFound(%v) to be true", err)
		}
	})

	t.Run("does not match other kinds", func(t *testing.T) {
		err := Corruption("bad record size")
		if IsNotFound(err) {
			t.Fatalf("expected IsNotFound(%v) to be false", err)
		}
	})

	t.Run("nil error is not NotFound", func(t *testing.T) {
		if IsNotFound(nil) {
			t.Fatal("expected IsNotFound(nil) to be false")
		}
	})
}

func TestIsCorruption(t *testing.T) {
	err := Corruption("wrong size")
	if !IsCorruption(err) {
		t.Fatalf("expected IsCorruption(%v) to be true", err)
	}
	if IsCorruption(NotFound("x", nil)) {
		t.Fatal("expected IsCorruption to reject NotFound")
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"reason and key", NotFound("deleted in transaction", []byte("k")), `not found: deleted in transaction: key "k"`},
		{"reason only", Corruption("wrong size"), "corruption: wrong size"},
		{"bare kind", &Error{Kind: KindIOError}, "I/O error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.err.Error(); got != c.want {
				t.Errorf("Error() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestErrorsAsRecoversKey(t *testing.T) {
	err := NotFound("x", []byte("the-key"))
	var kerr *Error
	if !errors.As(err, &kerr) {
		t.Fatal("expected errors.As to succeed")
	}
	if string(kerr.Key) != "the-key" {
		t.Errorf("Key = %q, want %q", kerr.Key, "the-key")
	}
}
