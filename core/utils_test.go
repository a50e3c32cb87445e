package core

import (
	"errors"
	"testing"
)

func TestCleanString(t *testing.T) {
	tests := []struct {
		s     string
		lower bool
		want  string
	}{
		{s: "  Jane  ", want: "Jane"},
		{s: "\tJane Doe\n", lower: true, want: "jane doe"},
		{s: "   ", want: ""},
	}
	for _, tt := range tests {
		if got := CleanString(tt.s, tt.lower); got != tt.want {
			t.Errorf("CleanString(%q, %t) = %q, want %q", tt.s, tt.lower, got, tt.want)
		}
	}
}

func TestClosestMatch(t *testing.T) {
	known := []string{"jane", "seth", "Mary"}
	tests := []struct {
		name string
		want string
	}{
		{name: "jnae", want: "jane"},
		{name: "mary", want: "Mary"},
		{name: "seth", want: "seth"},
		{name: "xavier", want: ""},
		{name: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestMatch(tt.name, known); got != tt.want {
				t.Errorf("ClosestMatch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("student", "jnae", []string{"jane"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("NewNotFoundError() = %v, want ErrNotFound", err)
	}
	if want := `did you mean "jane"?: student "jnae": not found`; err.Error() != want {
		t.Errorf("NewNotFoundError() = %q, want %q", err.Error(), want)
	}

	err = NewNotFoundError("course", "art", nil)
	if want := `course "art": not found`; err.Error() != want {
		t.Errorf("NewNotFoundError() = %q, want %q", err.Error(), want)
	}
}

func TestIsShutdown(t *testing.T) {
	if !IsShutdown(NewShutdownError("quit")) {
		t.Error("IsShutdown() = false, want true")
	}
	if IsShutdown(ErrLocked) {
		t.Error("IsShutdown() = true, want false")
	}
}
