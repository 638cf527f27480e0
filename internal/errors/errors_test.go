package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "validation error",
			err:      Validationf("amount is required"),
			expected: "Error: validation failed: amount is required",
		},
		{
			name:     "persist warning",
			err:      &PersistWarning{Err: stderrors.New("disk full")},
			expected: "Warning: changes kept in memory but not saved: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestIsWarning(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	wrapped := fmt.Errorf("add transaction: %w", &PersistWarning{Err: cause})

	if !IsWarning(wrapped) {
		t.Error("IsWarning() = false for a wrapped PersistWarning")
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("PersistWarning does not unwrap to its cause")
	}
	if IsWarning(Validationf("title is required")) {
		t.Error("IsWarning() = true for a validation error")
	}
}

func TestValidationfWrapsSentinel(t *testing.T) {
	err := Validationf("missing %s", "category")
	if !stderrors.Is(err, ErrValidation) {
		t.Errorf("Validationf() error %v does not wrap ErrValidation", err)
	}
}

// TestFatal tests the Fatal function using exec helper process
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(stderrors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal$")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}
