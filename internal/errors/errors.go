package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/lifehub/internal/logger"
)

var (
	// ErrValidation marks a command rejected because a mandatory field is
	// missing or malformed. The store is left unchanged.
	ErrValidation = stderrors.New("validation failed")

	// ErrMalformedSnapshot marks an import payload that could not be parsed
	// or does not have the backup shape. The store is left unchanged.
	ErrMalformedSnapshot = stderrors.New("malformed snapshot")

	// ErrDayIndex marks a weekly habit index outside Monday(0)..Sunday(6).
	ErrDayIndex = stderrors.New("day index out of range")
)

// PersistWarning reports that a mutation was applied in memory but the
// snapshot could not be written. The in-memory state stays authoritative.
type PersistWarning struct {
	Err error
}

func (w *PersistWarning) Error() string {
	return fmt.Sprintf("changes kept in memory but not saved: %v", w.Err)
}

func (w *PersistWarning) Unwrap() error { return w.Err }

// IsWarning reports whether err only carries a persistence warning.
func IsWarning(err error) bool {
	var w *PersistWarning
	return stderrors.As(err, &w)
}

// Validationf builds an ErrValidation-wrapped error.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Format formats an error message with a consistent "Error: " prefix,
// or "Warning: " when the error is a persistence warning.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if IsWarning(err) {
		return fmt.Sprintf("Warning: %v", err)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}
