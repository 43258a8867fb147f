package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCommand is the sentinel error wrapped by UnknownCommandError.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnresolvedPath is the sentinel error wrapped by UnresolvedPathError.
	ErrUnresolvedPath = errors.New("unresolved path")
	// ErrInvalidCompoundSegment is the sentinel error wrapped by CompoundSegmentError.
	ErrInvalidCompoundSegment = errors.New("invalid compound segment")
	// ErrEmptyCommand is returned when the input line holds no command.
	ErrEmptyCommand = errors.New("empty command")
	// ErrEmptyPath is returned when the input path is blank.
	ErrEmptyPath = errors.New("empty path")
	// ErrUnknownOS is the sentinel error wrapped by UnknownOSError.
	ErrUnknownOS = errors.New("unknown operating system")
	// ErrUnknownPackageManager is the sentinel error wrapped by UnknownPackageManagerError.
	ErrUnknownPackageManager = errors.New("unknown package manager")
	// ErrNotPackageCommand is the sentinel error wrapped by NotPackageCommandError.
	ErrNotPackageCommand = errors.New("not a package manager command")
	// ErrUnsupportedOperation is the sentinel error wrapped by UnsupportedOperationError.
	ErrUnsupportedOperation = errors.New("unsupported package operation")
	// ErrInvalidMapping is returned when a mapping overlay holds an unusable entry.
	ErrInvalidMapping = errors.New("invalid mapping")
)

type (
	// UnknownCommandError is returned when no mapping exists for a command in
	// the requested OS pair.
	UnknownCommandError struct {
		Name        string
		From        OS
		To          OS
		Suggestions []string
	}

	// UnresolvedPathError is returned when a path matches no structural rule
	// and is not a valid path on the target OS.
	UnresolvedPathError struct {
		Path string
		To   OS
	}

	// CompoundSegmentError reports the first failing segment of a compound
	// command. It unwraps to both ErrInvalidCompoundSegment and the cause.
	CompoundSegmentError struct {
		Index   int
		Segment string
		Err     error
	}

	// UnknownOSError is returned when an OS name cannot be parsed.
	UnknownOSError struct {
		Value string
	}

	// UnknownPackageManagerError is returned when a manager name cannot be parsed.
	UnknownPackageManagerError struct {
		Value string
	}

	// NotPackageCommandError is returned when a line does not start with a
	// known package-manager binary or lacks an operation.
	NotPackageCommandError struct {
		Input string
	}

	// UnsupportedOperationError is returned when the operation verb is not
	// recognised for the manager, or has no equivalent on the target.
	UnsupportedOperationError struct {
		Manager   PackageManager
		Operation string
	}
)

func (e *UnknownCommandError) Error() string {
	msg := fmt.Sprintf("no translation for command %q from %s to %s", e.Name, e.From.DisplayName(), e.To.DisplayName())
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

// Unwrap returns ErrUnknownCommand so callers can use errors.Is.
func (e *UnknownCommandError) Unwrap() error { return ErrUnknownCommand }

func (e *UnresolvedPathError) Error() string {
	return fmt.Sprintf("path %q cannot be expressed on %s", e.Path, e.To.DisplayName())
}

// Unwrap returns ErrUnresolvedPath so callers can use errors.Is.
func (e *UnresolvedPathError) Unwrap() error { return ErrUnresolvedPath }

func (e *CompoundSegmentError) Error() string {
	return fmt.Sprintf("segment %d (%q): %v", e.Index, e.Segment, e.Err)
}

// Unwrap exposes both the sentinel and the segment-level cause.
func (e *CompoundSegmentError) Unwrap() []error {
	return []error{ErrInvalidCompoundSegment, e.Err}
}

func (e *UnknownOSError) Error() string {
	return fmt.Sprintf("unknown operating system %q", e.Value)
}

// Unwrap returns ErrUnknownOS so callers can use errors.Is.
func (e *UnknownOSError) Unwrap() error { return ErrUnknownOS }

func (e *UnknownPackageManagerError) Error() string {
	return fmt.Sprintf("unknown package manager %q", e.Value)
}

// Unwrap returns ErrUnknownPackageManager so callers can use errors.Is.
func (e *UnknownPackageManagerError) Unwrap() error { return ErrUnknownPackageManager }

func (e *NotPackageCommandError) Error() string {
	return fmt.Sprintf("%q is not a package manager command", e.Input)
}

// Unwrap returns ErrNotPackageCommand so callers can use errors.Is.
func (e *NotPackageCommandError) Unwrap() error { return ErrNotPackageCommand }

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("operation %q is not supported by %s", e.Operation, e.Manager)
}

// Unwrap returns ErrUnsupportedOperation so callers can use errors.Is.
func (e *UnsupportedOperationError) Unwrap() error { return ErrUnsupportedOperation }
