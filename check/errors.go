package check

import (
	"errors"
	"fmt"
)

// Detail-free rejections are sentinels so callers can match them with
// errors.Is without digging into concrete types.
var (
	// ErrEmpty is returned when a value must not be empty but is.
	ErrEmpty = errors.New("value is empty")

	// ErrMultiLine is returned when a value contains a newline.
	ErrMultiLine = errors.New("value is not single-line")

	// ErrLeadingWhitespace is returned when a value starts with whitespace.
	ErrLeadingWhitespace = errors.New("value has whitespace at the beginning")

	// ErrTrailingWhitespace is returned when a value ends with whitespace.
	ErrTrailingWhitespace = errors.New("value has whitespace at the end")
)

// NoWhitespaceError reports how many whitespace runs a value contains.
type NoWhitespaceError struct {
	Count int
}

func (e *NoWhitespaceError) Error() string {
	return fmt.Sprintf("value contains %d whitespace sequence(s)", e.Count)
}

// NoControlError reports how many control characters a value contains.
type NoControlError struct {
	Count int
}

func (e *NoControlError) Error() string {
	return fmt.Sprintf("value contains %d control character(s)", e.Count)
}

// TrimmedSide locates the offending whitespace for a failed Trimmed check.
type TrimmedSide int

const (
	// SideLeft means the value starts with whitespace.
	SideLeft TrimmedSide = iota
	// SideRight means the value ends with whitespace.
	SideRight
	// SideBoth means the value starts and ends with whitespace.
	SideBoth
	// SideOnly means the non-empty value is whitespace throughout.
	SideOnly
)

// TrimmedError reports where a value carries surplus whitespace.
type TrimmedError struct {
	Side TrimmedSide
}

func (e *TrimmedError) Error() string {
	switch e.Side {
	case SideLeft:
		return "value has whitespace at the beginning"
	case SideRight:
		return "value has whitespace at the end"
	case SideBoth:
		return "value has whitespace at beginning and end"
	default:
		return "value contains only whitespace characters"
	}
}

// WhenTrimmedError wraps the error of a check that failed against the
// trimmed form of the value.
type WhenTrimmedError struct {
	Cause error
}

func (e *WhenTrimmedError) Error() string {
	return e.Cause.Error() + " when trimmed"
}

func (e *WhenTrimmedError) Unwrap() error { return e.Cause }

// AndError tags which branch of a combined check failed. Branch is 1 for
// the left check and 2 for the right; the left check runs first and
// short-circuits, so Branch 2 implies the left check passed.
type AndError struct {
	Branch int
	Cause  error
}

func (e *AndError) Error() string { return e.Cause.Error() }

func (e *AndError) Unwrap() error { return e.Cause }

// IdentifierError reports the first invalid character of a failed
// Identifier check. Start distinguishes the stricter first-character
// alphabet from the rest of the value.
type IdentifierError struct {
	Start bool
	Char  rune
}

func (e *IdentifierError) Error() string {
	if e.Start {
		return fmt.Sprintf("value begins with invalid character %q", e.Char)
	}
	return fmt.Sprintf("value contains invalid character %q", e.Char)
}

// IdentifierLaxError reports the first invalid character of a failed
// IdentifierLax check.
type IdentifierLaxError struct {
	Char rune
}

func (e *IdentifierLaxError) Error() string {
	return fmt.Sprintf("value contains invalid character %q", e.Char)
}

// MaxBytesError reports a value exceeding its byte-length ceiling.
type MaxBytesError struct {
	Max int
	Len int
}

func (e *MaxBytesError) Error() string {
	return fmt.Sprintf("length of %d exceeds limit of %d", e.Len, e.Max)
}
