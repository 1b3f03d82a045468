package check

import "strings"

// And combines two checks. The left check runs first and short-circuits:
// when it fails, the right check is never evaluated. Nest instances to
// combine any number of checks.
//
// Both type arguments must be zero-sized struct checks; the combinator
// invokes them through their zero values.
type And[C1, C2 Check] struct{}

func (And[C1, C2]) Check(value string) error {
	var left C1
	if err := left.Check(value); err != nil {
		return &AndError{Branch: 1, Cause: err}
	}
	var right C2
	if err := right.Check(value); err != nil {
		return &AndError{Branch: 2, Cause: err}
	}
	return nil
}

// WhenTrimmed applies a check to the value with leading and trailing
// whitespace removed. The value itself is not modified; only the
// verdict is computed against the trimmed form.
type WhenTrimmed[C Check] struct{}

func (WhenTrimmed[C]) Check(value string) error {
	var inner C
	if err := inner.Check(strings.TrimSpace(value)); err != nil {
		return &WhenTrimmedError{Cause: err}
	}
	return nil
}

// Title accepts non-empty text free of control characters and of leading
// or trailing whitespace.
type Title = And[NotEmpty, And[NoControl, Trimmed]]
