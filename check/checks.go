package check

import (
	"strings"
	"unicode"
)

// NotEmpty rejects the empty string.
type NotEmpty struct{}

func (NotEmpty) Check(value string) error {
	if value == "" {
		return ErrEmpty
	}
	return nil
}

// SingleLine rejects any newline, including a trailing one.
type SingleLine struct{}

func (SingleLine) Check(value string) error {
	if strings.ContainsRune(value, '\n') {
		return ErrMultiLine
	}
	return nil
}

// NoWhitespace rejects values containing whitespace. The error counts
// whitespace runs, not individual characters: "a  b c" has two runs.
type NoWhitespace struct{}

func (NoWhitespace) Check(value string) error {
	count := 0
	inRun := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count > 0 {
		return &NoWhitespaceError{Count: count}
	}
	return nil
}

// NoControl rejects values containing control characters.
type NoControl struct{}

func (NoControl) Check(value string) error {
	count := 0
	for _, r := range value {
		if unicode.IsControl(r) {
			count++
		}
	}
	if count > 0 {
		return &NoControlError{Count: count}
	}
	return nil
}

// TrimmedLeft rejects values starting with whitespace.
type TrimmedLeft struct{}

func (TrimmedLeft) Check(value string) error {
	if len(value) != len(strings.TrimLeftFunc(value, unicode.IsSpace)) {
		return ErrLeadingWhitespace
	}
	return nil
}

// TrimmedRight rejects values ending with whitespace.
type TrimmedRight struct{}

func (TrimmedRight) Check(value string) error {
	if len(value) != len(strings.TrimRightFunc(value, unicode.IsSpace)) {
		return ErrTrailingWhitespace
	}
	return nil
}

// Trimmed rejects values with leading or trailing whitespace. A non-empty
// value that is whitespace throughout reports SideOnly rather than a
// left/right/both split; the empty string passes, since trimming it
// changes nothing.
type Trimmed struct{}

func (Trimmed) Check(value string) error {
	if value != "" && strings.TrimSpace(value) == "" {
		return &TrimmedError{Side: SideOnly}
	}
	left := TrimmedLeft{}.Check(value) != nil
	right := TrimmedRight{}.Check(value) != nil
	switch {
	case left && right:
		return &TrimmedError{Side: SideBoth}
	case left:
		return &TrimmedError{Side: SideLeft}
	case right:
		return &TrimmedError{Side: SideRight}
	}
	return nil
}

func maxBytes(value string, max int) error {
	if len(value) > max {
		return &MaxBytesError{Max: max, Len: len(value)}
	}
	return nil
}

// MaxBytes256 rejects values longer than 256 bytes.
type MaxBytes256 struct{}

func (MaxBytes256) Check(value string) error { return maxBytes(value, 256) }

// MaxBytes512 rejects values longer than 512 bytes.
type MaxBytes512 struct{}

func (MaxBytes512) Check(value string) error { return maxBytes(value, 512) }

// MaxBytes1024 rejects values longer than 1024 bytes.
type MaxBytes1024 struct{}

func (MaxBytes1024) Check(value string) error { return maxBytes(value, 1024) }
