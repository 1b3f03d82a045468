package textkind

import "github.com/dmitrymomot/textkind/check"

// Kind identifies a category of validated text. Implementations are
// zero-sized marker struct types used only as type parameters; the zero
// value is consulted for the check and description, so a kind carries no
// state and adds no runtime cost to a Text.
type Kind interface {
	// Check returns the predicate every value of this kind satisfies.
	Check() check.Check

	// Description names the kind in error messages.
	Description() string
}

func checkOf[K Kind]() check.Check {
	var kind K
	return kind.Check()
}

func descriptionOf[K Kind]() string {
	var kind K
	return kind.Description()
}

// TitleKind marks titles: at most 512 bytes, non-empty, no control
// characters, no leading or trailing whitespace.
type TitleKind struct{}

func (TitleKind) Check() check.Check {
	return check.And[check.MaxBytes512, check.Title]{}
}

func (TitleKind) Description() string { return "title" }

// IdentifierKind marks strict identifiers: at most 512 bytes, starting
// with an ASCII letter or underscore, continuing with ASCII letters,
// digits, or underscores.
type IdentifierKind struct{}

func (IdentifierKind) Check() check.Check {
	return check.And[check.MaxBytes512, check.Identifier]{}
}

func (IdentifierKind) Description() string { return "identifier" }

// IdentifierLaxKind marks relaxed identifiers: at most 512 bytes of
// ASCII letters, digits, underscores, and hyphens in any position.
type IdentifierLaxKind struct{}

func (IdentifierLaxKind) Check() check.Check {
	return check.And[check.MaxBytes512, check.IdentifierLax]{}
}

func (IdentifierLaxKind) Description() string { return "identifier" }

// Predefined text types for the built-in kinds.
type (
	// Title is a validated title text.
	Title = Text[TitleKind]

	// Identifier is a validated strict identifier text.
	Identifier = Text[IdentifierKind]

	// IdentifierLax is a validated relaxed identifier text.
	IdentifierLax = Text[IdentifierLaxKind]
)
