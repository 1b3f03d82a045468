package check

// Identifier rejects values that are not strict identifiers: the first
// character must be an ASCII letter or underscore, the rest ASCII
// letters, digits, or underscores. The empty string fails with ErrEmpty.
type Identifier struct{}

func (Identifier) Check(value string) error {
	if value == "" {
		return ErrEmpty
	}
	for i, r := range value {
		if i == 0 {
			if !isIdentStart(r) {
				return &IdentifierError{Start: true, Char: r}
			}
			continue
		}
		if !isIdentRest(r) {
			return &IdentifierError{Char: r}
		}
	}
	return nil
}

// IdentifierLax rejects values that are not relaxed identifiers: every
// character must be an ASCII letter, digit, underscore, or hyphen.
// Unlike Identifier, digits and hyphens may appear anywhere, including
// the first position.
type IdentifierLax struct{}

func (IdentifierLax) Check(value string) error {
	if value == "" {
		return ErrEmpty
	}
	for _, r := range value {
		if !isIdentRest(r) && r != '-' {
			return &IdentifierLaxError{Char: r}
		}
	}
	return nil
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_'
}

func isIdentRest(r rune) bool {
	return isIdentStart(r) || r >= '0' && r <= '9'
}
