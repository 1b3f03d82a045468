// Package check provides the composable validation predicates behind
// textkind text kinds.
//
// Every predicate is a zero-sized struct implementing the Check
// interface: a pure function from a string to a verdict, returning a
// structured error on rejection. Because predicates carry no state they
// can be referenced as type parameters and composed at the type level
// with the And and WhenTrimmed combinators.
//
// # Architecture
//
// Leaf predicates (NotEmpty, SingleLine, NoWhitespace, NoControl,
// TrimmedLeft, TrimmedRight, Trimmed, Identifier, IdentifierLax,
// MaxBytes256/512/1024) live alongside two generic combinators:
//
//   - And[C1, C2]     – both checks must pass; left runs first and
//     short-circuits, and the error tags which branch failed
//   - WhenTrimmed[C]  – the check must pass for the trimmed value
//
// Title is a ready-made composite: non-empty, no control characters,
// no leading or trailing whitespace.
//
// # Error Handling
//
// Detail-free failures are package-level sentinels (ErrEmpty,
// ErrMultiLine, ErrLeadingWhitespace, ErrTrailingWhitespace) matched
// with errors.Is. Failures with diagnostic payload are struct errors
// (NoWhitespaceError, NoControlError, TrimmedError, IdentifierError,
// IdentifierLaxError, MaxBytesError) extracted with errors.As.
// Combinator errors (AndError, WhenTrimmedError) wrap their cause and
// implement Unwrap, so errors.Is and errors.As see through them.
//
// # Usage
//
//	err := check.Title{}.Check("  Hello  ")
//	var trimmed *check.TrimmedError
//	if errors.As(err, &trimmed) {
//	    fmt.Println(trimmed.Side) // check.SideBoth
//	}
//
// All predicates are stateless and goroutine-safe.
package check
