package check

// Check validates a candidate string value. A nil return means the value
// is acceptable; otherwise the returned error describes why it was
// rejected.
//
// Implementations are zero-sized struct types so they can be composed
// through type parameters (see And and WhenTrimmed) and referenced by
// text kinds without carrying any state. Checks must be pure: same input,
// same verdict, no side effects.
type Check interface {
	Check(value string) error
}
