package textkind

// Error reports a failed validation for kind K without retaining the
// rejected input. Its message is always the generic "invalid
// <description>" phrase; the structured predicate error stays reachable
// through Unwrap and Cause for diagnostics that need detail.
type Error[K Kind] struct {
	cause error
}

// NewError wraps a predicate error for kind K.
func NewError[K Kind](cause error) *Error[K] {
	return &Error[K]{cause: cause}
}

func (e *Error[K]) Error() string {
	return "invalid " + descriptionOf[K]()
}

func (e *Error[K]) Unwrap() error { return e.cause }

// Cause returns the structured predicate error behind the generic
// message.
func (e *Error[K]) Cause() error { return e.cause }

// ErrorWithValue is a validation error that additionally owns the
// rejected value, so a caller handing ownership into a constructor never
// loses its input.
type ErrorWithValue[K Kind, V any] struct {
	cause error
	value V
}

// NewErrorWithValue wraps a predicate error for kind K together with the
// rejected value.
func NewErrorWithValue[K Kind, V any](cause error, value V) *ErrorWithValue[K, V] {
	return &ErrorWithValue[K, V]{cause: cause, value: value}
}

func (e *ErrorWithValue[K, V]) Error() string {
	return "invalid " + descriptionOf[K]()
}

func (e *ErrorWithValue[K, V]) Unwrap() error { return e.cause }

// Cause returns the structured predicate error behind the generic
// message.
func (e *ErrorWithValue[K, V]) Cause() error { return e.cause }

// Value returns the rejected value.
func (e *ErrorWithValue[K, V]) Value() V { return e.value }

// WithoutValue discards the carried value.
func (e *ErrorWithValue[K, V]) WithoutValue() *Error[K] {
	return &Error[K]{cause: e.cause}
}

// Split separates the error from the carried value.
func (e *ErrorWithValue[K, V]) Split() (*Error[K], V) {
	return e.WithoutValue(), e.value
}

// AttachValue pairs a value-free error with the rejected value it
// describes. No validation is re-run.
func AttachValue[V any, K Kind](err *Error[K], value V) *ErrorWithValue[K, V] {
	return &ErrorWithValue[K, V]{cause: err.cause, value: value}
}

// MapValue transforms the carried value. No validation is re-run.
func MapValue[V2 any, K Kind, V any](err *ErrorWithValue[K, V], fn func(V) V2) *ErrorWithValue[K, V2] {
	return &ErrorWithValue[K, V2]{cause: err.cause, value: fn(err.value)}
}
