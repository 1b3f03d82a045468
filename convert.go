package textkind

import "errors"

// Converter maps a text of kind From to kind To and must not fail. It is
// meant for kind pairs where To's check provably accepts everything
// From's check accepts. Implementations typically call TryKindTransition
// and panic when it unexpectedly fails; such a panic signals a defective
// Converter, never an ordinary runtime condition.
type Converter[From, To Kind] interface {
	Convert(text Text[From]) Text[To]
}

// TryConverter maps a text of kind From to kind To and may fail with a
// converter-chosen error wrapped in a ConvertError, which hands the
// original text back.
type TryConverter[From, To Kind] interface {
	TryConvert(text Text[From]) (Text[To], *ConvertError[From])
}

// Convert applies an infallible converter to text.
func Convert[From, To Kind](conv Converter[From, To], text Text[From]) Text[To] {
	return conv.Convert(text)
}

// TryConvert applies a fallible converter to text.
func TryConvert[From, To Kind](conv TryConverter[From, To], text Text[From]) (Text[To], *ConvertError[From]) {
	return conv.TryConvert(text)
}

// ConvertError bundles a conversion failure with the original source
// text, so a failed conversion never loses the caller's value.
type ConvertError[K Kind] struct {
	Err  error
	Text Text[K]
}

func (e *ConvertError[K]) Error() string { return e.Err.Error() }

func (e *ConvertError[K]) Unwrap() error { return e.Err }

// ToConvertError reshuffles a value-bearing target-kind error into a
// source-kind conversion error. Pure data movement: nothing is lost and
// nothing is re-validated.
func ToConvertError[K2, K Kind](err *ErrorWithValue[K2, Text[K]]) *ConvertError[K] {
	plain, text := err.Split()
	return &ConvertError[K]{Err: plain, Text: text}
}

// ToErrorWithValue is the inverse of ToConvertError: it reattaches the
// source text to the target-kind error. When the conversion error wraps
// a *Error[K2] its predicate cause is preserved; any other error becomes
// the cause directly.
func ToErrorWithValue[K2, K Kind](err *ConvertError[K]) *ErrorWithValue[K2, Text[K]] {
	cause := err.Err
	var plain *Error[K2]
	if errors.As(err.Err, &plain) {
		cause = plain.Cause()
	}
	return NewErrorWithValue[K2](cause, err.Text)
}
