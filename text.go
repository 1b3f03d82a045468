package textkind

import (
	"fmt"
	"reflect"
	"strings"
)

// Text is a validated text value of kind K. Every live Text satisfies
// K's check: constructors validate before making any storage decision,
// and transitions either re-validate or require an identical check type.
// Texts are immutable after construction.
//
// The zero Text holds the empty string; whether that is valid depends on
// K's check, so obtain Texts through the constructors.
type Text[K Kind] struct {
	data Data
}

// TryFromStatic validates value and stores it as-is, with no
// materialization. Meant for string constants. On failure the returned
// *Error[K] carries no value: the caller already holds the input.
func TryFromStatic[K Kind](value string) (Text[K], error) {
	if err := checkOf[K]().Check(value); err != nil {
		return Text[K]{}, NewError[K](err)
	}
	return Text[K]{data: StaticData(value)}, nil
}

// MustFromStatic is TryFromStatic for values known valid at compile
// time, such as literals in package variables. It panics on failure.
func MustFromStatic[K Kind](value string) Text[K] {
	text, err := TryFromStatic[K](value)
	if err != nil {
		panic(err)
	}
	return text
}

// New validates value and materializes it with Exclusive storage, inline
// when it fits the small buffer. On failure the returned *Error[K]
// carries no value: the caller's input is untouched.
func New[K Kind](value string) (Text[K], error) {
	if err := checkOf[K]().Check(value); err != nil {
		return Text[K]{}, NewError[K](err)
	}
	return Text[K]{data: NewData(value, Exclusive)}, nil
}

// TryFromString validates value and materializes it with the given
// storage, inline when it fits the small buffer. On failure the returned
// error is an *ErrorWithValue[K, string] handing the input back.
func TryFromString[K Kind](value string, storage Storage) (Text[K], error) {
	if err := checkOf[K]().Check(value); err != nil {
		return Text[K]{}, NewErrorWithValue[K](err, value)
	}
	return Text[K]{data: NewData(value, storage)}, nil
}

// TryFromDynamic validates an existing storage value and wraps it
// without copying. On failure the returned error is an
// *ErrorWithValue[K, Dynamic] handing the storage back.
func TryFromDynamic[K Kind](value Dynamic) (Text[K], error) {
	if err := checkOf[K]().Check(value.String()); err != nil {
		return Text[K]{}, NewErrorWithValue[K](err, value)
	}
	return Text[K]{data: DynamicData(value)}, nil
}

// TryFromData validates an existing data value and adopts it. On failure
// the returned error is an *ErrorWithValue[K, Data] handing the data
// back.
func TryFromData[K Kind](data Data) (Text[K], error) {
	if err := checkOf[K]().Check(data.String()); err != nil {
		return Text[K]{}, NewErrorWithValue[K](err, data)
	}
	return Text[K]{data: data}, nil
}

// String returns a view of the text. It never allocates for static or
// dynamic data and copies at most 16 bytes for inline data.
func (t Text[K]) String() string { return t.data.String() }

// IntoString extracts the text, reclaiming a uniquely-held dynamic
// buffer where the storage strategy allows it.
func (t Text[K]) IntoString() string { return t.data.IntoString() }

// IntoDynamic extracts the text as a value of the given storage
// strategy, materializing one when the data is static or inline.
func (t Text[K]) IntoDynamic(storage Storage) Dynamic { return t.data.IntoDynamic(storage) }

// IntoData extracts the underlying data value.
func (t Text[K]) IntoData() Data { return t.data }

// Clone duplicates the text. Shared storage strategies clone in O(1) by
// bumping their reference count.
func (t Text[K]) Clone() Text[K] { return Text[K]{data: t.data.Clone()} }

// Equal reports whether both texts hold the same string, regardless of
// representation.
func (t Text[K]) Equal(other Text[K]) bool { return t.String() == other.String() }

// Compare orders texts lexically by their string views.
func (t Text[K]) Compare(other Text[K]) int { return strings.Compare(t.String(), other.String()) }

// KindTransition relabels t as kind K2 without re-validation. Both kinds
// must expose the identical check type; Go cannot state that bound in a
// type constraint, so it is asserted at runtime and a mismatch panics.
// When the assertion holds the transition is pure relabeling and cannot
// produce an invalid text, since the value already passed the same
// check.
func KindTransition[K2, K Kind](t Text[K]) Text[K2] {
	if reflect.TypeOf(checkOf[K]()) != reflect.TypeOf(checkOf[K2]()) {
		panic(fmt.Sprintf(
			"textkind: kind transition from %q to %q requires a shared check type",
			descriptionOf[K](), descriptionOf[K2](),
		))
	}
	return Text[K2]{data: t.data}
}

// TryKindTransition re-validates t against K2's check and relabels it on
// success, reusing the existing storage. On failure the returned error
// is an *ErrorWithValue[K2, Text[K]] carrying the entire original text,
// which remains valid for its own kind.
func TryKindTransition[K2, K Kind](t Text[K]) (Text[K2], error) {
	if err := checkOf[K2]().Check(t.String()); err != nil {
		return Text[K2]{}, NewErrorWithValue[K2](err, t)
	}
	return Text[K2]{data: t.data}, nil
}

// StorageTransition moves the text to another storage strategy while the
// kind stays fixed. The text itself is unchanged, so no re-validation
// happens and the operation cannot fail; static and inline data pass
// through at zero cost.
func (t Text[K]) StorageTransition(storage Storage) Text[K] {
	return Text[K]{data: t.data.Convert(storage)}
}
