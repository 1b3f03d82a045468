package textkind

// smallCap is the inline buffer capacity in bytes. Values at or below
// this length are stored inline and never reach dynamic storage.
const smallCap = 16

// smallString is a fixed-capacity inline buffer with an explicit length.
// Bytes in [0, length) are valid UTF-8, carried over from the source
// string; bytes past the length are never read.
type smallString struct {
	length uint8
	bytes  [smallCap]byte
}

// smallFromString copies value into an inline buffer. Reports ok=false
// when the value exceeds the buffer capacity.
func smallFromString(value string) (smallString, bool) {
	if len(value) > smallCap {
		return smallString{}, false
	}
	var s smallString
	s.length = uint8(copy(s.bytes[:], value))
	return s, true
}

func (s smallString) String() string {
	return string(s.bytes[:s.length])
}
