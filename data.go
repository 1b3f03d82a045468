package textkind

type dataMode uint8

const (
	dataStatic dataMode = iota
	dataSmall
	dataDynamic
)

// Data is the tri-modal representation behind a Text value: a plain
// string stored as-is, an inline small-string buffer, or heap text under
// a Dynamic storage strategy. Data performs no validation of its own;
// kinds layer validation on top through Text.
type Data struct {
	mode  dataMode
	str   string
	small smallString
	dyn   Dynamic
}

// StaticData stores value as-is with no materialization. Meant for
// string constants and other values the caller keeps alive forever.
func StaticData(value string) Data {
	return Data{mode: dataStatic, str: value}
}

// NewData materializes value: inline when it fits the 16-byte small
// buffer, otherwise in the given storage.
func NewData(value string, storage Storage) Data {
	if small, ok := smallFromString(value); ok {
		return Data{mode: dataSmall, small: small}
	}
	return Data{mode: dataDynamic, dyn: storage.FromString(value)}
}

// DynamicData wraps an existing storage value without copying it.
func DynamicData(value Dynamic) Data {
	return Data{mode: dataDynamic, dyn: value}
}

// String returns a view of the stored text regardless of representation.
func (d Data) String() string {
	switch d.mode {
	case dataSmall:
		return d.small.String()
	case dataDynamic:
		return d.dyn.String()
	default:
		return d.str
	}
}

// Convert remaps the dynamic variant to another storage strategy. The
// static and inline variants pass through unchanged, which is what makes
// storage transitions free for non-heap data.
func (d Data) Convert(storage Storage) Data {
	if d.mode == dataDynamic {
		return Data{mode: dataDynamic, dyn: storage.From(d.dyn)}
	}
	return d
}

// IntoString extracts the stored text, reclaiming a uniquely-held
// dynamic buffer where the strategy allows it.
func (d Data) IntoString() string {
	if d.mode == dataDynamic {
		return d.dyn.IntoString()
	}
	return d.String()
}

// IntoDynamic always yields a value under the given storage strategy,
// materializing one from the static and inline variants when needed.
func (d Data) IntoDynamic(storage Storage) Dynamic {
	if d.mode == dataDynamic {
		if d.dyn.Storage() == storage {
			return d.dyn
		}
		return storage.From(d.dyn)
	}
	return storage.FromString(d.String())
}

// Clone duplicates the data. The dynamic variant delegates to the
// storage handle's Clone, so shared strategies stay O(1).
func (d Data) Clone() Data {
	if d.mode == dataDynamic {
		return Data{mode: dataDynamic, dyn: d.dyn.Clone()}
	}
	return d
}

// IsStatic reports whether the data holds a plain string as-is.
func (d Data) IsStatic() bool { return d.mode == dataStatic }

// IsInline reports whether the data lives in the small-string buffer.
func (d Data) IsInline() bool { return d.mode == dataSmall }

// IsDynamic reports whether the data lives in dynamic storage.
func (d Data) IsDynamic() bool { return d.mode == dataDynamic }
