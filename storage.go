package textkind

import "sync/atomic"

// Dynamic is heap-held text under a specific ownership strategy. Values
// are immutable after construction; the only mutable state is the
// reference count of the shared strategies.
type Dynamic interface {
	// String returns a view of the stored text. It never allocates.
	String() string

	// Clone returns a new handle to the stored text. For the shared
	// strategies this is O(1) and increments the reference count; for
	// exclusive storage it produces an independent owner.
	Clone() Dynamic

	// Release gives this handle back to its strategy, decrementing the
	// reference count of shared storage. Go has no destructors, so
	// uniqueness tracking relies on callers releasing clones they are
	// done with. A no-op for exclusive storage.
	Release()

	// TryExtract reclaims the underlying string when this handle is the
	// sole owner. Failure is not an error condition: the handle stays
	// valid and usable. A successful extraction spends the handle.
	TryExtract() (string, bool)

	// IntoString extracts the underlying string when possible and
	// otherwise returns a copy of the view.
	IntoString() string

	// Storage reports the strategy that produced this value.
	Storage() Storage
}

// Storage constructs Dynamic values for one ownership strategy.
type Storage interface {
	// FromString wraps a string in this strategy's storage.
	FromString(value string) Dynamic

	// From rebuilds another strategy's value under this strategy,
	// reclaiming the other's buffer when it is uniquely held and copying
	// its view otherwise.
	From(other Dynamic) Dynamic

	// Name identifies the strategy.
	Name() string
}

// The canonical storage strategies.
var (
	// Exclusive storage has a single owner and is the cheapest default.
	Exclusive Storage = exclusiveStorage{}

	// Shared storage is reference-counted without atomicity. Handles
	// must stay confined to one goroutine.
	Shared Storage = sharedStorage{}

	// SharedAtomic storage is reference-counted with atomic operations,
	// so the same underlying text may be read from multiple goroutines.
	SharedAtomic Storage = atomicStorage{}
)

type exclusiveStorage struct{}

func (exclusiveStorage) FromString(value string) Dynamic { return &ownedString{value: value} }

func (s exclusiveStorage) From(other Dynamic) Dynamic { return s.FromString(other.IntoString()) }

func (exclusiveStorage) Name() string { return "exclusive" }

// ownedString is exclusively owned; extraction always succeeds.
type ownedString struct {
	value string
}

func (o *ownedString) String() string { return o.value }

func (o *ownedString) Clone() Dynamic { return &ownedString{value: o.value} }

func (o *ownedString) Release() {}

func (o *ownedString) TryExtract() (string, bool) { return o.value, true }

func (o *ownedString) IntoString() string { return o.value }

func (o *ownedString) Storage() Storage { return Exclusive }

type sharedStorage struct{}

func (sharedStorage) FromString(value string) Dynamic {
	return &sharedString{cell: &sharedCell{refs: 1, value: value}}
}

func (s sharedStorage) From(other Dynamic) Dynamic { return s.FromString(other.IntoString()) }

func (sharedStorage) Name() string { return "shared" }

type sharedCell struct {
	refs  int32
	value string
}

// sharedString is a handle onto a reference-counted cell. Not safe for
// concurrent use; see SharedAtomic for cross-goroutine sharing.
type sharedString struct {
	cell *sharedCell
}

func (s *sharedString) String() string { return s.cell.value }

func (s *sharedString) Clone() Dynamic {
	s.cell.refs++
	return &sharedString{cell: s.cell}
}

func (s *sharedString) Release() {
	if s.cell.refs > 0 {
		s.cell.refs--
	}
}

func (s *sharedString) TryExtract() (string, bool) {
	if s.cell.refs != 1 {
		return "", false
	}
	s.cell.refs = 0
	return s.cell.value, true
}

func (s *sharedString) IntoString() string {
	if value, ok := s.TryExtract(); ok {
		return value
	}
	return s.cell.value
}

func (s *sharedString) Storage() Storage { return Shared }

type atomicStorage struct{}

func (atomicStorage) FromString(value string) Dynamic {
	cell := &atomicCell{value: value}
	cell.refs.Store(1)
	return &atomicString{cell: cell}
}

func (s atomicStorage) From(other Dynamic) Dynamic { return s.FromString(other.IntoString()) }

func (atomicStorage) Name() string { return "shared-atomic" }

type atomicCell struct {
	refs  atomic.Int32
	value string
}

// atomicString is a handle onto an atomically reference-counted cell.
// The count is the only shared mutable state, so concurrent reads and
// extraction attempts from multiple goroutines are safe.
type atomicString struct {
	cell *atomicCell
}

func (a *atomicString) String() string { return a.cell.value }

func (a *atomicString) Clone() Dynamic {
	a.cell.refs.Add(1)
	return &atomicString{cell: a.cell}
}

func (a *atomicString) Release() {
	for {
		n := a.cell.refs.Load()
		if n == 0 {
			return
		}
		if a.cell.refs.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// TryExtract claims uniqueness with a compare-and-swap, so concurrent
// attempts on the same cell resolve to at most one winner.
func (a *atomicString) TryExtract() (string, bool) {
	if a.cell.refs.CompareAndSwap(1, 0) {
		return a.cell.value, true
	}
	return "", false
}

func (a *atomicString) IntoString() string {
	if value, ok := a.TryExtract(); ok {
		return value
	}
	return a.cell.value
}

func (a *atomicString) Storage() Storage { return SharedAtomic }
