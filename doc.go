// Package textkind provides compile-time-distinguishable, runtime-
// validated text values: a Text[K] of kind K is guaranteed, for its
// entire lifetime, to satisfy the validation predicate associated with
// K, while the way the text is stored (as-is, in an inline small-string
// buffer, or in heap storage under an ownership strategy) is chosen
// independently of that identity.
//
// # Architecture
//
// The building blocks, leaves first:
//
//   - check.Check       – a stateless validation predicate (subpackage check)
//   - Dynamic / Storage – heap-text ownership strategies: Exclusive,
//     Shared (refcounted), SharedAtomic (atomically refcounted)
//   - Data              – tri-modal representation: static / inline-small /
//     dynamic, with a 16-byte small-string optimization
//   - Kind              – zero-sized marker tying a check to a description
//   - Text[K]           – the validated wrapper owning construction,
//     transition, and view operations
//   - Error[K] / ErrorWithValue[K, V] – structured failures, optionally
//     carrying back ownership of the rejected input
//
// Raw strings enter through the Try* constructors, pass the kind's check,
// and are materialized via the cheapest applicable representation. Moving
// a valid text between kinds reuses the existing storage: KindTransition
// relabels without re-validation when both kinds share one check type,
// TryKindTransition re-validates and hands the whole original text back
// on failure, and StorageTransition swaps the ownership strategy without
// touching the text at all.
//
// # Usage
//
//	title, err := textkind.New[textkind.TitleKind]("Some Title")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(title) // Some Title
//
// Custom kinds are zero-sized structs:
//
//	type SummaryKind struct{}
//
//	func (SummaryKind) Check() check.Check  { return check.NotEmpty{} }
//	func (SummaryKind) Description() string { return "summary" }
//
//	type Summary = textkind.Text[SummaryKind]
//
// # Error Handling
//
// Constructor errors display the generic "invalid <description>" phrase;
// the structured predicate error remains reachable through errors.Is,
// errors.As, and Cause. Constructors that take ownership of their input
// (TryFromString, TryFromDynamic, TryFromData) return an ErrorWithValue
// handing the rejected input back, so nothing is ever silently lost.
// Panics are reserved for contract violations: a KindTransition between
// kinds with different check types, or a Converter whose re-validation
// unexpectedly fails.
//
// # Concurrency
//
// Texts are immutable and every operation is synchronous and lock-free.
// The only shared mutable state in the package is the reference count of
// the shared storage strategies; SharedAtomic updates it with atomic
// operations and may be read from many goroutines, while Shared must
// stay confined to one.
package textkind
