package mesh

import (
	"errors"
	"fmt"
)

var (
	// ErrTopologyNotFound is returned when an operation references topology
	// that does not exist in the mesh, such as splitting an arc whose key is
	// stale or indexing a raw buffer past the vertex count.
	ErrTopologyNotFound = errors.New("required topology not found")

	// ErrTopologyConflict is returned when an operation would produce
	// topology the mesh cannot represent, such as inserting a face over an
	// arc that already has one (a non-manifold edge) or bridging an arc that
	// is not a boundary arc.
	ErrTopologyConflict = errors.New("conflicting topology found")

	// ErrTopologyMalformed is returned when the inputs to an operation are
	// structurally invalid, such as a face perimeter with repeated vertices
	// or bridging an arc with its own opposite.
	ErrTopologyMalformed = errors.New("topology malformed")

	// ErrArityNonPolygonal is returned when a face would have fewer than
	// three sides.
	ErrArityNonPolygonal = errors.New("arity is non-polygonal")

	// ErrArityConflict is returned when topology does not have the arity an
	// operation requires. Errors carrying expected and actual arity wrap this
	// sentinel; see [ArityConflictError].
	ErrArityConflict = errors.New("conflicting arity")

	// ErrArityNonUniform is returned by operations that require every face
	// in the mesh to have the same arity.
	ErrArityNonUniform = errors.New("arity is non-uniform")

	// ErrGeometry is returned when a spatial operation fails, either because
	// the mesh has no surface capability for its vertex geometry or because
	// the positions are degenerate (for example, a zero-length normal).
	ErrGeometry = errors.New("geometric operation failed")
)

// ArityConflictError reports a mismatch between the arity an operation
// requires and the arity it found. It wraps [ErrArityConflict], so callers
// can match it with errors.Is or recover the counts with errors.As.
type ArityConflictError struct {
	Expected int
	Actual   int
}

func (e *ArityConflictError) Error() string {
	return fmt.Sprintf("conflicting arity: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ArityConflictError) Unwrap() error { return ErrArityConflict }

// arityConflict is a shorthand constructor used by buffer conversions.
func arityConflict(expected, actual int) error {
	return &ArityConflictError{Expected: expected, Actual: actual}
}

// expectConsistent unwraps a lookup that cannot fail on a consistent mesh.
// A panic here indicates an internal invariant violation, not a user error;
// every fallible path is surfaced as an error before this is reached.
func expectConsistent[T any](value T, ok bool) T {
	if !ok {
		panic("mesh: internal consistency violated")
	}
	return value
}
