package halfedge

import (
	"errors"
	"fmt"
)

// Property errors (see property.go and property_container.go).
var (
	// ErrOutOfBounds is returned by Property.Get/Set when the index is
	// not less than the array's length.
	ErrOutOfBounds = errors.New("halfedge: index out of bounds")

	// ErrBorrowed is returned when an access would violate the
	// single-writer/multi-reader rule for a property array. Acquisition
	// fails immediately; it never blocks.
	ErrBorrowed = errors.New("halfedge: property array is borrowed elsewhere")

	// ErrPropertyDoesNotExist is returned when a container operation
	// reaches a weak back-reference whose property array has already
	// been released by its owner.
	ErrPropertyDoesNotExist = errors.New("halfedge: property no longer exists")
)

// ErrPatchRelinkingFailed is returned by AddFace when the boundary
// structure at a vertex shared by multiple boundary loops cannot be
// disambiguated in a way consistent with inserting the new face.
var ErrPatchRelinkingFailed = errors.New("halfedge: patch relinking failed")

// ComplexVertexError reports that a loop vertex already exists but is not
// on the boundary: inserting another face there would make it non-manifold.
type ComplexVertexError struct {
	Vertex int32
}

func (e *ComplexVertexError) Error() string {
	return fmt.Sprintf("halfedge: vertex %d is not manifold", e.Vertex)
}

// ComplexEdgeError reports that the directed edge between two consecutive
// loop vertices already exists and already carries a face on the side the
// new face would occupy.
type ComplexEdgeError struct {
	Halfedge int32
}

func (e *ComplexEdgeError) Error() string {
	return fmt.Sprintf("halfedge: halfedge %d already bounds a face", e.Halfedge)
}

// fatalf reports a violated planning invariant: a bug in AddFace's
// commit phase, never a consequence of caller input. Commit phases are
// defined to be total once Phases 1-2 have validated the input, so
// reaching one of these is a programming error in this package.
func fatalf(format string, args ...any) {
	panic(fmt.Sprintf(format, args...))
}
