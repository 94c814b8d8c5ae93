// Package halfedge implements the half-edge topology core of a manifold
// polygon mesh: an append-only store of vertices, edges and faces, the
// incremental face-insertion algorithm that splices new faces into the
// existing linkage, and the circulators used to walk local neighborhoods.
//
// Identifiers are 32-bit and non-negative once issued. A halfedge encodes
// its parent edge and side: edge = h >> 1, opposite(h) = h ^ 1. Absence
// (no face, no vertex halfedge, no halfedge found) is represented by -1.
// This layout is a hard contract relied on by every circulator; no
// allocation path may violate it.
package halfedge

// NoHalfedge, NoFace and NoVertex mark the absence of an otherwise-valid
// identifier. All element identifiers are otherwise non-negative.
const (
	NoHalfedge int32 = -1
	NoFace     int32 = -1
	NoVertex   int32 = -1
)

// EdgeOf returns the edge owning halfedge h.
func EdgeOf(h int32) int32 {
	return h >> 1
}

// SideOf returns which side of its edge halfedge h is: 0 or 1.
func SideOf(h int32) int32 {
	return h & 1
}

// halfedgeRecord is one directed side of an edge.
type halfedgeRecord struct {
	face   int32 // NoFace if this is a boundary halfedge
	vertex int32 // destination ("to") vertex
	next   int32
	prev   int32
}

// edgeRecord stores a pair of opposite halfedges adjacently so that
// opposite(h) = h ^ 1 holds for both sides.
type edgeRecord struct {
	halfedges [2]halfedgeRecord
}

// vertexRecord carries an optional outgoing halfedge.
type vertexRecord struct {
	halfedge int32 // NoHalfedge if isolated
}

// faceRecord carries one of its bounding halfedges as an anchor.
type faceRecord struct {
	halfedge int32
}
