package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test inserting a single triangle: every vertex halfedge is boundary, its
// opposite bounds the new face, and exactly half the halfedges are
// boundary.
func TestAddFaceTriangle(t *testing.T) {
	topol := NewTopology()
	cache := NewCache()

	verts := make([]int32, 3)
	for i := range verts {
		v, err := topol.AddVertex()
		assert.NoError(t, err)
		verts[i] = v
	}
	assert.Equal(t, []int32{0, 1, 2}, verts)

	face, err := topol.AddFace(verts, cache)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), face)

	assert.Equal(t, 1, topol.NumFaces())
	assert.Equal(t, 3, topol.NumEdges())
	assert.Equal(t, 6, topol.NumHalfedges())
	assert.Equal(t, 3, topol.NumVertices())

	for _, v := range verts {
		h := topol.VertexHalfedge(v)
		assert.NotEqual(t, NoHalfedge, h)
		assert.True(t, topol.IsBoundaryHalfedge(h))

		oh := topol.OppositeHalfedge(h)
		assert.False(t, topol.IsBoundaryHalfedge(oh))
		assert.Equal(t, face, topol.HalfedgeFace(oh))
	}

	boundary, interior := 0, 0
	for h := int32(0); h < int32(topol.NumHalfedges()); h++ {
		if topol.IsBoundaryHalfedge(h) {
			boundary++
		} else {
			interior++
		}
	}
	assert.Equal(t, 3, boundary)
	assert.Equal(t, 3, interior)

	for i := 0; i < 3; i++ {
		h := topol.FindHalfedge(verts[i], verts[(i+1)%3])
		assert.False(t, topol.IsBoundaryHalfedge(h))
	}
}

// Test inserting two triangles that share one edge.
func TestAddFaceTwoTriangles(t *testing.T) {
	topol := NewTopology()
	cache := NewCache()

	verts := make([]int32, 4)
	for i := range verts {
		v, err := topol.AddVertex()
		assert.NoError(t, err)
		verts[i] = v
	}

	f0, err := topol.AddFace([]int32{verts[0], verts[1], verts[2]}, cache)
	assert.NoError(t, err)
	f1, err := topol.AddFace([]int32{verts[0], verts[2], verts[3]}, cache)
	assert.NoError(t, err)

	assert.Equal(t, int32(0), f0)
	assert.Equal(t, int32(1), f1)

	assert.Equal(t, 4, topol.NumVertices())
	assert.Equal(t, 10, topol.NumHalfedges())
	assert.Equal(t, 5, topol.NumEdges())
	assert.Equal(t, 2, topol.NumFaces())

	boundaryEdges, interiorEdges := 0, 0
	for e := int32(0); e < int32(topol.NumEdges()); e++ {
		if topol.IsBoundaryEdge(e) {
			boundaryEdges++
		} else {
			interiorEdges++
		}
	}
	assert.Equal(t, 4, boundaryEdges)
	assert.Equal(t, 1, interiorEdges)
}

// Test that a loop running along the shared edge of two triangles in the
// direction that already bounds a face is rejected as a complex edge,
// leaving the topology untouched.
func TestAddFaceComplexEdgeRejected(t *testing.T) {
	topol := NewTopology()
	cache := NewCache()

	verts := make([]int32, 4)
	for i := range verts {
		v, err := topol.AddVertex()
		assert.NoError(t, err)
		verts[i] = v
	}

	_, err := topol.AddFace([]int32{verts[0], verts[1], verts[2]}, cache)
	assert.NoError(t, err)
	_, err = topol.AddFace([]int32{verts[0], verts[2], verts[3]}, cache)
	assert.NoError(t, err)

	facesBefore := topol.NumFaces()
	edgesBefore := topol.NumEdges()

	_, err = topol.AddFace([]int32{verts[0], verts[2], verts[1]}, cache)
	assert.Error(t, err)

	var complexEdge *ComplexEdgeError
	assert.ErrorAs(t, err, &complexEdge)

	assert.Equal(t, facesBefore, topol.NumFaces())
	assert.Equal(t, edgesBefore, topol.NumEdges())
}

// Test that reusing an interior (non-boundary) vertex in a new loop is
// rejected as a complex vertex.
func TestAddFaceComplexVertexRejected(t *testing.T) {
	topol := quadBox(t)
	cache := NewCache()

	_, err := topol.AddFace([]int32{0, 1, 2}, cache)
	assert.Error(t, err)

	var complexVertex *ComplexVertexError
	assert.ErrorAs(t, err, &complexVertex)
}

// Test inserting a single quad.
func TestAddFaceQuad(t *testing.T) {
	topol := NewTopology()
	cache := NewCache()

	verts := make([]int32, 4)
	for i := range verts {
		v, err := topol.AddVertex()
		assert.NoError(t, err)
		verts[i] = v
	}
	assert.Equal(t, []int32{0, 1, 2, 3}, verts)

	face, err := topol.AddFace(verts, cache)
	assert.NoError(t, err)
	assert.Equal(t, int32(0), face)

	assert.Equal(t, 1, topol.NumFaces())
	assert.Equal(t, 4, topol.NumEdges())
	assert.Equal(t, 8, topol.NumHalfedges())
	assert.Equal(t, 4, topol.NumVertices())

	for _, v := range verts {
		h := topol.VertexHalfedge(v)
		assert.True(t, topol.IsBoundaryHalfedge(h))

		oh := topol.OppositeHalfedge(h)
		assert.False(t, topol.IsBoundaryHalfedge(oh))
		assert.Equal(t, face, topol.HalfedgeFace(oh))
	}

	boundary, interior := 0, 0
	for h := int32(0); h < int32(topol.NumHalfedges()); h++ {
		if topol.IsBoundaryHalfedge(h) {
			boundary++
		} else {
			interior++
		}
	}
	assert.Equal(t, 4, boundary)
	assert.Equal(t, 4, interior)
}

// Test that AddFace panics when given a degenerate (fewer than 3 vertex)
// loop; that precondition is a caller bug, not a recoverable error.
func TestAddFaceTooFewVertsPanics(t *testing.T) {
	topol := NewTopology()
	cache := NewCache()

	v0, err := topol.AddVertex()
	assert.NoError(t, err)
	v1, err := topol.AddVertex()
	assert.NoError(t, err)

	assert.Panics(t, func() {
		_, _ = topol.AddFace([]int32{v0, v1}, cache)
	})
}

// Test the closed quad-box fixture via AddFace.
func TestAddFaceQuadBox(t *testing.T) {
	topol := quadBox(t)
	assert.Equal(t, 6, topol.NumFaces())
}
