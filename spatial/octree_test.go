package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/meshtopo"
)

// Test inserting a point that lies within the root bounds.
func TestOctreeInsert(t *testing.T) {
	aabb := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(10, 10, 10))
	octree := NewOctree(aabb)

	err := octree.Insert(meshtopo.NewVector(1, 1, 1))
	assert.NoError(t, err)
	assert.Equal(t, 1, octree.Len())
}

// Test that a point outside the root bounds fails to insert.
func TestOctreeInsertOutOfBounds(t *testing.T) {
	aabb := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(1, 1, 1))
	octree := NewOctree(aabb)

	err := octree.Insert(meshtopo.NewVector(5, 5, 5))
	assert.ErrorIs(t, err, ErrOctreeItemNotInserted)
	assert.Equal(t, 0, octree.Len())
}

// Test that a leaf splits once it holds more items than the leaf threshold.
func TestOctreeSplitsOnOverflow(t *testing.T) {
	aabb := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(10, 10, 10))
	octree := NewOctree(aabb)

	for i := 0; i < OctreeMaxLeafItems+1; i++ {
		err := octree.Insert(meshtopo.NewVector(0, 0, 0))
		assert.NoError(t, err)
	}

	root := octree.nodes[1]
	assert.False(t, root.isLeaf)
}

// Test that Query returns items whose bounds intersect the query volume
// and excludes those that don't.
func TestOctreeQuery(t *testing.T) {
	aabb := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(10, 10, 10))
	octree := NewOctree(aabb)

	assert.NoError(t, octree.Insert(meshtopo.NewVector(1, 1, 1)))
	assert.NoError(t, octree.Insert(meshtopo.NewVector(-8, -8, -8)))

	query := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(2, 2, 2))
	result := octree.Query(query)

	assert.Len(t, result, 1)
	assert.Equal(t, meshtopo.NewVector(1, 1, 1), octree.Item(result[0]))
}

// Test that Query deduplicates an item straddling multiple leaf nodes.
func TestOctreeQueryDeduplicates(t *testing.T) {
	aabb := meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(10, 10, 10))
	octree := NewOctree(aabb)

	for i := 0; i < OctreeMaxLeafItems+1; i++ {
		assert.NoError(t, octree.Insert(meshtopo.NewVector(0, 0, 0)))
	}

	result := octree.Query(aabb)
	assert.Len(t, result, OctreeMaxLeafItems+1)
}

// Test node depth and child code computation.
func TestOctreeNodeDepthAndChildren(t *testing.T) {
	root := NewOctreeNode(1, meshtopo.NewAABB(meshtopo.NewVector(0, 0, 0), meshtopo.NewVector(1, 1, 1)))
	assert.Equal(t, 0, root.Depth())

	children := root.Children()
	assert.Len(t, children, 8)

	child := NewOctreeNode(children[0], meshtopo.AABB{})
	assert.Equal(t, 1, child.Depth())
}
