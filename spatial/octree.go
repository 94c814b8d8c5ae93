// Package spatial implements a bounded octree over anything that can
// report an AABB intersection test. The geometry collaborator uses it to
// index vertex positions for nearest/range queries without the topology
// core ever being aware that positions exist.
package spatial

import (
	"errors"

	"github.com/halvard/meshtopo"
)

const (
	OctreeMaxDepth     = 21
	OctreeMaxLeafItems = 100
)

var (
	ErrOctreeItemNotInserted = errors.New("spatial: item not inserted")
	ErrOctreeCannotSplitNode = errors.New("spatial: cannot split node")
)

// Octree is a bounded octree indexing items by their axis-aligned bounds.
type Octree struct {
	nodes map[uint64]*OctreeNode
	items []meshtopo.IntersectsAABB
}

// NewOctree constructs a bounded octree.
func NewOctree(aabb meshtopo.AABB) *Octree {
	return &Octree{
		nodes: map[uint64]*OctreeNode{1: NewOctreeNode(1, aabb)},
		items: make([]meshtopo.IntersectsAABB, 0),
	}
}

// Insert an item into the octree.
func (o *Octree) Insert(item meshtopo.IntersectsAABB) error {
	var code uint64

	codes := []uint64{}
	queue := []uint64{1}
	index := len(o.items)

	for len(queue) > 0 {
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if item.IntersectsAABB(node.aabb) {
			if node.isLeaf {
				codes = append(codes, code)
			} else {
				children := node.Children()
				queue = append(queue, children...)
			}
		}
	}

	if len(codes) == 0 {
		return ErrOctreeItemNotInserted
	}

	o.items = append(o.items, item)

	for _, code := range codes {
		node := o.nodes[code]
		node.items = append(node.items, index)

		if node.shouldSplit() {
			if err := o.Split(code); err != nil {
				return err
			}
		}
	}

	return nil
}

// Split a leaf octree node into its eight octant children.
func (o *Octree) Split(code uint64) error {
	node := o.nodes[code]

	if !node.canSplit() {
		return ErrOctreeCannotSplitNode
	}

	for octant, childCode := range node.Children() {
		aabb := node.aabb.Octant(octant)
		childNode := NewOctreeNode(childCode, aabb)

		for _, index := range node.items {
			if o.items[index].IntersectsAABB(aabb) {
				childNode.items = append(childNode.items, index)
			}
		}

		o.nodes[childCode] = childNode
	}

	clear(node.items)
	node.isLeaf = false

	return nil
}

// Query returns the indices (into insertion order) of every item whose
// bounds intersect the query volume.
func (o *Octree) Query(query meshtopo.AABB) []int {
	seen := make(map[int]bool)
	result := make([]int, 0)
	queue := []uint64{1}

	for len(queue) > 0 {
		var code uint64
		code, queue = queue[0], queue[1:]
		node := o.nodes[code]

		if !node.aabb.IntersectsAABB(query) {
			continue
		}

		if node.isLeaf {
			for _, index := range node.items {
				if seen[index] {
					continue
				}

				if o.items[index].IntersectsAABB(query) {
					seen[index] = true
					result = append(result, index)
				}
			}
		} else {
			queue = append(queue, node.Children()...)
		}
	}

	return result
}

// Item returns the item stored at the given insertion index.
func (o *Octree) Item(index int) meshtopo.IntersectsAABB {
	return o.items[index]
}

// Len returns the number of items inserted.
func (o *Octree) Len() int {
	return len(o.items)
}

type OctreeNode struct {
	items  []int
	aabb   meshtopo.AABB
	code   uint64
	isLeaf bool
}

// NewOctreeNode constructs a leaf OctreeNode.
func NewOctreeNode(code uint64, aabb meshtopo.AABB) *OctreeNode {
	return &OctreeNode{
		items:  make([]int, 0),
		aabb:   aabb,
		code:   code,
		isLeaf: true,
	}
}

// Depth computes the depth from the code.
func (o *OctreeNode) Depth() int {
	for depth := 0; depth <= OctreeMaxDepth; depth++ {
		if o.code>>(3*depth) == 1 {
			return depth
		}
	}

	panic("spatial: invalid octree code")
}

// Children computes the children octant codes.
func (o *OctreeNode) Children() []uint64 {
	children := make([]uint64, 8)

	for octant := range children {
		children[octant] = o.code<<3 | uint64(octant)
	}

	return children
}

// canSplit returns true if the node can be split.
func (o *OctreeNode) canSplit() bool {
	return o.isLeaf && o.Depth() < OctreeMaxDepth
}

// shouldSplit returns true if the node should be split.
func (o *OctreeNode) shouldSplit() bool {
	return o.canSplit() && len(o.items) > OctreeMaxLeafItems
}
