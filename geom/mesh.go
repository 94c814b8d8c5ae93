// Package geom is an external collaborator of the halfedge topology core:
// it attaches a 3-component floating-point position to every vertex using
// the property API, and builds a spatial index over those positions. The
// topology never knows positions exist; geom only ever reaches it through
// CreateVertexProperty, AddVertex, AddFace and NumVertices.
package geom

import (
	"github.com/halvard/meshtopo"
	"github.com/halvard/meshtopo/halfedge"
	"github.com/halvard/meshtopo/spatial"
)

// Mesh pairs a half-edge Topology with a per-vertex position property.
// It is a thin collaborator, not part of the topology core: it owns no
// topological invariants of its own, only the extra position data.
type Mesh struct {
	Topology *halfedge.Topology

	points halfedge.Property[meshtopo.Vector]
	cache  *halfedge.Cache
}

// NewMesh constructs an empty Mesh.
func NewMesh() *Mesh {
	topol := halfedge.NewTopology()
	return &Mesh{
		Topology: topol,
		points:   halfedge.CreateVertexProperty[meshtopo.Vector](topol),
		cache:    halfedge.NewCache(),
	}
}

// NewMeshWithCapacity constructs an empty Mesh sized for the given
// vertex/edge/face counts.
func NewMeshWithCapacity(nVertices, nEdges, nFaces int) *Mesh {
	topol := halfedge.NewTopologyWithCapacity(nVertices, nEdges, nFaces)
	return &Mesh{
		Topology: topol,
		points:   halfedge.CreateVertexProperty[meshtopo.Vector](topol),
		cache:    halfedge.NewCache(),
	}
}

// AddVertex appends a new isolated vertex at the given position and
// returns its index.
func (m *Mesh) AddVertex(p meshtopo.Vector) (int32, error) {
	v, err := m.Topology.AddVertex()
	if err != nil {
		return halfedge.NoVertex, err
	}

	if err := m.points.Set(int(v), p); err != nil {
		return halfedge.NoVertex, err
	}

	return v, nil
}

// Point returns the position of vertex v.
func (m *Mesh) Point(v int32) (meshtopo.Vector, error) {
	return m.points.Get(int(v))
}

// AddFace inserts a face bounded by the given vertex loop, reusing the
// Mesh's own scratch cache.
func (m *Mesh) AddFace(verts []int32) (int32, error) {
	return m.Topology.AddFace(verts, m.cache)
}

// AddTriangle is a convenience wrapper over AddFace for the common
// 3-vertex case.
func (m *Mesh) AddTriangle(v0, v1, v2 int32) (int32, error) {
	return m.AddFace([]int32{v0, v1, v2})
}

// Bounds computes the axis-aligned bounding box over every vertex
// position. The second return value is false for an empty mesh.
func (m *Mesh) Bounds() (meshtopo.AABB, bool) {
	n := m.Topology.NumVertices()
	if n == 0 {
		return meshtopo.AABB{}, false
	}

	points := make([]meshtopo.Vector, 0, n)
	for v := int32(0); v < int32(n); v++ {
		p, err := m.points.Get(int(v))
		if err != nil {
			continue
		}
		points = append(points, p)
	}

	if len(points) == 0 {
		return meshtopo.AABB{}, false
	}

	return meshtopo.NewAABBFromVectors(points), true
}

// indexedPoint pairs a vertex id with its position so the spatial index's
// insertion order never has to be trusted to line up with vertex ids: a
// vertex whose position falls outside every octree node simply never gets
// inserted, which would otherwise shift every later index.
type indexedPoint struct {
	vertex int32
	point  meshtopo.Vector
}

func (p indexedPoint) IntersectsAABB(query meshtopo.AABB) bool {
	return p.point.IntersectsAABB(query)
}

// BuildIndex constructs a fresh spatial index over every current vertex
// position, bounded to the mesh's own AABB with a small buffer so points
// exactly on the boundary are never dropped by floating point error.
func (m *Mesh) BuildIndex() (*spatial.Octree, bool) {
	bounds, ok := m.Bounds()
	if !ok {
		return nil, false
	}

	buffered := meshtopo.NewAABB(bounds.Center, bounds.HalfSize.MulScalar(1.001))
	index := spatial.NewOctree(buffered)

	for v := int32(0); v < int32(m.Topology.NumVertices()); v++ {
		p, err := m.points.Get(int(v))
		if err != nil {
			continue
		}
		// Insert only fails for a position outside the root bounds,
		// which the buffered bounds rule out; a vertex that did fail
		// would just not be queryable.
		_ = index.Insert(indexedPoint{vertex: v, point: p})
	}

	return index, true
}

// NearestVertex returns the index of whichever vertex lies inside query
// and is closest to it by Euclidean distance, consulting a freshly built
// spatial index. It returns false if no vertex lies within query.
func (m *Mesh) NearestVertex(query meshtopo.AABB) (int32, bool) {
	index, ok := m.BuildIndex()
	if !ok {
		return halfedge.NoVertex, false
	}

	best := halfedge.NoVertex
	bestDist := 0.0
	center := query.Center

	for _, i := range index.Query(query) {
		ip := index.Item(i).(indexedPoint)
		d := ip.point.Distance(center)
		if best == halfedge.NoVertex || d < bestDist {
			best = ip.vertex
			bestDist = d
		}
	}

	return best, best != halfedge.NoVertex
}
