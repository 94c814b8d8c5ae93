package halfedge

// Topology is an append-only half-edge store: vertices, edges and faces
// never shrink or get renumbered, but the link fields of existing
// elements are rewritten by AddFace as new faces are spliced in.
//
// Two property containers track per-vertex and per-face side arrays in
// lockstep with the vertex and face counts; CreateVertexProperty and
// CreateFaceProperty are how external code (the geometry collaborator,
// tests, anything else) attaches typed data without Topology knowing its
// type.
type Topology struct {
	vertices []vertexRecord
	edges    []edgeRecord
	faces    []faceRecord

	vprops *PropertyContainer
	fprops *PropertyContainer
}

// NewTopology constructs an empty topology.
func NewTopology() *Topology {
	return &Topology{
		vprops: NewPropertyContainer(),
		fprops: NewPropertyContainer(),
	}
}

// NewTopologyWithCapacity constructs an empty topology with underlying
// arrays pre-sized for the given element counts.
func NewTopologyWithCapacity(nVertices, nEdges, nFaces int) *Topology {
	return &Topology{
		vertices: make([]vertexRecord, 0, nVertices),
		edges:    make([]edgeRecord, 0, nEdges),
		faces:    make([]faceRecord, 0, nFaces),
		vprops:   NewPropertyContainer(),
		fprops:   NewPropertyContainer(),
	}
}

// CreateVertexProperty registers a new per-vertex side array with the
// topology's vertex property container and returns a strong handle to it.
// The array starts pre-filled to the current vertex count so the length
// invariant holds immediately, even if vertices were already added.
func CreateVertexProperty[T any](t *Topology) Property[T] {
	return newProperty[T](t.vprops, t.NumVertices())
}

// CreateFaceProperty registers a new per-face side array with the
// topology's face property container and returns a strong handle to it.
func CreateFaceProperty[T any](t *Topology) Property[T] {
	return newProperty[T](t.fprops, t.NumFaces())
}

func (t *Topology) halfedge(h int32) *halfedgeRecord {
	return &t.edges[EdgeOf(h)].halfedges[SideOf(h)]
}

// ToVertex returns the destination vertex of halfedge h.
func (t *Topology) ToVertex(h int32) int32 {
	return t.halfedge(h).vertex
}

// FromVertex returns the source vertex of halfedge h.
func (t *Topology) FromVertex(h int32) int32 {
	return t.ToVertex(t.OppositeHalfedge(h))
}

// PrevHalfedge returns the halfedge preceding h around its face or
// boundary loop.
func (t *Topology) PrevHalfedge(h int32) int32 {
	return t.halfedge(h).prev
}

// NextHalfedge returns the halfedge following h around its face or
// boundary loop.
func (t *Topology) NextHalfedge(h int32) int32 {
	return t.halfedge(h).next
}

// HalfedgeFace returns the face incident to h, or NoFace if h is a
// boundary halfedge.
func (t *Topology) HalfedgeFace(h int32) int32 {
	return t.halfedge(h).face
}

// FaceHalfedge returns one of the halfedges bounding face f.
func (t *Topology) FaceHalfedge(f int32) int32 {
	return t.faces[f].halfedge
}

// VertexHalfedge returns one of the outgoing halfedges of v, or
// NoHalfedge if v is isolated.
func (t *Topology) VertexHalfedge(v int32) int32 {
	return t.vertices[v].halfedge
}

func (t *Topology) setVertexHalfedge(v, h int32) {
	t.vertices[v].halfedge = h
}

func (t *Topology) setNextHalfedge(hprev, hnext int32) {
	t.halfedge(hprev).next = hnext
	t.halfedge(hnext).prev = hprev
}

// IsBoundaryHalfedge returns true if h carries no incident face.
func (t *Topology) IsBoundaryHalfedge(h int32) bool {
	return t.halfedge(h).face == NoFace
}

// IsBoundaryEdge returns true if either halfedge of edge e is boundary.
func (t *Topology) IsBoundaryEdge(e int32) bool {
	h := e << 1
	return t.IsBoundaryHalfedge(h) || t.IsBoundaryHalfedge(t.OppositeHalfedge(h))
}

// IsBoundaryVertex returns true if v has no incident halfedge, or if its
// stored halfedge is a boundary halfedge.
func (t *Topology) IsBoundaryVertex(v int32) bool {
	h := t.vertices[v].halfedge
	if h == NoHalfedge {
		return true
	}
	return t.IsBoundaryHalfedge(h)
}

// OppositeHalfedge returns the other halfedge of h's edge.
func (t *Topology) OppositeHalfedge(h int32) int32 {
	return h ^ 1
}

// CWRotatedHalfedge returns the next outgoing halfedge clockwise from h
// around their shared origin vertex.
func (t *Topology) CWRotatedHalfedge(h int32) int32 {
	return t.halfedge(t.OppositeHalfedge(h)).next
}

// CCWRotatedHalfedge returns the next outgoing halfedge counterclockwise
// from h around their shared origin vertex.
func (t *Topology) CCWRotatedHalfedge(h int32) int32 {
	return t.OppositeHalfedge(t.halfedge(h).prev)
}

// NumVertices returns the number of vertices.
func (t *Topology) NumVertices() int {
	return len(t.vertices)
}

// NumEdges returns the number of edges.
func (t *Topology) NumEdges() int {
	return len(t.edges)
}

// NumHalfedges returns the number of halfedges.
func (t *Topology) NumHalfedges() int {
	return len(t.edges) * 2
}

// NumFaces returns the number of faces.
func (t *Topology) NumFaces() int {
	return len(t.faces)
}

// FindHalfedge scans the outgoing halfedges of from and returns the first
// whose destination is to, or NoHalfedge if none exists.
func (t *Topology) FindHalfedge(from, to int32) int32 {
	for h := range t.VertexOutgoingHalfedgesCCW(from) {
		if t.ToVertex(h) == to {
			return h
		}
	}
	return NoHalfedge
}

// AddVertex appends a new isolated vertex and returns its index. Every
// registered vertex property grows by one zero-valued slot in lockstep.
func (t *Topology) AddVertex() (int32, error) {
	vi := int32(len(t.vertices))
	t.vertices = append(t.vertices, vertexRecord{halfedge: NoHalfedge})

	if err := t.vprops.PushDefault(); err != nil {
		return NoVertex, err
	}

	return vi, nil
}

func (t *Topology) newEdge(from, to, prev, next, oppPrev, oppNext int32) int32 {
	ei := int32(len(t.edges))
	t.edges = append(t.edges, edgeRecord{
		halfedges: [2]halfedgeRecord{
			{face: NoFace, vertex: to, next: next, prev: prev},
			{face: NoFace, vertex: from, next: oppNext, prev: oppPrev},
		},
	})
	return ei
}

func (t *Topology) newFace(halfedge int32) (int32, error) {
	fi := int32(len(t.faces))

	if err := t.fprops.PushDefault(); err != nil {
		return NoFace, err
	}

	t.faces = append(t.faces, faceRecord{halfedge: halfedge})
	return fi, nil
}

// adjustOutgoingHalfedge rescans the outgoing halfedges of v and, if a
// boundary halfedge is found among them, stores it as v's vertex
// halfedge. It does nothing if v has no boundary halfedge.
func (t *Topology) adjustOutgoingHalfedge(v int32) {
	for h := range t.VertexOutgoingHalfedgesCCW(v) {
		if t.IsBoundaryHalfedge(h) {
			t.setVertexHalfedge(v, h)
			return
		}
	}
}
