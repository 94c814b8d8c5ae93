package halfedge

import "iter"

// The six circulator families are lazy sequences over a local topological
// neighborhood: each is a pure function of the topology at iteration
// time, so it is restartable and always finite (it stops the moment the
// walk would return to its anchor).

// VertexOutgoingHalfedgesCCW walks the outgoing halfedges of v
// counterclockwise, starting from VertexHalfedge(v). Empty if v is
// isolated.
func (t *Topology) VertexOutgoingHalfedgesCCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		start := t.VertexHalfedge(v)
		if start == NoHalfedge {
			return
		}

		h := start
		for {
			if !yield(h) {
				return
			}
			h = t.OppositeHalfedge(t.PrevHalfedge(h))
			if h == start {
				return
			}
		}
	}
}

// VertexOutgoingHalfedgesCW walks the outgoing halfedges of v clockwise,
// starting from VertexHalfedge(v). Empty if v is isolated.
func (t *Topology) VertexOutgoingHalfedgesCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		start := t.VertexHalfedge(v)
		if start == NoHalfedge {
			return
		}

		h := start
		for {
			if !yield(h) {
				return
			}
			h = t.NextHalfedge(t.OppositeHalfedge(h))
			if h == start {
				return
			}
		}
	}
}

// VertexFacesCCW walks the faces incident to v counterclockwise, skipping
// boundary gaps.
func (t *Topology) VertexFacesCCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.VertexOutgoingHalfedgesCCW(v) {
			if f := t.HalfedgeFace(h); f != NoFace {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// VertexFacesCW walks the faces incident to v clockwise, skipping
// boundary gaps.
func (t *Topology) VertexFacesCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.VertexOutgoingHalfedgesCW(v) {
			if f := t.HalfedgeFace(h); f != NoFace {
				if !yield(f) {
					return
				}
			}
		}
	}
}

// VertexVerticesCCW walks the one-ring neighbors of v counterclockwise.
func (t *Topology) VertexVerticesCCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.VertexOutgoingHalfedgesCCW(v) {
			if !yield(t.ToVertex(h)) {
				return
			}
		}
	}
}

// VertexVerticesCW walks the one-ring neighbors of v clockwise.
func (t *Topology) VertexVerticesCW(v int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.VertexOutgoingHalfedgesCW(v) {
			if !yield(t.ToVertex(h)) {
				return
			}
		}
	}
}

// FaceHalfedgesCCW walks the halfedges bounding face f counterclockwise,
// starting from FaceHalfedge(f).
func (t *Topology) FaceHalfedgesCCW(f int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		start := t.FaceHalfedge(f)
		h := start
		for {
			if !yield(h) {
				return
			}
			h = t.NextHalfedge(h)
			if h == start {
				return
			}
		}
	}
}

// FaceHalfedgesCW walks the halfedges bounding face f clockwise, starting
// from FaceHalfedge(f).
func (t *Topology) FaceHalfedgesCW(f int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		start := t.FaceHalfedge(f)
		h := start
		for {
			if !yield(h) {
				return
			}
			h = t.PrevHalfedge(h)
			if h == start {
				return
			}
		}
	}
}

// FaceVerticesCCW walks the vertices of face f counterclockwise.
func (t *Topology) FaceVerticesCCW(f int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.FaceHalfedgesCCW(f) {
			if !yield(t.ToVertex(h)) {
				return
			}
		}
	}
}

// FaceVerticesCW walks the vertices of face f clockwise.
func (t *Topology) FaceVerticesCW(f int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for h := range t.FaceHalfedgesCW(f) {
			if !yield(t.ToVertex(h)) {
				return
			}
		}
	}
}
