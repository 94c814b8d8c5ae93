package halfedge

// AddFace inserts a new face bounded by the ordered, distinct vertex loop
// verts (len(verts) must be at least 3) and returns its index.
//
// cache is reusable scratch space; pass the same *Cache across repeated
// calls to avoid reallocating it every time. cache is cleared at the
// start of the call and left holding the last call's scratch state
// afterwards (harmless, since it's cleared again on next use).
//
// AddFace is atomic: Phases 1-2 perform every fallible check before any
// mutation, so a returned error leaves the topology byte-identical to
// its state on entry. Once Phase 2 completes without error, the
// remaining work is bookkeeping over already-validated data; any failure
// past that point indicates a bug in this package, not a problem with
// verts, and is reported as a panic rather than an error.
func (t *Topology) AddFace(verts []int32, cache *Cache) (int32, error) {
	n := len(verts)
	if n < 3 {
		fatalf("halfedge: a face loop needs at least 3 vertices, got %d", n)
	}

	cache.clear()

	// Phase 1 — validate.
	for i := 0; i < n; i++ {
		v := verts[i]

		if !t.IsBoundaryVertex(v) {
			return NoFace, &ComplexVertexError{Vertex: v}
		}

		h := t.FindHalfedge(v, verts[(i+1)%n])
		if h != NoHalfedge && !t.IsBoundaryHalfedge(h) {
			return NoFace, &ComplexEdgeError{Halfedge: h}
		}

		cache.loopHalfedges = append(cache.loopHalfedges, h)
		cache.needsAdjust = append(cache.needsAdjust, false)
	}

	// Phase 2 — plan patch relinks. No error may be raised past this
	// point: every corner's data has already been validated.
	for i := 0; i < n; i++ {
		prev := cache.loopHalfedges[i]
		next := cache.loopHalfedges[(i+1)%n]

		if prev == NoHalfedge || next == NoHalfedge || t.NextHalfedge(prev) == next {
			continue
		}

		out := t.OppositeHalfedge(next)
		for {
			out = t.OppositeHalfedge(t.NextHalfedge(out))
			if t.IsBoundaryHalfedge(out) {
				break
			}
		}
		boundprev := out

		if boundprev == prev {
			return NoFace, ErrPatchRelinkingFailed
		}

		boundnext := t.NextHalfedge(boundprev)
		pstart := t.NextHalfedge(prev)
		pend := t.PrevHalfedge(next)

		cache.nextCache = append(cache.nextCache,
			nextRewrite{boundprev, pstart},
			nextRewrite{pend, boundnext},
			nextRewrite{prev, next},
		)
	}

	// Phase 3 — plan new edges and boundary linkage.
	ei := int32(t.NumEdges())
	for i := 0; i < n; i++ {
		if h := cache.loopHalfedges[i]; h != NoHalfedge {
			cache.tentative = append(cache.tentative, tentativeCorner{isNew: false, old: h})
			continue
		}

		index := ei << 1
		ei++
		cache.tentative = append(cache.tentative, tentativeCorner{
			isNew: true,
			index: index,
			from:  verts[i],
			to:    verts[(i+1)%n],
			prev:  NoHalfedge, next: NoHalfedge,
			oppPrev: NoHalfedge, oppNext: NoHalfedge,
		})
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		e0 := &cache.tentative[i]
		e1 := &cache.tentative[j]
		v := verts[j]

		switch {
		case !e0.isNew && !e1.isNew:
			cache.needsAdjust[j] = t.VertexHalfedge(v) == e1.old

		case e0.isNew && !e1.isNew:
			innerprev := e0.index
			innernext := e1.old
			outernext := t.OppositeHalfedge(innerprev)
			boundprev := t.PrevHalfedge(innernext)

			cache.nextCache = append(cache.nextCache, nextRewrite{boundprev, outernext})
			e0.oppPrev = boundprev
			cache.nextCache = append(cache.nextCache, nextRewrite{innerprev, innernext})
			e0.next = innernext
			t.setVertexHalfedge(v, outernext)

		case !e0.isNew && e1.isNew:
			innerprev := e0.old
			innernext := e1.index
			outerprev := t.OppositeHalfedge(innernext)
			boundnext := t.NextHalfedge(innerprev)

			cache.nextCache = append(cache.nextCache, nextRewrite{outerprev, boundnext})
			e1.oppNext = boundnext
			cache.nextCache = append(cache.nextCache, nextRewrite{innerprev, innernext})
			e1.prev = innerprev
			t.setVertexHalfedge(v, boundnext)

		default: // e0.isNew && e1.isNew
			innerprev := e0.index
			innernext := e1.index
			outernext := t.OppositeHalfedge(innerprev)
			outerprev := t.OppositeHalfedge(innernext)

			if boundnext := t.VertexHalfedge(v); boundnext != NoHalfedge {
				boundprev := t.PrevHalfedge(boundnext)
				cache.nextCache = append(cache.nextCache,
					nextRewrite{boundprev, outernext},
					nextRewrite{outerprev, boundnext},
				)
				e0.next = innernext
				e0.oppPrev = boundprev
				e1.prev = innerprev
				e1.oppNext = boundnext
			} else {
				t.setVertexHalfedge(v, outernext)
				e0.next = innernext
				e0.oppPrev = outerprev
				e1.prev = innerprev
				e1.oppNext = outernext
			}
		}
	}

	// Phase 4 — commit. Allocate every New corner as a real edge, in the
	// same order their indices were assigned above.
	cache.halfedges = cache.halfedges[:0]
	for i := range cache.tentative {
		c := &cache.tentative[i]

		if c.isNew {
			if c.prev == NoHalfedge || c.next == NoHalfedge || c.oppPrev == NoHalfedge || c.oppNext == NoHalfedge {
				fatalf("halfedge: unable to create edge loop: corner %d left unplanned", i)
			}

			got := t.newEdge(c.from, c.to, c.prev, c.next, c.oppPrev, c.oppNext)
			if want := EdgeOf(c.index); got != want {
				fatalf("halfedge: failed to create an edge loop: got edge %d, want %d", got, want)
			}
		}

		cache.halfedges = append(cache.halfedges, c.halfedgeOf())
	}

	anchor := cache.tentative[len(cache.tentative)-1].halfedgeOf()
	fnew, err := t.newFace(anchor)
	if err != nil {
		fatalf("halfedge: unable to register new face: %v", err)
	}

	for _, h := range cache.halfedges {
		t.halfedge(h).face = fnew
	}

	for _, rewrite := range cache.nextCache {
		t.setNextHalfedge(rewrite.prev, rewrite.next)
	}

	for i := 0; i < n; i++ {
		if cache.needsAdjust[i] {
			t.adjustOutgoingHalfedge(verts[i])
		}
	}

	return fnew, nil
}
