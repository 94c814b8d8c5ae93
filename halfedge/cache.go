package halfedge

// nextRewrite is one queued (prev, next) pair to be spliced in during the
// commit phase of AddFace: applying it sets next(prev)=next and
// prev(next)=prev simultaneously.
type nextRewrite struct {
	prev int32
	next int32
}

// tentativeCorner is one loop edge as planned by AddFace's middle phases:
// either an existing halfedge being reused (Old), or a brand new edge
// whose link fields are filled in as the per-vertex planning pass visits
// its two endpoints (New). A corner's fields are only meaningful in the
// New case; isNew discriminates the two.
type tentativeCorner struct {
	isNew bool

	// Old case.
	old int32

	// New case. index is assigned up front as (edge slot) << 1 so
	// allocated edge indices stay contiguous and predictable; the rest
	// are filled in by the per-vertex planning pass and must all be set
	// by the time AddFace's commit phase runs.
	index             int32
	from, to          int32
	prev, next        int32
	oppPrev, oppNext  int32
}

// halfedgeOf returns the halfedge identifying this corner: the existing
// one for Old, or the planned index for New.
func (c *tentativeCorner) halfedgeOf() int32 {
	if c.isNew {
		return c.index
	}
	return c.old
}

// Cache is reusable scratch space for AddFace. It holds nothing but
// intermediate planning state, is cleared at the start of every
// insertion, and grows in place across insertions so repeated calls don't
// repeatedly allocate. It has no invariants of its own between calls.
type Cache struct {
	loopHalfedges []int32 // NoHalfedge where the loop edge doesn't exist yet
	needsAdjust   []bool
	nextCache     []nextRewrite
	tentative     []tentativeCorner
	halfedges     []int32
}

// NewCache constructs an empty, reusable AddFace scratch cache.
func NewCache() *Cache {
	return &Cache{}
}

func (c *Cache) clear() {
	c.loopHalfedges = c.loopHalfedges[:0]
	c.needsAdjust = c.needsAdjust[:0]
	c.nextCache = c.nextCache[:0]
	c.tentative = c.tentative[:0]
	c.halfedges = c.halfedges[:0]
}
