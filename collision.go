package meshtopo

// IntersectsAABB is implemented by anything the spatial index can store:
// points, and bounding volumes themselves.
type IntersectsAABB interface {
	IntersectsAABB(AABB) bool
}
