package common

// BBox3 is an axis-aligned world-space bounding box, shared by the
// heightfield, contour and navmesh packages for tile and region extents.
type BBox3 struct {
	Min, Max Vec3
}
