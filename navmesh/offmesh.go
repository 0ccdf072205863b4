package navmesh

import "navtile/common"

// interior is the classification returned for a point inside the tile's
// AABB on x and z (min inclusive, max exclusive).
const interior = 0xff

// classify computes the 9-cell outcode of point pt against AABB [min,max)
// on x/z, grounded on the teacher's classifyOffMeshPoint. Height is not
// considered here; callers reject interior points outside the y-range
// separately, per spec §4.E.
func classify(pt common.Vec3, min, max common.Vec3) int {
	const (
		xp = 1 << 0
		zp = 1 << 1
		xm = 1 << 2
		zm = 1 << 3
	)

	outcode := 0
	if pt[0] >= max[0] {
		outcode |= xp
	}
	if pt[2] >= max[2] {
		outcode |= zp
	}
	if pt[0] < min[0] {
		outcode |= xm
	}
	if pt[2] < min[2] {
		outcode |= zm
	}

	switch outcode {
	case xp:
		return 0
	case xp | zp:
		return 1
	case zp:
		return 2
	case xm | zp:
		return 3
	case xm:
		return 4
	case xm | zm:
		return 5
	case zm:
		return 6
	case xp | zm:
		return 7
	}
	return interior
}
