package contour

import "navtile/common"

// xz packs a vertex's x/y/z into the 3-wide slice common's Area2/LeftOn
// predicates expect (index 0 = x, index 2 = z; index 1 is unused by them).
func xz(v Vertex) []int {
	return []int{v.X, v.Y, v.Z}
}

// signedArea2 is the signed 2D (xz-plane) area of the closed polyline: the
// shoelace sum halved as (sum+1)/2 with Go's truncating division, the way
// the teacher's calcAreaOfPolygon2D rounds it. It is positive for outer
// (CCW) contours and negative for holes; because of the +1, reversing the
// winding can change the magnitude by one.
func signedArea2(verts []Vertex) int {
	area := 0
	n := len(verts)
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := verts[i], verts[j]
		area += vi.X*vj.Z - vj.X*vi.Z
		j = i
	}
	return (area + 1) / 2
}

// admissiblePair reports whether hole vertex h is a valid merge bridge for
// outer vertex at index i: h must lie on or to the left of both edges
// incident to outer[i], per spec §4.C.
func admissiblePair(outer []Vertex, i int, h Vertex) bool {
	n := len(outer)
	prev := outer[common.Prev(i, n)]
	cur := outer[i]
	next := outer[common.Next(i, n)]
	return common.LeftOn(xz(prev), xz(cur), xz(h)) &&
		common.LeftOn(xz(cur), xz(next), xz(h))
}

// mergeHole splices hole into outer at the closest admissible mutually
// visible vertex pair, returning the new outer vertex array and whether a
// bridge was found. On failure the caller keeps both contours untouched,
// per failure kind 5 in the error-handling design.
func mergeHole(outer, hole []Vertex) ([]Vertex, bool) {
	no, nh := len(outer), len(hole)

	bestI, bestJ, bestDist := -1, -1, 0
	found := false
	for i := 0; i < no; i++ {
		for j := 0; j < nh; j++ {
			if !admissiblePair(outer, i, hole[j]) {
				continue
			}
			dx := outer[i].X - hole[j].X
			dz := outer[i].Z - hole[j].Z
			dist := dx*dx + dz*dz
			if !found || dist < bestDist {
				bestI, bestJ, bestDist = i, j, dist
				found = true
			}
		}
	}
	if !found {
		return outer, false
	}

	merged := make([]Vertex, 0, no+nh+2)
	oi := common.Next(bestI, no)
	for k := 0; k <= no; k++ {
		merged = append(merged, outer[oi])
		oi = common.Next(oi, no)
	}
	hi := bestJ
	for k := 0; k <= nh; k++ {
		merged = append(merged, hole[hi])
		hi = common.Next(hi, nh)
	}
	return merged, true
}
