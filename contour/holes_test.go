package contour

import "testing"

func TestSignedArea2SignFlipsOnReversal(t *testing.T) {
	verts := []Vertex{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 4}, {X: 0, Z: 4}}
	a := signedArea2(verts)
	assertTrue(t, a != 0, "a non-degenerate square has a nonzero signed area")

	reversed := make([]Vertex, len(verts))
	for i, v := range verts {
		reversed[len(verts)-1-i] = v
	}
	b := signedArea2(reversed)
	assertTrue(t, a == -15 && b == 16, "reversing winding order flips the sign; (sum+1)/2 rounds -32 to -15 and 32 to 16")
}

func TestAdmissiblePairInterior(t *testing.T) {
	outer := []Vertex{{X: 0, Z: 0}, {X: 0, Z: 4}, {X: 4, Z: 4}, {X: 4, Z: 0}}
	h := Vertex{X: 2, Z: 2}
	for i := range outer {
		assertTrue(t, admissiblePair(outer, i, h), "a strictly interior point is admissible at every outer vertex of a convex quad")
	}
}

func TestMergeHoleSplicesAtClosestAdmissiblePair(t *testing.T) {
	outer := []Vertex{{X: 0, Z: 0}, {X: 0, Z: 4}, {X: 4, Z: 4}, {X: 4, Z: 0}}
	hole := []Vertex{{X: 1, Z: 1}, {X: 1, Z: 3}, {X: 3, Z: 3}, {X: 3, Z: 1}}

	merged, ok := mergeHole(outer, hole)
	assertTrue(t, ok, "a hole strictly inside a convex outer contour always finds a bridge")
	assertTrue(t, len(merged) == len(outer)+len(hole)+2, "the merged polyline duplicates both bridge endpoints")

	assertTrue(t, merged[3] == outer[0], "the bridge leaves the outer loop through its closest vertex")
	assertTrue(t, merged[5] == hole[0], "the bridge enters the hole loop through its closest vertex")
}

func TestMergeHoleFailsWhenNotAdmissible(t *testing.T) {
	outer := []Vertex{{X: 0, Z: 0}, {X: 4, Z: 0}, {X: 4, Z: 4}, {X: 0, Z: 4}}
	hole := []Vertex{{X: 2, Z: 2}}

	_, ok := mergeHole(outer, hole)
	assertTrue(t, !ok, "a hole vertex right of both incident edges at every outer vertex has no admissible bridge")
}
