package navmesh

import "testing"

func TestLongestAxisTieBreak(t *testing.T) {
	assertTrue(t, longestAxis(5, 5, 5) == 0, "x wins a three-way tie")
	assertTrue(t, longestAxis(3, 5, 5) == 1, "y wins over an equal z when x is smaller")
	assertTrue(t, longestAxis(1, 2, 9) == 2, "the strictly largest extent wins")
}

func TestCalcExtents(t *testing.T) {
	items := []bvItem{
		{min: [3]int{0, 0, 0}, max: [3]int{2, 2, 2}},
		{min: [3]int{-1, 5, 0}, max: [3]int{1, 6, 9}},
	}
	min, max := calcExtents(items)
	assertTrue(t, min == [3]int{-1, 0, 0}, "extents take the component-wise minimum")
	assertTrue(t, max == [3]int{2, 6, 9}, "extents take the component-wise maximum")
}

func TestSubdivideLeaf(t *testing.T) {
	items := []bvItem{{min: [3]int{0, 0, 0}, max: [3]int{1, 1, 1}, poly: 7}}
	nodes := make([]BVNode, 1)
	cur := 0
	subdivide(items, 0, 1, nodes, &cur)
	assertTrue(t, cur == 1, "a single item consumes exactly one node")
	assertTrue(t, nodes[0].Index == 7, "a leaf node's index is the polygon index, not an escape offset")
}

func TestSubdivideInternalEscapeOffset(t *testing.T) {
	items := []bvItem{
		{min: [3]int{0, 0, 0}, max: [3]int{1, 1, 1}, poly: 0},
		{min: [3]int{5, 0, 0}, max: [3]int{6, 1, 1}, poly: 1},
	}
	nodes := make([]BVNode, 3)
	cur := 0
	subdivide(items, 0, 2, nodes, &cur)
	assertTrue(t, cur == 3, "two items produce one internal node plus two leaves")
	assertTrue(t, nodes[0].Index == -3, "the root's escape offset skips both of its children")
}
