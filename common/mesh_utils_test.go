package common

import "testing"

func TestPrevNext(t *testing.T) {
	assertTrue(t, Prev(0, 4) == 3, "Prev wraps at zero")
	assertTrue(t, Prev(2, 4) == 1, "Prev steps back within range")
	assertTrue(t, Next(3, 4) == 0, "Next wraps at the end")
	assertTrue(t, Next(1, 4) == 2, "Next steps forward within range")
}

func TestArea2LeftOn(t *testing.T) {
	a := []int{0, 0, 0}
	b := []int{4, 0, 0}
	left := []int{0, 0, -4}
	right := []int{0, 0, 4}
	on := []int{8, 0, 0}

	assertTrue(t, Area2(a, b, left) < 0, "a point left of a->b (toward -z) has negative area")
	assertTrue(t, Area2(a, b, right) > 0, "a point right of a->b (toward +z) has positive area")
	assertTrue(t, LeftOn(a, b, on), "a colinear point is left-on")
	assertTrue(t, !LeftOn(a, b, right), "a point right of a->b is not left-on")
}

func TestVertEqualXZ(t *testing.T) {
	a := []int{1, 9, 2}
	b := []int{1, -4, 2}
	c := []int{1, 9, 3}
	assertTrue(t, VertEqualXZ(a, b), "y is ignored when comparing xz")
	assertTrue(t, !VertEqualXZ(a, c), "differing z is not equal")
}
