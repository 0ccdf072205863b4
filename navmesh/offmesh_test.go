package navmesh

import (
	"testing"

	"navtile/common"
)

func assertTrue(t *testing.T, value bool, msg string) {
	if !value {
		t.Errorf(msg)
	}
}

func TestClassifyInterior(t *testing.T) {
	min := common.Vec3{0, 0, 0}
	max := common.Vec3{10, 10, 10}
	assertTrue(t, classify(common.Vec3{5, 5, 5}, min, max) == interior, "a point strictly inside the box is interior")
}

func TestClassifyEightSides(t *testing.T) {
	min := common.Vec3{0, 0, 0}
	max := common.Vec3{10, 10, 10}
	cases := []struct {
		pt   common.Vec3
		want int
	}{
		{common.Vec3{20, 5, 5}, 0},   // +x
		{common.Vec3{20, 5, 20}, 1},  // +x, +z
		{common.Vec3{5, 5, 20}, 2},   // +z
		{common.Vec3{-5, 5, 20}, 3},  // -x, +z
		{common.Vec3{-5, 5, 5}, 4},   // -x
		{common.Vec3{-5, 5, -5}, 5},  // -x, -z
		{common.Vec3{5, 5, -5}, 6},   // -z
		{common.Vec3{20, 5, -5}, 7},  // +x, -z
	}
	for _, c := range cases {
		assertTrue(t, classify(c.pt, min, max) == c.want, "outcode classification matches the expected side")
	}
}
