package heightfield

import "testing"

func assertTrue(t *testing.T, value bool, msg string) {
	if !value {
		t.Errorf(msg)
	}
}

func TestSpanCon(t *testing.T) {
	var s Span
	for dir := 0; dir < 4; dir++ {
		s.Connections |= (dir + 1) << (dir * 6)
	}
	for dir := 0; dir < 4; dir++ {
		assertTrue(t, s.Con(dir) == dir+1, "each direction's packed connection round-trips")
	}
}

func TestConNotConnected(t *testing.T) {
	var s Span
	s.Connections = NotConnected << (2 * 6)
	assertTrue(t, s.Con(2) == NotConnected, "an unset direction reads back as NotConnected")
	assertTrue(t, s.Con(0) == 0, "other directions are untouched")
}

func TestDirOffsetsAreUnitSteps(t *testing.T) {
	for dir := 0; dir < 4; dir++ {
		dx, dz := DirOffsetX(dir), DirOffsetZ(dir)
		assertTrue(t, (dx == 0) != (dz == 0), "exactly one axis moves per cardinal direction")
		assertTrue(t, dx == -1 || dx == 0 || dx == 1, "x step is a unit step")
		assertTrue(t, dz == -1 || dz == 0 || dz == 1, "z step is a unit step")
	}
}

func TestRotateCWandCCWAreInverses(t *testing.T) {
	for dir := 0; dir < 4; dir++ {
		assertTrue(t, RotateCCW(RotateCW(dir)) == dir, "CCW undoes CW")
		assertTrue(t, RotateCW(RotateCCW(dir)) == dir, "CW undoes CCW")
	}
	assertTrue(t, RotateCW(3) == 0, "CW wraps from 3 back to 0")
	assertTrue(t, RotateCCW(0) == 3, "CCW wraps from 0 back to 3")
}
