package common

import "testing"

func assertTrue(t *testing.T, value bool, msg string) {
	if !value {
		t.Errorf(msg)
	}
}

func TestClamp(t *testing.T) {
	assertTrue(t, Clamp(2, 0, 1) == 1, "Higher than range clamps to max")
	assertTrue(t, Clamp(1, 0, 2) == 1, "Within range is unchanged")
	assertTrue(t, Clamp(0, 1, 2) == 1, "Lower than range clamps to min")
}
