package contour

import (
	"testing"

	"navtile/common"
	"navtile/heightfield"
)

// packCon packs four per-direction connection values (0..0x3f, or
// heightfield.NotConnected) into a Span's Connections field.
func packCon(d0, d1, d2, d3 int) int {
	return (d0 & 0x3f) | (d1&0x3f)<<6 | (d2&0x3f)<<12 | (d3&0x3f)<<18
}

// squareHeightfield builds a 2x2-cell compact heightfield with a single
// span per column, all in region 1 / area 1, fully connected internally
// and open at the grid edges — the smallest input that walks a closed
// square boundary.
func squareHeightfield() *heightfield.CompactHeightfield {
	nc := heightfield.NotConnected
	return &heightfield.CompactHeightfield{
		Width: 2, Height: 2, Length: 2,
		CellSize: 1, CellHeight: 1,
		Bounds:     common.BBox3{Min: common.Vec3{0, 0, 0}, Max: common.Vec3{2, 2, 2}},
		MaxRegions: 1,
		Cells: []heightfield.Cell{
			{Index: 0, Count: 1},
			{Index: 1, Count: 1},
			{Index: 2, Count: 1},
			{Index: 3, Count: 1},
		},
		Spans: []heightfield.Span{
			{Y: 0, Reg: 1, Connections: packCon(nc, 0, 0, nc)},
			{Y: 0, Reg: 1, Connections: packCon(0, 0, nc, nc)},
			{Y: 0, Reg: 1, Connections: packCon(nc, nc, 0, 0)},
			{Y: 0, Reg: 1, Connections: packCon(0, nc, nc, 0)},
		},
		Areas: []byte{1, 1, 1, 1},
	}
}

func TestBuildSingleSquareRegion(t *testing.T) {
	chf := squareHeightfield()
	set := Build(chf, Params{MaxError: 1.3}, nil)

	assertTrue(t, len(set.Contours) == 1, "one region yields one contour")
	c := set.Contours[0]
	assertTrue(t, c.RegionID == 1, "region id is carried through")
	assertTrue(t, c.Area == 1, "area tag is carried through")

	want := []Vertex{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 2}, {X: 2, Y: 0, Z: 0}}
	assertTrue(t, len(c.Verts) == len(want), "the simplified square keeps exactly its 4 corners")
	for i, w := range want {
		got := c.Verts[i]
		assertTrue(t, got.X == w.X && got.Y == w.Y && got.Z == w.Z,
			"simplified corner matches the traced square")
	}
}

func TestBuildDropsUnregionedSpans(t *testing.T) {
	chf := squareHeightfield()
	chf.Spans[1].Reg = 0
	set := Build(chf, Params{MaxError: 1.3}, nil)
	assertTrue(t, len(set.Contours) <= 1, "a span with no region never starts its own walk")
}
