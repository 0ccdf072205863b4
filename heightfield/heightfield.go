// Package heightfield models the read-only compact-heightfield collaborator
// that contour extraction walks. Building a CompactHeightfield — rasterising
// triangles, computing walkable spans, partitioning spans into regions,
// tagging areas — is the job of an upstream voxelisation/region-watershed
// stage and is out of scope here; this package only defines the data shape
// that stage hands to contour.Build, grounded on the teacher's
// RcCompactHeightfield / rcCompactSpan / rcCompactCell.
package heightfield

import "navtile/common"

const (
	// NotConnected is the sentinel connection value meaning "no neighbour
	// span in this direction."
	NotConnected = 0x3f

	// BorderReg is the high bit of a 16-bit region id; a span carrying it
	// belongs to the non-navigable tile border, not a real region.
	BorderReg = 0x8000
)

// Cell indexes the run of spans belonging to one (x, z) grid column.
type Cell struct {
	Index int // Index of the first span in the column.
	Count int // Number of spans in the column.
}

// Span is one walkable voxel run within a compact heightfield column.
type Span struct {
	Y           int // Lower extent of the span, in voxel units from the field base.
	Reg         int // Region id (BorderReg bit set for tile-border spans), 0 if none.
	Connections int // Packed per-direction neighbour connection, 6 bits each.
	H           int // Height of the span, measured from Y.
}

// Con returns the packed neighbour connection for direction dir in [0,4),
// or NotConnected if there is no walkable neighbour that way.
func (s *Span) Con(dir int) int {
	return (s.Connections >> (dir * 6)) & 0x3f
}

// CompactHeightfield is the read-only input to contour extraction: a
// width x length grid of cells, each indexing a run of spans, plus a
// per-span region id, area tag and four-way neighbour connectivity.
type CompactHeightfield struct {
	Width  int // Grid size along x, in cells.
	Height int // Grid size along z, in cells (recast calls the z axis "height").
	Length int // Alias of Height kept for §6 interface parity; same value.

	BorderSize int
	CellSize   float64 // Cs: xz-plane cell size, world units.
	CellHeight float64 // Ch: vertical cell size, world units.
	Bounds     common.BBox3
	MaxRegions int

	Cells []Cell
	Spans []Span
	Areas []byte
}

// dirOffsetX and dirOffsetZ give the (x, z) grid step for each of the four
// cardinal directions, numbered 0=-x, 1=+z, 2=+x, 3=-z, matching the
// direction a span's packed Con nibble refers to.
var (
	dirOffsetX = [4]int{-1, 0, 1, 0}
	dirOffsetZ = [4]int{0, 1, 0, -1}
)

// DirOffsetX returns the x-axis step for direction dir in [0,4).
func DirOffsetX(dir int) int {
	return dirOffsetX[dir&0x3]
}

// DirOffsetZ returns the z-axis step for direction dir in [0,4).
func DirOffsetZ(dir int) int {
	return dirOffsetZ[dir&0x3]
}

// RotateCW rotates a direction 90 degrees clockwise: -x -> +z -> +x -> -z.
func RotateCW(dir int) int {
	return (dir + 1) & 0x3
}

// RotateCCW rotates a direction 90 degrees counter-clockwise.
func RotateCCW(dir int) int {
	return (dir + 3) & 0x3
}
