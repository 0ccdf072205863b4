// Package contour traces region boundaries out of a heightfield.CompactHeightfield
// and reduces them to simplified, hole-merged polylines, grounded on the
// teacher's rcBuildContours pipeline (walkContour/simplifyContour/mergeRegionHoles)
// but reworked to the simpler two-edge admissibility test for hole merging.
package contour

import "navtile/common"

const (
	// RegionMask extracts the 16-bit neighbour region id from a vertex flag word.
	RegionMask = 0xffff

	// AreaBorder marks a vertex adjacent to a differing area tag.
	AreaBorder = 0x20000

	// BorderVertex marks a vertex that lies on a tile border and will later
	// be dropped to match segments across tile boundaries.
	BorderVertex = 0x10000

	// BorderReg is the high bit of the 16-bit region field, reused from the
	// heightfield package's span region encoding.
	BorderReg = 0x8000

	// TessWallEdges tessellates edges whose neighbour region is zero (solid wall).
	TessWallEdges = 0x1
	// TessAreaEdges tessellates edges that cross an area boundary.
	TessAreaEdges = 0x2
)

// Vertex is one contour point: voxel x, y (height), z, and the packed
// region/border/area flag word described in package contour's constants.
type Vertex struct {
	X, Y, Z int
	Flags   int
}

// Contour is one region's boundary: the simplified polyline used downstream
// by the tile assembler, and the raw pre-simplification trace kept for
// diagnostics and for the simplifier's own deviation search.
type Contour struct {
	Verts  []Vertex // Simplified, closed polyline.
	RVerts []Vertex // Raw boundary trace, closed polyline.
	RegionID int
	Area     int
}

// Set is the output of Build: every region's contour plus the tile-space
// framing the contours were extracted against.
type Set struct {
	Contours   []*Contour
	Bounds     common.BBox3
	CellSize   float64
	CellHeight float64
	Width      int
	Height     int
	BorderSize int
	MaxError   float64
}

// Params configures Build. MaxEdgeLen of zero disables edge-length splitting.
type Params struct {
	MaxError    float64
	MaxEdgeLen  int
	BuildFlags  int
}
