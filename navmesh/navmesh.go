// Package navmesh assembles a polygon mesh, its detail mesh and off-mesh
// connections into a serialisable pathfinding tile: vertex/polygon stores,
// cross-tile neighbour codes and an optional bounding-volume hierarchy.
// Grounded on the teacher's DtCreateNavMeshData / DtNavMeshCreateParams.
package navmesh

import "navtile/common"

const (
	// VertsPerPolygon is the maximum vertex count any polygon in this
	// package's structures supports; CreateParams.Nvp must not exceed it.
	VertsPerPolygon = 6

	// NullIdx marks an unused polygon vertex slot.
	NullIdx = 0xffff

	// ExtLink is the high bit of a neighbour code marking a cross-tile
	// portal; the low nibble encodes which side of the tile it crosses.
	ExtLink = 0x8000

	// PolyTypeGround and PolyTypeOffMeshConnection are the two polygon
	// kinds a tile can hold.
	PolyTypeGround             = 0
	PolyTypeOffMeshConnection  = 1

	// DetailEdgeBoundary marks a fan-triangulated triangle's spoke edge
	// (v0-v1) as lying on the owning polygon's boundary; only the fan's
	// first triangle has this edge on the boundary.
	DetailEdgeBoundary = 0x1

	// DetailEdgeHullBoundary marks a fan-triangulated triangle's hull edge
	// (v1-v2) as lying on the owning polygon's boundary; every triangle in
	// the fan has this edge on the boundary.
	DetailEdgeHullBoundary = 0x1 << 2

	// DetailEdgeCloseBoundary marks a fan-triangulated triangle's closing
	// edge (v2-v0) as lying on the owning polygon's boundary; only the
	// fan's last triangle has this edge on the boundary.
	DetailEdgeCloseBoundary = 0x1 << 4
)

// PolyMeshInput is the polygonisation result the tile assembler consumes:
// each polygon's vertex indices plus a per-edge code that is either a
// neighbour polygon index or a boundary-direction marker (see CreateTile).
type PolyMeshInput struct {
	Verts     []int // Grid-space (x, y, z) triples, one per vertex.
	VertCount int
	Polys     []int // polyCount * Nvp*2 ints: [0:Nvp) vertex indices, [Nvp:2*Nvp) extra-info codes.
	PolyFlags []int
	PolyAreas []int
	PolyCount int
	Nvp       int
}

// DetailMeshInput is the optional height-detail sub-mesh data; when absent
// the tile assembler synthesises a fan triangulation of each polygon.
type DetailMeshInput struct {
	Meshes     []int // polyCount * 4: (vertBase, vertCount, triBase, triCount).
	Verts      []float64
	VertsCount int
	Tris       []int // triCount * 4: (a, b, c, edgeFlags).
	TriCount   int
}

// OffMeshInput is the set of explicit point-to-point connections attached
// to the tile.
type OffMeshInput struct {
	Verts  []float64 // 2*N triples: (ax,ay,az, bx,by,bz) per connection.
	Radii  []float64
	Dir    []int // bit 0 set ⇒ bidirectional.
	Flags  []int
	Areas  []int
	UserID []int
	Count  int
}

// CreateParams is the full input to CreateTile, grounded on the teacher's
// DtNavMeshCreateParams.
type CreateParams struct {
	Mesh       PolyMeshInput
	Detail     DetailMeshInput
	OffMesh    OffMeshInput

	UserID    int
	TileX     int
	TileY     int
	TileLayer int
	Bounds    common.BBox3

	WalkableHeight float64
	WalkableRadius float64
	WalkableClimb  float64
	CellSize       float64
	CellHeight     float64

	BuildBVTree bool
}

// Poly is one output polygon: vertex indices, per-edge neighbour codes (see
// neighbourCode for the mapping), user flags/area and its type.
type Poly struct {
	Verts     [VertsPerPolygon]int
	Neis      [VertsPerPolygon]int
	Flags     int
	VertCount int
	Area      int
	Type      int
}

// DetailMesh locates one polygon's extra detail vertices/triangles inside
// the tile's shared DetailVerts/DetailTris arrays.
type DetailMesh struct {
	VertBase  int
	VertCount int
	TriBase   int
	TriCount  int
}

// OffMeshConnection is a stored two-vertex degenerate polygon plus its
// travel metadata.
type OffMeshConnection struct {
	Pos    [6]float64
	Radius float64
	Poly   int
	Flags  int
	Side   int
	UserID int
}

// BVNode is one node of the preorder bounding-volume tree: AABB in
// cell-size-quantised integer units, and an index that is a leaf polygon
// index when non-negative or a negative escape offset otherwise.
type BVNode struct {
	Min, Max [3]int
	Index    int
}

// Header carries the tile's scalar metadata, grounded on the teacher's
// DtMeshHeader.
type Header struct {
	X, Y, Layer     int
	UserID          int
	PolyCount       int
	VertCount       int
	MaxLinkCount    int
	Bounds          common.BBox3
	DetailMeshCount int
	DetailVertCount int
	DetailTriCount  int
	BVQuantFactor   float64
	OffMeshBase     int
	OffMeshConCount int
	BVNodeCount     int
	WalkableHeight  float64
	WalkableRadius  float64
	WalkableClimb   float64
}

// Tile is the fully assembled, self-contained output: everything a
// downstream pathfinder or serialiser needs, and nothing it must recompute.
type Tile struct {
	Header            Header
	Verts             []float64
	Polys             []Poly
	DetailMeshes      []DetailMesh
	DetailVerts       []float64
	DetailTris        []int
	BVTree            []BVNode
	OffMeshConnections []OffMeshConnection
}
