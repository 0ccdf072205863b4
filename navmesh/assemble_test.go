package navmesh

import (
	"testing"

	"navtile/common"

	"go.uber.org/zap"
)

func TestNeighbourCodeInterior(t *testing.T) {
	assertTrue(t, neighbourCode(0) == 1, "an interior edge's code is its poly index plus one")
	assertTrue(t, neighbourCode(41) == 42, "interior encoding holds for any non-portal extra value")
}

func TestNeighbourCodePortal(t *testing.T) {
	assertTrue(t, neighbourCode(0x8000|15) == 0, "direction 15 marks a plain, non-portal tile boundary")
	assertTrue(t, neighbourCode(0x8000|0) == ExtLink|4, "direction 0 maps to the -x portal code")
	assertTrue(t, neighbourCode(0x8000|1) == ExtLink|2, "direction 1 maps to the +z portal code")
	assertTrue(t, neighbourCode(0x8000|2) == ExtLink|0, "direction 2 maps to the +x portal code")
	assertTrue(t, neighbourCode(0x8000|3) == ExtLink|6, "direction 3 maps to the -z portal code")
}

func squareTileParams() *CreateParams {
	verts := []int{
		0, 0, 0,
		4, 0, 0,
		4, 0, 4,
		0, 0, 4,
	}
	nvp := VertsPerPolygon
	poly := make([]int, 2*nvp)
	for i := 0; i < 4; i++ {
		poly[i] = i
		poly[nvp+i] = 0x8000 | 0xf
	}
	for i := 4; i < nvp; i++ {
		poly[i] = NullIdx
	}

	return &CreateParams{
		Mesh: PolyMeshInput{
			Verts:     verts,
			VertCount: 4,
			Polys:     poly,
			PolyFlags: []int{1},
			PolyAreas: []int{1},
			PolyCount: 1,
			Nvp:       nvp,
		},
		Bounds:         common.BBox3{Min: common.Vec3{0, 0, 0}, Max: common.Vec3{4, 4, 4}},
		CellSize:       1,
		CellHeight:     1,
		WalkableHeight: 2,
		WalkableRadius: 0.5,
		WalkableClimb:  0.5,
	}
}

func TestCreateTileSinglePolygon(t *testing.T) {
	log := zap.NewNop()
	tile, err := CreateTile(squareTileParams(), log)
	assertTrue(t, err == nil, "a well-formed single-polygon mesh assembles without error")
	assertTrue(t, tile.Header.PolyCount == 1, "exactly one ground polygon, no off-mesh connections")
	assertTrue(t, tile.Header.VertCount == 4, "four mesh vertices, no off-mesh endpoints appended")
	assertTrue(t, len(tile.Polys) == 1, "one assembled polygon")
	assertTrue(t, tile.Polys[0].VertCount == 4, "the polygon keeps its four vertices")
	assertTrue(t, tile.Polys[0].Neis[0] == 0, "a fully boundary polygon has no neighbours")
	assertTrue(t, len(tile.DetailMeshes) == 1, "a fan-triangulated detail mesh is synthesised")
	assertTrue(t, len(tile.DetailTris) == 2*4, "a quad fans into two triangles of four ints each")
}

func TestCreateTileRejectsTooManyVerts(t *testing.T) {
	p := squareTileParams()
	p.Mesh.Nvp = VertsPerPolygon + 1
	_, err := CreateTile(p, zap.NewNop())
	assertTrue(t, err != nil, "a vertsPerPoly above the limit is a hard failure")
}

func TestCreateTileRejectsEmptyMesh(t *testing.T) {
	p := squareTileParams()
	p.Mesh.PolyCount = 0
	_, err := CreateTile(p, zap.NewNop())
	assertTrue(t, err != nil, "an empty polygon mesh is a hard failure")
}
