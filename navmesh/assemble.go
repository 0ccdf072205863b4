package navmesh

import (
	"fmt"
	"math"

	"navtile/common"

	"go.uber.org/zap"
)

// neighbourCode maps a polygon's input per-edge "extra info" value to the
// output neighbour code, per spec §4.F's table, grounded on the teacher's
// inline dir-to-DT_EXT_LINK switch in DtCreateNavMeshData.
func neighbourCode(extra int) int {
	if extra&0x8000 == 0 {
		return extra + 1
	}
	switch extra & 0xf {
	case 15:
		return 0
	case 0:
		return ExtLink | 4
	case 1:
		return ExtLink | 2
	case 2:
		return ExtLink | 0
	case 3:
		return ExtLink | 6
	}
	return 0
}

// CreateTile assembles a Tile from params, grounded on the teacher's
// DtCreateNavMeshData. It returns an error without mutating any shared
// state when params violates a hard limit (failure kind 1 in the
// error-handling design); a nil logger is treated as a no-op sink.
func CreateTile(params *CreateParams, log *zap.Logger) (*Tile, error) {
	m := &params.Mesh
	if m.Nvp > VertsPerPolygon {
		return nil, fmt.Errorf("navmesh: vertsPerPoly %d exceeds limit %d", m.Nvp, VertsPerPolygon)
	}
	if m.VertCount == 0 || m.VertCount >= 0xffff {
		return nil, fmt.Errorf("navmesh: invalid vertex count %d", m.VertCount)
	}
	if m.PolyCount == 0 || len(m.Polys) == 0 {
		return nil, fmt.Errorf("navmesh: empty polygon mesh")
	}

	offMeshClass, storedOffMeshCount, offMeshLinkCount := classifyOffMesh(params, log)

	edgeCount, portalCount := 0, 0
	for i := 0; i < m.PolyCount; i++ {
		p := m.Polys[i*2*m.Nvp:]
		for j := 0; j < m.Nvp; j++ {
			if p[j] == NullIdx {
				break
			}
			edgeCount++
			if p[m.Nvp+j]&0x8000 != 0 && p[m.Nvp+j]&0xf != 0xf {
				portalCount++
			}
		}
	}
	maxLinkCount := edgeCount + 2*portalCount + 2*offMeshLinkCount

	totPolyCount := m.PolyCount + storedOffMeshCount
	totVertCount := m.VertCount + storedOffMeshCount*2

	verts := make([]float64, 3*totVertCount)
	for i := 0; i < m.VertCount; i++ {
		iv := m.Verts[i*3 : i*3+3]
		verts[i*3+0] = params.Bounds.Min[0] + float64(iv[0])*params.CellSize
		verts[i*3+1] = params.Bounds.Min[1] + float64(iv[1])*params.CellHeight
		verts[i*3+2] = params.Bounds.Min[2] + float64(iv[2])*params.CellSize
	}

	offMeshVertsBase := m.VertCount
	n := 0
	for i := 0; i < params.OffMesh.Count; i++ {
		if offMeshClass[i*2+0] != interior {
			continue
		}
		src := params.OffMesh.Verts[i*6 : i*6+6]
		copy(verts[(offMeshVertsBase+n*2)*3:], src[:3])
		copy(verts[(offMeshVertsBase+n*2+1)*3:], src[3:6])
		n++
	}

	polys := make([]Poly, totPolyCount)
	src := m.Polys
	for i := 0; i < m.PolyCount; i++ {
		p := &polys[i]
		p.Flags = m.PolyFlags[i]
		p.Area = m.PolyAreas[i]
		p.Type = PolyTypeGround
		for j := 0; j < m.Nvp; j++ {
			if src[j] == NullIdx {
				break
			}
			p.Verts[j] = src[j]
			p.Neis[j] = neighbourCode(src[m.Nvp+j])
			p.VertCount++
		}
		src = src[m.Nvp*2:]
	}

	offMeshPolyBase := m.PolyCount
	n = 0
	for i := 0; i < params.OffMesh.Count; i++ {
		if offMeshClass[i*2+0] != interior {
			continue
		}
		p := &polys[offMeshPolyBase+n]
		p.VertCount = 2
		p.Verts[0] = offMeshVertsBase + n*2
		p.Verts[1] = offMeshVertsBase + n*2 + 1
		p.Flags = params.OffMesh.Flags[i]
		p.Area = params.OffMesh.Areas[i]
		p.Type = PolyTypeOffMeshConnection
		n++
	}

	detailMeshes, detailVerts, detailTris := buildDetail(params)

	var bvTree []BVNode
	if params.BuildBVTree {
		bvTree = buildBVTree(params, verts, polys)
	}

	offMeshCons := buildOffMeshConnections(params, offMeshClass, offMeshPolyBase)

	header := Header{
		X: params.TileX, Y: params.TileY, Layer: params.TileLayer,
		UserID:          params.UserID,
		PolyCount:       totPolyCount,
		VertCount:       totVertCount,
		MaxLinkCount:    maxLinkCount,
		Bounds:          params.Bounds,
		DetailMeshCount: m.PolyCount,
		DetailVertCount: len(detailVerts) / 3,
		DetailTriCount:  len(detailTris) / 4,
		BVQuantFactor:   1.0 / params.CellSize,
		OffMeshBase:     m.PolyCount,
		OffMeshConCount: storedOffMeshCount,
		WalkableHeight:  params.WalkableHeight,
		WalkableRadius:  params.WalkableRadius,
		WalkableClimb:   params.WalkableClimb,
	}
	if params.BuildBVTree {
		header.BVNodeCount = m.PolyCount * 2
	}

	return &Tile{
		Header:             header,
		Verts:              verts,
		Polys:              polys,
		DetailMeshes:       detailMeshes,
		DetailVerts:        detailVerts,
		DetailTris:         detailTris,
		BVTree:             bvTree,
		OffMeshConnections: offMeshCons,
	}, nil
}

// classifyOffMesh classifies both endpoints of every off-mesh connection
// against a tile AABB widened to the actual detail/vertex height range
// plus walkable climb, per spec §4.E/§4.F.
func classifyOffMesh(params *CreateParams, log *zap.Logger) (class []int, stored, linkCount int) {
	class = make([]int, params.OffMesh.Count*2)
	if params.OffMesh.Count == 0 {
		return class, 0, 0
	}

	hmin, hmax := math.MaxFloat64, -math.MaxFloat64
	if len(params.Detail.Verts) > 0 && params.Detail.VertsCount > 0 {
		for i := 0; i < params.Detail.VertsCount; i++ {
			h := params.Detail.Verts[i*3+1]
			hmin = common.Min(hmin, h)
			hmax = common.Max(hmax, h)
		}
	} else {
		for i := 0; i < params.Mesh.VertCount; i++ {
			iv := params.Mesh.Verts[i*3 : i*3+3]
			h := params.Bounds.Min[1] + float64(iv[1])*params.CellHeight
			hmin = common.Min(hmin, h)
			hmax = common.Max(hmax, h)
		}
	}
	hmin -= params.WalkableClimb
	hmax += params.WalkableClimb

	min, max := params.Bounds.Min, params.Bounds.Max
	min[1], max[1] = hmin, hmax

	for i := 0; i < params.OffMesh.Count; i++ {
		p0 := toVec3(params.OffMesh.Verts[i*6 : i*6+3])
		p1 := toVec3(params.OffMesh.Verts[i*6+3 : i*6+6])
		class[i*2+0] = classify(p0, min, max)
		class[i*2+1] = classify(p1, min, max)

		if class[i*2+0] == interior && (p0[1] < min[1] || p0[1] > max[1]) {
			class[i*2+0] = 0
			if log != nil {
				log.Debug("off-mesh start rejected outside height range", zap.Int("connection", i))
			}
		}
		if class[i*2+0] == interior {
			linkCount++
			stored++
		}
		if class[i*2+1] == interior {
			linkCount++
		}
	}
	return class, stored, linkCount
}

func toVec3(s []float64) common.Vec3 {
	return common.Vec3{s[0], s[1], s[2]}
}

func buildOffMeshConnections(params *CreateParams, class []int, polyBase int) []OffMeshConnection {
	if params.OffMesh.Count == 0 {
		return nil
	}
	var out []OffMeshConnection
	for i := 0; i < params.OffMesh.Count; i++ {
		if class[i*2+0] != interior {
			continue
		}
		con := OffMeshConnection{Poly: polyBase + len(out)}
		copy(con.Pos[:], params.OffMesh.Verts[i*6:i*6+6])
		con.Radius = params.OffMesh.Radii[i]
		if params.OffMesh.Dir[i]&1 != 0 {
			con.Flags = 1
		}
		con.Side = class[i*2+1]
		if len(params.OffMesh.UserID) > 0 {
			con.UserID = params.OffMesh.UserID[i]
		}
		out = append(out, con)
	}
	return out
}

// buildDetail copies the caller-supplied detail mesh (skipping the first
// polyVertCount vertices of each sub-mesh, which duplicate the polygon's
// own vertices) or, if none was supplied, synthesises a fan triangulation
// from vertex 0 of each polygon, grounded on the teacher's dummy-detail
// branch in DtCreateNavMeshData.
func buildDetail(params *CreateParams) ([]DetailMesh, []float64, []int) {
	m := &params.Mesh
	d := &params.Detail

	meshes := make([]DetailMesh, m.PolyCount)

	if len(d.Meshes) > 0 {
		uniqueVerts := 0
		for i := 0; i < m.PolyCount; i++ {
			ndv := d.Meshes[i*4+1]
			nv := countPolyVerts(m.Polys[i*2*m.Nvp:i*2*m.Nvp+m.Nvp], m.Nvp)
			uniqueVerts += ndv - nv
		}
		verts := make([]float64, 3*uniqueVerts)
		tris := make([]int, 4*d.TriCount)
		copy(tris, d.Tris[:4*d.TriCount])

		vbase := 0
		for i := 0; i < m.PolyCount; i++ {
			vb := d.Meshes[i*4+0]
			ndv := d.Meshes[i*4+1]
			nv := countPolyVerts(m.Polys[i*2*m.Nvp:i*2*m.Nvp+m.Nvp], m.Nvp)
			meshes[i] = DetailMesh{
				VertBase:  vbase,
				VertCount: ndv - nv,
				TriBase:   d.Meshes[i*4+2],
				TriCount:  d.Meshes[i*4+3],
			}
			if ndv-nv > 0 {
				copy(verts[vbase*3:], d.Verts[(vb+nv)*3:(vb+nv)*3+3*(ndv-nv)])
				vbase += ndv - nv
			}
		}
		return meshes, verts, tris
	}

	triCount := 0
	for i := 0; i < m.PolyCount; i++ {
		nv := countPolyVerts(m.Polys[i*2*m.Nvp:i*2*m.Nvp+m.Nvp], m.Nvp)
		triCount += nv - 2
	}
	tris := make([]int, 4*triCount)
	tbase := 0
	for i := 0; i < m.PolyCount; i++ {
		nv := countPolyVerts(m.Polys[i*2*m.Nvp:i*2*m.Nvp+m.Nvp], m.Nvp)
		meshes[i] = DetailMesh{TriBase: tbase, TriCount: nv - 2}
		for j := 2; j < nv; j++ {
			t := tris[tbase*4 : tbase*4+4]
			t[0], t[1], t[2] = 0, j-1, j
			t[3] = DetailEdgeHullBoundary
			if j == 2 {
				t[3] |= DetailEdgeBoundary
			}
			if j == nv-1 {
				t[3] |= DetailEdgeCloseBoundary
			}
			tbase++
		}
	}
	return meshes, nil, tris
}

func countPolyVerts(p []int, nvp int) int {
	for i := 0; i < nvp; i++ {
		if p[i] == NullIdx {
			return i
		}
	}
	return nvp
}
