// Command navtile-build runs the contour and tile-assembly pipeline over a
// YAML scene fixture, the way the teacher's own recast_test.go scaffolds a
// heightfield by hand, but fed from a file instead of inline Go literals.
package main

import (
	"flag"
	"fmt"
	"os"

	"navtile/common"
	"navtile/contour"
	"navtile/heightfield"
	"navtile/internal/buildlog"
	"navtile/navmesh"

	"go.uber.org/zap"
)

func main() {
	var (
		scenePath = flag.String("scene", "", "path to a YAML scene fixture")
		logPath   = flag.String("log-file", "", "rotate build diagnostics to this file instead of the console")
	)
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "usage: navtile-build -scene scene.yaml")
		os.Exit(2)
	}

	var log *zap.Logger
	if *logPath != "" {
		log = buildlog.NewRotating(*logPath, 8)
	} else {
		log = buildlog.New()
	}
	defer log.Sync()

	s, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal("failed to load scene", zap.Error(err))
	}

	chf := sceneToHeightfield(s)

	buildFlags := 0
	if s.Build.TessWallEdges {
		buildFlags |= contour.TessWallEdges
	}
	if s.Build.TessAreaEdges {
		buildFlags |= contour.TessAreaEdges
	}

	set := contour.Build(chf, contour.Params{
		MaxError:   s.Build.MaxError,
		MaxEdgeLen: s.Build.MaxEdgeLen,
		BuildFlags: buildFlags,
	}, log)

	log.Info("contour set built",
		zap.Int("contours", len(set.Contours)),
		zap.Int("width", set.Width),
		zap.Int("height", set.Height))

	for i, c := range set.Contours {
		log.Info("contour",
			zap.Int("index", i),
			zap.Int("region", c.RegionID),
			zap.Int("area", c.Area),
			zap.Int("vertices", len(c.Verts)))
	}

	tile := tryAssembleSingleTile(set, s, log)
	if tile != nil {
		log.Info("assembled tile",
			zap.Int("polyCount", tile.Header.PolyCount),
			zap.Int("vertCount", tile.Header.VertCount),
			zap.Int("maxLinkCount", tile.Header.MaxLinkCount))
	}
}

func sceneToHeightfield(s *scene) *heightfield.CompactHeightfield {
	cells := make([]heightfield.Cell, s.Width*s.Height)
	spans := make([]heightfield.Span, len(s.Columns))
	areas := make([]byte, len(s.Columns))

	byColumn := map[int][]int{}
	for i, col := range s.Columns {
		key := col.X + col.Z*s.Width
		byColumn[key] = append(byColumn[key], i)
	}
	for key, idxs := range byColumn {
		cells[key] = heightfield.Cell{Index: idxs[0], Count: len(idxs)}
	}

	for i, col := range s.Columns {
		packed := 0
		for dir := 0; dir < 4; dir++ {
			n := heightfield.NotConnected
			if col.Neighbours[dir] >= 0 {
				n = col.Neighbours[dir]
			}
			packed |= (n & 0x3f) << (dir * 6)
		}
		spans[i] = heightfield.Span{Y: col.Y, Reg: col.Region, Connections: packed}
		areas[i] = byte(col.Area)
	}

	return &heightfield.CompactHeightfield{
		Width:      s.Width,
		Height:     s.Height,
		Length:     s.Height,
		BorderSize: s.BorderSize,
		CellSize:   s.CellSize,
		CellHeight: s.CellHeight,
		Bounds:     boundsFromScene(s.Bounds),
		MaxRegions: s.MaxRegions,
		Cells:      cells,
		Spans:      spans,
		Areas:      areas,
	}
}

func boundsFromScene(b sceneBounds) common.BBox3 {
	return common.BBox3{
		Min: common.Vec3{b.Min[0], b.Min[1], b.Min[2]},
		Max: common.Vec3{b.Max[0], b.Max[1], b.Max[2]},
	}
}

// tryAssembleSingleTile demonstrates navmesh.CreateTile against the
// simplest possible upstream polygonisation: it only fires when the scene
// produced exactly one contour whose simplified vertex count already fits
// within a single polygon (K <= navmesh.VertsPerPolygon), since turning an
// arbitrary contour set into convex polygons is the out-of-scope
// "polygonisation" stage this tool does not implement.
func tryAssembleSingleTile(set *contour.Set, s *scene, log *zap.Logger) *navmesh.Tile {
	if len(set.Contours) != 1 {
		return nil
	}
	c := set.Contours[0]
	if len(c.Verts) > navmesh.VertsPerPolygon {
		return nil
	}

	nvp := navmesh.VertsPerPolygon
	verts := make([]int, len(c.Verts)*3)
	poly := make([]int, 2*nvp)
	for i, v := range c.Verts {
		verts[i*3+0] = v.X
		verts[i*3+1] = v.Y
		verts[i*3+2] = v.Z
		poly[i] = i
		poly[nvp+i] = 0x8000 | 0xf
	}
	for i := len(c.Verts); i < nvp; i++ {
		poly[i] = navmesh.NullIdx
	}

	params := &navmesh.CreateParams{
		Mesh: navmesh.PolyMeshInput{
			Verts:     verts,
			VertCount: len(c.Verts),
			Polys:     poly,
			PolyFlags: []int{0},
			PolyAreas: []int{c.Area},
			PolyCount: 1,
			Nvp:       nvp,
		},
		Bounds:         set.Bounds,
		CellSize:       set.CellSize,
		CellHeight:     set.CellHeight,
		WalkableHeight: s.Build.WalkableHeight,
		WalkableRadius: s.Build.WalkableRadius,
		WalkableClimb:  s.Build.WalkableClimb,
		BuildBVTree:    s.Build.BuildBVTree,
	}

	tile, err := navmesh.CreateTile(params, log)
	if err != nil {
		log.Warn("tile assembly skipped", zap.Error(err))
		return nil
	}
	return tile
}
