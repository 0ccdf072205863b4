package contour

import (
	"navtile/heightfield"

	"go.uber.org/zap"
)

// Build drives the walker, simplifier and hole merger over every span of
// chf, producing one contour per region, grounded on the teacher's
// rcBuildContours. A nil logger is treated as a no-op sink.
func Build(chf *heightfield.CompactHeightfield, params Params, log *zap.Logger) *Set {
	w, h := chf.Width, chf.Height
	borderSize := chf.BorderSize

	bounds := chf.Bounds
	if borderSize > 0 {
		pad := float64(borderSize) * chf.CellSize
		bounds.Min[0] += pad
		bounds.Min[2] += pad
		bounds.Max[0] -= pad
		bounds.Max[2] -= pad
	}

	set := &Set{
		Bounds:     bounds,
		CellSize:   chf.CellSize,
		CellHeight: chf.CellHeight,
		Width:      w - borderSize*2,
		Height:     h - borderSize*2,
		BorderSize: borderSize,
		MaxError:   params.MaxError,
	}

	flags := markBoundaries(chf)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := chf.Cells[x+y*w]
			for i := c.Index; i < c.Index+c.Count; i++ {
				if flags[i] == 0 || flags[i] == 0xf {
					flags[i] = 0
					continue
				}
				reg := chf.Spans[i].Reg
				if reg == 0 || reg&heightfield.BorderReg != 0 {
					continue
				}
				area := int(chf.Areas[i])

				raw := walk(chf, flags, x, y, i, log)
				if raw == nil {
					continue
				}
				simp := simplify(raw, params.MaxError, params.MaxEdgeLen, params.BuildFlags)
				simp = removeDegenerate(simp)

				if len(simp) < 3 {
					if log != nil {
						log.Debug("dropping degenerate contour",
							zap.Int("region", reg), zap.Int("vertices", len(simp)))
					}
					continue
				}

				if borderSize > 0 {
					offsetXZ(simp, -borderSize)
					offsetXZ(raw, -borderSize)
				}

				set.Contours = append(set.Contours, &Contour{
					Verts:    simp,
					RVerts:   raw,
					RegionID: reg,
					Area:     area,
				})
			}
		}
	}

	mergeHoles(set, log)
	return set
}

func offsetXZ(verts []Vertex, d int) {
	for i := range verts {
		verts[i].X += d
		verts[i].Z += d
	}
}

// mergeHoles collects, per region, one outline (positive area) contour and
// any number of hole (negative area) contours, then splices each hole into
// its outline. Regions with a hole but no outline are left untouched, per
// failure kind 3 in the error-handling design.
func mergeHoles(set *Set, log *zap.Logger) {
	byRegion := map[int][]*Contour{}
	hasHole := false
	for _, c := range set.Contours {
		byRegion[c.RegionID] = append(byRegion[c.RegionID], c)
		if signedArea2(c.Verts) < 0 {
			hasHole = true
		}
	}
	if !hasHole {
		return
	}

	for _, conts := range byRegion {
		var outline *Contour
		var holes []*Contour
		for _, c := range conts {
			if signedArea2(c.Verts) < 0 {
				holes = append(holes, c)
			} else if outline == nil {
				outline = c
			}
		}
		if len(holes) == 0 {
			continue
		}
		if outline == nil {
			if log != nil {
				log.Warn("hole contour without matching outline", zap.Int("region", conts[0].RegionID))
			}
			continue
		}

		orderHolesLeftmost(holes)
		for _, hole := range holes {
			merged, ok := mergeHole(outline.Verts, hole.Verts)
			if !ok {
				if log != nil {
					log.Warn("no admissible merge bridge", zap.Int("region", outline.RegionID))
				}
				continue
			}
			outline.Verts = merged
			hole.Verts = nil
		}
	}
}

// orderHolesLeftmost sorts holes by their lowest-leftmost (x, then z)
// vertex, matching the teacher's findLeftMostVertex/compareHoles ordering
// so multi-hole regions merge deterministically left to right.
func orderHolesLeftmost(holes []*Contour) {
	leftmost := func(c *Contour) (int, int) {
		mx, mz := c.Verts[0].X, c.Verts[0].Z
		for _, v := range c.Verts[1:] {
			if v.X < mx || (v.X == mx && v.Z < mz) {
				mx, mz = v.X, v.Z
			}
		}
		return mx, mz
	}
	lx := make([]int, len(holes))
	lz := make([]int, len(holes))
	for i, h := range holes {
		lx[i], lz[i] = leftmost(h)
	}
	for i := 1; i < len(holes); i++ {
		for j := i; j > 0; j-- {
			if lx[j] < lx[j-1] || (lx[j] == lx[j-1] && lz[j] < lz[j-1]) {
				holes[j], holes[j-1] = holes[j-1], holes[j]
				lx[j], lx[j-1] = lx[j-1], lx[j]
				lz[j], lz[j-1] = lz[j-1], lz[j]
			} else {
				break
			}
		}
	}
}
