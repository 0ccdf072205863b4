package contour

import (
	"slices"

	"navtile/common"
)

// anchor pairs a simplified-contour vertex with the raw-trace index it was
// sampled from; the flag-rewrite step and both tessellation passes need
// that raw index to look back into the trace.
type anchor struct {
	Vertex
	raw int
}

// simplify reduces a closed raw trace to a polyline within maxError of the
// original, honouring mandatory breaks at region/area transitions and
// optional long-edge splitting, grounded on the teacher's simplifyContour.
func simplify(raw []Vertex, maxError float64, maxEdgeLen, buildFlags int) []Vertex {
	pn := len(raw)
	simp := seed(raw)

	deviationPass(raw, &simp, maxError)

	if maxEdgeLen > 0 && buildFlags&(TessWallEdges|TessAreaEdges) != 0 {
		lengthSplitPass(raw, &simp, maxEdgeLen, buildFlags)
	}

	out := make([]Vertex, len(simp))
	for i := range simp {
		ai := (simp[i].raw + 1) % pn
		bi := simp[i].raw
		flags := (raw[ai].Flags & (RegionMask | AreaBorder)) | (raw[bi].Flags & BorderVertex)
		out[i] = Vertex{X: simp[i].X, Y: simp[i].Y, Z: simp[i].Z, Flags: flags}
	}
	return out
}

func seed(raw []Vertex) []anchor {
	hasConnections := false
	for _, v := range raw {
		if v.Flags&RegionMask != 0 {
			hasConnections = true
			break
		}
	}

	var simp []anchor
	if hasConnections {
		n := len(raw)
		for i := 0; i < n; i++ {
			ii := (i + 1) % n
			differentRegs := raw[i].Flags&RegionMask != raw[ii].Flags&RegionMask
			areaBorders := (raw[i].Flags & AreaBorder) != (raw[ii].Flags & AreaBorder)
			if differentRegs || areaBorders {
				simp = append(simp, anchor{Vertex: Vertex{X: raw[i].X, Y: raw[i].Y, Z: raw[i].Z}, raw: i})
			}
		}
	}

	if len(simp) == 0 {
		ll, ur := 0, 0
		for i, v := range raw {
			if v.X < raw[ll].X || (v.X == raw[ll].X && v.Z < raw[ll].Z) {
				ll = i
			}
			if v.X > raw[ur].X || (v.X == raw[ur].X && v.Z > raw[ur].Z) {
				ur = i
			}
		}
		simp = append(simp,
			anchor{Vertex: Vertex{X: raw[ll].X, Y: raw[ll].Y, Z: raw[ll].Z}, raw: ll},
			anchor{Vertex: Vertex{X: raw[ur].X, Y: raw[ur].Y, Z: raw[ur].Z}, raw: ur},
		)
	}
	return simp
}

// distToSeg computes the squared distance from raw point (x,z) to the
// segment (px,pz)-(qx,qz), per the §4.B.1 clamp-and-project formula.
func distToSeg(x, z, px, pz, qx, qz int) float64 {
	pqx := float64(qx - px)
	pqz := float64(qz - pz)
	dx := float64(x - px)
	dz := float64(z - pz)
	d := pqx*pqx + pqz*pqz
	t := pqx*dx + pqz*dz
	if d > 0 {
		t /= d
	}
	t = common.Clamp(t, 0, 1)
	dx = float64(px) + t*pqx - float64(x)
	dz = float64(pz) + t*pqz - float64(z)
	return dx*dx + dz*dz
}

func deviationPass(raw []Vertex, simp *[]anchor, maxError float64) {
	pn := len(raw)
	maxErrSqr := maxError * maxError

	for i := 0; i < len(*simp); {
		s := *simp
		ii := (i + 1) % len(s)

		ax, az, ai := s[i].X, s[i].Z, s[i].raw
		bx, bz, bi := s[ii].X, s[ii].Z, s[ii].raw

		var ci, cinc, endi int
		if bx > ax || (bx == ax && bz > az) {
			cinc = 1
			ci = (ai + cinc) % pn
			endi = bi
		} else {
			cinc = pn - 1
			ci = (bi + cinc) % pn
			endi = ai
			ax, bx = bx, ax
			az, bz = bz, az
		}

		maxd := 0.0
		maxi := -1
		if raw[ci].Flags&RegionMask == 0 || raw[ci].Flags&AreaBorder != 0 {
			for ci != endi {
				d := distToSeg(raw[ci].X, raw[ci].Z, ax, az, bx, bz)
				if d > maxd {
					maxd, maxi = d, ci
				}
				ci = (ci + cinc) % pn
			}
		}

		if maxi != -1 && maxd > maxErrSqr {
			v := raw[maxi]
			*simp = slices.Insert(*simp, i+1, anchor{Vertex: Vertex{X: v.X, Y: v.Y, Z: v.Z}, raw: maxi})
		} else {
			i++
		}
	}
}

func lengthSplitPass(raw []Vertex, simp *[]anchor, maxEdgeLen, buildFlags int) {
	pn := len(raw)
	maxEdgeLenSqr := float64(maxEdgeLen * maxEdgeLen)

	for i := 0; i < len(*simp); {
		s := *simp
		ii := (i + 1) % len(s)

		ax, az, ai := s[i].X, s[i].Z, s[i].raw
		bx, bz, bi := s[ii].X, s[ii].Z, s[ii].raw

		ci := (ai + 1) % pn
		maxi := -1

		tess := false
		if buildFlags&TessWallEdges != 0 && raw[ci].Flags&RegionMask == 0 {
			tess = true
		}
		if buildFlags&TessAreaEdges != 0 && raw[ci].Flags&AreaBorder != 0 {
			tess = true
		}

		if tess {
			dx, dz := float64(bx-ax), float64(bz-az)
			if dx*dx+dz*dz > maxEdgeLenSqr {
				n := bi - ai
				if bi < ai {
					n = bi + pn - ai
				}
				if n > 1 {
					if bx > ax || (bx == ax && bz > az) {
						maxi = (ai + n/2) % pn
					} else {
						maxi = (ai + (n+1)/2) % pn
					}
				}
			}
		}

		if maxi != -1 {
			v := raw[maxi]
			*simp = slices.Insert(*simp, i+1, anchor{Vertex: Vertex{X: v.X, Y: v.Y, Z: v.Z}, raw: maxi})
		} else {
			i++
		}
	}
}

// removeDegenerate drops any vertex equal on (x,z) to its cyclic successor,
// grounded on the teacher's removeDegenerateSegments.
func removeDegenerate(verts []Vertex) []Vertex {
	out := verts[:0:0]
	n := len(verts)
	for i := 0; i < n; i++ {
		next := common.Next(i, n)
		if common.VertEqualXZ(xz(verts[i]), xz(verts[next])) {
			continue
		}
		out = append(out, verts[i])
	}
	return out
}
