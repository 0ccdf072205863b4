package navmesh

import (
	"math"
	"sort"
)

// bvItem is one polygon's quantised AABB awaiting placement in the tree,
// grounded on the teacher's BVItem.
type bvItem struct {
	min, max [3]int
	poly     int
}

func calcExtents(items []bvItem) (min, max [3]int) {
	min, max = items[0].min, items[0].max
	for _, it := range items[1:] {
		for a := 0; a < 3; a++ {
			if it.min[a] < min[a] {
				min[a] = it.min[a]
			}
			if it.max[a] > max[a] {
				max[a] = it.max[a]
			}
		}
	}
	return
}

// longestAxis picks the longest of three extents, ties broken x > y > z,
// matching the teacher's longestAxis.
func longestAxis(x, y, z int) int {
	axis, best := 0, x
	if y > best {
		axis, best = 1, y
	}
	if z > best {
		axis = 2
	}
	return axis
}

// subdivide recursively splits items[imin:imax] on its longest axis,
// emitting nodes in DFS preorder with escape-offset encoding on internal
// nodes, grounded on the teacher's subdivide.
func subdivide(items []bvItem, imin, imax int, nodes []BVNode, curNode *int) {
	inum := imax - imin
	self := *curNode
	*curNode++

	if inum == 1 {
		nodes[self] = BVNode{Min: items[imin].min, Max: items[imin].max, Index: items[imin].poly}
		return
	}

	min, max := calcExtents(items[imin:imax])
	axis := longestAxis(max[0]-min[0], max[1]-min[1], max[2]-min[2])

	sub := items[imin:imax]
	switch axis {
	case 0:
		sort.Slice(sub, func(i, j int) bool { return sub[i].min[0] < sub[j].min[0] })
	case 1:
		sort.Slice(sub, func(i, j int) bool { return sub[i].min[1] < sub[j].min[1] })
	default:
		sort.Slice(sub, func(i, j int) bool { return sub[i].min[2] < sub[j].min[2] })
	}

	isplit := imin + inum/2
	subdivide(items, imin, isplit, nodes, curNode)
	subdivide(items, isplit, imax, nodes, curNode)

	nodes[self] = BVNode{Min: min, Max: max, Index: -(*curNode - self)}
}

// buildBVTree quantises each polygon's bounds (preferring detail-mesh
// extents when present, falling back to the polygon's own vertices) and
// builds the preorder escape-offset tree, grounded on the teacher's
// createBVTree.
func buildBVTree(params *CreateParams, verts []float64, polys []Poly) []BVNode {
	n := params.Mesh.PolyCount
	if n == 0 {
		return nil
	}
	quant := 1 / params.CellSize

	items := make([]bvItem, n)
	for i := 0; i < n; i++ {
		items[i].poly = i

		if len(params.Detail.Meshes) > 0 {
			vb := params.Detail.Meshes[i*4+0]
			ndv := params.Detail.Meshes[i*4+1]
			dv := params.Detail.Verts[vb*3 : vb*3+3]
			var bmin, bmax [3]float64
			copy(bmin[:], dv)
			copy(bmax[:], dv)
			for j := 1; j < ndv; j++ {
				p := params.Detail.Verts[(vb+j)*3 : (vb+j)*3+3]
				for a := 0; a < 3; a++ {
					if p[a] < bmin[a] {
						bmin[a] = p[a]
					}
					if p[a] > bmax[a] {
						bmax[a] = p[a]
					}
				}
			}
			for a := 0; a < 3; a++ {
				items[i].min[a] = quantize((bmin[a]-params.Bounds.Min[a])*quant, 0, 0xffff)
				items[i].max[a] = quantize((bmax[a]-params.Bounds.Min[a])*quant, 0, 0xffff)
			}
		} else {
			p := polys[i]
			v0 := params.Mesh.Verts[p.Verts[0]*3 : p.Verts[0]*3+3]
			items[i].min = [3]int{v0[0], v0[1], v0[2]}
			items[i].max = items[i].min
			for j := 1; j < p.VertCount; j++ {
				v := params.Mesh.Verts[p.Verts[j]*3 : p.Verts[j]*3+3]
				for a := 0; a < 3; a++ {
					if v[a] < items[i].min[a] {
						items[i].min[a] = v[a]
					}
					if v[a] > items[i].max[a] {
						items[i].max[a] = v[a]
					}
				}
			}
			items[i].min[1] = int(math.Floor(float64(items[i].min[1]) * params.CellHeight / params.CellSize))
			items[i].max[1] = int(math.Ceil(float64(items[i].max[1]) * params.CellHeight / params.CellSize))
		}
	}

	nodes := make([]BVNode, n*2)
	cur := 0
	subdivide(items, 0, n, nodes, &cur)
	return nodes[:cur]
}

func quantize(v float64, lo, hi int) int {
	if v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}
