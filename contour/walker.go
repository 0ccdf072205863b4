package contour

import (
	"navtile/heightfield"

	"go.uber.org/zap"
)

// maxWalkIterations bounds the boundary walk so a malformed input aborts
// the region instead of looping forever, grounded on the teacher's
// walkContour 40000 cap.
const maxWalkIterations = 40000

// markBoundaries computes, for every span, a 4-bit nibble where bit d is
// set iff the edge in direction d is a region boundary (the neighbour's
// region differs, or there is no neighbour). Spans with no region, or with
// the tile-border bit set, are left at 0. A nibble of 0x0 (fully interior)
// or 0xF (no same-region neighbour at all) is stored as computed; Build
// skips both, zeroing the 0xF ones, so the walker never starts there.
func markBoundaries(chf *heightfield.CompactHeightfield) []int {
	flags := make([]int, len(chf.Spans))
	for y := 0; y < chf.Height; y++ {
		for x := 0; x < chf.Width; x++ {
			c := chf.Cells[x+y*chf.Width]
			for i := c.Index; i < c.Index+c.Count; i++ {
				s := &chf.Spans[i]
				if s.Reg == 0 || s.Reg&heightfield.BorderReg != 0 {
					continue
				}
				res := 0
				for dir := 0; dir < 4; dir++ {
					r := 0
					if s.Con(dir) != heightfield.NotConnected {
						ax := x + heightfield.DirOffsetX(dir)
						ay := y + heightfield.DirOffsetZ(dir)
						ai := chf.Cells[ax+ay*chf.Width].Index + s.Con(dir)
						r = chf.Spans[ai].Reg
					}
					if r == s.Reg {
						res |= 1 << dir
					}
				}
				flags[i] = res ^ 0xf
			}
		}
	}
	return flags
}

// cornerHeight returns the lifted y for the corner of span i at (x,y) in
// direction dir, and reports whether the corner is a border vertex: the
// four spans meeting there form two equal exterior region codes followed
// by two interior codes sharing an area tag, with no code zero.
func cornerHeight(chf *heightfield.CompactHeightfield, x, y, i, dir int) (height int, isBorder bool) {
	s := &chf.Spans[i]
	ch := s.Y
	dirp := (dir + 1) & 0x3

	regs := [4]int{}
	regs[0] = chf.Spans[i].Reg | int(chf.Areas[i])<<16

	if s.Con(dir) != heightfield.NotConnected {
		ax := x + heightfield.DirOffsetX(dir)
		ay := y + heightfield.DirOffsetZ(dir)
		ai := chf.Cells[ax+ay*chf.Width].Index + s.Con(dir)
		as := &chf.Spans[ai]
		if as.Y > ch {
			ch = as.Y
		}
		regs[1] = chf.Spans[ai].Reg | int(chf.Areas[ai])<<16
		if as.Con(dirp) != heightfield.NotConnected {
			ax2 := ax + heightfield.DirOffsetX(dirp)
			ay2 := ay + heightfield.DirOffsetZ(dirp)
			ai2 := chf.Cells[ax2+ay2*chf.Width].Index + as.Con(dirp)
			as2 := &chf.Spans[ai2]
			if as2.Y > ch {
				ch = as2.Y
			}
			regs[2] = chf.Spans[ai2].Reg | int(chf.Areas[ai2])<<16
		}
	}
	if s.Con(dirp) != heightfield.NotConnected {
		ax := x + heightfield.DirOffsetX(dirp)
		ay := y + heightfield.DirOffsetZ(dirp)
		ai := chf.Cells[ax+ay*chf.Width].Index + s.Con(dirp)
		as := &chf.Spans[ai]
		if as.Y > ch {
			ch = as.Y
		}
		regs[3] = chf.Spans[ai].Reg | int(chf.Areas[ai])<<16
		if as.Con(dir) != heightfield.NotConnected {
			ax2 := ax + heightfield.DirOffsetX(dir)
			ay2 := ay + heightfield.DirOffsetZ(dir)
			ai2 := chf.Cells[ax2+ay2*chf.Width].Index + as.Con(dir)
			as2 := &chf.Spans[ai2]
			if as2.Y > ch {
				ch = as2.Y
			}
			regs[2] = chf.Spans[ai2].Reg | int(chf.Areas[ai2])<<16
		}
	}

	for j := 0; j < 4; j++ {
		a, b, c, d := j, (j+1)&0x3, (j+2)&0x3, (j+3)&0x3
		twoSameExts := (regs[a]&regs[b]&BorderReg) != 0 && regs[a] == regs[b]
		twoInts := (regs[c]|regs[d])&BorderReg == 0
		intsSameArea := (regs[c] >> 16) == (regs[d] >> 16)
		noZeros := regs[a] != 0 && regs[b] != 0 && regs[c] != 0 && regs[d] != 0
		if twoSameExts && twoInts && intsSameArea && noZeros {
			return ch, true
		}
	}
	return ch, false
}

// walk traces the boundary of the region containing span i at cell (x,y),
// starting at the lowest-numbered flagged direction, and returns the raw
// closed polyline. If the walk is abandoned (iteration cap exceeded) it
// logs a warning and returns nil; the caller skips the region.
func walk(chf *heightfield.CompactHeightfield, flags []int, x, y, i int, log *zap.Logger) []Vertex {
	dir := 0
	for flags[i]&(1<<dir) == 0 {
		dir++
	}

	startDir, starti := dir, i
	area := int(chf.Areas[i])

	var verts []Vertex
	for iter := 0; ; iter++ {
		if iter >= maxWalkIterations {
			if log != nil {
				log.Warn("contour walk abandoned: iteration cap exceeded",
					zap.Int("x", x), zap.Int("y", y), zap.Int("span", starti))
			}
			return nil
		}
		if flags[i]&(1<<dir) != 0 {
			ch, isBorder := cornerHeight(chf, x, y, i, dir)
			px, pz := x, y
			switch dir {
			case 0:
				pz++
			case 1:
				px++
				pz++
			case 2:
				px++
			}

			r := 0
			isAreaBorder := false
			s := &chf.Spans[i]
			if s.Con(dir) != heightfield.NotConnected {
				ax := x + heightfield.DirOffsetX(dir)
				ay := y + heightfield.DirOffsetZ(dir)
				ai := chf.Cells[ax+ay*chf.Width].Index + s.Con(dir)
				r = chf.Spans[ai].Reg
				if area != int(chf.Areas[ai]) {
					isAreaBorder = true
				}
			}
			if isBorder {
				r |= BorderVertex
			}
			if isAreaBorder {
				r |= AreaBorder
			}

			verts = append(verts, Vertex{X: px, Y: ch, Z: pz, Flags: r})

			flags[i] &^= 1 << dir
			dir = heightfield.RotateCW(dir)
		} else {
			ni := -1
			nx := x + heightfield.DirOffsetX(dir)
			ny := y + heightfield.DirOffsetZ(dir)
			s := &chf.Spans[i]
			if s.Con(dir) != heightfield.NotConnected {
				nc := chf.Cells[nx+ny*chf.Width]
				ni = nc.Index + s.Con(dir)
			}
			if ni == -1 {
				return verts
			}
			x, y, i = nx, ny, ni
			dir = heightfield.RotateCCW(dir)
		}

		if starti == i && startDir == dir {
			break
		}
	}
	return verts
}
