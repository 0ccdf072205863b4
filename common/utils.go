package common

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the world-space vector type used for tile AABBs, off-mesh
// connection endpoints and other float64 geometry. The teacher declared
// this alias against mgl32 but only ever exercised it from its GUI
// debug-draw code; here it is the vector type the algorithmic core itself
// uses.
type Vec3 = mgl64.Vec3

type IT interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
