package park

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// maxTilesPerEdge caps face tessellation so a runaway scale cannot explode
// the triangle count.
const maxTilesPerEdge = 64

// cubeFace is one side of the unit cube centered on the origin (-0.5..0.5).
// Corners are counter-clockwise seen from outside, starting bottom-left.
// UVs are in image space: (0,0) is the top-left texel.
type cubeFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

var faceUVs = [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// unitCube is the single mesh shared by every part.
var unitCube = [6]cubeFace{
	{ // +Z
		normal:  mgl32.Vec3{0, 0, 1},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	},
	{ // -Z
		normal:  mgl32.Vec3{0, 0, -1},
		corners: [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	},
	{ // +X
		normal:  mgl32.Vec3{1, 0, 0},
		corners: [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
	},
	{ // -X
		normal:  mgl32.Vec3{-1, 0, 0},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
	},
	{ // +Y
		normal:  mgl32.Vec3{0, 1, 0},
		corners: [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
	},
	{ // -Y
		normal:  mgl32.Vec3{0, -1, 0},
		corners: [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
	},
}

// worldFace is a cube face after the model transform.
type worldFace struct {
	corners [4]mgl32.Vec3
	normal  mgl32.Vec3
}

// transformFace applies model to f. The normal is rebuilt from the
// transformed edges so that flattened parts (a zero scale on one axis) keep a
// valid normal on their large faces. ok is false for faces that collapsed to
// a line or a point; those have nothing to draw.
func transformFace(model mgl32.Mat4, f *cubeFace) (wf worldFace, ok bool) {
	for i, c := range f.corners {
		wf.corners[i] = model.Mul4x1(c.Vec4(1)).Vec3()
	}
	n := wf.corners[1].Sub(wf.corners[0]).Cross(wf.corners[3].Sub(wf.corners[0]))
	l := n.Len()
	if l < 1e-9 {
		return wf, false
	}
	wf.normal = n.Mul(1 / l)
	return wf, true
}

// tileCounts returns how many tiles a face is split into along its two
// edges so that no tile is longer than tileSize.
func tileCounts(wf *worldFace, tileSize float32) (nu, nv int) {
	if tileSize <= 0 {
		return 1, 1
	}
	edge := func(a, b mgl32.Vec3) int {
		n := int(math32.Ceil(b.Sub(a).Len() / tileSize))
		if n < 1 {
			return 1
		}
		if n > maxTilesPerEdge {
			return maxTilesPerEdge
		}
		return n
	}
	return edge(wf.corners[0], wf.corners[1]), edge(wf.corners[0], wf.corners[3])
}

// facePoint bilinearly interpolates position and UV across the face at
// (s, t) in [0,1]², s along corner0->corner1 and t along corner0->corner3.
func facePoint(wf *worldFace, s, t float32) (mgl32.Vec3, mgl32.Vec2) {
	c := wf.corners
	bottom := c[0].Add(c[1].Sub(c[0]).Mul(s))
	top := c[3].Add(c[2].Sub(c[3]).Mul(s))
	p := bottom.Add(top.Sub(bottom).Mul(t))

	uvBottom := faceUVs[0].Add(faceUVs[1].Sub(faceUVs[0]).Mul(s))
	uvTop := faceUVs[3].Add(faceUVs[2].Sub(faceUVs[3]).Mul(s))
	uv := uvBottom.Add(uvTop.Sub(uvBottom).Mul(t))
	return p, uv
}
