package park

import "github.com/go-gl/mathgl/mgl32"

// cuboid returns Translate(x, y, z) * Scale(sx, sy, sz), the shape of almost
// every part in the park.
func cuboid(x, y, z, sx, sy, sz float32) mgl32.Mat4 {
	return mgl32.Translate3D(x, y, z).Mul4(mgl32.Scale3D(sx, sy, sz))
}

// Model builds a model matrix by post-multiplying steps in call order, the
// same order a fixed-function transform stack would apply them.
type Model struct {
	m mgl32.Mat4
}

// NewModel starts from the identity.
func NewModel() Model {
	return Model{m: mgl32.Ident4()}
}

// Translate appends a translation.
func (b Model) Translate(x, y, z float32) Model {
	b.m = b.m.Mul4(mgl32.Translate3D(x, y, z))
	return b
}

// Scale appends a scale.
func (b Model) Scale(x, y, z float32) Model {
	b.m = b.m.Mul4(mgl32.Scale3D(x, y, z))
	return b
}

// Rotate appends a rotation of deg degrees about axis.
func (b Model) Rotate(deg float32, axis mgl32.Vec3) Model {
	b.m = b.m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
	return b
}

// Mat4 returns the built matrix.
func (b Model) Mat4() mgl32.Mat4 {
	return b.m
}

// Axes used by the park builders.
var (
	AxisX = mgl32.Vec3{1, 0, 0}
	AxisY = mgl32.Vec3{0, 1, 0}
	AxisZ = mgl32.Vec3{0, 0, 1}
)
