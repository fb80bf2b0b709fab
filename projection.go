package park

import "github.com/go-gl/mathgl/mgl32"

// Perspective clip planes.
const (
	perspectiveNear float32 = 0.1
	perspectiveFar  float32 = 100
)

// Orthographic viewing volume. The window aspect ratio is ignored.
var orthoVolume = [6]float32{-10, 10, -2, 10, -100, 200}

// ProjectionMatrix returns the projection for mode. zoom is the vertical field
// of view in degrees; width and height give the aspect ratio.
func ProjectionMatrix(mode Projection, zoom float32, width, height int) mgl32.Mat4 {
	if mode == ProjectionOrthographic {
		v := orthoVolume
		return mgl32.Ortho(v[0], v[1], v[2], v[3], v[4], v[5])
	}
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(zoom), aspect, perspectiveNear, perspectiveFar)
}
