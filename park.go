package park

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is the neutral tint.
var ColorWhite = Color{1, 1, 1, 1}

// ClearColor is the background the viewer clears to each frame.
var ClearColor = Color{0.1, 0.1, 0.1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Box is an axis-aligned box in world space.
type Box struct {
	Min, Max mgl32.Vec3
}

// Contains reports whether p lies inside the box. Points on a face are inside.
func (b Box) Contains(p mgl32.Vec3) bool {
	return p[0] >= b.Min[0] && p[0] <= b.Max[0] &&
		p[1] >= b.Min[1] && p[1] <= b.Max[1] &&
		p[2] >= b.Min[2] && p[2] <= b.Max[2]
}

// Clamp returns p moved to the nearest point inside the box.
func (b Box) Clamp(p mgl32.Vec3) mgl32.Vec3 {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			p[i] = b.Min[i]
		}
		if p[i] > b.Max[i] {
			p[i] = b.Max[i]
		}
	}
	return p
}

// Layer orders triangles before depth sorting. Lower layers are drawn first
// regardless of depth; the ground planes rely on this because they are never
// in front of anything standing on them.
type Layer uint8

const (
	LayerGround  Layer = iota // grass
	LayerSurface              // court markings lying on the grass
	LayerObject               // everything standing on the ground
)

// Projection selects the camera projection.
type Projection uint8

const (
	ProjectionPerspective  Projection = iota // perspective, fov from Camera.Zoom
	ProjectionOrthographic                   // fixed orthographic volume
)

func (p Projection) String() string {
	if p == ProjectionOrthographic {
		return "orthographic"
	}
	return "perspective"
}

// SpecularLevel selects one of the three shared specular maps.
type SpecularLevel uint8

const (
	SpecNone SpecularLevel = iota // no_spec
	SpecMild                      // mild_spec
	SpecHigh                      // high_spec
)

// defaultSpecStrength is used when the specular map for a level is missing.
var defaultSpecStrength = [...]float32{SpecNone: 0, SpecMild: 0.3, SpecHigh: 0.8}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
