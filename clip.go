package park

import "github.com/go-gl/mathgl/mgl32"

// clipVertex is a vertex in homogeneous clip space with the attributes that
// are interpolated when a triangle is cut.
type clipVertex struct {
	pos   mgl32.Vec4
	u, v  float32
	shade float32
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	return clipVertex{
		pos:   a.pos.Add(b.pos.Sub(a.pos).Mul(t)),
		u:     a.u + (b.u-a.u)*t,
		v:     a.v + (b.v-a.v)*t,
		shade: a.shade + (b.shade-a.shade)*t,
	}
}

// clipPlane returns the signed distance of p to a clip plane; inside is >= 0.
type clipPlane func(p mgl32.Vec4) float32

var clipPlanes = [...]clipPlane{
	func(p mgl32.Vec4) float32 { return p[2] + p[3] }, // near
	func(p mgl32.Vec4) float32 { return p[3] - p[2] }, // far
}

// clipPolygon clips poly against the near and far planes. The side planes
// are left to the rasterizer. out and scratch are reused buffers; the result
// aliases one of them.
func clipPolygon(poly, out, scratch []clipVertex) []clipVertex {
	src := append(out[:0], poly...)
	dst := scratch[:0]
	for _, plane := range clipPlanes {
		dst = dst[:0]
		for i := range src {
			a := src[i]
			b := src[(i+1)%len(src)]
			da, db := plane(a.pos), plane(b.pos)
			if da >= 0 {
				dst = append(dst, a)
			}
			if (da >= 0) != (db >= 0) {
				dst = append(dst, lerpClip(a, b, da/(da-db)))
			}
		}
		src, dst = dst, src
		if len(src) < 3 {
			return src[:0]
		}
	}
	return src
}

// screenVertex is a clipped vertex after the perspective divide.
type screenVertex struct {
	x, y, z float32
	u, v    float32
	shade   float32
}

// toScreen divides by w and maps NDC onto a width x height target with y
// growing downward.
func toScreen(cv clipVertex, width, height float32) screenVertex {
	w := cv.pos[3]
	if w == 0 {
		w = 1e-6
	}
	nx, ny, nz := cv.pos[0]/w, cv.pos[1]/w, cv.pos[2]/w
	return screenVertex{
		x:     (nx + 1) / 2 * width,
		y:     (1 - ny) / 2 * height,
		z:     nz,
		u:     cv.u,
		v:     cv.v,
		shade: cv.shade,
	}
}

// cullEpsilon is the smallest screen area, in square pixels, worth drawing.
const cullEpsilon = 1e-4

// signedArea returns twice the signed screen area of a triangle. Triangles
// that are counter-clockwise in world space come out negative because screen
// y points down.
func signedArea(a, b, c screenVertex) float32 {
	return (b.x-a.x)*(c.y-a.y) - (c.x-a.x)*(b.y-a.y)
}

// frontFacing reports whether the triangle faces the viewer and covers a
// non-zero area.
func frontFacing(a, b, c screenVertex) bool {
	return signedArea(a, b, c) < -cullEpsilon
}
