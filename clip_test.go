package park

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func cv(x, y, z, w float32) clipVertex {
	return clipVertex{pos: mgl32.Vec4{x, y, z, w}, shade: 1}
}

func TestClipPolygonInside(t *testing.T) {
	tri := []clipVertex{cv(0, 0, 0, 1), cv(1, 0, 0, 1), cv(0, 1, 0, 1)}
	got := clipPolygon(tri, nil, nil)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := range tri {
		if got[i].pos != tri[i].pos {
			t.Errorf("vertex %d = %v, want %v", i, got[i].pos, tri[i].pos)
		}
	}
}

func TestClipPolygonBehindNear(t *testing.T) {
	// z + w < 0 for every vertex.
	tri := []clipVertex{cv(0, 0, -2, 1), cv(1, 0, -2, 1), cv(0, 1, -3, 1)}
	if got := clipPolygon(tri, nil, nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestClipPolygonBeyondFar(t *testing.T) {
	tri := []clipVertex{cv(0, 0, 2, 1), cv(1, 0, 2, 1), cv(0, 1, 3, 1)}
	if got := clipPolygon(tri, nil, nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestClipPolygonOneVertexOut(t *testing.T) {
	tri := []clipVertex{cv(0, 0, 0, 1), cv(1, 0, 0, 1), cv(0, 1, -3, 1)}
	tri[2].shade = 0
	got := clipPolygon(tri, make([]clipVertex, 0, 8), make([]clipVertex, 0, 8))
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	for i, v := range got {
		if d := v.pos[2] + v.pos[3]; d < -epsilon {
			t.Errorf("vertex %d outside near plane: z+w = %f", i, d)
		}
		if v.shade < 0 || v.shade > 1 {
			t.Errorf("vertex %d shade %f not interpolated", i, v.shade)
		}
	}
}

func TestLerpClip(t *testing.T) {
	a := clipVertex{pos: mgl32.Vec4{0, 0, 0, 1}, u: 0, v: 10, shade: 0}
	b := clipVertex{pos: mgl32.Vec4{2, 4, 0, 1}, u: 8, v: 0, shade: 1}
	m := lerpClip(a, b, 0.25)
	if m.pos != (mgl32.Vec4{0.5, 1, 0, 1}) || m.u != 2 || m.v != 7.5 || m.shade != 0.25 {
		t.Errorf("lerpClip = %+v", m)
	}
}

func TestToScreen(t *testing.T) {
	s := toScreen(cv(0.5, 0.5, 0.2, 0.5), 100, 200)
	if s.x != 100 || s.y != 0 || !approxEqual(s.z, 0.4, epsilon) {
		t.Errorf("toScreen = %+v, want (100, 0, 0.4)", s)
	}
	s = toScreen(cv(-1, -1, 0, 1), 100, 200)
	if s.x != 0 || s.y != 200 {
		t.Errorf("bottom-left = (%f, %f), want (0, 200)", s.x, s.y)
	}
}

func TestFrontFacing(t *testing.T) {
	// Counter-clockwise in NDC.
	a := toScreen(cv(0, 0, 0, 1), 100, 100)
	b := toScreen(cv(1, 0, 0, 1), 100, 100)
	c := toScreen(cv(0, 1, 0, 1), 100, 100)
	if !frontFacing(a, b, c) {
		t.Error("ccw triangle culled")
	}
	if frontFacing(a, c, b) {
		t.Error("cw triangle kept")
	}
	if frontFacing(a, a, c) {
		t.Error("degenerate triangle kept")
	}
}
