package park

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestAttenuationPresets(t *testing.T) {
	tests := []struct {
		name string
		a    Attenuation
		d    float32
		want float32
	}{
		{"night at 0", AttenuationNight, 0, 1},
		{"night at 10", AttenuationNight, 10, 1 / 2.2},
		{"day at 10", AttenuationDay, 10, 1 / 1.0147},
		{"zero denominator", Attenuation{}, 5, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Factor(tt.d); !approxEqual(got, tt.want, epsilon) {
			t.Errorf("%s: Factor = %f, want %f", tt.name, got, tt.want)
		}
	}
	if AttenuationDay.Factor(20) <= AttenuationNight.Factor(20) {
		t.Error("day should reach farther than night")
	}
}

func TestLightDefaults(t *testing.T) {
	l := NewLight()
	if !l.Follow || l.Mode != LightSpot || l.Day {
		t.Errorf("NewLight = %+v, want following night spot", l)
	}
	if l.Ambient != 1 || l.Diffuse != 3.5 || l.Specular != 1 {
		t.Errorf("strengths = %f %f %f, want 1 3.5 1", l.Ambient, l.Diffuse, l.Specular)
	}
	if l.Attenuation() != AttenuationNight {
		t.Error("default attenuation is not night")
	}
	l.Day = true
	if l.Attenuation() != AttenuationDay {
		t.Error("Day does not select day attenuation")
	}
}

func TestLightResolveFollow(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3})
	l := NewLight()
	f := l.resolve(cam)
	if f.pos != cam.Position {
		t.Errorf("following light pos = %v, want %v", f.pos, cam.Position)
	}
	if !vecNear(f.dir, cam.Front(), epsilon) {
		t.Errorf("following light dir = %v, want %v", f.dir, cam.Front())
	}

	l.Stay(cam)
	if l.Follow {
		t.Error("Stay left Follow set")
	}
	cam.Position = mgl32.Vec3{9, 9, 9}
	cam.ProcessMouseMovement(900, 0, true)
	f = l.resolve(cam)
	if f.pos != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("fixed light moved to %v", f.pos)
	}
	if !vecNear(f.dir, mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("fixed light dir = %v, want (0,0,-1)", f.dir)
	}
	if f.eye != cam.Position {
		t.Errorf("eye = %v, want camera position", f.eye)
	}
}

// frameAtOrigin is a light at the origin pointing down -Z.
func frameAtOrigin(mode LightMode, ambient float32) lightFrame {
	cam := NewCamera(mgl32.Vec3{})
	l := NewLight()
	l.Mode = mode
	l.Ambient = ambient
	return l.resolve(cam)
}

func TestShadeInsideCone(t *testing.T) {
	f := frameAtOrigin(LightSpot, 1)
	got := f.shade(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, 1}, 0, 32)
	att := AttenuationNight.Factor(1)
	want := (1 + 3.5) * att
	if !approxEqual(got, want, epsilon) {
		t.Errorf("shade = %f, want %f", got, want)
	}
}

func TestShadeOutsideCone(t *testing.T) {
	p := mgl32.Vec3{5, 0, -1}
	n := mgl32.Vec3{-1, 0, 0}
	d := math32.Sqrt(26)
	att := AttenuationNight.Factor(d)

	spot := frameAtOrigin(LightSpot, 1)
	if got := spot.shade(p, n, 0, 32); !approxEqual(got, att, epsilon) {
		t.Errorf("spot outside cone = %f, want ambient only %f", got, att)
	}

	point := frameAtOrigin(LightPoint, 1)
	diff := 5 / d
	want := (1 + 3.5*diff) * att
	if got := point.shade(p, n, 0, 32); !approxEqual(got, want, epsilon) {
		t.Errorf("point = %f, want %f", got, want)
	}
}

func TestShadeSoftEdge(t *testing.T) {
	f := frameAtOrigin(LightSpot, 0)
	n := mgl32.Vec3{0, 0, 1}
	// 15 degrees off axis sits between the inner and outer cutoff.
	off := math32.Tan(mgl32.DegToRad(15))
	edge := f.shade(mgl32.Vec3{off, 0, -1}, n, 0, 32)
	center := f.shade(mgl32.Vec3{0, 0, -1}, n, 0, 32)
	if edge <= 0 || edge >= center {
		t.Errorf("soft edge = %f, want between 0 and %f", edge, center)
	}
}

func TestShadeNegativeAmbientClamps(t *testing.T) {
	f := frameAtOrigin(LightSpot, -1)
	got := f.shade(mgl32.Vec3{5, 0, -1}, mgl32.Vec3{-1, 0, 0}, 0, 32)
	if got != 0 {
		t.Errorf("shade = %f, want 0", got)
	}
}

func TestShadeBackLit(t *testing.T) {
	f := frameAtOrigin(LightSpot, 0)
	got := f.shade(mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -1}, 1, 32)
	if got != 0 {
		t.Errorf("surface facing away = %f, want 0", got)
	}
}

func TestShadeSpecular(t *testing.T) {
	f := frameAtOrigin(LightSpot, 0)
	p := mgl32.Vec3{0, 0, -1}
	n := mgl32.Vec3{0, 0, 1}
	matte := f.shade(p, n, 0, 32)
	shiny := f.shade(p, n, 0.8, 32)
	att := AttenuationNight.Factor(1)
	if !approxEqual(shiny-matte, 0.8*att, epsilon) {
		t.Errorf("specular term = %f, want %f", shiny-matte, 0.8*att)
	}
}

func TestReflect(t *testing.T) {
	r := reflect(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	if !vecNear(r, mgl32.Vec3{1, 1, 0}, epsilon) {
		t.Errorf("reflect = %v, want (1,1,0)", r)
	}
}
