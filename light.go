package park

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Attenuation holds the distance falloff coefficients of the light:
// 1 / (Constant + Linear*d + Quadratic*d*d).
type Attenuation struct {
	Constant  float32 `toml:"constant"`
	Linear    float32 `toml:"linear"`
	Quadratic float32 `toml:"quadratic"`
}

// Factor returns the attenuation multiplier at distance d.
func (a Attenuation) Factor(d float32) float32 {
	den := a.Constant + a.Linear*d + a.Quadratic*d*d
	if den <= 0 {
		return 1
	}
	return 1 / den
}

// Attenuation presets. Night has a short reach, day lights the whole park.
var (
	AttenuationDay   = Attenuation{Constant: 1, Linear: 0.0014, Quadratic: 0.000007}
	AttenuationNight = Attenuation{Constant: 1, Linear: 0.045, Quadratic: 0.0075}
)

// LightMode selects the light model.
type LightMode uint8

const (
	LightSpot  LightMode = iota // cone limited by CutOff/OuterCutOff
	LightPoint                  // no cone
)

func (m LightMode) String() string {
	if m == LightPoint {
		return "point"
	}
	return "spot"
}

// Light is the single light of the park. While Follow is true it sits at the
// camera and points where the camera looks; otherwise it stays at the stored
// Position and Direction.
type Light struct {
	Mode LightMode

	// Follow attaches the light to the camera.
	Follow bool
	// Position and Direction are used when Follow is false.
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	// Ambient is the brightness level adjusted with the dimmer keys. It may go
	// below zero; the final color is clamped.
	Ambient  float32
	Diffuse  float32
	Specular float32

	// Day selects AttenuationDay instead of AttenuationNight.
	Day   bool
	DayAt Attenuation
	Night Attenuation

	// CutOff and OuterCutOff are cone half angles in degrees.
	CutOff, OuterCutOff float32
}

// NewLight returns the default light: a camera-following spot light at night.
func NewLight() *Light {
	return &Light{
		Mode:        LightSpot,
		Follow:      true,
		Direction:   mgl32.Vec3{0, 0, -1},
		Ambient:     1,
		Diffuse:     3.5,
		Specular:    1,
		DayAt:       AttenuationDay,
		Night:       AttenuationNight,
		CutOff:      12.5,
		OuterCutOff: 17.5,
	}
}

// Attenuation returns the active attenuation preset.
func (l *Light) Attenuation() Attenuation {
	if l.Day {
		return l.DayAt
	}
	return l.Night
}

// Stay pins the light at the camera's current pose.
func (l *Light) Stay(cam *Camera) {
	l.Position = cam.Position
	l.Direction = cam.Front()
	l.Follow = false
}

// lightFrame is a light resolved for one frame.
type lightFrame struct {
	mode     LightMode
	pos, dir mgl32.Vec3
	eye      mgl32.Vec3
	ambient  float32
	diffuse  float32
	specular float32
	atten    Attenuation
	cosCut   float32
	cosOuter float32
}

// resolve computes the per-frame light values seen from cam.
func (l *Light) resolve(cam *Camera) lightFrame {
	f := lightFrame{
		mode:     l.Mode,
		pos:      l.Position,
		dir:      l.Direction,
		eye:      cam.Position,
		ambient:  l.Ambient,
		diffuse:  l.Diffuse,
		specular: l.Specular,
		atten:    l.Attenuation(),
		cosCut:   math32.Cos(mgl32.DegToRad(l.CutOff)),
		cosOuter: math32.Cos(mgl32.DegToRad(l.OuterCutOff)),
	}
	if l.Follow {
		f.pos = cam.Position
		f.dir = cam.Front()
	}
	if f.dir.Len() > 0 {
		f.dir = f.dir.Normalize()
	}
	return f
}

// shade returns the light multiplier for a surface point p with unit normal
// n and specular strength spec. The result multiplies the diffuse texture.
// Specular is folded into the same multiplier.
func (f *lightFrame) shade(p, n mgl32.Vec3, spec, shininess float32) float32 {
	toLight := f.pos.Sub(p)
	dist := toLight.Len()
	var l mgl32.Vec3
	if dist > 1e-6 {
		l = toLight.Mul(1 / dist)
	}

	diff := n.Dot(l)
	if diff < 0 {
		diff = 0
	}

	var specular float32
	if spec > 0 && diff > 0 {
		toEye := f.eye.Sub(p)
		if toEye.Len() > 1e-6 {
			v := toEye.Normalize()
			r := reflect(l.Mul(-1), n)
			if s := v.Dot(r); s > 0 {
				specular = math32.Pow(s, shininess) * spec
			}
		}
	}

	cone := float32(1)
	if f.mode == LightSpot {
		theta := -l.Dot(f.dir)
		eps := f.cosCut - f.cosOuter
		if eps <= 0 {
			if theta < f.cosCut {
				cone = 0
			}
		} else {
			cone = clamp01((theta - f.cosOuter) / eps)
		}
	}

	att := f.atten.Factor(dist)
	v := (f.ambient + f.diffuse*diff*cone + f.specular*specular*cone) * att
	if v < 0 {
		return 0
	}
	return v
}

// reflect mirrors i about the unit normal n.
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2 * n.Dot(i)))
}
