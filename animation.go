package park

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MotionKind selects how a Motion moves its node.
type MotionKind uint8

const (
	MotionSwing MotionKind = iota // rotate back and forth about Axis through Pivot
	MotionSpin                    // rotate continuously about Axis through Pivot
	MotionBob                     // translate back and forth along Axis
)

// Motion is a looping animation attached to a Node. Swing and bob ping-pong
// between -Amplitude and +Amplitude with sine easing; spin turns at a
// constant rate.
//
// There is no global animation manager. Scene.Update advances every motion
// while animation is playing.
type Motion struct {
	Kind MotionKind
	// Axis of rotation (swing, spin) or direction of travel (bob).
	Axis mgl32.Vec3
	// Pivot is the point the rotation turns around, in node space.
	Pivot mgl32.Vec3
	// Amplitude is in degrees for swing, world units for bob. Unused by spin.
	Amplitude float32
	// Period is the duration of one full cycle in seconds.
	Period float32

	value float32
	tween *gween.Tween
	// rising is the direction of the current half cycle.
	rising bool
}

// NewSwing creates a swinging motion.
func NewSwing(axis, pivot mgl32.Vec3, amplitude, period float32) *Motion {
	return newOscillation(MotionSwing, axis, pivot, amplitude, period)
}

// NewBob creates a bobbing motion along axis.
func NewBob(axis mgl32.Vec3, amplitude, period float32) *Motion {
	return newOscillation(MotionBob, axis, mgl32.Vec3{}, amplitude, period)
}

// NewSpin creates a continuous rotation taking period seconds per turn.
func NewSpin(axis, pivot mgl32.Vec3, period float32) *Motion {
	return &Motion{Kind: MotionSpin, Axis: axis, Pivot: pivot, Period: period}
}

func newOscillation(kind MotionKind, axis, pivot mgl32.Vec3, amplitude, period float32) *Motion {
	m := &Motion{Kind: kind, Axis: axis, Pivot: pivot, Amplitude: amplitude, Period: period, rising: true}
	m.value = -amplitude
	m.tween = gween.New(-amplitude, amplitude, period/2, ease.InOutSine)
	return m
}

// Value returns the current angle in degrees (swing, spin) or offset (bob).
func (m *Motion) Value() float32 {
	return m.value
}

// Update advances the motion by dt seconds.
func (m *Motion) Update(dt float32) {
	if m.Period <= 0 {
		return
	}
	if m.Kind == MotionSpin {
		m.value = math32.Mod(m.value+360*dt/m.Period, 360)
		return
	}
	val, done := m.tween.Update(dt)
	m.value = val
	if done {
		m.rising = !m.rising
		from, to := m.Amplitude, -m.Amplitude
		if m.rising {
			from, to = to, from
		}
		m.tween = gween.New(from, to, m.Period/2, ease.InOutSine)
	}
}

// Matrix returns the transform for the current value.
func (m *Motion) Matrix() mgl32.Mat4 {
	if m.Kind == MotionBob {
		d := m.Axis.Mul(m.value)
		return mgl32.Translate3D(d[0], d[1], d[2])
	}
	if m.value == 0 || m.Axis.Len() == 0 {
		return mgl32.Ident4()
	}
	p := m.Pivot
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(m.value), m.Axis.Normalize())).
		Mul4(mgl32.Translate3D(-p[0], -p[1], -p[2]))
}
