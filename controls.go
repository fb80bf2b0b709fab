package park

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

// Control defaults.
const (
	DefaultBaseSpeed      float32 = 1
	DefaultDebounceFrames         = 20
	DefaultAmbientStep    float32 = 0.2
	DefaultMinAmbient     float32 = -1
	DefaultMaxAmbient     float32 = 5
	DefaultFlySeconds     float32 = 1.5
)

// DefaultHome is where the camera starts and where reset_view returns to.
var DefaultHome = mgl32.Vec3{0, 1, 3}

// DefaultBounds keeps the camera above the lawn and inside its edges.
var DefaultBounds = Box{Min: mgl32.Vec3{-24.5, 0.1, -24.5}, Max: mgl32.Vec3{24.5, 15, 24.5}}

// toggle indexes the debounce timers.
type toggle uint8

const (
	toggleLight toggle = iota
	toggleDayNight
	toggleProjection
	toggleAnimate
	toggleHUD

	toggleCount
)

// State is the mutable viewer state advanced once per frame by Update.
type State struct {
	Camera     *Camera
	Light      *Light
	Projection Projection
	// Animating plays the scene motions.
	Animating bool
	// ShowHUD draws the overlay text.
	ShowHUD bool

	// Home is the pose reset_view flies back to.
	Home Pose

	// BaseSpeed scales the frame time into the keyboard step. Sprint
	// doubles it.
	BaseSpeed float32
	// DebounceFrames is how many frames a toggle ignores its key after
	// firing.
	DebounceFrames int
	AmbientStep    float32
	MinAmbient     float32
	MaxAmbient     float32
	FlySeconds     float32

	timers [toggleCount]int
}

// Pose is a camera position and orientation.
type Pose struct {
	Position   mgl32.Vec3
	Yaw, Pitch float32
}

// NewState returns the state the viewer starts in.
func NewState() *State {
	cam := NewCamera(DefaultHome)
	cam.SetBounds(DefaultBounds)
	return &State{
		Camera:         cam,
		Light:          NewLight(),
		Animating:      true,
		ShowHUD:        true,
		Home:           Pose{Position: DefaultHome, Yaw: DefaultYaw, Pitch: DefaultPitch},
		BaseSpeed:      DefaultBaseSpeed,
		DebounceFrames: DefaultDebounceFrames,
		AmbientStep:    DefaultAmbientStep,
		MinAmbient:     DefaultMinAmbient,
		MaxAmbient:     DefaultMaxAmbient,
		FlySeconds:     DefaultFlySeconds,
	}
}

// Update applies one frame of input. dt is the frame time in seconds. It
// returns true when the viewer should quit.
func (s *State) Update(in FrameInput, dt float32) (quit bool) {
	for i := range s.timers {
		if s.timers[i] > 0 {
			s.timers[i]--
		}
	}

	if in.Actions.Has(ActionQuit) {
		return true
	}

	// speed is a time step for ProcessKeyboard, which scales it by the
	// camera's MovementSpeed. Lift uses it directly.
	speed := s.BaseSpeed * dt
	if in.Actions.Has(ActionSprint) {
		speed *= 2
	}
	cam := s.Camera
	if in.Actions.Has(ActionForward) {
		cam.ProcessKeyboard(Forward, speed)
	}
	if in.Actions.Has(ActionBackward) {
		cam.ProcessKeyboard(Backward, speed)
	}
	if in.Actions.Has(ActionLeft) {
		cam.ProcessKeyboard(Left, speed)
	}
	if in.Actions.Has(ActionRight) {
		cam.ProcessKeyboard(Right, speed)
	}
	if in.Actions.Has(ActionUp) {
		cam.Lift(2 * speed)
	}
	if in.Actions.Has(ActionDown) {
		cam.Lift(-2 * speed)
	}

	if s.fire(in, ActionLightFollow, toggleLight) {
		if s.Light.Follow {
			s.Light.Stay(cam)
		} else {
			s.Light.Follow = true
		}
	}
	if in.Actions.Has(ActionDimmer) && s.Light.Ambient > s.MinAmbient {
		s.Light.Ambient -= s.AmbientStep
	}
	if in.Actions.Has(ActionBrighter) && s.Light.Ambient < s.MaxAmbient {
		s.Light.Ambient += s.AmbientStep
	}
	if s.fire(in, ActionDayNight, toggleDayNight) {
		s.Light.Day = !s.Light.Day
	}
	if s.fire(in, ActionProjection, toggleProjection) {
		if s.Projection == ProjectionPerspective {
			s.Projection = ProjectionOrthographic
		} else {
			s.Projection = ProjectionPerspective
		}
	}
	if s.fire(in, ActionAnimate, toggleAnimate) {
		s.Animating = !s.Animating
	}
	if s.fire(in, ActionHUD, toggleHUD) {
		s.ShowHUD = !s.ShowHUD
	}
	if in.Actions.Has(ActionResetView) {
		cam.FlyTo(s.Home.Position, s.Home.Yaw, s.Home.Pitch, s.FlySeconds, ease.InOutQuad)
	}

	if in.MouseDX != 0 || in.MouseDY != 0 {
		cam.ProcessMouseMovement(in.MouseDX, in.MouseDY, true)
	}
	if in.Scroll != 0 {
		cam.ProcessMouseScroll(in.Scroll)
	}

	cam.update(dt)
	return false
}

// fire reports whether a debounced toggle triggers this frame and, if so,
// restarts its timer.
func (s *State) fire(in FrameInput, a Action, t toggle) bool {
	if !in.Actions.Has(a) || s.timers[t] > 0 {
		return false
	}
	s.timers[t] = s.DebounceFrames
	return true
}
