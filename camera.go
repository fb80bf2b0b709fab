package park

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction is a horizontal camera movement relative to where it looks.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

// Camera defaults.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	minZoom  float32 = 1
	maxZoom  float32 = 45
	maxPitch float32 = 89
)

// flyAnim holds the tweens of an active FlyTo: x, y, z, yaw, pitch.
type flyAnim struct {
	tweens [5]*gween.Tween
	done   [5]bool
}

// Camera is a free-fly camera driven by Euler angles.
type Camera struct {
	// Position is the eye position in world space.
	Position mgl32.Vec3
	// Yaw and Pitch are in degrees. Yaw -90 looks down -Z.
	Yaw, Pitch float32
	// MovementSpeed is world units per second for ProcessKeyboard.
	MovementSpeed float32
	// MouseSensitivity scales mouse offsets into degrees.
	MouseSensitivity float32
	// Zoom is the vertical field of view in degrees, in [1, 45].
	Zoom float32

	// WorldUp is the up vector used to derive Right and Up.
	WorldUp mgl32.Vec3

	// BoundsEnabled clamps Position into Bounds after every update.
	BoundsEnabled bool
	Bounds        Box

	front, right, up mgl32.Vec3

	fly *flyAnim
}

// NewCamera creates a camera at pos looking down -Z with default settings.
func NewCamera(pos mgl32.Vec3) *Camera {
	c := &Camera{
		Position:         pos,
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		WorldUp:          mgl32.Vec3{0, 1, 0},
	}
	c.updateVectors()
	return c
}

// Front returns the unit view direction.
func (c *Camera) Front() mgl32.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns the unit up vector.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// ViewMatrix returns the look-at view matrix for the current pose.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.front), c.up)
}

// ProcessKeyboard moves the camera in dir for dt seconds at MovementSpeed.
// Movement follows the view direction, so looking up and moving forward
// gains height.
func (c *Camera) ProcessKeyboard(dir Direction, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.front.Mul(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.front.Mul(velocity))
	case Left:
		c.Position = c.Position.Sub(c.right.Mul(velocity))
	case Right:
		c.Position = c.Position.Add(c.right.Mul(velocity))
	}
}

// Lift moves the camera along world Y by dy.
func (c *Camera) Lift(dy float32) {
	c.Position[1] += dy
}

// ProcessMouseMovement turns the camera by the given cursor offsets. When
// constrainPitch is set the pitch stays within ±89 degrees so the view never
// flips over the pole.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	c.Yaw += xoffset * c.MouseSensitivity
	c.Pitch += yoffset * c.MouseSensitivity
	if constrainPitch {
		c.Pitch = clampf(c.Pitch, -maxPitch, maxPitch)
	}
	c.updateVectors()
}

// ProcessMouseScroll zooms by narrowing or widening the field of view.
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Zoom = clampf(c.Zoom-yoffset, minZoom, maxZoom)
}

// SetBounds enables position clamping to b.
func (c *Camera) SetBounds(b Box) {
	c.BoundsEnabled = true
	c.Bounds = b
}

// ClearBounds disables position clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps Position into Bounds. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.Position = c.Bounds.Clamp(c.Position)
	}
}

// FlyTo animates the camera to pos with the given orientation over duration
// seconds. Input keeps working during the flight but the tween overwrites
// position and angles until it completes.
func (c *Camera) FlyTo(pos mgl32.Vec3, yaw, pitch, duration float32, easeFn ease.TweenFunc) {
	c.fly = &flyAnim{tweens: [5]*gween.Tween{
		gween.New(c.Position[0], pos[0], duration, easeFn),
		gween.New(c.Position[1], pos[1], duration, easeFn),
		gween.New(c.Position[2], pos[2], duration, easeFn),
		gween.New(c.Yaw, yaw, duration, easeFn),
		gween.New(c.Pitch, pitch, duration, easeFn),
	}}
}

// Flying reports whether a FlyTo animation is in progress.
func (c *Camera) Flying() bool {
	return c.fly != nil
}

// update advances the fly-to animation and applies bounds clamping.
func (c *Camera) update(dt float32) {
	if c.fly != nil {
		targets := [5]*float32{&c.Position[0], &c.Position[1], &c.Position[2], &c.Yaw, &c.Pitch}
		allDone := true
		for i, tw := range c.fly.tweens {
			if c.fly.done[i] {
				continue
			}
			val, done := tw.Update(dt)
			*targets[i] = val
			c.fly.done[i] = done
			if !done {
				allDone = false
			}
		}
		if allDone {
			c.fly = nil
		}
		c.updateVectors()
	}
	c.ClampToBounds()
}

// updateVectors recomputes front, right and up from the Euler angles.
func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
