package park

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func TestCameraDefaults(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 1, 3})
	if cam.Yaw != -90 || cam.Pitch != 0 {
		t.Errorf("yaw, pitch = %f, %f, want -90, 0", cam.Yaw, cam.Pitch)
	}
	if cam.Zoom != 45 {
		t.Errorf("Zoom = %f, want 45", cam.Zoom)
	}
	if !vecNear(cam.Front(), mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("Front = %v, want (0,0,-1)", cam.Front())
	}
	if !vecNear(cam.Right(), mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("Right = %v, want (1,0,0)", cam.Right())
	}
	if !vecNear(cam.Up(), mgl32.Vec3{0, 1, 0}, epsilon) {
		t.Errorf("Up = %v, want (0,1,0)", cam.Up())
	}
}

func TestCameraViewMatrix(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 0, 0})
	p := cam.ViewMatrix().Mul4x1(mgl32.Vec4{0, 0, -5, 1}).Vec3()
	if !vecNear(p, mgl32.Vec3{0, 0, -5}, epsilon) {
		t.Errorf("view of (0,0,-5) = %v, want unchanged", p)
	}

	cam.Position = mgl32.Vec3{2, 0, 0}
	p = cam.ViewMatrix().Mul4x1(mgl32.Vec4{2, 0, -5, 1}).Vec3()
	if !vecNear(p, mgl32.Vec3{0, 0, -5}, epsilon) {
		t.Errorf("view of (2,0,-5) from x=2 = %v, want (0,0,-5)", p)
	}
}

func TestCameraProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -2.5}},
		{Backward, mgl32.Vec3{0, 0, 2.5}},
		{Left, mgl32.Vec3{-2.5, 0, 0}},
		{Right, mgl32.Vec3{2.5, 0, 0}},
	}
	for _, tt := range tests {
		cam := NewCamera(mgl32.Vec3{})
		cam.ProcessKeyboard(tt.dir, 1)
		if !vecNear(cam.Position, tt.want, epsilon) {
			t.Errorf("ProcessKeyboard(%d, 1) -> %v, want %v", tt.dir, cam.Position, tt.want)
		}
	}
}

func TestCameraForwardFollowsPitch(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.ProcessMouseMovement(0, 450, true) // 45 degrees up
	cam.ProcessKeyboard(Forward, 1)
	if cam.Position[1] <= 0 {
		t.Errorf("moving forward while looking up: y = %f, want > 0", cam.Position[1])
	}
}

func TestCameraPitchClamp(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.ProcessMouseMovement(0, 5000, true)
	if cam.Pitch != 89 {
		t.Errorf("Pitch = %f, want 89", cam.Pitch)
	}
	cam.ProcessMouseMovement(0, -10000, true)
	if cam.Pitch != -89 {
		t.Errorf("Pitch = %f, want -89", cam.Pitch)
	}

	free := NewCamera(mgl32.Vec3{})
	free.ProcessMouseMovement(0, 1000, false)
	if free.Pitch != 100 {
		t.Errorf("unconstrained Pitch = %f, want 100", free.Pitch)
	}
}

func TestCameraYawSensitivity(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.ProcessMouseMovement(900, 0, true)
	if !approxEqual(cam.Yaw, 0, epsilon) {
		t.Errorf("Yaw = %f, want 0", cam.Yaw)
	}
	if !vecNear(cam.Front(), mgl32.Vec3{1, 0, 0}, epsilon) {
		t.Errorf("Front = %v, want (1,0,0)", cam.Front())
	}
}

func TestCameraZoomClamp(t *testing.T) {
	tests := []struct {
		start, scroll, want float32
	}{
		{45, 5, 40},
		{45, -5, 45},
		{3, 10, 1},
		{1, -100, 45},
	}
	for _, tt := range tests {
		cam := NewCamera(mgl32.Vec3{})
		cam.Zoom = tt.start
		cam.ProcessMouseScroll(tt.scroll)
		if cam.Zoom != tt.want {
			t.Errorf("zoom %f scroll %f = %f, want %f", tt.start, tt.scroll, cam.Zoom, tt.want)
		}
	}
}

func TestCameraBounds(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{})
	cam.SetBounds(Box{Min: mgl32.Vec3{-1, 0, -1}, Max: mgl32.Vec3{1, 1, 1}})
	cam.ProcessKeyboard(Forward, 10)
	cam.update(0)
	if !vecNear(cam.Position, mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("Position = %v, want clamped to (0,0,-1)", cam.Position)
	}

	cam.ClearBounds()
	cam.ProcessKeyboard(Forward, 10)
	cam.update(0)
	if cam.Position[2] > -2 {
		t.Errorf("Position = %v, want unclamped", cam.Position)
	}
}

func TestCameraFlyTo(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{5, 5, 5})
	cam.Yaw = 30
	cam.FlyTo(mgl32.Vec3{0, 1, 3}, -90, 0, 1, ease.Linear)
	if !cam.Flying() {
		t.Fatal("Flying() = false after FlyTo")
	}

	cam.update(0.5)
	if !approxEqual(cam.Position[0], 2.5, 0.01) {
		t.Errorf("halfway x = %f, want 2.5", cam.Position[0])
	}
	if !approxEqual(cam.Yaw, -30, 0.01) {
		t.Errorf("halfway yaw = %f, want -30", cam.Yaw)
	}

	cam.update(0.6)
	if cam.Flying() {
		t.Error("Flying() = true after duration")
	}
	if !vecNear(cam.Position, mgl32.Vec3{0, 1, 3}, epsilon) {
		t.Errorf("Position = %v, want (0,1,3)", cam.Position)
	}
	if !vecNear(cam.Front(), mgl32.Vec3{0, 0, -1}, epsilon) {
		t.Errorf("Front = %v, want (0,0,-1)", cam.Front())
	}
}
