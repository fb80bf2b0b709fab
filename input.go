package park

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a control the viewer reacts to. Keys are bound to actions so the
// layout can be changed from the config file.
type Action uint8

const (
	ActionForward Action = iota
	ActionBackward
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionSprint
	ActionLightFollow
	ActionDimmer
	ActionBrighter
	ActionDayNight
	ActionProjection
	ActionAnimate
	ActionResetView
	ActionHUD
	ActionScreenshot
	ActionQuit

	actionCount
)

var actionNames = [actionCount]string{
	ActionForward:     "forward",
	ActionBackward:    "backward",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionUp:          "up",
	ActionDown:        "down",
	ActionSprint:      "sprint",
	ActionLightFollow: "light_follow",
	ActionDimmer:      "dimmer",
	ActionBrighter:    "brighter",
	ActionDayNight:    "day_night",
	ActionProjection:  "projection",
	ActionAnimate:     "animate",
	ActionResetView:   "reset_view",
	ActionHUD:         "hud",
	ActionScreenshot:  "screenshot",
	ActionQuit:        "quit",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// edgeActions fire once per key press instead of every frame the key is held.
var edgeActions = ActionSet(0).With(ActionResetView).With(ActionScreenshot)

// ActionSet is a bit set of actions active in one frame.
type ActionSet uint32

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set with a added.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Actions builds a set from a list.
func Actions(list ...Action) ActionSet {
	var s ActionSet
	for _, a := range list {
		s = s.With(a)
	}
	return s
}

// KeyBindings maps each action to the keys that trigger it.
type KeyBindings map[Action][]ebiten.Key

// DefaultKeyBindings returns the standard layout.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		ActionForward:     {ebiten.KeyW},
		ActionBackward:    {ebiten.KeyS},
		ActionLeft:        {ebiten.KeyA},
		ActionRight:       {ebiten.KeyD},
		ActionUp:          {ebiten.KeySpace},
		ActionDown:        {ebiten.KeyX},
		ActionSprint:      {ebiten.KeyShiftLeft},
		ActionLightFollow: {ebiten.KeyF},
		ActionDimmer:      {ebiten.KeyK},
		ActionBrighter:    {ebiten.KeyL},
		ActionDayNight:    {ebiten.KeyO},
		ActionProjection:  {ebiten.KeyP},
		ActionAnimate:     {ebiten.KeyR},
		ActionResetView:   {ebiten.KeyBackspace},
		ActionHUD:         {ebiten.KeyH},
		ActionScreenshot:  {ebiten.KeyF12},
		ActionQuit:        {ebiten.KeyEscape},
	}
}

// Merge returns a copy of b with the actions in o replaced.
func (b KeyBindings) Merge(o KeyBindings) KeyBindings {
	out := make(KeyBindings, len(b)+len(o))
	for a, keys := range b {
		out[a] = keys
	}
	for a, keys := range o {
		out[a] = keys
	}
	return out
}

// FrameInput is everything the controls read in one frame.
type FrameInput struct {
	Actions ActionSet
	// MouseDX and MouseDY are cursor offsets since the last frame. DY is
	// positive when the mouse moves up.
	MouseDX, MouseDY float32
	// Scroll is the vertical wheel offset.
	Scroll float32
}

// inputPoller reads the keyboard and mouse through ebiten.
type inputPoller struct {
	bindings KeyBindings

	// firstMouse swallows the first cursor sample so the view does not jump.
	firstMouse   bool
	lastX, lastY int
}

func newInputPoller(bindings KeyBindings) *inputPoller {
	return &inputPoller{bindings: bindings, firstMouse: true}
}

// poll samples the devices for the current frame.
func (p *inputPoller) poll() FrameInput {
	var in FrameInput
	for a, keys := range p.bindings {
		for _, k := range keys {
			var on bool
			if edgeActions.Has(a) {
				on = inpututil.IsKeyJustPressed(k)
			} else {
				on = ebiten.IsKeyPressed(k)
			}
			if on {
				in.Actions = in.Actions.With(a)
				break
			}
		}
	}

	in.MouseDX, in.MouseDY = p.mouseDelta(ebiten.CursorPosition())

	_, wy := ebiten.Wheel()
	in.Scroll = float32(wy)
	return in
}

// mouseDelta turns a cursor position into an offset from the previous one.
// The first sample yields zero and Y grows upward.
func (p *inputPoller) mouseDelta(x, y int) (dx, dy float32) {
	if p.firstMouse {
		p.lastX, p.lastY = x, y
		p.firstMouse = false
	}
	dx = float32(x - p.lastX)
	dy = float32(p.lastY - y)
	p.lastX, p.lastY = x, y
	return dx, dy
}
