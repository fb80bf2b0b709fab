package park

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestParseAction(t *testing.T) {
	for a := Action(0); a < actionCount; a++ {
		got, err := ParseAction(a.String())
		if err != nil {
			t.Fatalf("ParseAction(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("ParseAction(%q) = %v", a.String(), got)
		}
	}
	if a, err := ParseAction("  Day_Night "); err != nil || a != ActionDayNight {
		t.Errorf("case and space: got %v, %v", a, err)
	}
	if _, err := ParseAction("jump"); err == nil {
		t.Error("expected error for unknown action")
	}
	if s := Action(200).String(); s != "Action(200)" {
		t.Errorf("String = %q", s)
	}
}

func TestActionSet(t *testing.T) {
	s := Actions(ActionForward, ActionQuit)
	if !s.Has(ActionForward) || !s.Has(ActionQuit) {
		t.Error("missing members")
	}
	if s.Has(ActionBackward) {
		t.Error("unexpected member")
	}
	if !edgeActions.Has(ActionResetView) || edgeActions.Has(ActionLightFollow) {
		t.Error("edge actions")
	}
	var empty ActionSet
	if empty.Has(ActionForward) {
		t.Error("empty set has a member")
	}
}

func TestDefaultKeyBindings(t *testing.T) {
	b := DefaultKeyBindings()
	for a := Action(0); a < actionCount; a++ {
		if len(b[a]) == 0 {
			t.Errorf("%v has no key", a)
		}
	}
	if b[ActionQuit][0] != ebiten.KeyEscape {
		t.Errorf("quit = %v", b[ActionQuit])
	}
}

func TestKeyBindingsMerge(t *testing.T) {
	base := DefaultKeyBindings()
	merged := base.Merge(KeyBindings{ActionForward: {ebiten.KeyArrowUp, ebiten.KeyW}})
	if got := merged[ActionForward]; len(got) != 2 || got[0] != ebiten.KeyArrowUp {
		t.Errorf("forward = %v", got)
	}
	if merged[ActionBackward][0] != ebiten.KeyS {
		t.Error("untouched action changed")
	}
	if base[ActionForward][0] != ebiten.KeyW {
		t.Error("Merge modified the receiver")
	}
}

func TestMouseDelta(t *testing.T) {
	p := newInputPoller(DefaultKeyBindings())
	steps := []struct {
		x, y   int
		dx, dy float32
	}{
		{500, 400, 0, 0},  // first sample swallowed
		{510, 400, 10, 0}, // right
		{510, 380, 0, 20}, // screen up is positive
		{505, 390, -5, -10},
		{505, 390, 0, 0},
	}
	for i, st := range steps {
		dx, dy := p.mouseDelta(st.x, st.y)
		if dx != st.dx || dy != st.dy {
			t.Errorf("step %d: mouseDelta(%d, %d) = (%v, %v), want (%v, %v)", i, st.x, st.y, dx, dy, st.dx, st.dy)
		}
	}
}

func TestMouseDeltaFirstSampleFarAway(t *testing.T) {
	p := newInputPoller(nil)
	if dx, dy := p.mouseDelta(-3000, 9000); dx != 0 || dy != 0 {
		t.Errorf("first sample = (%v, %v), want no jump", dx, dy)
	}
	if p.firstMouse {
		t.Error("firstMouse still set after a sample")
	}
}
