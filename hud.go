package park

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// hudRefresh is how often, in seconds, the frame rate line is rebuilt.
const hudRefresh = 0.5

// hud draws the status overlay in the top-left corner.
type hud struct {
	face *text.GoTextFace
	lh   float64

	elapsed float32
	rate    string
}

// newHUD loads the Go Regular face at size. If the font cannot be parsed the
// HUD falls back to the debug font.
func newHUD(size float64) (*hud, error) {
	h := &hud{rate: "FPS: -- TPS: --"}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return h, fmt.Errorf("load hud font: %w", err)
	}
	h.face = &text.GoTextFace{Source: source, Size: size}
	m := h.face.Metrics()
	h.lh = m.HAscent + m.HDescent + m.HLineGap
	return h, nil
}

// update refreshes the frame rate line every hudRefresh seconds.
func (h *hud) update(dt float32) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.rate = fmt.Sprintf("FPS: %.1f TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// lines returns the text shown for st.
func (h *hud) lines(st *State, stats RenderStats) []string {
	cam := st.Camera
	light := "follow"
	if !st.Light.Follow {
		light = "fixed"
	}
	period := "night"
	if st.Light.Day {
		period = "day"
	}
	anim := "playing"
	if !st.Animating {
		anim = "paused"
	}
	return []string{
		h.rate,
		fmt.Sprintf("pos %.2f %.2f %.2f  yaw %.1f pitch %.1f  fov %.0f",
			cam.Position[0], cam.Position[1], cam.Position[2], cam.Yaw, cam.Pitch, cam.Zoom),
		fmt.Sprintf("light %s %s  ambient %.1f  %s", st.Light.Mode, light, st.Light.Ambient, period),
		fmt.Sprintf("%s  animation %s", st.Projection, anim),
		fmt.Sprintf("triangles %d  draw calls %d", stats.Triangles(), stats.Batches()),
	}
}

// draw renders the overlay onto screen.
func (h *hud) draw(screen *ebiten.Image, st *State, stats RenderStats) {
	var buf bytes.Buffer
	for i, l := range h.lines(st, stats) {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(l)
	}
	if h.face == nil {
		ebitenutil.DebugPrint(screen, buf.String())
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 6)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = h.lh
	text.Draw(screen, buf.String(), h.face, op)
}
