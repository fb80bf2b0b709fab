package park

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer is the ebiten.Game that runs the park: it polls input, advances the
// State and the scene and draws each frame.
type Viewer struct {
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	cfg    Config
	logger *slog.Logger

	state    *State
	scene    *Scene
	renderer *Renderer
	textures *TextureCache
	poller   *inputPoller
	hud      *hud

	reload <-chan Config

	injectQueue     []FrameInput
	screenshotQueue []string
	testRunner      *TestRunner

	quit bool
	dt   float32
}

// NewViewer builds the park and loads its textures. Missing textures are
// logged and drawn black; only an invalid configuration is an error.
func NewViewer(cfg Config, logger *slog.Logger) (*Viewer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new viewer: %w", err)
	}
	bindings, err := cfg.KeyBindings()
	if err != nil {
		return nil, fmt.Errorf("new viewer: %w", err)
	}

	scene := NewScene()
	BuildPark(scene)

	textures := NewTextureCache(cfg.Resources.Dir, cfg.Resources.MaxTextureSize, logger)
	names := scene.TextureNames()
	if err := textures.Load(names...); err != nil {
		logger.Warn("textures missing, drawing them black", "dir", cfg.Resources.Dir)
	}
	logger.Info("park built", "parts", scene.Root().PartCount(), "textures", len(names))

	h, err := newHUD(cfg.Render.HUDFontSize)
	if err != nil {
		logger.Warn("hud font unavailable, using debug font", "err", err)
	}

	v := &Viewer{
		ScreenshotDir: cfg.Screenshots.Dir,
		cfg:           cfg,
		logger:        logger,
		state:         cfg.NewState(),
		scene:         scene,
		renderer:      NewRenderer(logger),
		textures:      textures,
		poller:        newInputPoller(bindings),
		hud:           h,
		dt:            1 / float32(cfg.Window.TPS),
	}
	v.applyRenderConfig()
	return v, nil
}

// State returns the live viewer state.
func (v *Viewer) State() *State { return v.state }

// Scene returns the park scene.
func (v *Viewer) Scene() *Scene { return v.scene }

// SetDebug turns per-frame render stats logging on or off.
func (v *Viewer) SetDebug(on bool) {
	v.renderer.Debug = on
}

// WatchReloads makes the viewer apply every Config received on ch at the
// start of the next Update.
func (v *Viewer) WatchReloads(ch <-chan Config) {
	v.reload = ch
}

// Update implements ebiten.Game.
func (v *Viewer) Update() error {
	v.applyReloads()
	if v.testRunner != nil {
		v.testRunner.step(v)
	}

	in := v.nextInput()
	if v.state.Update(in, v.dt) || v.quit {
		return ebiten.Termination
	}
	if in.Actions.Has(ActionScreenshot) {
		v.Screenshot("manual")
	}

	v.scene.syncLamp(v.state.Light)
	v.scene.Update(v.dt, v.state.Animating)
	v.hud.update(v.dt)
	return nil
}

// Draw implements ebiten.Game.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.renderer.Draw(screen, v.scene, v.state, v.textures)
	if v.state.ShowHUD {
		v.hud.draw(screen, v.state, v.renderer.Stats())
	}
	v.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The park is rendered at the window size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// applyReloads drains pending configuration reloads.
func (v *Viewer) applyReloads() {
	for {
		select {
		case cfg, ok := <-v.reload:
			if !ok {
				v.reload = nil
				return
			}
			v.applyConfig(cfg)
		default:
			return
		}
	}
}

// applyConfig switches to cfg without rebuilding the park or reloading
// textures.
func (v *Viewer) applyConfig(cfg Config) {
	bindings, err := cfg.KeyBindings()
	if err != nil {
		v.logger.Warn("config reload ignored", "err", err)
		return
	}
	v.cfg = cfg
	v.poller.bindings = bindings
	cfg.Apply(v.state)
	v.ScreenshotDir = cfg.Screenshots.Dir
	v.applyRenderConfig()
}

func (v *Viewer) applyRenderConfig() {
	v.renderer.TileSize = v.cfg.Render.TileSize
	v.renderer.StatsInterval = v.cfg.Render.StatsInterval
}

// Run opens the window and blocks until the viewer quits.
func Run(v *Viewer) error {
	w := v.cfg.Window
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	err := ebiten.RunGame(v)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
