package park

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
)

// Config is the viewer configuration. Every field has a default; a TOML
// file only needs the values it changes.
type Config struct {
	Window      WindowConfig      `toml:"window"`
	Resources   ResourceConfig    `toml:"resources"`
	Camera      CameraConfig      `toml:"camera"`
	Light       LightConfig       `toml:"light"`
	Controls    ControlsConfig    `toml:"controls"`
	Render      RenderConfig      `toml:"render"`
	Screenshots ScreenshotsConfig `toml:"screenshots"`
}

// WindowConfig sizes and titles the window and sets the update rate.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	TPS    int    `toml:"tps"`
}

// ResourceConfig locates the textures.
type ResourceConfig struct {
	// Dir holds the texture files.
	Dir string `toml:"dir"`
	// MaxTextureSize downsizes larger textures. Zero disables resizing.
	MaxTextureSize int `toml:"max_texture_size"`
}

// CameraConfig sets the start pose, movement and bounds of the camera.
type CameraConfig struct {
	Home        [3]float32 `toml:"home"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Speed       float32    `toml:"speed"`
	Sensitivity float32    `toml:"sensitivity"`
	Zoom        float32    `toml:"zoom"`
	FlySeconds  float32    `toml:"fly_seconds"`
	// Bounded clamps the camera into [BoundsMin, BoundsMax].
	Bounded   bool       `toml:"bounded"`
	BoundsMin [3]float32 `toml:"bounds_min"`
	BoundsMax [3]float32 `toml:"bounds_max"`
}

// LightConfig sets the light model and its starting values.
type LightConfig struct {
	// Mode is "spot" or "point".
	Mode        string      `toml:"mode"`
	Ambient     float32     `toml:"ambient"`
	Diffuse     float32     `toml:"diffuse"`
	Specular    float32     `toml:"specular"`
	CutOff      float32     `toml:"cutoff"`
	OuterCutOff float32     `toml:"outer_cutoff"`
	Day         Attenuation `toml:"day"`
	Night       Attenuation `toml:"night"`
	StartDay    bool        `toml:"start_day"`
}

// ControlsConfig tunes the keyboard controls and their bindings.
type ControlsConfig struct {
	BaseSpeed      float32 `toml:"base_speed"`
	DebounceFrames int     `toml:"debounce_frames"`
	AmbientStep    float32 `toml:"ambient_step"`
	MinAmbient     float32 `toml:"min_ambient"`
	MaxAmbient     float32 `toml:"max_ambient"`
	// Keys overrides bindings by action name, e.g. forward = ["W", "ArrowUp"].
	Keys map[string][]ebiten.Key `toml:"keys"`
}

// RenderConfig tunes the renderer and the HUD.
type RenderConfig struct {
	TileSize      float32 `toml:"tile_size"`
	StatsInterval int     `toml:"stats_interval"`
	HUDFontSize   float64 `toml:"hud_font_size"`
	ShowHUD       bool    `toml:"show_hud"`
	Animate       bool    `toml:"animate"`
}

// ScreenshotsConfig sets where screenshots are written.
type ScreenshotsConfig struct {
	Dir string `toml:"dir"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1000, Height: 800, Title: "Park", TPS: 60},
		Resources: ResourceConfig{
			Dir:            filepath.Join("resources", "textures"),
			MaxTextureSize: 1024,
		},
		Camera: CameraConfig{
			Home:        DefaultHome,
			Yaw:         DefaultYaw,
			Pitch:       DefaultPitch,
			Speed:       DefaultSpeed,
			Sensitivity: DefaultSensitivity,
			Zoom:        DefaultZoom,
			FlySeconds:  DefaultFlySeconds,
			Bounded:     true,
			BoundsMin:   DefaultBounds.Min,
			BoundsMax:   DefaultBounds.Max,
		},
		Light: LightConfig{
			Mode:        LightSpot.String(),
			Ambient:     1,
			Diffuse:     3.5,
			Specular:    1,
			CutOff:      12.5,
			OuterCutOff: 17.5,
			Day:         AttenuationDay,
			Night:       AttenuationNight,
		},
		Controls: ControlsConfig{
			BaseSpeed:      DefaultBaseSpeed,
			DebounceFrames: DefaultDebounceFrames,
			AmbientStep:    DefaultAmbientStep,
			MinAmbient:     DefaultMinAmbient,
			MaxAmbient:     DefaultMaxAmbient,
		},
		Render: RenderConfig{
			TileSize:      DefaultTileSize,
			StatsInterval: 60,
			HUDFontSize:   14,
			ShowHUD:       true,
			Animate:       true,
		},
		Screenshots: ScreenshotsConfig{Dir: "screenshots"},
	}
}

// ParseConfig decodes TOML over the defaults. Unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return cfg, fmt.Errorf("parse config: %s", sme.String())
		}
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads path. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks values that would make the viewer misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps %d must be positive", c.Window.TPS))
	}
	if _, err := parseLightMode(c.Light.Mode); err != nil {
		errs = append(errs, err)
	}
	if c.Light.OuterCutOff < c.Light.CutOff {
		errs = append(errs, fmt.Errorf("light outer_cutoff %.1f is smaller than cutoff %.1f", c.Light.OuterCutOff, c.Light.CutOff))
	}
	if c.Controls.MinAmbient > c.Controls.MaxAmbient {
		errs = append(errs, fmt.Errorf("controls min_ambient %.1f is above max_ambient %.1f", c.Controls.MinAmbient, c.Controls.MaxAmbient))
	}
	if c.Render.TileSize < 0 {
		errs = append(errs, fmt.Errorf("render tile_size %.2f must not be negative", c.Render.TileSize))
	}
	if _, err := c.KeyBindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyBindings returns the default bindings with the configured overrides.
func (c Config) KeyBindings() (KeyBindings, error) {
	over := make(KeyBindings, len(c.Controls.Keys))
	for name, keys := range c.Controls.Keys {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("controls keys: %w", err)
		}
		over[a] = keys
	}
	return DefaultKeyBindings().Merge(over), nil
}

func parseLightMode(s string) (LightMode, error) {
	switch s {
	case "", "spot":
		return LightSpot, nil
	case "point":
		return LightPoint, nil
	}
	return LightSpot, fmt.Errorf("light mode %q is not spot or point", s)
}

// NewState builds the initial viewer state from the configuration.
func (c Config) NewState() *State {
	st := NewState()
	home := mgl32.Vec3(c.Camera.Home)
	st.Home = Pose{Position: home, Yaw: c.Camera.Yaw, Pitch: c.Camera.Pitch}
	cam := st.Camera
	cam.Position = home
	cam.Yaw, cam.Pitch = c.Camera.Yaw, c.Camera.Pitch
	cam.Zoom = clampf(c.Camera.Zoom, minZoom, maxZoom)
	cam.updateVectors()
	st.Light.Day = c.Light.StartDay
	st.Light.Ambient = c.Light.Ambient
	st.Animating = c.Render.Animate
	st.ShowHUD = c.Render.ShowHUD
	c.Apply(st)
	return st
}

// Apply copies the tunable values into a running state. Position, toggles
// and the ambient level the user has reached are left alone.
func (c Config) Apply(st *State) {
	cam := st.Camera
	cam.MovementSpeed = c.Camera.Speed
	cam.MouseSensitivity = c.Camera.Sensitivity
	if c.Camera.Bounded {
		cam.SetBounds(Box{Min: mgl32.Vec3(c.Camera.BoundsMin), Max: mgl32.Vec3(c.Camera.BoundsMax)})
	} else {
		cam.ClearBounds()
	}
	st.FlySeconds = c.Camera.FlySeconds

	l := st.Light
	l.Mode, _ = parseLightMode(c.Light.Mode)
	l.Diffuse = c.Light.Diffuse
	l.Specular = c.Light.Specular
	l.CutOff = c.Light.CutOff
	l.OuterCutOff = c.Light.OuterCutOff
	l.DayAt = c.Light.Day
	l.Night = c.Light.Night

	st.BaseSpeed = c.Controls.BaseSpeed
	st.DebounceFrames = c.Controls.DebounceFrames
	st.AmbientStep = c.Controls.AmbientStep
	st.MinAmbient = c.Controls.MinAmbient
	st.MaxAmbient = c.Controls.MaxAmbient
}

// WatchConfig reloads path whenever it changes and sends each valid result on
// the returned channel. Invalid files are logged and skipped. The watcher
// stops and the channel closes when ctx is done.
func WatchConfig(ctx context.Context, path string, logger *slog.Logger) (<-chan Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				cfg, err := LoadConfig(path)
				if err != nil {
					logger.Warn("config reload failed", "path", path, "err", err)
					continue
				}
				logger.Info("config reloaded", "path", path)
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher", "err", err)
			}
		}
	}()
	return out, nil
}
