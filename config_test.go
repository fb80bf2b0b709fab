package park

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height)
	assert.Equal(t, "spot", cfg.Light.Mode)
	assert.Equal(t, [3]float32(DefaultHome), cfg.Camera.Home)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestParseConfigOverrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
[window]
width = 640
title = "Night walk"

[camera]
home = [1.0, 2.0, 4.0]
bounded = false

[light]
mode = "point"
start_day = true

[light.night]
constant = 1.0
linear = 0.09
quadratic = 0.032

[controls]
debounce_frames = 5

[controls.keys]
forward = ["ArrowUp", "W"]

[render]
tile_size = 0.5
show_hud = false
`))
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 800, cfg.Window.Height, "unset values keep defaults")
	assert.Equal(t, "Night walk", cfg.Window.Title)
	assert.Equal(t, [3]float32{1, 2, 4}, cfg.Camera.Home)
	assert.False(t, cfg.Camera.Bounded)
	assert.Equal(t, "point", cfg.Light.Mode)
	assert.InDelta(t, 0.09, cfg.Light.Night.Linear, 1e-6)
	assert.Equal(t, AttenuationDay, cfg.Light.Day)
	assert.Equal(t, 5, cfg.Controls.DebounceFrames)
	assert.Equal(t, float32(0.5), cfg.Render.TileSize)

	b, err := cfg.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, b[ActionForward])
	assert.Equal(t, []ebiten.Key{ebiten.KeyEscape}, b[ActionQuit])
}

func TestParseConfigUnknownField(t *testing.T) {
	_, err := ParseConfig([]byte("[window]\nwidht = 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "widht")
}

func TestParseConfigSyntaxError(t *testing.T) {
	_, err := ParseConfig([]byte("[window\n"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"size", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"tps", func(c *Config) { c.Window.TPS = -1 }, "tps"},
		{"mode", func(c *Config) { c.Light.Mode = "flood" }, "light mode"},
		{"cutoff", func(c *Config) { c.Light.OuterCutOff = 5 }, "outer_cutoff"},
		{"ambient", func(c *Config) { c.Controls.MinAmbient = 10 }, "min_ambient"},
		{"tile", func(c *Config) { c.Render.TileSize = -1 }, "tile_size"},
		{"keys", func(c *Config) { c.Controls.Keys = map[string][]ebiten.Key{"fly": {ebiten.KeyF}} }, "unknown action"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestConfigValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TPS = 0
	cfg.Render.TileSize = -2
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tps")
	assert.Contains(t, err.Error(), "tile_size")
}

func TestConfigNewState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Camera.Home = [3]float32{2, 3, 4}
	cfg.Camera.Yaw = 0
	cfg.Camera.Zoom = 90
	cfg.Light.StartDay = true
	cfg.Light.Ambient = 3
	cfg.Light.Mode = "point"
	cfg.Render.Animate = false
	cfg.Controls.BaseSpeed = 3

	st := cfg.NewState()
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, st.Camera.Position)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, st.Home.Position)
	assert.True(t, vecNear(mgl32.Vec3{1, 0, 0}, st.Camera.Front(), epsilon))
	assert.Equal(t, maxZoom, st.Camera.Zoom)
	assert.True(t, st.Light.Day)
	assert.Equal(t, float32(3), st.Light.Ambient)
	assert.Equal(t, LightPoint, st.Light.Mode)
	assert.False(t, st.Animating)
	assert.Equal(t, float32(3), st.BaseSpeed)
}

func TestConfigStartingAmbientFromTOML(t *testing.T) {
	cfg, err := ParseConfig([]byte("[light]\nambient = 3\n"))
	require.NoError(t, err)
	assert.Equal(t, float32(3), cfg.NewState().Light.Ambient)
}

func TestConfigApplyKeepsRuntimeState(t *testing.T) {
	st := DefaultConfig().NewState()
	st.Camera.Position = mgl32.Vec3{5, 2, 5}
	st.Light.Ambient = 3
	st.Light.Day = true

	cfg := DefaultConfig()
	cfg.Light.Ambient = 0.5
	cfg.Camera.Speed = 10
	cfg.Camera.Bounded = false
	cfg.Light.Diffuse = 1
	cfg.Apply(st)

	assert.Equal(t, float32(10), st.Camera.MovementSpeed)
	assert.False(t, st.Camera.BoundsEnabled)
	assert.Equal(t, float32(1), st.Light.Diffuse)
	assert.Equal(t, mgl32.Vec3{5, 2, 5}, st.Camera.Position)
	assert.Equal(t, float32(3), st.Light.Ambient)
	assert.True(t, st.Light.Day)
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Title = "Round trip"
	cfg.Light.Mode = "point"
	cfg.Camera.Home = [3]float32{1, 1, 1}

	data, err := cfg.Marshal()
	require.NoError(t, err)
	got, err := ParseConfig(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Window, got.Window)
	assert.Equal(t, cfg.Light, got.Light)
	assert.Equal(t, cfg.Camera, got.Camera)
	assert.Equal(t, cfg.Render, got.Render)
}

func TestWatchConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "park.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 800\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := WatchConfig(ctx, path, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[window]\nwidth = 1234\n"), 0o644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-ch:
			// A write may arrive as several events; wait for the full file.
			if cfg.Window.Width != 1234 {
				continue
			}
			cancel()
			for range ch {
			}
			return
		case <-timeout:
			t.Fatal("no reload received")
		}
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	_, err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "gone", "park.toml"), nil)
	assert.Error(t, err)
}
