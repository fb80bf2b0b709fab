// Park opens a window onto a small textured park: a basketball court, trees,
// a playground and a few visitors, lit by a movable spot light.
//
// Controls: WASD move, Space/X up and down, LeftShift sprint, mouse look,
// wheel zoom, F pin or release the light, K/L dim and brighten, O day or
// night, P projection, R animation, H HUD, Backspace fly home, F12
// screenshot, Esc quit.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/phanxgames/park"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "park:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("park", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "TOML configuration file")
	resources := flags.StringP("resources", "r", "", "texture directory (overrides the config)")
	script := flags.String("script", "", "JSON test script to play")
	debug := flags.Bool("debug", false, "debug logging and render stats")
	watch := flags.Bool("watch", false, "reload the configuration file when it changes")
	shots := flags.String("screenshots", "", "screenshot directory (overrides the config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := park.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *resources != "" {
		cfg.Resources.Dir = *resources
	}
	if *shots != "" {
		cfg.Screenshots.Dir = *shots
	}

	v, err := park.NewViewer(cfg, logger)
	if err != nil {
		return err
	}
	v.SetDebug(*debug)

	if *script != "" {
		runner, err := park.LoadTestScriptFile(*script)
		if err != nil {
			return err
		}
		v.SetTestRunner(runner)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *watch {
		if *configPath == "" {
			return fmt.Errorf("--watch needs --config")
		}
		reloads, err := park.WatchConfig(ctx, *configPath, logger)
		if err != nil {
			return err
		}
		v.WatchReloads(reloads)
	}

	return park.Run(v)
}
