package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/session"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging, hitbox overlay and prefab hot reload")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "", "level name in prefabs/levels.yaml (default from world.yaml)")
	seed := flag.Int64("seed", 1, "random seed")
	auto := flag.Bool("auto", false, "let the autopilot drive the protagonist")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s, err := session.New(session.Options{Level: *levelName, Seed: *seed, Logger: logger})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *debug {
		watcher, err = prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			logger.Warn("prefab hot reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ctx := s.World.Context()
	ebiten.SetTPS(ctx.FPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(ctx.ViewportW), int(ctx.ViewportH))
	ebiten.SetWindowTitle("skirmish")

	game := NewGame(s, watcher, *debug, *auto)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
