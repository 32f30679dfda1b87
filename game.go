package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/skirmish/prefabs"
	"github.com/milk9111/skirmish/session"
)

type Game struct {
	session  *session.Session
	watcher  *prefabs.Watcher
	input    *Input
	renderer *Renderer
	paused   bool
	debug    bool
}

func NewGame(s *session.Session, watcher *prefabs.Watcher, debug, auto bool) *Game {
	renderer := NewRenderer(s, debug)
	input := NewInput(renderer.Camera())
	if auto {
		s.SetProtagonistHook(session.Autopilot())
	} else {
		s.SetProtagonistHook(input.Hook())
	}
	return &Game{
		session:  s,
		watcher:  watcher,
		input:    input,
		renderer: renderer,
		debug:    debug,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.renderer.SetDebug(g.debug)
	}
	g.session.Apply(g.watcher.Poll())
	if g.paused {
		return nil
	}

	g.input.Update()
	g.session.Step()
	g.renderer.Follow()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.paused)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	ctx := g.session.World.Context()
	return int(ctx.ViewportW), int(ctx.ViewportH)
}
