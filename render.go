package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/skirmish/common"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
	"github.com/milk9111/skirmish/session"
)

const cameraRate = 10

var zoneColors = [component.ZoneCount]color.Color{
	component.ZoneHead: colornames.Red,
	component.ZoneBody: colornames.Lime,
	component.ZoneLegs: colornames.Deepskyblue,
}

// Camera is the top-left corner of the view in world space.
type Camera struct {
	X, Y float64
	W, H float64
}

func (c *Camera) ToWorld(sx, sy float64) (float64, float64) {
	return sx + c.X, sy + c.Y
}

func (c *Camera) ToScreen(x, y float64) (float32, float32) {
	return float32(x - c.X), float32(y - c.Y)
}

// Renderer draws the simulation as flat shapes. Rendering only reads world
// state.
type Renderer struct {
	session *session.Session
	camera  *Camera
	colors  map[ecs.Entity]color.Color
	debug   bool
}

func NewRenderer(s *session.Session, debug bool) *Renderer {
	ctx := s.World.Context()
	r := &Renderer{
		session: s,
		camera:  &Camera{W: ctx.ViewportW, H: ctx.ViewportH},
		colors:  map[ecs.Entity]color.Color{},
		debug:   debug,
	}
	if c := s.Actors.Protagonist.Color; c != nil && c.Color != nil {
		r.colors[s.Roster.Protagonist] = c.Color
	}
	for _, sp := range s.Roster.Adversaries {
		a, ok := s.World.Actor(sp.Entity)
		if !ok {
			continue
		}
		if spec, ok := s.Actors.Adversaries[a.Adversary.Archetype]; ok && spec.Color != nil && spec.Color.Color != nil {
			r.colors[sp.Entity] = spec.Color.Color
		}
	}
	r.Follow()
	return r
}

func (r *Renderer) Camera() *Camera { return r.camera }

func (r *Renderer) SetDebug(debug bool) { r.debug = debug }

// Follow eases the camera toward the protagonist.
func (r *Renderer) Follow() {
	hero, ok := r.session.Protagonist()
	if !ok {
		return
	}
	common.Approach(&r.camera.X, hero.CenterX()-r.camera.W/2, cameraRate)
	common.Approach(&r.camera.Y, hero.CenterY()-r.camera.H*0.6, cameraRate)
}

func (r *Renderer) Draw(screen *ebiten.Image, paused bool) {
	screen.Fill(colornames.Whitesmoke)
	r.drawGround(screen)

	w := r.session.World
	w.ForEachParticle(func(_ ecs.Entity, p *component.Particle) {
		r.drawParticle(screen, p)
	})
	w.ForEachActor(func(e ecs.Entity, a *component.Actor) {
		r.drawActor(screen, e, a)
	})
	w.ForEachProjectile(func(_ ecs.Entity, p *component.Projectile) {
		x0, y0 := r.camera.ToScreen(p.X, p.Y)
		x1, y1 := r.camera.ToScreen(p.X-math.Cos(p.R)*p.Speed, p.Y-math.Sin(p.R)*p.Speed)
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colornames.Black, true)
	})

	ebitenutil.DebugPrint(screen, r.hud(paused))
}

func (r *Renderer) drawGround(screen *ebiten.Image) {
	ground := r.session.Roster.Terrain
	_, top := r.camera.ToScreen(0, ground.Y)
	vector.FillRect(screen, 0, top, float32(r.camera.W), float32(r.camera.H)-top, colornames.Dimgray, false)
	for _, gap := range ground.Gaps {
		x0, _ := r.camera.ToScreen(gap.From, 0)
		x1, _ := r.camera.ToScreen(gap.To, 0)
		vector.FillRect(screen, x0, top, x1-x0, float32(r.camera.H)-top, colornames.Whitesmoke, false)
	}
}

func (r *Renderer) drawActor(screen *ebiten.Image, e ecs.Entity, a *component.Actor) {
	fill, ok := r.colors[e]
	if !ok {
		fill = colornames.Slategray
	}
	if a.Dead {
		fill = colornames.Darkgray
	}
	r.fillBB(screen, system.Bounds(a), fill)
	if a.Adversary != nil && a.Adversary.HasSurrendered {
		r.strokeBB(screen, system.Bounds(a), colornames.Gold)
	}

	if r.debug {
		for z, bb := range system.Hitboxes(a) {
			r.strokeBB(screen, bb, zoneColors[z])
		}
	}
	if a.Dead {
		return
	}

	weapon := r.session.World.Weapon(a.Weapon)
	cx, cy := r.camera.ToScreen(a.CenterX(), a.CenterY())
	var tip cp.Vector
	if weapon.IsMelee() {
		tip = cp.Vector{X: a.CenterX(), Y: a.CenterY()}.Add(cp.ForAngle(a.WeaponRotationTo).Mult(weapon.Melee.Length))
	} else {
		tip = system.GunTip(a, weapon)
	}
	tx, ty := r.camera.ToScreen(tip.X, tip.Y)
	vector.StrokeLine(screen, cx, cy, tx, ty, 4, colornames.Black, true)
}

func (r *Renderer) drawParticle(screen *ebiten.Image, p *component.Particle) {
	x, y := r.camera.ToScreen(p.X, p.Y)
	switch p.Kind {
	case component.ParticleShell:
		vector.FillRect(screen, x, y, float32(p.Size), float32(p.Size)/2, colornames.Goldenrod, false)
	case component.ParticleMuzzleFlash:
		x1, y1 := r.camera.ToScreen(p.X+math.Cos(p.R)*p.Size, p.Y+math.Sin(p.R)*p.Size)
		vector.StrokeLine(screen, x, y, x1, y1, 3, colornames.Orange, true)
	case component.ParticleImpact:
		total := p.MaxLife
		if total <= 0 {
			total = p.Life
		}
		size := float32(6 * float64(p.Life) / float64(max(total, 1)))
		vector.FillRect(screen, x-size/2, y-size/2, size, size, colornames.Firebrick, false)
	}
}

func (r *Renderer) fillBB(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	x, y := r.camera.ToScreen(bb.L, bb.B)
	vector.FillRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
}

func (r *Renderer) strokeBB(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	x, y := r.camera.ToScreen(bb.L, bb.B)
	vector.StrokeRect(screen, x, y, float32(bb.R-bb.L), float32(bb.T-bb.B), 1, clr, false)
}

func (r *Renderer) hud(paused bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "level: %s  frame: %d  TPS: %.1f\n", r.session.Level.Name, r.session.World.Frame(), ebiten.ActualTPS())

	if hero, ok := r.session.Protagonist(); ok {
		for z := component.Zone(0); z < component.ZoneCount; z++ {
			fmt.Fprintf(&b, "%s: %.0f/%.0f  ", z, math.Max(hero.Health[z], 0), hero.MaxHealth[z])
		}
		b.WriteString("\n")
		for i, slot := range hero.Slots {
			marker := " "
			if i == hero.CurrentSlot {
				marker = ">"
			}
			ammo := "-"
			if w := r.session.World.Weapon(slot.Weapon); !w.IsMelee() && !slot.Infinite {
				ammo = fmt.Sprint(slot.Ammo)
			}
			fmt.Fprintf(&b, "%s%d %s [%s]\n", marker, i+1, slot.Weapon, ammo)
		}
		if hero.Dead {
			b.WriteString("DEAD\n")
		}
	}

	sum := r.session.Summary()
	fmt.Fprintf(&b, "adversaries: %d alive, %d surrendered, %d down\n", sum.Alive, sum.Surrendered, sum.Dead)
	if paused {
		b.WriteString("PAUSED (P to resume)\n")
	}
	return b.String()
}
