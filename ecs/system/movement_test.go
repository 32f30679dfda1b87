package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

func TestSpeedCap(t *testing.T) {
	cases := []struct {
		name      string
		weapon    component.WeaponID
		movingDir int
		dir       int
		want      float64
	}{
		{"ranged_with_facing", "pistol", 1, 1, 4},
		{"ranged_against_facing", "pistol", -1, 1, 2},
		{"ranged_idle_halves", "pistol", 0, 1, 2},
		{"ranged_left_with_facing", "pistol", -1, -1, 4},
		{"melee_no_weight", "knife", 1, 1, 5},
		{"melee_against_facing", "knife", 1, -1, 2.5},
		{"unknown_is_unarmed", "missing", 1, 1, 5},
	}

	w := newWorld()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newAdversary(0, 0, c.weapon)
			a.MovingDir = c.movingDir
			a.Dir = c.dir
			assert.Equal(t, c.want, SpeedCap(a, w.Weapon(c.weapon)))
		})
	}
}

func TestMoveXClampsAndAppliesKnockback(t *testing.T) {
	w := newWorld()
	a := newAdversary(100, 0, "pistol")
	a.MovingDir = 1
	a.XVel = 100
	a.Knockback = 3

	MoveX(a, w.Weapon("pistol"))

	// 100.5 after acceleration, 90.45 after friction, clamped to 4
	assert.Equal(t, 1.0, a.XVel)
	assert.Equal(t, 101.0, a.X)
	assert.InDelta(t, (math.Pi/32)/5, a.RotateTo, eps)
}

func TestMoveXIdleRelaxesLean(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "pistol")
	a.RotateTo = 1
	MoveX(a, w.Weapon("pistol"))
	assert.InDelta(t, 0.8, a.RotateTo, eps)
	assert.Equal(t, 0.0, a.X)
}

func TestFallDeathBoundary(t *testing.T) {
	w := newWorld()
	ctx := w.Context()
	floor := ctx.FloorY()
	require.Equal(t, 12*50.0+500, floor)

	a := newAdversary(0, floor, "pistol")
	assert.False(t, MoveY(a, ctx), "exactly at the floor is still alive")
	assert.False(t, a.Dead)
	require.Greater(t, a.Y, floor)

	assert.True(t, MoveY(a, ctx))
	assert.True(t, a.Dead)
}

func TestGravityRespectsTerminalVelocity(t *testing.T) {
	ctx := ecs.DefaultContext(1)
	cases := []struct {
		name string
		yVel float64
		want float64
	}{
		{"rest", 0, 1},
		{"just_below", 18.5, 19.5},
		{"would_reach", 19, 19},
		{"over", 25, 20},
		{"jump_clamped", -30, -12},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := newAdversary(0, 0, "pistol")
			a.YVel = c.yVel
			MoveY(a, &ctx)
			assert.Equal(t, c.want, a.YVel)
			assert.Equal(t, c.want, a.Y)
		})
	}
}

func TestJumpSubtractsWeight(t *testing.T) {
	w := newWorld()
	a := newAdversary(0, 0, "smg")
	a.CanJump = true
	Jump(a, w.Weapon("smg"))
	assert.Equal(t, -10.0, a.YVel)
	assert.False(t, a.CanJump)

	a.CanJump = true
	Jump(a, w.Weapon("knife"))
	assert.Equal(t, -12.0, a.YVel)
}

func TestTerrainLandsAndPits(t *testing.T) {
	ground := FlatGround{Y: 400, Gaps: []Gap{{From: 500, To: 700}}}

	a := newAdversary(0, 325, "pistol")
	a.YVel = 10
	Ground(a, ground)
	assert.True(t, a.CanJump)
	assert.Equal(t, 320.0, a.Y)
	assert.Equal(t, 0.0, a.YVel)

	over := newAdversary(580, 325, "pistol")
	over.YVel = 10
	Ground(over, ground)
	assert.False(t, over.CanJump)
	assert.Equal(t, 325.0, over.Y)

	rising := newAdversary(0, 315, "pistol")
	rising.YVel = -5
	Ground(rising, ground)
	assert.False(t, rising.CanJump)
}

func TestActorFallsThroughPitAndDies(t *testing.T) {
	w := newWorld()
	a := newAdversary(580, 320, "pistol")
	e := w.AddActor(a)
	s := ecs.NewScheduler(NewMovementSystem(), NewTerrainSystem(FlatGround{Y: 400, Gaps: []Gap{{From: 500, To: 700}}}))

	died := false
	for i := 0; i < 200 && !died; i++ {
		s.Step(w)
		died = countCues(w.Cues(), ecs.CueDeath) == 1
	}
	require.True(t, died)
	assert.True(t, a.Dead)
	assert.True(t, w.IsAlive(e), "removal is left to the caller")
}
