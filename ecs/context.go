package ecs

import (
	"math"
	"math/rand"
)

// Context carries the frame counter, the seeded RNG and the world constants
// every system reads. It replaces ambient globals.
type Context struct {
	Frame uint64
	FPS   int

	Gravity    float64
	MaxVel     float64
	BlockSize  float64
	LevelRows  int
	FallMargin float64

	ViewportW, ViewportH float64

	Rand *rand.Rand
}

// DefaultContext returns the stock world constants seeded with seed.
func DefaultContext(seed int64) Context {
	return Context{
		FPS:        60,
		Gravity:    1,
		MaxVel:     20,
		BlockSize:  50,
		LevelRows:  12,
		FallMargin: 500,
		ViewportW:  1200,
		ViewportH:  800,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// FloorY is the y past which an actor is considered to have fallen out of
// the world.
func (c *Context) FloorY() float64 {
	return float64(c.LevelRows)*c.BlockSize + c.FallMargin
}

// MSToFrames converts a millisecond delay into whole frames, rounding up.
func (c *Context) MSToFrames(ms float64) int {
	fps := c.FPS
	if fps <= 0 {
		fps = 60
	}
	if ms <= 0 {
		return 0
	}
	return int(math.Ceil(ms * float64(fps) / 1000))
}

// Float returns a value in [0, 1). A context without an RNG yields 0.5.
func (c *Context) Float() float64 {
	if c == nil || c.Rand == nil {
		return 0.5
	}
	return c.Rand.Float64()
}
