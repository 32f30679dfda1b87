package common

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestTweenConvergesWithoutOvershoot(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		current := rapid.Float64Range(-1e4, 1e4).Draw(t, "current")
		target := rapid.Float64Range(-1e4, 1e4).Draw(t, "target")
		rate := rapid.Float64Range(1, 100).Draw(t, "rate")
		steps := rapid.IntRange(1, 50).Draw(t, "steps")

		side := Sign(target - current)
		for i := 0; i < steps; i++ {
			before := math.Abs(target - current)
			current += Tween(current, target, rate)
			after := math.Abs(target - current)

			if before > 1e-9 && after >= before {
				t.Fatalf("step %d: gap did not shrink: before=%v after=%v", i, before, after)
			}
			if before <= 1e-9 && after > before {
				t.Fatalf("step %d: gap grew from %v to %v", i, before, after)
			}
			if s := Sign(target - current); after > 1e-9 && s != side {
				t.Fatalf("step %d: overshot target %v (current %v)", i, target, current)
			}
		}
	})
}

func TestTweenEdgeCases(t *testing.T) {
	cases := []struct {
		name            string
		current, target float64
		rate            float64
		want            float64
	}{
		{"at_target", 3, 3, 5, 0},
		{"rate_five", 0, 10, 5, 2},
		{"negative_gap", 10, 0, 10, -1},
		{"rate_one_snaps", 4, 9, 1, 5},
		{"rate_below_one_snaps", 4, 9, 0.25, 5},
		{"zero_rate_snaps", 4, 9, 0, 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Tween(c.current, c.target, c.rate); got != c.want {
				t.Fatalf("Tween(%v, %v, %v) = %v, want %v", c.current, c.target, c.rate, got, c.want)
			}
		})
	}
}

func TestApproach(t *testing.T) {
	v := 0.0
	Approach(&v, 10, 5)
	if v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	Approach(nil, 1, 1)
}

func TestNormalizeAngleRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-100, 100).Draw(t, "a")
		n := NormalizeAngle(a)
		if n <= -math.Pi || n > math.Pi {
			t.Fatalf("NormalizeAngle(%v) = %v outside (-π, π]", a, n)
		}
		if d := math.Abs(math.Remainder(n-a, 2*math.Pi)); d > 1e-9 {
			t.Fatalf("NormalizeAngle(%v) = %v is not congruent (off by %v)", a, n, d)
		}
	})
}

func TestNormalizeAngleBoundaries(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{3 * math.Pi / 2, -math.Pi / 2},
	}
	for _, c := range cases {
		if got := NormalizeAngle(c.in); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrappedDeltaShortestPath(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		from := rapid.Float64Range(-20, 20).Draw(t, "from")
		to := rapid.Float64Range(-20, 20).Draw(t, "to")
		d := WrappedDelta(from, to)
		if d < -math.Pi-1e-12 || d > math.Pi+1e-12 {
			t.Fatalf("WrappedDelta(%v, %v) = %v outside [-π, π]", from, to, d)
		}
		if r := math.Remainder(d-(from-to), 2*math.Pi); math.Abs(r) > 1e-9 {
			t.Fatalf("WrappedDelta(%v, %v) = %v is not congruent to from-to", from, to, d)
		}
	})

	// both operands reduce to opposite sides of the fold
	cases := []struct{ from, to float64 }{
		{5.9375, -3.5},
		{-5.9375, 3.5},
		{6.2, -6.2},
	}
	for _, c := range cases {
		d := WrappedDelta(c.from, c.to)
		if d <= -math.Pi || d > math.Pi {
			t.Errorf("WrappedDelta(%v, %v) = %v outside (-π, π]", c.from, c.to, d)
		}
	}

	// crossing the ±π seam must not go the long way around
	d := WrappedDelta(-math.Pi+0.1, math.Pi-0.1)
	if math.Abs(d-0.2) > 1e-9 {
		t.Fatalf("expected 0.2 across the seam, got %v", d)
	}
}

func TestDist(t *testing.T) {
	if d := Dist(0, 0, 3, 4); d != 5 {
		t.Fatalf("Dist = %v, want 5", d)
	}
}
