package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/session"
)

type runResult struct {
	runIndex int
	seed     int64
	summary  session.Summary
}

func main() {
	var runs int
	var frames int
	var seedBase int64
	var seedStep int64
	var level string
	var debug bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&frames, "frames", 3600, "frame limit per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&level, "level", "", "level name (default from world.yaml)")
	flag.BoolVar(&debug, "debug", false, "log simulation debug records to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if frames <= 0 {
		fmt.Println("error: -frames must be > 0")
		os.Exit(2)
	}

	logger := slog.New(slog.DiscardHandler)
	if debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	fmt.Printf("=== Headless Skirmish Report ===\n")
	fmt.Printf("level=%q runs=%d frames=%d seed_base=%d seed_step=%d\n\n", level, runs, frames, seedBase, seedStep)

	all := make([]runResult, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		res, err := runOnce(i+1, seed, level, frames, logger)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, res)
		printRun(os.Stdout, res)
	}
	printAggregate(os.Stdout, all)
}

func runOnce(runIndex int, seed int64, level string, frames int, logger *slog.Logger) (runResult, error) {
	s, err := session.New(session.Options{Level: level, Seed: seed, Logger: logger})
	if err != nil {
		return runResult{}, err
	}
	s.SetProtagonistHook(session.Autopilot())
	for i := 0; i < frames && !s.Over(); i++ {
		s.Step()
	}
	return runResult{runIndex: runIndex, seed: seed, summary: s.Summary()}, nil
}

func printRun(out io.Writer, r runResult) {
	fmt.Fprintf(out, "run %d seed=%d %s\n", r.runIndex, r.seed, r.summary)

	kinds := make([]ecs.CueKind, 0, len(r.summary.Cues))
	for k := range r.summary.Cues {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(out, "  cue %-10s %d\n", k, r.summary.Cues[k])
	}
}

func printAggregate(out io.Writer, all []runResult) {
	if len(all) == 0 {
		return
	}
	wins, totalFrames, totalShots := 0, uint64(0), 0
	for _, r := range all {
		if r.summary.HeroAlive && r.summary.Alive == 0 {
			wins++
		}
		totalFrames += r.summary.Frame
		totalShots += r.summary.ShotsFired
	}
	n := len(all)
	fmt.Fprintf(out, "\n=== Aggregate ===\n")
	fmt.Fprintf(out, "hero_wins=%d/%d avg_frames=%.1f avg_shots=%.1f\n",
		wins, n, float64(totalFrames)/float64(n), float64(totalShots)/float64(n))
}
