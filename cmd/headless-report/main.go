package main

import (
	"flag"
	"fmt"
	"math"

	"bullseye/internal/game"
)

// headless-report drives scripted archery sessions with a simple aiming bot
// and prints per-run and aggregate accuracy statistics. Useful for checking
// how tuning changes (gravity, wind strength, target sway) shift the score
// distribution without playing twenty arrows by hand.
func main() {
	var runs int
	var shots int
	var seedBase int64
	var seedStep int64
	var weather string
	var holdTicks int

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&shots, "shots", 20, "shot budget per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&weather, "weather", "clear", "preset active for every run (clear|wind|rain|snow)")
	flag.IntVar(&holdTicks, "hold", 60, "ticks the bot holds each draw (60 = full charge)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if shots <= 0 {
		fmt.Println("error: -shots must be > 0")
		return
	}
	kind, ok := parseWeather(weather)
	if !ok {
		fmt.Printf("error: unknown weather %q\n", weather)
		return
	}

	fmt.Printf("=== Headless Range Report ===\n")
	fmt.Printf("runs=%d shots=%d weather=%s hold=%d seed_base=%d seed_step=%d\n\n",
		runs, shots, weather, holdTicks, seedBase, seedStep)

	reporter := game.NewSessionReporter()
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rep := runSession(reporter, seed, kind, shots, holdTicks)
		fmt.Printf("run %d seed=%d: shots=%d hits=%d (%.0f%%) score=%d best_streak=%d peak_particles=%d\n",
			i+1, seed, rep.ShotsFired, rep.Hits, 100*rep.HitRate(), rep.Score, rep.BestStreak, rep.PeakParticles)
	}

	fmt.Println()
	fmt.Print(reporter.Aggregate())
}

func parseWeather(name string) (game.WeatherKind, bool) {
	for _, k := range []game.WeatherKind{game.WeatherClear, game.WeatherWind, game.WeatherRain, game.WeatherSnow} {
		if k.String() == name {
			return k, true
		}
	}
	return game.WeatherClear, false
}

// runSession fires the full shot budget with the bot, letting each arrow
// resolve before the next draw, then collects the run report.
func runSession(reporter *game.SessionReporter, seed int64, kind game.WeatherKind, shots, holdTicks int) game.RunReport {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithVerbose(true),
		game.WithMaxShots(shots),
		game.WithWeather(kind),
	)

	targets := ts.Targets()
	for shot := 0; ts.Session.ShotsLeft() > 0; shot++ {
		ts.Session.BeginDraw()
		ts.RunTicks(holdTicks)

		aimAt(ts, targets[shot%len(targets)])
		ts.Session.EndDraw()

		// Let the arrow land, stick or ground out before the next draw.
		ts.RunTicks(120)
	}

	return reporter.Collect(ts, seed)
}

// aimAt points the bow at the target with a first-order gravity hold-over.
// No wind compensation — the report is partly about how much weather hurts.
func aimAt(ts *game.TestSim, t *game.Target) {
	cfg := game.DefaultConfig()
	speed := cfg.BaseSpeed * (0.2 + 0.8*ts.Session.DrawCharge())

	c := t.Center()
	rel := c.Sub(cfg.PlayerPos)
	dist := rel.Length()
	tof := dist / speed
	// Hold over by the expected drop at time-of-flight.
	rel.Y += 0.5 * -cfg.Gravity * tof * tof

	dir := rel.Normalized()
	yaw := math.Atan2(dir.X, -dir.Z)
	pitch := math.Asin(dir.Y)
	ts.AimTo(yaw, pitch)
}
