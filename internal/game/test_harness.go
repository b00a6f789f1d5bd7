package game

import "fmt"

// TestSim is a headless session harness used by tests and by
// cmd/headless-report. It drives a Session at a fixed timestep with no
// Ebiten dependency and supports deterministic seeding and structured
// logging.
type TestSim struct {
	Session *Session
	SimLog  *SimLog
	Dt      float64 // per-tick timestep, defaults to 1/60

	cfg     Config
	seed    int64
	verbose bool
	weather []WeatherKind // presets to cycle to after construction
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config fields, seed, verbose — applied first
	simOptTarget                      // add targets — applied before the session is built
	simOptPost                        // weather cycling — applied after construction
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithSeed sets the RNG seed for deterministic particle spawning.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.seed = seed }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.verbose = v }}
}

// WithDt overrides the fixed timestep.
func WithDt(dt float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.Dt = dt }}
}

// WithGravity overrides gravity (negative = down).
func WithGravity(g float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg.Gravity = g }}
}

// WithMaxShots overrides the shot budget.
func WithMaxShots(n int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg.MaxShots = n }}
}

// WithBaseSpeed overrides the full-draw launch speed.
func WithBaseSpeed(v float64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) { ts.cfg.BaseSpeed = v }}
}

// WithTarget adds a moving target. Any WithTarget option replaces the
// default target set.
func WithTarget(t Target) SimOption {
	return SimOption{simOptTarget, func(ts *TestSim) {
		ts.cfg.Targets = append(ts.cfg.Targets, &t)
	}}
}

// WithStaticTarget adds a non-oscillating target — handy for deterministic
// trajectory checks.
func WithStaticTarget(x, y, z, radius float64) SimOption {
	return WithTarget(Target{Base: Vec3{X: x, Y: y, Z: z}, Radius: radius, Depth: 0.6})
}

// WithWeather cycles the fresh session to the named preset.
func WithWeather(kind WeatherKind) SimOption {
	return SimOption{simOptPost, func(ts *TestSim) {
		ts.weather = append(ts.weather, kind)
	}}
}

// NewTestSim constructs a harnessed session in three ordered passes:
//  1. Infrastructure (seed, verbose, config overrides)
//  2. Targets
//  3. Session construction, then post options (weather)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		cfg:  DefaultConfig(),
		seed: 1,
		Dt:   1.0 / 60,
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == simOptTarget {
			o.fn(ts)
		}
	}
	ts.SimLog = NewSimLog(ts.verbose)
	ts.Session = NewSession(ts.cfg, ts.seed)
	ts.Session.simLog = ts.SimLog
	for _, o := range opts {
		if o.kind == simOptPost {
			o.fn(ts)
		}
	}
	for _, want := range ts.weather {
		for ts.Session.weather.Preset().Kind != want {
			ts.Session.CycleWeather()
		}
	}
	return ts
}

// RunTicks advances the simulation n ticks at the fixed timestep.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Session.Tick(ts.Dt)
		ts.logTickState()
	}
}

// RunUntil advances the simulation up to maxTicks, stopping early if
// predicate returns true. Returns the tick at which the predicate was
// satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Session.Tick(ts.Dt)
		ts.logTickState()
		if predicate(ts) {
			return ts.Session.tick
		}
	}
	return -1
}

// AimTo points the bow at an absolute yaw/pitch (pitch still clamps).
func (ts *TestSim) AimTo(yaw, pitch float64) {
	ts.Session.Aim(yaw-ts.Session.yaw, pitch-ts.Session.pitch)
}

// Fire performs a full draw-release cycle: the draw is held for holdTicks
// simulation ticks (0 = snap shot at minimum charge), then released.
func (ts *TestSim) Fire(holdTicks int) {
	ts.Session.BeginDraw()
	ts.RunTicks(holdTicks)
	ts.Session.EndDraw()
}

// Arrows exposes the live arrow slice for invariant checks.
func (ts *TestSim) Arrows() []*Arrow {
	return ts.Session.arrows
}

// Targets exposes the session's target slice.
func (ts *TestSim) Targets() []*Target {
	return ts.Session.targets
}

// ParticleCount returns the number of live weather particles.
func (ts *TestSim) ParticleCount() int {
	return len(ts.Session.weather.Particles())
}

// logTickState records verbose per-tick state for threshold checks.
func (ts *TestSim) logTickState() {
	s := ts.Session
	ts.SimLog.AddVerbose(s.tick, "state", "particles", "", float64(len(s.weather.Particles())))
	ts.SimLog.AddVerbose(s.tick, "state", "score", "", float64(s.score))
	for i, a := range s.arrows {
		ts.SimLog.AddVerbose(s.tick, "state", "arrow",
			fmt.Sprintf("#%d (%.2f,%.2f,%.2f) stuck=%v", i, a.Pos.X, a.Pos.Y, a.Pos.Z, a.Stuck), 0)
	}
}
