package game

import (
	"fmt"
	"math"
	"math/rand"
)

// --- Session constants ---

const (
	defaultGravity     = -15.0    // world units / s², negative = down
	defaultMaxShots    = 20       // shot budget per session
	defaultBaseSpeed   = 800.0    // launch speed at full draw
	defaultDrawRate    = 1.0      // draw charge gained per second held
	defaultForwardOff  = 1.5      // arrow spawn distance along the aim ray
	pitchLimit         = 0.4      // radians, aim pitch clamp (±)
	maxTickDt          = 1.0 / 30 // frame hitches clamp here; sole dt defense
	minDrawSpeedFactor = 0.2      // launch speed fraction at zero charge
)

// Config is the static tuning for one session, supplied at construction.
// There is no runtime configuration file; the game is tuned by constants.
type Config struct {
	Gravity       float64
	MaxShots      int
	BaseSpeed     float64
	DrawRate      float64
	ForwardOffset float64
	PlayerPos     Vec3
	Targets       []*Target // nil = defaultTargets()
}

// DefaultConfig returns the shipped game tuning.
func DefaultConfig() Config {
	return Config{
		Gravity:       defaultGravity,
		MaxShots:      defaultMaxShots,
		BaseSpeed:     defaultBaseSpeed,
		DrawRate:      defaultDrawRate,
		ForwardOffset: defaultForwardOff,
		PlayerPos:     Vec3{Y: 2},
	}
}

// Session owns the entire simulation for one play-through: targets, live
// arrows, weather, score and aim state. It is single-threaded by
// construction — one tick per rendered frame, every update synchronous.
type Session struct {
	cfg Config

	score      int // monotonically non-decreasing
	shotsTaken int // bounded by cfg.MaxShots
	streak     int // consecutive >=8-point hits

	yaw, pitch float64
	drawCharge float64 // [0, 1]
	drawing    bool

	targets []*Target
	arrows  []*Arrow
	weather *WeatherSystem
	rng     *rand.Rand

	simLog *SimLog // nil outside the test harness / headless runner
	tick   int
}

// NewSession builds a session from cfg with a dedicated seeded RNG. The RNG
// drives particle spawning only; the ballistic sim itself is deterministic.
func NewSession(cfg Config, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- game only
	}
	s.Reset()
	return s
}

// Reset reinitializes every piece of session state: zeroed score counters,
// a fresh fixed target set and the weather back at its first preset.
// Calling it twice in a row yields the same state both times.
func (s *Session) Reset() {
	s.score = 0
	s.shotsTaken = 0
	s.streak = 0
	s.yaw = 0
	s.pitch = 0
	s.drawCharge = 0
	s.drawing = false
	s.tick = 0
	s.arrows = s.arrows[:0]
	if s.cfg.Targets != nil {
		s.targets = cloneTargets(s.cfg.Targets)
	} else {
		s.targets = defaultTargets()
	}
	s.weather = NewWeatherSystem(s.rng)
	s.log("session", "reset", "", 0)
}

func cloneTargets(src []*Target) []*Target {
	out := make([]*Target, len(src))
	for i, t := range src {
		c := *t
		c.elapsed = 0
		out[i] = &c
	}
	return out
}

// --- Input events ---
// All of these are no-ops when their preconditions are unmet; a real-time
// game treats invalid input as nothing-happened, never as an error.

// Aim applies yaw/pitch deltas. Pitch is clamped; yaw is free.
func (s *Session) Aim(dYaw, dPitch float64) {
	s.yaw += dYaw
	s.pitch = clamp(s.pitch+dPitch, -pitchLimit, pitchLimit)
}

// BeginDraw starts charging the bow. Ignored once the budget is spent.
func (s *Session) BeginDraw() {
	if s.shotsTaken >= s.cfg.MaxShots {
		return
	}
	s.drawing = true
}

// EndDraw releases the bow, firing exactly one arrow if a draw was in
// progress, and resets the charge either way.
func (s *Session) EndDraw() {
	if s.drawing {
		s.fire()
	}
	s.drawing = false
	s.drawCharge = 0
}

// CycleWeather steps to the next preset in fixed order.
func (s *Session) CycleWeather() {
	s.weather.Cycle()
	s.log("weather", "cycle", s.weather.Preset().Kind.String(), 0)
}

// aimDirection converts the yaw/pitch pair to a unit vector via
// spherical-to-Cartesian: zero aim looks straight downrange (-z).
func (s *Session) aimDirection() Vec3 {
	return Vec3{
		X: math.Sin(s.yaw) * math.Cos(s.pitch),
		Y: math.Sin(s.pitch),
		Z: -math.Cos(s.yaw) * math.Cos(s.pitch),
	}.Normalized()
}

// fire consumes one shot and spawns an arrow. Launch speed scales linearly
// with the draw charge, and the wind vector is added straight into the
// launch velocity on top of acting as a per-tick acceleration afterward.
// That double-counting at launch is observable tuned behavior — keep it.
func (s *Session) fire() {
	if s.shotsTaken >= s.cfg.MaxShots {
		return
	}
	s.shotsTaken++

	dir := s.aimDirection()
	speed := s.cfg.BaseSpeed * (minDrawSpeedFactor + (1-minDrawSpeedFactor)*s.drawCharge)
	a := &Arrow{
		Pos:   s.cfg.PlayerPos.Add(dir.Scale(s.cfg.ForwardOffset)),
		Vel:   dir.Scale(speed).Add(s.weather.Wind()),
		Alive: true,
	}
	a.PrevPos = a.Pos
	s.arrows = append(s.arrows, a)

	s.log("shot", "fired",
		fmt.Sprintf("yaw=%.3f pitch=%.3f draw=%.2f speed=%.0f", s.yaw, s.pitch, s.drawCharge, speed),
		float64(s.shotsTaken))
}

// Tick advances the whole simulation by one frame. rawDt is the renderer's
// elapsed time and may be garbage after a hitch or tab suspension; it is
// clamped before any integration sees it. Fixed order: weather → targets →
// arrows → collisions → prune.
func (s *Session) Tick(rawDt float64) {
	dt := rawDt
	if dt < 0 {
		dt = 0
	}
	if dt > maxTickDt {
		dt = maxTickDt
	}
	s.tick++

	if s.drawing {
		s.drawCharge = clamp(s.drawCharge+s.cfg.DrawRate*dt, 0, 1)
	}

	s.weather.Update(dt)
	for _, t := range s.targets {
		t.Update(dt)
	}

	wind := s.weather.Wind()
	for _, a := range s.arrows {
		wasAlive := a.Alive
		a.Update(dt, s.cfg.Gravity, wind)
		if wasAlive && !a.Alive {
			s.log("arrow", "grounded", fmt.Sprintf("(%.1f,%.1f,%.1f)", a.Pos.X, a.Pos.Y, a.Pos.Z), 0)
		}
	}

	s.resolveCollisions()

	kept := s.arrows[:0]
	for _, a := range s.arrows {
		if a.Alive {
			kept = append(kept, a)
		}
	}
	s.arrows = kept
}

func (s *Session) recordHit(h hitResult) {
	s.log("shot", "hit",
		fmt.Sprintf("target=%d ring=%.2f points=%d", h.targetIdx, h.fraction, h.points),
		float64(h.points))
}

func (s *Session) log(category, key, value string, numVal float64) {
	if s.simLog == nil {
		return
	}
	s.simLog.Add(s.tick, category, key, value, numVal)
}

// --- Read-only accessors for hosts and tests ---

func (s *Session) Score() int          { return s.score }
func (s *Session) ShotsTaken() int     { return s.shotsTaken }
func (s *Session) ShotsLeft() int      { return s.cfg.MaxShots - s.shotsTaken }
func (s *Session) Streak() int         { return s.streak }
func (s *Session) DrawCharge() float64 { return s.drawCharge }
func (s *Session) Drawing() bool       { return s.drawing }
func (s *Session) Yaw() float64        { return s.yaw }
func (s *Session) Pitch() float64      { return s.pitch }
