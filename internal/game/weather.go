package game

import (
	"image/color"
	"math"
	"math/rand"
)

// --- Weather constants ---

const (
	maxParticles  = 400  // hard cap on live particles
	particleFloor = -5.0 // particles below this y are culled

	// Spawn volume (world units). Particles appear upwind of and above the
	// range so they drift through the shooter's field of view.
	spawnXMin, spawnXMax = -30.0, 30.0
	spawnYMin, spawnYMax = 15.0, 20.0
	spawnZMin, spawnZMax = -80.0, -20.0
)

// WeatherKind names one of the four fixed presets.
type WeatherKind int

const (
	WeatherClear WeatherKind = iota
	WeatherWind
	WeatherRain
	WeatherSnow
	weatherKindCount
)

func (k WeatherKind) String() string {
	switch k {
	case WeatherClear:
		return "clear"
	case WeatherWind:
		return "wind"
	case WeatherRain:
		return "rain"
	case WeatherSnow:
		return "snow"
	}
	return "unknown"
}

// particleTemplate bounds the random draws made for each spawned particle.
type particleTemplate struct {
	lifeMin, lifeMax     float64 // seconds
	hSpeedMin, hSpeedMax float64 // lateral speed magnitude per axis
	vSpeedMin, vSpeedMax float64 // vertical speed (negative = falling)
	col                  color.RGBA
	scale                float64
}

// WeatherPreset is the immutable configuration for one weather condition.
type WeatherPreset struct {
	Kind         WeatherKind
	SpawnPerTick int
	WindStrength float64 // magnitude of the horizontal wind acceleration
	WindAngle    float64 // radians in the x/z plane
	template     particleTemplate
}

// weatherPresets is cycled in slice order. Loaded once; never mutated.
var weatherPresets = [weatherKindCount]WeatherPreset{
	{Kind: WeatherClear},
	{
		Kind:         WeatherWind,
		SpawnPerTick: 3,
		WindStrength: 6.0,
		WindAngle:    0.45,
		template: particleTemplate{
			lifeMin: 1.5, lifeMax: 3.0,
			hSpeedMin: 8.0, hSpeedMax: 16.0,
			vSpeedMin: -2.0, vSpeedMax: -0.5,
			col:   color.RGBA{R: 205, G: 195, B: 160, A: 160},
			scale: 0.12,
		},
	},
	{
		Kind:         WeatherRain,
		SpawnPerTick: 10,
		WindStrength: 3.0,
		WindAngle:    math.Pi / 6,
		template: particleTemplate{
			lifeMin: 0.8, lifeMax: 1.6,
			hSpeedMin: 1.0, hSpeedMax: 3.0,
			vSpeedMin: -35.0, vSpeedMax: -25.0,
			col:   color.RGBA{R: 150, G: 180, B: 230, A: 200},
			scale: 0.08,
		},
	},
	{
		Kind:         WeatherSnow,
		SpawnPerTick: 6,
		WindStrength: 1.5,
		WindAngle:    -math.Pi / 4,
		template: particleTemplate{
			lifeMin: 4.0, lifeMax: 8.0,
			hSpeedMin: 0.5, hSpeedMax: 2.5,
			vSpeedMin: -3.0, vSpeedMax: -1.5,
			col:   color.RGBA{R: 240, G: 240, B: 250, A: 230},
			scale: 0.16,
		},
	},
}

// Particle is one weather mote. Owned exclusively by the WeatherSystem.
type Particle struct {
	Pos   Vec3
	Vel   Vec3
	Age   float64 // seconds since spawn
	Life  float64 // drawn once at spawn from the preset's range
	Col   color.RGBA
	Scale float64
}

// WeatherSystem cycles through the fixed presets and owns the particle
// collection. It never fails; all updates are pure in-memory mutation.
type WeatherSystem struct {
	active    int // index into weatherPresets
	particles []Particle
	rng       *rand.Rand
}

// NewWeatherSystem starts at the first preset (clear) with no particles.
func NewWeatherSystem(rng *rand.Rand) *WeatherSystem {
	return &WeatherSystem{
		particles: make([]Particle, 0, maxParticles),
		rng:       rng,
	}
}

// Preset returns the active preset.
func (w *WeatherSystem) Preset() WeatherPreset {
	return weatherPresets[w.active]
}

// Wind returns the horizontal-plane wind vector for the active preset.
// There is never a vertical wind component.
func (w *WeatherSystem) Wind() Vec3 {
	p := weatherPresets[w.active]
	return Vec3{
		X: p.WindStrength * math.Cos(p.WindAngle),
		Z: p.WindStrength * math.Sin(p.WindAngle),
	}
}

// Cycle advances to the next preset in fixed order. Arriving at clear
// discards every live particle immediately — no fade-out.
func (w *WeatherSystem) Cycle() {
	w.active = (w.active + 1) % int(weatherKindCount)
	if weatherPresets[w.active].Kind == WeatherClear {
		w.particles = w.particles[:0]
	}
}

// Update spawns, ages, moves and culls particles for one tick.
func (w *WeatherSystem) Update(dt float64) {
	p := weatherPresets[w.active]

	for i := 0; i < p.SpawnPerTick; i++ {
		if len(w.particles) >= maxParticles {
			break // at capacity: skip spawns, never evict
		}
		w.particles = append(w.particles, w.spawnOne(p.template))
	}

	kept := w.particles[:0]
	for i := range w.particles {
		pt := &w.particles[i]
		pt.Age += dt
		pt.Pos = pt.Pos.Add(pt.Vel.Scale(dt))
		if pt.Age > pt.Life || pt.Pos.Y < particleFloor {
			continue
		}
		kept = append(kept, *pt)
	}
	w.particles = kept
}

func (w *WeatherSystem) spawnOne(t particleTemplate) Particle {
	return Particle{
		Pos: Vec3{
			X: w.rangeF(spawnXMin, spawnXMax),
			Y: w.rangeF(spawnYMin, spawnYMax),
			Z: w.rangeF(spawnZMin, spawnZMax),
		},
		Vel: Vec3{
			X: w.rangeF(t.hSpeedMin, t.hSpeedMax) * w.sign(),
			Y: w.rangeF(t.vSpeedMin, t.vSpeedMax),
			Z: w.rangeF(t.hSpeedMin, t.hSpeedMax) * w.sign(),
		},
		Life:  w.rangeF(t.lifeMin, t.lifeMax),
		Col:   t.col,
		Scale: t.scale,
	}
}

func (w *WeatherSystem) rangeF(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

func (w *WeatherSystem) sign() float64 {
	if w.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}

// Particles returns the live particle slice for read-only consumers.
func (w *WeatherSystem) Particles() []Particle {
	return w.particles
}
