package game

import "math"

// Target is a circular scoring face that sways on a Lissajous path.
// Oscillation is x/y only: the face's z-plane never moves, which keeps the
// swept collision test a single-plane crossing.
type Target struct {
	Base    Vec3    // rest center
	Radius  float64 // ring radius
	Depth   float64 // face thickness, rendering only
	AmpX    float64
	FreqX   float64
	AmpY    float64
	FreqY   float64
	elapsed float64 // accumulated simulation time
}

// Update advances the target's clock. Position is derived, not stored.
func (t *Target) Update(dt float64) {
	t.elapsed += dt
}

// Center returns the instantaneous center at the target's current clock.
func (t *Target) Center() Vec3 {
	return t.CenterAt(t.elapsed)
}

// CenterAt is a pure function of elapsed time, so target position is fully
// reproducible and collision prediction never needs stored state.
func (t *Target) CenterAt(elapsed float64) Vec3 {
	return Vec3{
		X: t.Base.X + t.AmpX*math.Sin(elapsed*t.FreqX),
		Y: t.Base.Y + t.AmpY*math.Sin(elapsed*t.FreqY),
		Z: t.Base.Z,
	}
}

// defaultTargets builds the session's fixed target set. Two faces at
// different depths, radii and sway rates; recreated on every reset.
func defaultTargets() []*Target {
	return []*Target{
		{
			Base:   Vec3{X: -5, Y: 3, Z: -40},
			Radius: 2.5,
			Depth:  0.6,
			AmpX:   4.0, FreqX: 0.9,
			AmpY: 1.5, FreqY: 1.3,
		},
		{
			Base:   Vec3{X: 6, Y: 4, Z: -55},
			Radius: 1.8,
			Depth:  0.6,
			AmpX:   6.0, FreqX: 1.4,
			AmpY: 2.0, FreqY: 0.7,
		},
	}
}
