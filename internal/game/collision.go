package game

import "math"

// --- Scoring constants ---

const (
	// Minimum z-displacement across a tick for the sweep to be meaningful.
	// Anything smaller is treated as a miss, not an error.
	sweptZEpsilon = 1e-8

	// A stuck arrow rests slightly proud of the face, toward the shooter.
	stuckFaceOffset = 0.2

	// Scores of at least this many points extend the streak.
	streakThreshold = 8
)

// scoringBand maps an inclusive ring-fraction ceiling to points.
type scoringBand struct {
	maxFraction float64
	points      int
}

// scoringBands is ordered smallest fraction first; the first band whose
// ceiling is >= the hit's ring fraction wins. Immutable.
var scoringBands = []scoringBand{
	{0.2, 10},
	{0.4, 8},
	{0.6, 6},
	{0.8, 4},
	{1.0, 2},
}

// pointsForFraction returns the score for a ring fraction. Fractions above
// 1.0 cannot reach here from resolveCollisions (distance <= radius is
// enforced first) but conceptually score nothing.
func pointsForFraction(fraction float64) int {
	for _, b := range scoringBands {
		if fraction <= b.maxFraction {
			return b.points
		}
	}
	return 0
}

// hitResult describes one scored impact for logging and stats.
type hitResult struct {
	targetIdx int
	points    int
	fraction  float64
	at        Vec3
}

// resolveArrowTarget sweeps one arrow's prev→pos segment against one
// target's face plane. The segment is a straight line even though the true
// path curves under gravity — scoring bands were tuned against exactly this
// first-order approximation, so it must not be upgraded to a curved sweep.
// Returns the impact, or ok=false on a miss.
func resolveArrowTarget(a *Arrow, t *Target) (hitResult, bool) {
	center := t.Center() // end-of-tick center; targets step discretely
	tz := center.Z

	dz := a.Pos.Z - a.PrevPos.Z
	if math.Abs(dz) < sweptZEpsilon {
		return hitResult{}, false
	}

	// Inclusive plane-crossing test: a sign change (or touching the plane)
	// between the segment endpoints.
	if (a.PrevPos.Z-tz)*(a.Pos.Z-tz) > 0 {
		return hitResult{}, false
	}

	tHit := (tz - a.PrevPos.Z) / dz
	if tHit < 0 || tHit > 1 {
		return hitResult{}, false
	}

	at := a.PrevPos.Lerp(a.Pos, tHit)
	dist := planarDist(at, center)
	if dist > t.Radius {
		return hitResult{}, false
	}

	return hitResult{
		points:   pointsForFraction(dist / t.Radius),
		fraction: dist / t.Radius,
		at:       at,
	}, true
}

// resolveCollisions tests every live, unstuck arrow against the targets in
// slice order — the first crossing target claims the arrow, so an arrow can
// never score twice in one tick. Hits freeze the arrow against the face and
// update score and streak.
func (s *Session) resolveCollisions() {
	for _, a := range s.arrows {
		if !a.Alive || a.Stuck {
			continue
		}
		for i, t := range s.targets {
			hit, ok := resolveArrowTarget(a, t)
			if !ok {
				continue
			}
			hit.targetIdx = i

			s.score += hit.points
			if hit.points >= streakThreshold {
				s.streak++
			} else {
				s.streak = 0
			}

			a.Stuck = true
			a.Vel = Vec3{}
			a.Pos = hit.at
			a.Pos.Z += stuckFaceOffset // rest on the face, toward the shooter

			s.recordHit(hit)
			break
		}
	}
}
