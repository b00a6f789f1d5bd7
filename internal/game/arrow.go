package game

// --- Arrow constants ---

const (
	groundY = -2.0 // arrows below this are gone without scoring

	// Below this speed the flight direction is numerically meaningless;
	// Direction falls back to straight downrange.
	dirSpeedEpsilon = 1e-5
)

// Arrow is a single ballistic projectile. PrevPos holds the position at the
// start of the current tick; the collision resolver sweeps the prev→pos
// segment rather than testing the endpoint alone.
type Arrow struct {
	Pos     Vec3
	PrevPos Vec3
	Vel     Vec3
	Alive   bool // false = eligible for removal, never true again
	Stuck   bool // true = frozen in a target face forever
}

// Update integrates one tick of flight. Gravity is a negative scalar; wind
// is a uniform acceleration shared by every arrow this tick. Velocity first,
// then position (semi-implicit Euler). Stuck and dead arrows never move.
func (a *Arrow) Update(dt, gravity float64, wind Vec3) {
	if !a.Alive || a.Stuck {
		return
	}
	a.PrevPos = a.Pos
	a.Vel.X += wind.X * dt
	a.Vel.Y += (gravity + wind.Y) * dt
	a.Vel.Z += wind.Z * dt
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	if a.Pos.Y < groundY {
		a.Alive = false
	}
}

// Direction returns the unit flight direction, defaulting to straight
// downrange when the arrow is effectively stationary.
func (a *Arrow) Direction() Vec3 {
	if a.Vel.Length() < dirSpeedEpsilon {
		return Vec3{Z: -1}
	}
	return a.Vel.Normalized()
}
