package game

// Snapshot is the read-only view a render/UI layer consumes once per frame.
// Everything is copied by value; mutating a snapshot never touches the sim.
type Snapshot struct {
	Targets   []TargetSnapshot
	Arrows    []ArrowSnapshot
	Particles []Particle
	Wind      Vec3

	Score    int
	Shots    int
	MaxShots int
	Streak   int
	Weather  string

	Yaw, Pitch float64
	DrawCharge float64
	Drawing    bool
}

// TargetSnapshot is one target's instantaneous scoring geometry.
type TargetSnapshot struct {
	Center Vec3
	Radius float64
	Depth  float64
}

// ArrowSnapshot is one live arrow's pose and lifecycle flags.
type ArrowSnapshot struct {
	Pos    Vec3
	Facing Vec3
	Stuck  bool
	Alive  bool
}

// Snapshot captures the current simulation state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Wind:       s.weather.Wind(),
		Score:      s.score,
		Shots:      s.shotsTaken,
		MaxShots:   s.cfg.MaxShots,
		Streak:     s.streak,
		Weather:    s.weather.Preset().Kind.String(),
		Yaw:        s.yaw,
		Pitch:      s.pitch,
		DrawCharge: s.drawCharge,
		Drawing:    s.drawing,
	}
	snap.Targets = make([]TargetSnapshot, len(s.targets))
	for i, t := range s.targets {
		snap.Targets[i] = TargetSnapshot{Center: t.Center(), Radius: t.Radius, Depth: t.Depth}
	}
	snap.Arrows = make([]ArrowSnapshot, len(s.arrows))
	for i, a := range s.arrows {
		snap.Arrows[i] = ArrowSnapshot{Pos: a.Pos, Facing: a.Direction(), Stuck: a.Stuck, Alive: a.Alive}
	}
	snap.Particles = append(snap.Particles, s.weather.Particles()...)
	return snap
}
