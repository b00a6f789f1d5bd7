package game

import "testing"

func TestPointsForFraction(t *testing.T) {
	cases := []struct {
		fraction float64
		want     int
	}{
		{0.0, 10},
		{0.15, 10},
		{0.2, 10}, // band ceilings are inclusive
		{0.21, 8},
		{0.4, 8},
		{0.55, 6},
		{0.6, 6},
		{0.75, 4},
		{0.8, 4},
		{0.95, 2},
		{1.0, 2},
		{1.1, 0},
	}
	for _, c := range cases {
		if got := pointsForFraction(c.fraction); got != c.want {
			t.Errorf("pointsForFraction(%v) = %d, want %d", c.fraction, got, c.want)
		}
	}
}

func staticFace(x, y, z, r float64) *Target {
	return &Target{Base: Vec3{X: x, Y: y, Z: z}, Radius: r, Depth: 0.6}
}

func TestResolveArrowTargetSweptHit(t *testing.T) {
	tgt := staticFace(0, 2, -40, 2.5)
	a := &Arrow{
		PrevPos: Vec3{X: 0, Y: 2.5, Z: -38},
		Pos:     Vec3{X: 0, Y: 2.3, Z: -42},
		Alive:   true,
	}
	hit, ok := resolveArrowTarget(a, tgt)
	if !ok {
		t.Fatal("expected a hit")
	}
	// Plane crossing at tHit = (-40 - -38) / (-42 - -38) = 0.5.
	if !almostEqual(hit.at.Z, -40) {
		t.Errorf("impact z = %v, want -40", hit.at.Z)
	}
	if !almostEqual(hit.at.Y, 2.4) {
		t.Errorf("impact y = %v, want interpolated 2.4", hit.at.Y)
	}
	wantFraction := 0.4 / 2.5
	if !almostEqual(hit.fraction, wantFraction) {
		t.Errorf("fraction = %v, want %v", hit.fraction, wantFraction)
	}
	if hit.points != 10 {
		t.Errorf("points = %d, want 10", hit.points)
	}
}

func TestResolveArrowTargetNoCrossing(t *testing.T) {
	tgt := staticFace(0, 2, -40, 2.5)
	a := &Arrow{
		PrevPos: Vec3{Y: 2, Z: -30},
		Pos:     Vec3{Y: 2, Z: -35},
		Alive:   true,
	}
	if _, ok := resolveArrowTarget(a, tgt); ok {
		t.Error("segment entirely in front of the plane must miss")
	}
	a.PrevPos.Z, a.Pos.Z = -45, -50
	if _, ok := resolveArrowTarget(a, tgt); ok {
		t.Error("segment entirely behind the plane must miss")
	}
}

func TestResolveArrowTargetTouchingPlaneIsInclusive(t *testing.T) {
	tgt := staticFace(0, 2, -40, 2.5)
	a := &Arrow{
		PrevPos: Vec3{Y: 2, Z: -40}, // starts exactly on the plane
		Pos:     Vec3{Y: 2, Z: -43},
		Alive:   true,
	}
	hit, ok := resolveArrowTarget(a, tgt)
	if !ok {
		t.Fatal("touching the plane must count as a crossing")
	}
	if !almostEqual(hit.fraction, 0) {
		t.Errorf("fraction = %v, want 0 (dead center)", hit.fraction)
	}
}

func TestResolveArrowTargetRadialMiss(t *testing.T) {
	tgt := staticFace(0, 2, -40, 1.0)
	a := &Arrow{
		PrevPos: Vec3{X: 1.5, Y: 2, Z: -38},
		Pos:     Vec3{X: 1.5, Y: 2, Z: -42},
		Alive:   true,
	}
	if _, ok := resolveArrowTarget(a, tgt); ok {
		t.Error("crossing outside the ring radius must miss")
	}
}

func TestResolveArrowTargetStationaryInZ(t *testing.T) {
	tgt := staticFace(0, 2, -40, 2.5)
	a := &Arrow{
		PrevPos: Vec3{Y: 3, Z: -40},
		Pos:     Vec3{Y: 2, Z: -40}, // falling straight down in the plane
		Alive:   true,
	}
	if _, ok := resolveArrowTarget(a, tgt); ok {
		t.Error("zero z-displacement must miss, not divide by zero")
	}
}

func TestResolveCollisionsFirstTargetWins(t *testing.T) {
	// Two faces a unit apart in depth, both in the arrow's path. One fast
	// tick crosses both planes; only the first in slice order may claim it.
	ts := NewTestSim(
		WithSeed(1),
		WithStaticTarget(0, 2, -40, 2.5),
		WithStaticTarget(0, 2, -41, 2.5),
		WithGravity(0),
	)
	ts.Fire(0)
	ts.RunTicks(30)

	hits := ts.SimLog.Filter("shot", "hit")
	if len(hits) != 1 {
		t.Fatalf("%d hit entries, want exactly 1", len(hits))
	}
	if !ts.SimLog.HasEntry("shot", "hit", "target=0") {
		t.Error("the nearer slice-order target did not claim the arrow")
	}

	arrows := ts.Arrows()
	if len(arrows) != 1 || !arrows[0].Stuck {
		t.Fatal("arrow should be stuck in the first target")
	}
	wantZ := -40 + stuckFaceOffset
	if !almostEqual(arrows[0].Pos.Z, wantZ) {
		t.Errorf("stuck z = %v, want %v", arrows[0].Pos.Z, wantZ)
	}
	if arrows[0].Vel != (Vec3{}) {
		t.Errorf("stuck arrow keeps velocity %+v", arrows[0].Vel)
	}
}

func TestResolveCollisionsScoringBandsBySessionGeometry(t *testing.T) {
	// Gravity off and clear weather make the flight path a straight ray
	// through the player position, so the ring fraction equals the aim
	// offset at the face plane divided by the radius.
	cases := []struct {
		name   string
		offset float64 // planar offset at z=-40, radius 1.0
		points int
	}{
		{"bullseye", 0.15, 10},
		{"inner", 0.35, 8},
		{"middle", 0.55, 6},
		{"outer", 0.75, 4},
		{"edge", 0.95, 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := NewTestSim(
				WithSeed(1),
				WithGravity(0),
				WithStaticTarget(c.offset, 2, -40, 1.0),
			)
			ts.Fire(0) // straight downrange from (0,2,0)
			ts.RunTicks(60)

			if got := ts.Session.Score(); got != c.points {
				t.Errorf("score = %d, want %d", got, c.points)
			}
		})
	}
}

func TestResolveCollisionsMissFliesOn(t *testing.T) {
	ts := NewTestSim(
		WithSeed(1),
		WithGravity(0),
		WithStaticTarget(1.5, 2, -40, 1.0),
	)
	ts.Fire(0)
	ts.RunTicks(60)

	if got := ts.Session.Score(); got != 0 {
		t.Errorf("score = %d, want 0 on a radial miss", got)
	}
	arrows := ts.Arrows()
	if len(arrows) != 1 {
		t.Fatalf("%d arrows, want the miss still flying", len(arrows))
	}
	if arrows[0].Stuck || !arrows[0].Alive {
		t.Errorf("missing arrow state: stuck=%v alive=%v", arrows[0].Stuck, arrows[0].Alive)
	}
	if arrows[0].Pos.Z > -40 {
		t.Errorf("arrow z = %v, should be well past the face", arrows[0].Pos.Z)
	}
}
