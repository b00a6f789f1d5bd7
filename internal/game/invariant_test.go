package game

import "testing"

// --- Invariant helpers ---
// Shared checks applied after scenario runs. Each samples either final
// session state or the verbose SimLog stream.

// checkShotBudget verifies the session never fired past its budget.
func checkShotBudget(t *testing.T, ts *TestSim) {
	t.Helper()
	if taken := ts.Session.ShotsTaken(); taken > ts.Session.cfg.MaxShots {
		t.Errorf("shots taken %d exceeds budget %d", taken, ts.Session.cfg.MaxShots)
	}
	if fired := ts.SimLog.CountCategory("shot", "fired"); fired != ts.Session.ShotsTaken() {
		t.Errorf("fired log entries (%d) disagree with ShotsTaken (%d)",
			fired, ts.Session.ShotsTaken())
	}
}

// checkStuckFrozen verifies every stuck arrow is alive, motionless and
// resting just in front of a face plane.
func checkStuckFrozen(t *testing.T, ts *TestSim) {
	t.Helper()
	for i, a := range ts.Arrows() {
		if !a.Stuck {
			continue
		}
		if !a.Alive {
			t.Errorf("arrow %d stuck but dead", i)
		}
		if a.Vel != (Vec3{}) {
			t.Errorf("arrow %d stuck with velocity %+v", i, a.Vel)
		}
	}
}

// checkArrowsAboveGround verifies no live arrow survives below the ground.
func checkArrowsAboveGround(t *testing.T, ts *TestSim) {
	t.Helper()
	for i, a := range ts.Arrows() {
		if a.Alive && a.Pos.Y < groundY {
			t.Errorf("arrow %d alive below ground: y=%v", i, a.Pos.Y)
		}
	}
}

// checkParticleCap verifies the particle count never exceeded the cap at
// any sampled tick. Requires a verbose SimLog.
func checkParticleCap(t *testing.T, ts *TestSim) {
	t.Helper()
	samples := ts.SimLog.Filter("state", "particles")
	if len(samples) == 0 {
		t.Log("checkParticleCap: no particle samples (run with verbose SimLog)")
		return
	}
	for _, e := range samples {
		if int(e.NumVal) > maxParticles {
			t.Errorf("tick %d: %d particles, cap is %d", e.Tick, int(e.NumVal), maxParticles)
		}
	}
}

// checkScoreMonotonic verifies the score never decreased across the run.
// Requires a verbose SimLog.
func checkScoreMonotonic(t *testing.T, ts *TestSim) {
	t.Helper()
	samples := ts.SimLog.Filter("state", "score")
	if len(samples) == 0 {
		t.Log("checkScoreMonotonic: no score samples (run with verbose SimLog)")
		return
	}
	prev := 0.0
	for _, e := range samples {
		if e.NumVal < prev {
			t.Errorf("tick %d: score dropped %v -> %v", e.Tick, prev, e.NumVal)
		}
		prev = e.NumVal
	}
}

// checkDrawChargeBounded verifies the charge is inside [0, 1].
func checkDrawChargeBounded(t *testing.T, ts *TestSim) {
	t.Helper()
	if c := ts.Session.DrawCharge(); c < 0 || c > 1 {
		t.Errorf("draw charge out of bounds: %v", c)
	}
}

// checkAllInvariants runs the full battery.
func checkAllInvariants(t *testing.T, ts *TestSim) {
	t.Helper()
	checkShotBudget(t, ts)
	checkStuckFrozen(t, ts)
	checkArrowsAboveGround(t, ts)
	checkParticleCap(t, ts)
	checkScoreMonotonic(t, ts)
	checkDrawChargeBounded(t, ts)
}
