package game

import (
	"fmt"
	"sort"
	"strings"
)

// --- Run statistics ---

// RunReport aggregates everything interesting about one completed headless
// session run. It is derived purely from the SimLog plus final session
// state, so it works for any scripted policy.
type RunReport struct {
	Seed  int64
	Ticks int

	ShotsFired int
	Hits       int
	Grounded   int
	Score      int
	BestStreak int

	// Hit distribution keyed by points awarded (10, 8, 6, 4, 2).
	BandCounts map[int]int

	// Weather exposure: preset name → cycles entered.
	WeatherCycles map[string]int

	PeakParticles int
}

// HitRate returns hits per shot fired, or 0 when nothing was fired.
func (r RunReport) HitRate() float64 {
	if r.ShotsFired == 0 {
		return 0
	}
	return float64(r.Hits) / float64(r.ShotsFired)
}

// SessionReporter builds RunReports from harnessed sessions.
type SessionReporter struct {
	runs []RunReport
}

// NewSessionReporter creates an empty reporter.
func NewSessionReporter() *SessionReporter {
	return &SessionReporter{}
}

// Collect derives a RunReport from a finished TestSim and stores it.
func (r *SessionReporter) Collect(ts *TestSim, seed int64) RunReport {
	rep := RunReport{
		Seed:          seed,
		Ticks:         ts.Session.tick,
		ShotsFired:    ts.Session.ShotsTaken(),
		Score:         ts.Session.Score(),
		BandCounts:    make(map[int]int),
		WeatherCycles: make(map[string]int),
	}

	streak := 0
	for _, e := range ts.SimLog.Filter("shot", "hit") {
		rep.Hits++
		pts := int(e.NumVal)
		rep.BandCounts[pts]++
		if pts >= streakThreshold {
			streak++
			if streak > rep.BestStreak {
				rep.BestStreak = streak
			}
		} else {
			streak = 0
		}
	}
	rep.Grounded = ts.SimLog.CountCategory("arrow", "grounded")
	for _, e := range ts.SimLog.Filter("weather", "cycle") {
		rep.WeatherCycles[e.Value]++
	}
	for _, e := range ts.SimLog.Filter("state", "particles") {
		if int(e.NumVal) > rep.PeakParticles {
			rep.PeakParticles = int(e.NumVal)
		}
	}

	r.runs = append(r.runs, rep)
	return rep
}

// Runs returns all collected run reports.
func (r *SessionReporter) Runs() []RunReport {
	return r.runs
}

// Aggregate summarizes every collected run as a printable table.
func (r *SessionReporter) Aggregate() string {
	if len(r.runs) == 0 {
		return "(no runs collected)\n"
	}

	var b strings.Builder
	totalShots, totalHits, totalScore := 0, 0, 0
	bestStreak := 0
	bands := map[int]int{}
	for _, run := range r.runs {
		totalShots += run.ShotsFired
		totalHits += run.Hits
		totalScore += run.Score
		if run.BestStreak > bestStreak {
			bestStreak = run.BestStreak
		}
		for pts, n := range run.BandCounts {
			bands[pts] += n
		}
	}

	fmt.Fprintf(&b, "=== Aggregate over %d runs ===\n", len(r.runs))
	fmt.Fprintf(&b, "shots=%d hits=%d (%.0f%%) avg_score=%.1f best_streak=%d\n",
		totalShots, totalHits, pct(totalHits, totalShots),
		float64(totalScore)/float64(len(r.runs)), bestStreak)

	pts := make([]int, 0, len(bands))
	for p := range bands {
		pts = append(pts, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pts)))
	for _, p := range pts {
		fmt.Fprintf(&b, "  band %2dpt: %d (%.0f%% of hits)\n", p, bands[p], pct(bands[p], totalHits))
	}
	return b.String()
}

func pct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
