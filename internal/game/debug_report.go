package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// debugReportShots is how many recent shot events the report includes.
const debugReportShots = 20

// debugReport assembles a plain-text summary of the running session:
// headline numbers, the hit-band histogram and the most recent shots.
// Useful when filing tuning feedback — F2 copies it to the clipboard.
func (g *Game) debugReport() string {
	snap := g.session.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "--- bullseye session report ---\n")
	fmt.Fprintf(&b, "score=%d shots=%d/%d streak=%d weather=%s\n",
		snap.Score, snap.Shots, snap.MaxShots, snap.Streak, snap.Weather)
	fmt.Fprintf(&b, "wind=(%.2f, %.2f, %.2f) particles=%d arrows=%d\n\n",
		snap.Wind.X, snap.Wind.Y, snap.Wind.Z, len(snap.Particles), len(snap.Arrows))

	hits := g.simLog.Filter("shot", "hit")
	bands := map[int]int{}
	for _, e := range hits {
		bands[int(e.NumVal)]++
	}
	fmt.Fprintf(&b, "hits=%d grounded=%d\n", len(hits), g.simLog.CountCategory("arrow", "grounded"))
	for _, pts := range []int{10, 8, 6, 4, 2} {
		if n := bands[pts]; n > 0 {
			fmt.Fprintf(&b, "  %2dpt x%d\n", pts, n)
		}
	}

	b.WriteString("\nrecent shots:\n")
	shots := g.simLog.Filter("shot", "")
	if len(shots) > debugReportShots {
		shots = shots[len(shots)-debugReportShots:]
	}
	if len(shots) == 0 {
		b.WriteString("(none yet)\n")
	}
	for _, e := range shots {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// copyDebugReport puts the report on the system clipboard.
func (g *Game) copyDebugReport() error {
	return clipboard.WriteAll(g.debugReport())
}
