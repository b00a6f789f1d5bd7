package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// --- Projection constants ---

const (
	focalLength = 620.0 // pixels; tuned for a ~60° vertical field of view
	eyeHeight   = 2.0   // camera height, matches the session's player origin
	nearPlane   = 0.5   // world units in front of the eye
)

// ringColors paints the five scoring bands from bullseye outward.
var ringColors = [5]color.RGBA{
	{R: 255, G: 215, B: 60, A: 255},  // gold 10
	{R: 220, G: 60, B: 50, A: 255},   // red 8
	{R: 70, G: 120, B: 220, A: 255},  // blue 6
	{R: 40, G: 40, B: 40, A: 255},    // black 4
	{R: 235, G: 235, B: 225, A: 255}, // white 2
}

// project maps a world point to screen space. The camera sits at the
// shooter's eye looking straight downrange; aim moves the crosshair, not
// the camera. Returns ok=false for points behind the near plane.
func project(p Vec3) (float32, float32, bool) {
	vz := -p.Z // positive depth in front of the camera
	if vz < nearPlane {
		return 0, 0, false
	}
	sx := screenWidth/2 + p.X*focalLength/vz
	sy := screenHeight/2 - (p.Y-eyeHeight)*focalLength/vz
	return float32(sx), float32(sy), true
}

// projectRadius scales a world-space radius at depth z to pixels.
func projectRadius(r, z float64) float32 {
	vz := -z
	if vz < nearPlane {
		vz = nearPlane
	}
	return float32(r * focalLength / vz)
}

// drawScene renders the full range from a snapshot: ground, targets,
// arrows, particles and crosshair, back to front.
func (g *Game) drawScene(screen *ebiten.Image, snap Snapshot) {
	// Sky above the horizon, turf below.
	screen.Fill(color.RGBA{R: 118, G: 160, B: 205, A: 255})
	horizon := float32(screenHeight / 2)
	vector.FillRect(screen, 0, horizon, screenWidth, screenHeight-horizon,
		color.RGBA{R: 62, G: 104, B: 58, A: 255}, false)

	// Distance markers every 10 units give the flat turf some depth.
	for z := -80.0; z <= -10.0; z += 10 {
		x0, y0, ok0 := project(Vec3{X: -30, Y: groundY, Z: z})
		x1, y1, ok1 := project(Vec3{X: 30, Y: groundY, Z: z})
		if ok0 && ok1 {
			vector.StrokeLine(screen, x0, y0, x1, y1, 1.0,
				color.RGBA{R: 50, G: 86, B: 48, A: 255}, false)
		}
	}

	g.drawTargets(screen, snap)
	g.drawArrows(screen, snap)
	g.drawParticles(screen, snap)
	g.drawCrosshair(screen, snap)
}

// drawTargets paints each face as concentric scoring rings plus a stand.
func (g *Game) drawTargets(screen *ebiten.Image, snap Snapshot) {
	for _, t := range snap.Targets {
		cx, cy, ok := project(t.Center)
		if !ok {
			continue
		}
		pr := projectRadius(t.Radius, t.Center.Z)

		// Stand: a simple post from the face down to the ground.
		gx, gy, okG := project(Vec3{X: t.Center.X, Y: groundY, Z: t.Center.Z})
		if okG {
			vector.StrokeLine(screen, cx, cy, gx, gy, 3.0,
				color.RGBA{R: 92, G: 70, B: 44, A: 255}, false)
		}

		// Rings outermost first so the bullseye lands on top.
		for i := len(ringColors) - 1; i >= 0; i-- {
			vector.FillCircle(screen, cx, cy, pr*float32(i+1)/float32(len(ringColors)),
				ringColors[i], true)
		}
		vector.StrokeCircle(screen, cx, cy, pr, 1.5,
			color.RGBA{R: 25, G: 25, B: 25, A: 255}, true)
	}
}

// drawArrows renders live arrows as short strokes along their facing.
func (g *Game) drawArrows(screen *ebiten.Image, snap Snapshot) {
	const shaftLen = 0.8
	for _, a := range snap.Arrows {
		tip := a.Pos
		tail := a.Pos.Sub(a.Facing.Scale(shaftLen))
		x0, y0, ok0 := project(tail)
		x1, y1, ok1 := project(tip)
		if !ok0 || !ok1 {
			continue
		}
		shaft := color.RGBA{R: 120, G: 84, B: 40, A: 255}
		if a.Stuck {
			shaft = color.RGBA{R: 80, G: 60, B: 32, A: 255}
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, 2.0, shaft, true)
		// Fletching dot at the tail.
		vector.FillCircle(screen, x0, y0, 2.0, color.RGBA{R: 230, G: 70, B: 60, A: 255}, true)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image, snap Snapshot) {
	for _, p := range snap.Particles {
		x, y, ok := project(p.Pos)
		if !ok {
			continue
		}
		r := projectRadius(p.Scale, p.Pos.Z)
		if r < 0.5 {
			r = 0.5
		}
		vector.FillCircle(screen, x, y, r, p.Col, false)
	}
}

// drawCrosshair places the reticle on the screen-space aim point and
// shows the draw charge as a closing pair of chevrons.
func (g *Game) drawCrosshair(screen *ebiten.Image, snap Snapshot) {
	ax, ay := g.aimScreenPoint(snap)
	c := color.RGBA{R: 250, G: 250, B: 250, A: 220}

	gap := float32(14 - 8*snap.DrawCharge) // tightens as the bow draws
	arm := float32(10)
	vector.StrokeLine(screen, ax-gap-arm, ay, ax-gap, ay, 1.5, c, true)
	vector.StrokeLine(screen, ax+gap, ay, ax+gap+arm, ay, 1.5, c, true)
	vector.StrokeLine(screen, ax, ay-gap-arm, ax, ay-gap, 1.5, c, true)
	vector.StrokeLine(screen, ax, ay+gap, ax, ay+gap+arm, 1.5, c, true)

	if snap.Drawing {
		// Charge bar under the reticle.
		w := float32(60)
		vector.StrokeRect(screen, ax-w/2, ay+28, w, 6, 1.0, c, false)
		vector.FillRect(screen, ax-w/2, ay+28, w*float32(snap.DrawCharge), 6,
			color.RGBA{R: 255, G: 200, B: 80, A: 230}, false)
	}
}

// drawHUD renders score/shots/streak/weather plus a wind arrow.
func (g *Game) drawHUD(screen *ebiten.Image, snap Snapshot) {
	face := basicfont.Face7x13

	vector.FillRect(screen, 8, 8, 250, 92, color.RGBA{R: 8, G: 14, B: 8, A: 190}, false)
	vector.StrokeRect(screen, 8, 8, 250, 92, 1.0, color.RGBA{R: 70, G: 110, B: 70, A: 200}, false)

	white := color.RGBA{R: 235, G: 235, B: 235, A: 255}
	text.Draw(screen, fmt.Sprintf("SCORE  %d", snap.Score), face, 18, 26, white)
	text.Draw(screen, fmt.Sprintf("SHOTS  %d / %d", snap.Shots, snap.MaxShots), face, 18, 42, white)
	text.Draw(screen, fmt.Sprintf("STREAK %d", snap.Streak), face, 18, 58, white)
	text.Draw(screen, fmt.Sprintf("WEATHER %s", snap.Weather), face, 18, 74, white)
	text.Draw(screen, "[C]weather [R]reset [H]hud [F2]report", face, 18, 90,
		color.RGBA{R: 160, G: 180, B: 160, A: 255})

	// Wind arrow: direction in the x/z plane, length by strength.
	wx, wz := snap.Wind.X, snap.Wind.Z
	cx, cy := float32(300), float32(40)
	vector.StrokeCircle(screen, cx, cy, 22, 1.0, color.RGBA{R: 200, G: 200, B: 200, A: 160}, true)
	if wx != 0 || wz != 0 {
		scale := float32(3.0)
		vector.StrokeLine(screen, cx, cy, cx+float32(wx)*scale, cy+float32(wz)*scale,
			2.0, color.RGBA{R: 255, G: 240, B: 140, A: 220}, true)
	}
}

func (g *Game) drawFlash(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, g.flashMsg, face, screenWidth/2-len(g.flashMsg)*7/2, screenHeight-24,
		color.RGBA{R: 255, G: 255, B: 200, A: 255})
}
