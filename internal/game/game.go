package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Host constants ---

const (
	screenWidth  = 1280
	screenHeight = 720

	// Mouse-to-aim sensitivity, radians per pixel of cursor travel.
	aimSensitivity = 0.003

	// HUD flash messages persist this long.
	flashDuration = 2 * time.Second
)

// Game is the ebiten host around a Session. It owns input mapping and
// rendering only; every gameplay rule lives in the session. The session's
// snapshot is consumed read-only each frame.
type Game struct {
	session *Session
	simLog  *SimLog

	lastFrame time.Time

	prevKeys       map[ebiten.Key]bool
	prevMouse      bool
	prevCX, prevCY int
	haveCursor     bool

	showHUD    bool
	flashMsg   string
	flashUntil time.Time
}

// New creates the playable game with the shipped tuning and a time seed.
func New() *Game {
	g := &Game{
		session:  NewSession(DefaultConfig(), time.Now().UnixNano()),
		simLog:   NewSimLog(false),
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
	}
	// The host keeps a session log so the F2 debug report has shot history.
	g.session.simLog = g.simLog
	return g
}

// Update runs one simulation tick per rendered frame. The raw wall-clock
// delta goes straight to the session, which clamps it.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastFrame.IsZero() {
		dt = now.Sub(g.lastFrame).Seconds()
	}
	g.lastFrame = now

	g.handleInput()
	g.session.Tick(dt)
	return nil
}

// handleInput maps raw device state to session events. Key actions are
// edge-triggered against the previous frame's state.
func (g *Game) handleInput() {
	// Mouse look: cursor travel becomes yaw/pitch deltas.
	cx, cy := ebiten.CursorPosition()
	if g.haveCursor {
		dx := float64(cx - g.prevCX)
		dy := float64(cy - g.prevCY)
		if dx != 0 || dy != 0 {
			g.session.Aim(dx*aimSensitivity, -dy*aimSensitivity)
		}
	}
	g.prevCX, g.prevCY = cx, cy
	g.haveCursor = true

	// Hold left button to draw, release to loose.
	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouse && !g.prevMouse {
		g.session.BeginDraw()
	}
	if !mouse && g.prevMouse {
		g.session.EndDraw()
	}
	g.prevMouse = mouse

	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if pressed(ebiten.KeyC) {
		g.session.CycleWeather()
		g.flash("weather: " + g.session.Snapshot().Weather)
	}
	if pressed(ebiten.KeyR) {
		g.session.Reset()
		g.flash("range reset")
	}
	if pressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if pressed(ebiten.KeyF2) {
		if err := g.copyDebugReport(); err != nil {
			g.flash("report copy failed: " + err.Error())
		} else {
			g.flash("report copied to clipboard")
		}
	}

	// Arrow keys nudge aim for mouse-less setups.
	const keyAim = 0.02
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.session.Aim(-keyAim, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.session.Aim(keyAim, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.session.Aim(0, keyAim)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.session.Aim(0, -keyAim)
	}

	g.prevKeys = currentKeys
}

// flash shows a transient HUD message.
func (g *Game) flash(msg string) {
	g.flashMsg = msg
	g.flashUntil = time.Now().Add(flashDuration)
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	g.drawScene(screen, snap)
	if g.showHUD {
		g.drawHUD(screen, snap)
	}
	if g.flashMsg != "" && time.Now().Before(g.flashUntil) {
		g.drawFlash(screen)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// aimScreenPoint projects the current aim ray to screen space, placing the
// crosshair where an unaffected (no gravity, no wind) arrow would point.
func (g *Game) aimScreenPoint(snap Snapshot) (float32, float32) {
	const aimDepth = 30.0
	dir := Vec3{
		X: math.Sin(snap.Yaw) * math.Cos(snap.Pitch),
		Y: math.Sin(snap.Pitch),
		Z: -math.Cos(snap.Yaw) * math.Cos(snap.Pitch),
	}
	p := dir.Scale(aimDepth)
	p.Y += eyeHeight
	x, y, ok := project(p)
	if !ok {
		return screenWidth / 2, screenHeight / 2
	}
	return x, y
}
