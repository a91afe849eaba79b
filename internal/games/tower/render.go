package tower

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/lava-tower/internal/config"
	"github.com/vovakirdan/lava-tower/internal/core"
)

// Minimum screen size that still shows the whole ladder.
const (
	minScreenW = 40
	minScreenH = 16
)

// Glyphs
const (
	PlatformChar = '▀'
	RockChar     = '●'
	KeyChar      = 'K'
	PlayerChar   = '█'
	LavaTopChar  = '~'
	LavaChar     = '▓'
	DoorFillChar = '░'
	HeartChar    = '♥'
)

// coinFrames spin with the coin's rotation.
var coinFrames = []rune{'◐', '◓', '◑', '◒'}

// powerUpGlyphs by kind.
var powerUpGlyphs = map[PowerKind]rune{
	PowerShield:   '◆',
	PowerSlowLava: '✱',
}

// renderer draws one snapshot. It only reads the snapshot.
type renderer struct {
	dst   *core.Screen
	cfg   *config.TowerConfig
	snap  *Snapshot
	view  Viewport
	level float64
}

// Render draws a snapshot into dst using the given viewport.
func Render(dst *core.Screen, cfg *config.TowerConfig, snap *Snapshot, view Viewport, level float64) {
	r := renderer{dst: dst, cfg: cfg, snap: snap, view: view, level: level}
	r.draw()
}

func (r *renderer) draw() {
	dst := r.dst
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	if r.snap.Mode == ModeMenu {
		r.drawMenu()
		return
	}

	r.drawLava()
	r.drawPlatforms()
	r.drawDoor()
	r.drawCoins()
	r.drawKey()
	r.drawPowerUps()
	r.drawRocks()
	r.drawPlayer()
	r.drawHUD()
	r.drawOverlay()
}

func (r *renderer) drawMenu() {
	dst := r.dst
	title := strings.ToUpper(r.cfg.Title)
	dst.DrawTextCentered(dst.Height()/4, title, core.ColorOrange)
	dst.DrawTextCentered(dst.Height()/4+2, "Climb. Collect every coin. Find the key. Escape.", core.ColorGray)

	// Rising lava teaser animated by the menu counter
	wave := r.snap.MenuTicks / 8
	for x := range dst.Width() {
		ch := LavaTopChar
		if (x+wave)%4 == 0 {
			ch = '≈'
		}
		dst.SetColor(x, dst.Height()-2, ch, core.ColorOrange)
		dst.SetColor(x, dst.Height()-1, LavaChar, core.ColorRed)
	}

	r.drawButton(ControlStart, "Start")
	dst.DrawTextCentered(dst.Height()-4, "Enter or click Start  •  A/D move  •  W/Space jump  •  Q quit", core.ColorGray)
}

func (r *renderer) drawLava() {
	lava := r.snap.World.Lava
	if lava.Height <= 0 {
		return
	}
	_, top := r.view.Cell(core.Vec{X: 0, Y: min(lava.Height, r.view.H)})
	wave := r.snap.World.Tick / 8
	for y := top; y < r.view.Top+r.view.Rows; y++ {
		for x := range r.view.Cols {
			if y == top {
				ch := LavaTopChar
				if (x+wave)%4 == 0 {
					ch = '≈'
				}
				r.dst.SetColor(x, y, ch, core.ColorOrange)
				continue
			}
			r.dst.SetColor(x, y, LavaChar, core.ColorRed)
		}
	}
}

func (r *renderer) drawPlatforms() {
	for _, p := range r.snap.World.Platforms {
		if p.Destroyed {
			continue
		}
		rect := r.view.Rect(p.Box())
		r.dst.DrawHLine(rect.X, rect.Y, rect.W, PlatformChar, core.ColorWhite)
	}
}

func (r *renderer) drawDoor() {
	d := r.snap.World.Door
	rect := r.view.Rect(d.Box())

	color := core.ColorRed
	if d.Unlocked {
		color = core.ColorGreen
	}
	r.dst.DrawBox(rect, color)

	// The fill slides away as the door opens
	inner := core.NewRect(rect.X+1, rect.Y+1, rect.W-2, rect.H-2)
	closed := int(math.Round(float64(inner.W) * (1 - d.Opening)))
	r.dst.DrawRect(core.NewRect(inner.X, inner.Y, closed, inner.H), DoorFillChar, color)
}

func (r *renderer) drawCoins() {
	for _, c := range r.snap.World.Coins {
		if c.Collected {
			continue
		}
		frame := coinFrames[int(c.Rotation/90)%len(coinFrames)]
		r.drawAt(core.Vec{X: c.X, Y: c.Y}, frame, core.ColorBrightYellow)
	}
}

func (r *renderer) drawKey() {
	k := r.snap.World.Key
	if !k.Spawned || k.Collected {
		return
	}
	color := core.ColorYellow
	if int(k.Rotation/45)%2 == 0 {
		color = core.ColorBrightYellow
	}
	r.drawAt(core.Vec{X: k.X, Y: k.Y}, KeyChar, color)
}

func (r *renderer) drawPowerUps() {
	for _, p := range r.snap.World.PowerUps {
		if p.Collected {
			continue
		}
		color := core.ColorBrightCyan
		if p.Kind == PowerSlowLava {
			color = core.ColorBlue
		}
		// Blink during the last second before expiry
		if p.Timer < 60 && (p.Timer/8)%2 == 0 {
			continue
		}
		r.drawAt(core.Vec{X: p.X, Y: p.Y}, powerUpGlyphs[p.Kind], color)
	}
}

func (r *renderer) drawRocks() {
	for _, rock := range r.snap.World.Rocks {
		if !rock.Active {
			continue
		}
		r.drawAt(core.Vec{X: rock.X, Y: rock.Y}, RockChar, core.ColorGray)
	}
}

func (r *renderer) drawPlayer() {
	p := r.snap.World.Player
	color := core.ColorGreen
	switch p.PowerUp {
	case PowerShield:
		color = core.ColorBrightCyan
	case PowerSlowLava:
		color = core.ColorBlue
	}
	r.dst.DrawRect(r.view.Rect(p.Body()), PlayerChar, color)
}

// drawAt draws a single glyph at a playfield point if it is on screen.
func (r *renderer) drawAt(p core.Vec, ch rune, color core.Color) {
	if !r.view.Visible(p) {
		return
	}
	x, y := r.view.Cell(p)
	r.dst.SetColor(x, y, ch, color)
}

func (r *renderer) drawHUD() {
	w := &r.snap.World
	dst := r.dst

	x := 1
	put := func(text string, color core.Color) {
		dst.DrawTextColor(x, 0, text, color)
		x += len([]rune(text)) + 2
	}

	put(strings.Repeat(string(HeartChar), w.Player.Lives), core.ColorRed)
	put(fmt.Sprintf("Score %d", w.Player.Score), core.ColorWhite)
	put(fmt.Sprintf("Coins %d/%d", len(w.Coins)-w.CoinsLeft(), len(w.Coins)), core.ColorBrightYellow)

	switch {
	case w.Player.HasKey:
		put("Key ✓", core.ColorGreen)
	case w.Key.Spawned:
		put("Key!", core.ColorYellow)
	}

	put("Lava "+dangerBar(w.Lava.Height/r.cfg.Playfield.Height, 10), core.ColorOrange)

	if w.Player.PowerUp != PowerNone {
		secs := float64(w.Player.PowerTicks) * r.cfg.Playfield.TickMs / 1000
		put(fmt.Sprintf("%s %.1fs", w.Player.PowerUp, secs), core.ColorBrightCyan)
	}

	heat := fmt.Sprintf("Heat %d%%", int(r.level*100))
	dst.DrawTextColor(dst.Width()-len(heat)-1, 0, heat, core.ColorGray)

	if r.snap.Mode == ModePlaying && r.cfg.Controls.PauseButton {
		label := "Pause"
		if r.snap.Paused {
			label = "Resume"
		}
		r.drawButton(ControlPause, label)
	}
}

// dangerBar renders a fraction in [0, 1] as a bar of n cells.
func dangerBar(frac float64, n int) string {
	filled := int(math.Round(core.ClampF(frac, 0, 1) * float64(n)))
	return strings.Repeat("▓", filled) + strings.Repeat("░", n-filled)
}

func (r *renderer) drawOverlay() {
	switch {
	case r.snap.Mode == ModePlaying && r.snap.Paused:
		r.drawCenteredBox("PAUSED", "P to resume")
	case r.snap.Mode == ModeWon:
		r.drawCenteredBox("YOU ESCAPED!", fmt.Sprintf("Final score: %d", r.snap.World.Player.Score))
		r.drawButton(ControlRestart, "Restart (R)")
	case r.snap.Mode == ModeLost:
		title := "THE LAVA GOT YOU"
		if r.snap.World.Player.Lives == 0 {
			title = "CRUSHED BY ROCKS"
		}
		r.drawCenteredBox(title, fmt.Sprintf("Final score: %d", r.snap.World.Player.Score))
		r.drawButton(ControlRestart, "Restart (R)")
	}
}

// drawButton draws a control region with a centred label.
func (r *renderer) drawButton(c Control, label string) {
	rect := r.view.Rect(Region(r.cfg, c))
	if need := len(label) + 2; rect.W < need {
		rect.X -= (need - rect.W) / 2
		rect.W = need
	}
	r.dst.DrawRect(rect, ' ', core.ColorDefault)
	if rect.H >= 3 {
		r.dst.DrawBox(rect, core.ColorOrange)
	}
	r.dst.DrawTextColor(rect.X+(rect.W-len(label))/2, rect.Y+rect.H/2, label, core.ColorBrightYellow)
}

func (r *renderer) drawCenteredBox(title, subtitle string) {
	dst := r.dst
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height()-boxH)/2 - 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}
