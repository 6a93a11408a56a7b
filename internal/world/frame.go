package world

import (
	"fmt"
	"strings"

	"nova-arena/internal/geom"
	"nova-arena/internal/script"
)

// Frame is the complete description of one rendered picture. The world only
// reports shapes and labels; turning them into pixels is the presentation
// layer's problem, which keeps the simulation testable without a display.
type Frame struct {
	Circles   []CircleShape
	Rects     []RectShape
	Triangles []TriangleShape
	Labels    []TextLabel
}

type CircleShape struct {
	Pos    geom.Vec2
	Radius float32
	Color  script.Color
}

// RectShape is centered on Pos, matching the collider convention.
type RectShape struct {
	Pos   geom.Vec2
	W, H  float32
	Color script.Color
}

type TriangleShape struct {
	A, B, C geom.Vec2
	Color   script.Color
}

type TextLabel struct {
	Pos   geom.Vec2
	Size  float32
	Color script.Color
	Text  string
}

var (
	hudColor    = script.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}
	dimColor    = script.Color{R: 0.6, G: 0.6, B: 0.6, A: 1}
	titleColor  = script.Color{R: 1, G: 0.9, B: 0.3, A: 1}
	dangerColor = script.Color{R: 1, G: 0.35, B: 0.3, A: 1}
	cardColor   = script.Color{R: 0.12, G: 0.12, B: 0.18, A: 0.95}
	shadeColor  = script.Color{R: 0, G: 0, B: 0, A: 0.6}
)

// BuildFrame renders the current phase into draw requests.
func (w *World) BuildFrame() *Frame {
	f := &Frame{}
	switch w.phase {
	case PhasePlaying:
		w.appendEntities(f)
		w.appendPlayingHUD(f)
	case PhaseWeaponSelection:
		w.appendEntities(f)
		w.appendWeaponSelection(f)
	case PhaseGameOver:
		w.appendEntities(f)
		w.appendCenterBanner(f, "GAME OVER", dangerColor,
			fmt.Sprintf("You reached wave %d", w.Wave),
			"Press Enter to restart")
	case PhaseWon:
		w.appendCenterBanner(f, "YOU SURVIVED", titleColor,
			fmt.Sprintf("Waves cleared: %d", w.Stats.WavesStarted),
			fmt.Sprintf("Enemies destroyed: %d", w.Stats.EnemiesKilled),
			fmt.Sprintf("Final level: %d", w.Player.Level),
			"Loadout: "+w.weaponSummary(),
			"Press Enter to play again")
	case PhaseScriptError:
		w.appendScriptError(f)
	}
	return f
}

func (w *World) appendEntities(f *Frame) {
	for i := range w.Projectiles {
		w.appendProjectile(f, &w.Projectiles[i])
	}
	for i := range w.Enemies {
		w.appendEnemy(f, &w.Enemies[i])
	}

	pv := w.Visual.Player
	f.Circles = append(f.Circles, CircleShape{
		Pos:    w.Player.Pos,
		Radius: w.Player.Stats.Radius,
		Color:  pv.BodyColor,
	})
	f.Triangles = append(f.Triangles, indicatorTriangle(
		w.Player.Pos, w.Player.Facing, w.Player.Stats.Radius, pv))
}

func (w *World) appendEnemy(f *Frame, e *Enemy) {
	vis := w.Visual.BasicEnemy
	if e.Kind == EnemyChaser {
		vis = w.Visual.ChaserEnemy
	}
	f.Circles = append(f.Circles, CircleShape{
		Pos:    e.Pos,
		Radius: e.Stats.Radius,
		Color:  vis.BodyColor,
	})
	if e.Vel.LenSq() > 0 {
		f.Triangles = append(f.Triangles, indicatorTriangle(
			e.Pos, e.Vel, e.Stats.Radius, vis))
	}
}

func (w *World) appendProjectile(f *Frame, p *Projectile) {
	switch p.Kind {
	case ProjectilePulse:
		vis := w.Visual.Pulse
		col := vis.BodyColor
		if p.Stats.TimeToLive > 0 {
			// Fade out over the pulse lifetime.
			col.A *= clamp01(p.TimeRemaining / p.Stats.TimeToLive)
		}
		f.Rects = append(f.Rects, RectShape{
			Pos:   p.Pos,
			W:     p.Stats.Width,
			H:     p.Stats.Height,
			Color: col,
		})
	case ProjectileHomingMissile:
		vis := w.Visual.HomingMissile
		f.Circles = append(f.Circles, CircleShape{
			Pos:    p.Pos,
			Radius: p.Stats.Radius,
			Color:  vis.BodyColor,
		})
		if p.Vel.LenSq() > 0 {
			f.Triangles = append(f.Triangles, indicatorTriangle(
				p.Pos, p.Vel, p.Stats.Radius, vis))
		}
	default:
		f.Circles = append(f.Circles, CircleShape{
			Pos:    p.Pos,
			Radius: p.Stats.Radius,
			Color:  w.Visual.EnergyBall.BodyColor,
		})
	}
}

// indicatorTriangle builds the small heading wedge drawn just outside an
// entity's body, pointing along dir.
func indicatorTriangle(pos, dir geom.Vec2, radius float32, vis script.EntityVisual) TriangleShape {
	u := dir.Norm()
	if u.LenSq() == 0 {
		u = geom.Vec2{X: 1}
	}
	perp := geom.Vec2{X: -u.Y, Y: u.X}
	base := pos.Add(u.Mul(radius))
	half := vis.IndicatorSize * 1.5

	return TriangleShape{
		A:     base.Add(u.Mul(vis.IndicatorSize * 3)),
		B:     base.Add(perp.Mul(half)),
		C:     base.Sub(perp.Mul(half)),
		Color: vis.IndicatorColor,
	}
}

func (w *World) appendPlayingHUD(f *Frame) {
	f.Labels = append(f.Labels,
		TextLabel{Pos: geom.Vec2{X: 10, Y: 20}, Size: 16, Color: hudColor,
			Text: fmt.Sprintf("Wave %d/%d", w.Wave, w.Constants.MaxWaves)},
		TextLabel{Pos: geom.Vec2{X: 10, Y: 40}, Size: 16, Color: hudColor,
			Text: fmt.Sprintf("Level %d  XP %d/%d", w.Player.Level, w.Player.XP, XPForLevel(w.Player.Level+1))},
		TextLabel{Pos: geom.Vec2{X: 10, Y: 60}, Size: 14, Color: dimColor,
			Text: w.weaponSummary()},
		TextLabel{Pos: geom.Vec2{X: 10, Y: w.H - 12}, Size: 12, Color: dimColor,
			Text: "WASD/arrows move - mouse aims - P pause - R reload script"},
	)
	if w.Paused {
		f.Labels = append(f.Labels, TextLabel{
			Pos: geom.Vec2{X: w.W/2 - 50, Y: w.H / 2}, Size: 32,
			Color: titleColor, Text: "PAUSED",
		})
	}
}

func (w *World) weaponSummary() string {
	if len(w.Player.Weapons) == 0 {
		return "No weapons"
	}
	parts := make([]string, 0, len(w.Player.Weapons))
	for i := range w.Player.Weapons {
		wp := &w.Player.Weapons[i]
		parts = append(parts, fmt.Sprintf("%s L%d", wp.Kind, wp.Level))
	}
	return strings.Join(parts, "  ")
}

func (w *World) appendWeaponSelection(f *Frame) {
	f.Rects = append(f.Rects, RectShape{
		Pos: geom.Vec2{X: w.W / 2, Y: w.H / 2}, W: w.W, H: w.H, Color: shadeColor,
	})

	title := "CHOOSE YOUR WEAPON"
	if len(w.Player.Weapons) > 0 {
		title = "LEVEL UP - PICK AN UPGRADE"
	}
	f.Labels = append(f.Labels, TextLabel{
		Pos: geom.Vec2{X: w.W/2 - 140, Y: w.H/2 - 120}, Size: 24,
		Color: titleColor, Text: title,
	})

	cardW, cardH := w.W/4, float32(110)
	gap := cardW / 4
	startX := w.W/2 - cardW - gap
	for slot := 0; slot < WeaponSlotCount; slot++ {
		kind := WeaponKind(slot)
		cx := startX + float32(slot)*(cardW+gap)
		cy := w.H / 2
		f.Rects = append(f.Rects, RectShape{
			Pos: geom.Vec2{X: cx, Y: cy}, W: cardW, H: cardH, Color: cardColor,
		})

		status := "NEW"
		stats := baseWeaponStats(kind)
		if idx := w.Player.WeaponIndex(kind); idx >= 0 {
			owned := &w.Player.Weapons[idx]
			status = fmt.Sprintf("Level %d -> %d", owned.Level, owned.Level+1)
			stats = owned.Stats
		} else if len(w.Player.Weapons) >= MaxWeapons {
			status = "SLOTS FULL"
		}

		f.Labels = append(f.Labels,
			TextLabel{Pos: geom.Vec2{X: cx - cardW/2 + 10, Y: cy - 40}, Size: 18,
				Color: hudColor, Text: fmt.Sprintf("[%d] %s", slot+1, kind)},
			TextLabel{Pos: geom.Vec2{X: cx - cardW/2 + 10, Y: cy - 10}, Size: 14,
				Color: dimColor, Text: status},
			TextLabel{Pos: geom.Vec2{X: cx - cardW/2 + 10, Y: cy + 20}, Size: 14,
				Color: dimColor,
				Text: fmt.Sprintf("dmg %.0f  cd %.2fs", stats.Projectile.Damage, stats.Cooldown)},
		)
	}
}

func (w *World) appendCenterBanner(f *Frame, title string, titleCol script.Color, lines ...string) {
	y := w.H/2 - 60
	f.Labels = append(f.Labels, TextLabel{
		Pos: geom.Vec2{X: w.W/2 - 100, Y: y}, Size: 36, Color: titleCol, Text: title,
	})
	for i, line := range lines {
		f.Labels = append(f.Labels, TextLabel{
			Pos:  geom.Vec2{X: w.W/2 - 100, Y: y + 50 + float32(i)*24},
			Size: 16, Color: hudColor, Text: line,
		})
	}
}

func (w *World) appendScriptError(f *Frame) {
	f.Labels = append(f.Labels, TextLabel{
		Pos: geom.Vec2{X: w.W/2 - 110, Y: w.H/2 - 100}, Size: 32,
		Color: dangerColor, Text: "SCRIPT ERROR",
	})

	lines := strings.Split(w.errorMessage, "\n")
	if len(lines) > 6 {
		lines = lines[:6]
	}
	for i, line := range lines {
		f.Labels = append(f.Labels, TextLabel{
			Pos:  geom.Vec2{X: w.W/2 - 200, Y: w.H/2 - 50 + float32(i)*20},
			Size: 14, Color: hudColor, Text: line,
		})
	}
	f.Labels = append(f.Labels, TextLabel{
		Pos:  geom.Vec2{X: w.W/2 - 200, Y: w.H/2 + 90},
		Size: 14, Color: dimColor,
		Text: "Fix the script and press R to reload, or Enter to restart",
	})
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
