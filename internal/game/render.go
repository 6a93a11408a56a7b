package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"nova-arena/internal/script"
	"nova-arena/internal/world"
)

// renderFrame rasterizes the world's draw requests. Ordering within the
// frame is back-to-front: rects, circles, triangle outlines, then text.
func (g *Game) renderFrame(screen *ebiten.Image, f *world.Frame) {
	screen.Fill(color.RGBA{15, 15, 18, 255})

	for _, r := range f.Rects {
		vector.FillRect(
			screen,
			r.Pos.X-r.W/2, r.Pos.Y-r.H/2,
			r.W, r.H,
			rgba(r.Color),
			false,
		)
	}
	for _, c := range f.Circles {
		vector.FillCircle(
			screen,
			c.Pos.X, c.Pos.Y,
			c.Radius,
			rgba(c.Color),
			false,
		)
	}
	for _, tr := range f.Triangles {
		clr := rgba(tr.Color)
		vector.StrokeLine(screen, tr.A.X, tr.A.Y, tr.B.X, tr.B.Y, 2, clr, false)
		vector.StrokeLine(screen, tr.B.X, tr.B.Y, tr.C.X, tr.C.Y, 2, clr, false)
		vector.StrokeLine(screen, tr.C.X, tr.C.Y, tr.A.X, tr.A.Y, 2, clr, false)
	}
	for _, l := range f.Labels {
		ebitenutil.DebugPrintAt(screen, l.Text, int(l.Pos.X), int(l.Pos.Y))
	}
}

// drawPlayerSprite overlays the player texture on the vector body once the
// loader has delivered it.
func (g *Game) drawPlayerSprite(screen *ebiten.Image) {
	phase := g.w.Phase()
	if phase != world.PhasePlaying && phase != world.PhaseWeaponSelection {
		return
	}
	img := g.assets.Get("player")
	if img == nil {
		return
	}

	b := img.Bounds()
	d := float64(g.w.Player.Stats.Radius) * 2
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d/float64(b.Dx()), d/float64(b.Dy()))
	op.GeoM.Translate(float64(g.w.Player.Pos.X)-d/2, float64(g.w.Player.Pos.Y)-d/2)
	screen.DrawImage(img, op)
}

func rgba(c script.Color) color.RGBA {
	return color.RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
