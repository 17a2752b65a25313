package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"signsnake/internal/render"
)

const (
	hudPadding = 10
	hudLine    = 20
)

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.ctrl.Frame()
	screen.Fill(f.Background)

	for _, r := range f.Cells {
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, r.Fill, false)
		vector.StrokeRect(screen, r.X, r.Y, r.W, r.H, render.StrokeWidth, r.Stroke, false)
	}

	for i, line := range f.HUD {
		g.drawText(screen, line, hudPadding, float64(hudPadding+i*hudLine), text.AlignStart)
	}

	if f.Banner != "" {
		mid := float64(f.Size) / 2
		vector.DrawFilledRect(screen, 0, float32(mid)-hudLine, f.Size, 2*hudLine, render.BannerFill, false)
		g.drawText(screen, f.Banner, mid, mid-hudSize/2, text.AlignCenter)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(render.TextColor)
	op.PrimaryAlign = align
	text.Draw(screen, s, g.face, op)
}
