package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"signsnake/internal/config"
	"signsnake/internal/game"
)

var steerKeys = []struct {
	keys []ebiten.Key
	dir  game.Direction
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, game.Up},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, game.Down},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, game.Left},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, game.Right},
}

var difficultyKeys = map[ebiten.Key]config.Difficulty{
	ebiten.Key1: config.Easy,
	ebiten.Key2: config.Medium,
	ebiten.Key3: config.Hard,
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) handleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.isFullscreen = !g.isFullscreen
		if g.isFullscreen {
			ebiten.MaximizeWindow()
		} else {
			ebiten.RestoreWindow()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && g.isFullscreen {
		g.isFullscreen = false
		ebiten.RestoreWindow()
	}
}

func (g *Game) handleKeys() {
	for _, sk := range steerKeys {
		if justPressed(sk.keys...) {
			g.ctrl.Steer(sk.dir)
		}
	}
	for k, d := range difficultyKeys {
		if inpututil.IsKeyJustPressed(k) && d != g.ctrl.Difficulty() {
			g.ctrl.SetDifficulty(d)
		}
	}
	if justPressed(ebiten.KeyP) {
		g.ctrl.TogglePause()
	}
	if justPressed(ebiten.KeyM) {
		g.ctrl.ToggleMute()
	}
	if justPressed(ebiten.KeyX) {
		_, _ = g.ctrl.Share()
	}
	if justPressed(ebiten.KeyEnter, ebiten.KeyR) {
		g.ctrl.Restart()
	}
}

// handlePointer feeds the first touch, or a left mouse drag, to the swipe
// recognizer.
func (g *Game) handlePointer() {
	if g.touch < 0 {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touch = ids[0]
			x, y := ebiten.TouchPosition(g.touch)
			g.swipe.Begin(float64(x), float64(y))
		}
	}
	if g.touch >= 0 {
		if inpututil.IsTouchJustReleased(g.touch) {
			g.touch = -1
			g.swipe.End()
			return
		}
		x, y := ebiten.TouchPosition(g.touch)
		g.drag(x, y)
		return
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		x, y := ebiten.CursorPosition()
		g.swipe.Begin(float64(x), float64(y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.swipe.End()
	case g.swipe.Active() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.drag(ebiten.CursorPosition())
	}
}

func (g *Game) drag(x, y int) {
	if d, ok := g.swipe.Move(float64(x), float64(y)); ok {
		g.ctrl.Steer(d)
	}
}
