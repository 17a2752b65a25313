// Package app runs the game inside an Ebiten window.
package app

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"signsnake/internal/config"
	"signsnake/internal/input"
	"signsnake/internal/play"
	"signsnake/internal/sound"
)

const (
	windowTitle = "SignSnake"
	hudSize     = 16
)

// Game implements ebiten.Game on top of a play.Controller.
type Game struct {
	ctrl  *play.Controller
	swipe *input.Swipe
	touch ebiten.TouchID
	face  *text.GoTextFace
	done  <-chan struct{}

	isFullscreen bool
}

// Options wires the side-effect sinks the controller needs besides sound.
type Options struct {
	Config  config.Config
	Best    int
	Scores  play.Scores
	Metrics play.Recorder
	Log     *log.Logger

	// Done ends the window loop when closed.
	Done <-chan struct{}
}

// New builds the window game. The audio context is process wide, so New
// must only be called once.
func New(opts Options) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	cues := newCues(opts.Config.Muted)

	ctrl := play.New(play.Options{
		Difficulty: opts.Config.Difficulty,
		Best:       opts.Best,
		Seed:       opts.Config.Seed,
		ShareURL:   opts.Config.ShareURL,
	}, play.Deps{
		Cues:    cues,
		Scores:  opts.Scores,
		Metrics: opts.Metrics,
		Log:     opts.Log,
	})

	return &Game{
		ctrl:  ctrl,
		swipe: input.NewSwipe(),
		touch: -1,
		face:  &text.GoTextFace{Source: src, Size: hudSize},
		done:  opts.Done,
	}, nil
}

func newCues(muted bool) *sound.Board {
	ctx := audio.NewContext(sound.SampleRate)
	players := make(map[sound.Cue]sound.Player, len(sound.Beeps))
	for cue, sp := range sound.Beeps {
		players[cue] = ctx.NewPlayerFromBytes(sound.Tone(sp))
	}
	return sound.NewBoard(players, muted)
}

// Run opens the window and blocks until it is closed or Done fires.
func (g *Game) Run() error {
	size := g.ctrl.Preset().SurfaceSize
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}

	g.handleWindowKeys()
	g.handleKeys()
	g.handlePointer()

	dt := time.Second / time.Duration(ebiten.TPS())
	g.ctrl.Update(dt)
	return nil
}

// Layout keeps the logical surface at the preset size and lets Ebiten
// scale it into the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.isFullscreen = ebiten.IsWindowMaximized()
	size := g.ctrl.Preset().SurfaceSize
	return size, size
}
