package play

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"signsnake/internal/config"
	"signsnake/internal/game"
	"signsnake/internal/render"
	"signsnake/internal/share"
	"signsnake/internal/sound"
)

const (
	FlashDuration  = 100 * time.Millisecond
	BannerDuration = 3 * time.Second
)

// Cues plays sounds.
type Cues interface {
	Play(sound.Cue)
	ToggleMute() bool
	Muted() bool
}

// Scores persists the best score.
type Scores interface {
	SaveBestScore(score int) error
}

// Recorder receives gameplay counters.
type Recorder interface {
	Tick()
	Collected()
	Best(score int)
	GameOver(outcome string, score int)
}

// Deps are the side-effect sinks. Nil fields are replaced by no-ops.
type Deps struct {
	Cues    Cues
	Scores  Scores
	Metrics Recorder
	Open    share.Opener
	Log     *log.Logger
}

type Options struct {
	Difficulty config.Difficulty
	Best       int
	Seed       int64
	ShareURL   string
}

// Controller runs sessions: it owns the tick clock, drives the
// Running -> Over -> Running cycle and turns step events into sound,
// storage, metrics and on-screen feedback.
type Controller struct {
	deps       Deps
	opts       Options
	preset     config.Preset
	session    *game.Session
	id         string
	clock      Clock
	paused     bool
	flash      time.Duration
	banner     time.Duration
	bannerText string
}

func New(opts Options, deps Deps) *Controller {
	if deps.Cues == nil {
		deps.Cues = &silent{}
	}
	if deps.Scores == nil {
		deps.Scores = noScores{}
	}
	if deps.Metrics == nil {
		deps.Metrics = noMetrics{}
	}
	if deps.Open == nil {
		deps.Open = share.Browser
	}
	if deps.Log == nil {
		deps.Log = log.New(os.Stderr, "play ", log.LstdFlags)
	}
	c := &Controller{deps: deps, opts: opts}
	c.deps.Metrics.Best(opts.Best)
	c.begin(game.NewSession(c.sessionOptions(opts.Best)))
	return c
}

func (c *Controller) sessionOptions(best int) game.Options {
	c.preset = config.PresetFor(c.opts.Difficulty)
	return game.Options{GridSize: c.preset.GridSize, Best: best, Seed: c.opts.Seed}
}

// begin installs s and restarts the clock for it.
func (c *Controller) begin(s *game.Session) {
	c.clock.Stop()
	c.session = s
	c.id = uuid.NewString()
	c.paused = false
	c.clock.Start(c.preset.TickInterval)
	c.deps.Log.Printf("session %s started: difficulty=%s grid=%d best=%d", c.id, c.opts.Difficulty, s.GridSize, s.Best)
}

func (c *Controller) Session() *game.Session { return c.session }
func (c *Controller) SessionID() string      { return c.id }
func (c *Controller) Preset() config.Preset  { return c.preset }
func (c *Controller) Difficulty() config.Difficulty {
	return c.opts.Difficulty
}
func (c *Controller) Paused() bool { return c.paused }

// Restart abandons the current session and starts a fresh one.
func (c *Controller) Restart() {
	c.begin(c.session.Restart())
}

// SetDifficulty switches preset and starts a new session on it.
func (c *Controller) SetDifficulty(d config.Difficulty) {
	c.opts.Difficulty = d
	c.begin(game.NewSession(c.sessionOptions(c.session.Best)))
}

// Steer forwards a direction intent to the running session.
func (c *Controller) Steer(d game.Direction) bool {
	if c.paused {
		return false
	}
	return c.session.Steer(d)
}

func (c *Controller) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

func (c *Controller) ToggleMute() bool {
	m := c.deps.Cues.ToggleMute()
	c.deps.Log.Printf("sound muted=%t", m)
	return m
}

// Share opens a post link carrying the current score.
func (c *Controller) Share() (string, error) {
	u, err := share.Score(c.deps.Open, c.session.Score, c.opts.ShareURL)
	if err != nil {
		c.deps.Log.Printf("share: %v", err)
	}
	return u, err
}

// Update advances presentation timers by dt and runs a tick when one is due.
func (c *Controller) Update(dt time.Duration) game.Events {
	c.flash = decay(c.flash, dt)
	c.banner = decay(c.banner, dt)
	if c.paused || !c.clock.Advance(dt) {
		return game.Events{}
	}
	ev := c.session.Step()
	c.dispatch(ev)
	return ev
}

func (c *Controller) dispatch(ev game.Events) {
	c.deps.Metrics.Tick()
	if ev.Collected {
		c.deps.Cues.Play(sound.Collect)
		c.deps.Metrics.Collected()
		c.flash = FlashDuration
	}
	if ev.NewBest {
		c.deps.Metrics.Best(ev.Best)
		if err := c.deps.Scores.SaveBestScore(ev.Best); err != nil {
			c.deps.Log.Printf("save best score: %v", err)
		}
	}
	if ev.Over {
		c.over(ev)
	}
}

func (c *Controller) over(ev game.Events) {
	c.clock.Stop()
	c.deps.Cues.Play(sound.GameOver)
	c.deps.Metrics.GameOver(ev.Outcome.String(), ev.Score)

	if ev.Outcome == game.BoardFull {
		c.bannerText = fmt.Sprintf("Board cleared! Score: %d", ev.Score)
	} else {
		c.bannerText = fmt.Sprintf("Game Over! Score: %d", ev.Score)
	}
	c.banner = BannerDuration
	c.deps.Log.Printf("session %s over: outcome=%s score=%d best=%d ticks=%d", c.id, ev.Outcome, ev.Score, ev.Best, c.session.Ticks)

	c.Restart()
}

// Frame describes the current screen.
func (c *Controller) Frame() render.Frame {
	st := render.Status{
		Difficulty: string(c.opts.Difficulty),
		Flash:      c.flash > 0,
		Muted:      c.deps.Cues.Muted(),
		Paused:     c.paused,
	}
	if c.banner > 0 {
		st.Banner = c.bannerText
	}
	return render.Build(c.session, float32(c.preset.SurfaceSize), st)
}

func decay(d, dt time.Duration) time.Duration {
	if d <= dt {
		return 0
	}
	return d - dt
}

type silent struct{ muted bool }

func (s *silent) Play(sound.Cue)   {}
func (s *silent) ToggleMute() bool { s.muted = !s.muted; return s.muted }
func (s *silent) Muted() bool      { return s.muted }

type noScores struct{}

func (noScores) SaveBestScore(int) error { return nil }

type noMetrics struct{}

func (noMetrics) Tick()                {}
func (noMetrics) Collected()           {}
func (noMetrics) Best(int)             {}
func (noMetrics) GameOver(string, int) {}
