package sound

import (
	"math"
	"sync"
)

// SampleRate of every generated cue.
const SampleRate = 44100

type Cue uint8

const (
	Collect Cue = iota
	GameOver
)

func (c Cue) String() string {
	if c == GameOver {
		return "game_over"
	}
	return "collect"
}

// Beep describes a decaying sine beep.
type Beep struct {
	Freq  float64
	Dur   float64 // seconds
	Gain  float64
	Decay float64
}

// Beeps holds the beep for each cue.
var Beeps = map[Cue]Beep{
	Collect:  {Freq: 880, Dur: 0.1, Gain: 4000, Decay: 3},
	GameOver: {Freq: 220, Dur: 0.4, Gain: 4000, Decay: 3},
}

// Tone renders sp as 16-bit little endian stereo PCM.
func Tone(sp Beep) []byte {
	n := int(float64(SampleRate) * sp.Dur)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		v := int16(math.Sin(2*math.Pi*sp.Freq*t) * sp.Gain * math.Exp(-sp.Decay*t))
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}

// Player is the part of an audio player a cue needs.
type Player interface {
	Rewind() error
	Play()
}

// Board plays cues fire-and-forget behind a single mute flag.
type Board struct {
	mu      sync.Mutex
	players map[Cue]Player
	muted   bool
}

func NewBoard(players map[Cue]Player, muted bool) *Board {
	return &Board{players: players, muted: muted}
}

// Play starts c from the beginning unless muted. Unknown cues are ignored.
func (b *Board) Play(c Cue) {
	b.mu.Lock()
	p, ok := b.players[c]
	muted := b.muted
	b.mu.Unlock()
	if muted || !ok || p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

func (b *Board) SetMuted(m bool) {
	b.mu.Lock()
	b.muted = m
	b.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (b *Board) ToggleMute() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.muted = !b.muted
	return b.muted
}

func (b *Board) Muted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.muted
}
