package game

import (
	"math/rand"
	"time"
)

// ItemScore is added to the score for every collected item.
const ItemScore = 10

// Options configures a new Session.
type Options struct {
	GridSize int
	// Best is the best score carried in from storage or a previous session.
	Best int
	// Seed feeds the item placement source. Zero picks a time based seed.
	Seed int64
}

// Session is the whole state of one game. It is not safe for concurrent use.
type Session struct {
	GridSize int
	Snake    []Cell // head first
	Dir      Direction
	Item     Cell
	HasItem  bool
	Score    int
	Best     int
	Phase    Phase
	Outcome  Outcome
	Ticks    int

	next Direction
	opts Options
	rng  *rand.Rand
}

// NewSession returns a running session with a one cell snake in the grid
// centre heading right.
func NewSession(opts Options) *Session {
	if opts.GridSize < 1 {
		opts.GridSize = 1
	}
	if opts.Best < 0 {
		opts.Best = 0
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mid := opts.GridSize / 2
	s := &Session{
		GridSize: opts.GridSize,
		Snake:    []Cell{{mid, mid}},
		Dir:      Right,
		next:     Right,
		Best:     opts.Best,
		Phase:    Running,
		opts:     opts,
		rng:      rand.New(rand.NewSource(seed)),
	}
	s.placeItem()
	return s
}

// Restart returns a fresh session with the same options, keeping only the
// best score. The receiver is left untouched.
func (s *Session) Restart() *Session {
	opts := s.opts
	opts.Best = s.Best
	if opts.Seed != 0 {
		// Keep restarts reproducible without replaying the same board.
		opts.Seed = s.rng.Int63() | 1
	}
	return NewSession(opts)
}

// Head returns the first snake cell.
func (s *Session) Head() Cell {
	return s.Snake[0]
}

// Pending returns the direction the next tick will apply.
func (s *Session) Pending() Direction {
	return s.next
}

// Steer queues d for the next tick. Turns along the axis the snake moved on
// during the last tick are ignored, so the snake can never reverse into its
// own neck even with several inputs between ticks.
func (s *Session) Steer(d Direction) bool {
	if s.Phase != Running || !d.Valid() || d.SameAxis(s.Dir) {
		return false
	}
	s.next = d
	return true
}

// Step advances the session by one tick.
func (s *Session) Step() Events {
	if s.Phase != Running {
		return Events{Score: s.Score, Best: s.Best}
	}
	s.Ticks++
	s.Dir = s.next
	head := s.Head().Add(s.Dir)

	if !s.InBounds(head) {
		return s.end(HitWall)
	}
	if s.Occupied(head) {
		return s.end(HitSelf)
	}

	ev := Events{Moved: true}
	s.Snake = append(s.Snake, Cell{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = head

	if s.HasItem && head == s.Item {
		ev.Collected = true
		s.Score += ItemScore
		if s.Score > s.Best {
			s.Best = s.Score
			ev.NewBest = true
		}
		if !s.placeItem() {
			ev = s.finish(ev, BoardFull)
		}
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}

	ev.Score, ev.Best = s.Score, s.Best
	return ev
}

// InBounds reports whether c lies inside the grid.
func (s *Session) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < s.GridSize && c.Y >= 0 && c.Y < s.GridSize
}

// Occupied reports whether any snake cell equals c.
func (s *Session) Occupied(c Cell) bool {
	for _, b := range s.Snake {
		if b == c {
			return true
		}
	}
	return false
}

func (s *Session) end(o Outcome) Events {
	return s.finish(Events{Score: s.Score, Best: s.Best}, o)
}

func (s *Session) finish(ev Events, o Outcome) Events {
	s.Phase = Over
	s.Outcome = o
	ev.Over = true
	ev.Outcome = o
	ev.Score, ev.Best = s.Score, s.Best
	return ev
}
