// Package input turns raw pointer drags into steering intents.
package input

import (
	"math"

	"signsnake/internal/game"
)

// SwipeThreshold is the minimum drag in pixels along the dominant axis.
const SwipeThreshold = 20

// Swipe tracks one drag gesture.
type Swipe struct {
	Threshold float64

	active bool
	x, y   float64
}

func NewSwipe() *Swipe {
	return &Swipe{Threshold: SwipeThreshold}
}

// Begin anchors a drag at (x, y).
func (s *Swipe) Begin(x, y float64) {
	s.active = true
	s.x, s.y = x, y
}

// End forgets the current drag.
func (s *Swipe) End() {
	s.active = false
}

func (s *Swipe) Active() bool { return s.active }

// Move reports a direction once the drag from the anchor passes the
// threshold. The anchor then moves to (x, y) so a continued drag can turn
// again.
func (s *Swipe) Move(x, y float64) (game.Direction, bool) {
	if !s.active {
		return game.Direction{}, false
	}
	d, ok := Classify(x-s.x, y-s.y, s.Threshold)
	if ok {
		s.x, s.y = x, y
	}
	return d, ok
}

// Classify maps a displacement to a direction. Horizontal wins when it is
// the larger component; otherwise the vertical component must pass the
// threshold on its own.
func Classify(dx, dy, threshold float64) (game.Direction, bool) {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ax > ay && ax > threshold:
		if dx > 0 {
			return game.Right, true
		}
		return game.Left, true
	case ay > threshold:
		if dy > 0 {
			return game.Down, true
		}
		return game.Up, true
	}
	return game.Direction{}, false
}
