package game

// Cell is a grid position.
type Cell struct{ X, Y int }

// Add returns c moved one step along d.
func (c Cell) Add(d Direction) Cell {
	return Cell{c.X + d.X, c.Y + d.Y}
}

// Direction is a unit step along one axis.
type Direction struct{ X, Y int }

var (
	Up    = Direction{0, -1}
	Down  = Direction{0, 1}
	Left  = Direction{-1, 0}
	Right = Direction{1, 0}
)

// Valid reports whether d is one of the four unit directions.
func (d Direction) Valid() bool {
	return (d.X == 0) != (d.Y == 0) && d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1
}

// SameAxis reports whether d and o move along the same axis.
func (d Direction) SameAxis(o Direction) bool {
	return (d.X != 0 && o.X != 0) || (d.Y != 0 && o.Y != 0)
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

type Phase uint8

const (
	Running Phase = iota
	Over
)

func (p Phase) String() string {
	if p == Over {
		return "over"
	}
	return "running"
}

// Outcome says why a session ended.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	HitWall
	HitSelf
	BoardFull
)

func (o Outcome) String() string {
	switch o {
	case HitWall:
		return "wall"
	case HitSelf:
		return "self"
	case BoardFull:
		return "board_full"
	}
	return "none"
}

// Events reports what a single Step did.
type Events struct {
	Moved     bool
	Collected bool
	NewBest   bool
	Over      bool
	Outcome   Outcome
	Score     int
	Best      int
}
