package input

import (
	"testing"

	"signsnake/internal/game"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   game.Direction
		ok     bool
	}{
		{25, 0, game.Right, true},
		{-25, 3, game.Left, true},
		{0, 21, game.Down, true},
		{4, -30, game.Up, true},
		{20, 0, game.Direction{}, false},
		{10, 10, game.Direction{}, false},
		{30, 30, game.Down, true},
		{0, 0, game.Direction{}, false},
	}
	for _, tc := range cases {
		got, ok := Classify(tc.dx, tc.dy, SwipeThreshold)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Classify(%v, %v) = %v, %v; want %v, %v", tc.dx, tc.dy, got, ok, tc.want, tc.ok)
		}
	}
}

func TestSwipeReanchors(t *testing.T) {
	s := NewSwipe()
	s.Begin(100, 100)

	if _, ok := s.Move(110, 100); ok {
		t.Fatalf("short drag recognized")
	}
	d, ok := s.Move(130, 100)
	if !ok || d != game.Right {
		t.Fatalf("got %v, %v; want right", d, ok)
	}
	if _, ok := s.Move(135, 105); ok {
		t.Fatalf("drag not re-anchored after intent")
	}
	d, ok = s.Move(135, 140)
	if !ok || d != game.Down {
		t.Fatalf("got %v, %v; want down", d, ok)
	}
}

func TestSwipeInactive(t *testing.T) {
	s := NewSwipe()
	if _, ok := s.Move(500, 0); ok {
		t.Fatalf("move without begin recognized")
	}
	s.Begin(0, 0)
	s.End()
	if _, ok := s.Move(500, 0); ok {
		t.Fatalf("move after end recognized")
	}
}
