// Package render describes what one frame shows without touching a
// drawing surface.
package render

import (
	"fmt"
	"image/color"

	"signsnake/internal/game"
)

var (
	Background = color.RGBA{0x2A, 0x2A, 0x2A, 0xFF}
	SnakeFill  = color.RGBA{0xFF, 0x62, 0x00, 0xFF}
	FlashFill  = color.RGBA{0xFF, 0xC1, 0x07, 0xFF}
	SnakeLine  = color.RGBA{0xFF, 0xC1, 0x07, 0xFF}
	ItemFill   = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ItemLine   = color.RGBA{0xFF, 0x62, 0x00, 0xFF}
	TextColor  = color.RGBA{0xF0, 0xF0, 0xF0, 0xFF}
	BannerFill = color.RGBA{0x00, 0x00, 0x00, 0xB0}
)

// StrokeWidth of every cell outline.
const StrokeWidth = 2

// Rect is a filled, outlined square in surface pixels.
type Rect struct {
	X, Y, W, H float32
	Fill       color.RGBA
	Stroke     color.RGBA
}

// Frame is everything Draw needs for one screen.
type Frame struct {
	Size       float32
	Background color.RGBA
	Cells      []Rect
	HUD        []string
	Banner     string
}

// Status carries the presentation state that is not part of a session.
type Status struct {
	Difficulty string
	Flash      bool
	Muted      bool
	Paused     bool
	Banner     string
}

// Build lays out s on a square surface of size pixels.
func Build(s *game.Session, size float32, st Status) Frame {
	cell := size / float32(s.GridSize)
	f := Frame{
		Size:       size,
		Background: Background,
		Cells:      make([]Rect, 0, len(s.Snake)+1),
		Banner:     st.Banner,
	}

	fill := SnakeFill
	if st.Flash {
		fill = FlashFill
	}
	for _, c := range s.Snake {
		f.Cells = append(f.Cells, cellRect(c, cell, fill, SnakeLine))
	}
	if s.HasItem {
		f.Cells = append(f.Cells, cellRect(s.Item, cell, ItemFill, ItemLine))
	}

	f.HUD = append(f.HUD, fmt.Sprintf("Score: %d   Best: %d   %s", s.Score, s.Best, st.Difficulty))
	var flags string
	if st.Muted {
		flags += "[muted] "
	}
	if st.Paused {
		flags += "[paused] "
	}
	if flags != "" {
		f.HUD = append(f.HUD, flags)
	}
	return f
}

func cellRect(c game.Cell, cell float32, fill, stroke color.RGBA) Rect {
	return Rect{
		X:      float32(c.X)*cell + 1,
		Y:      float32(c.Y)*cell + 1,
		W:      cell - 2,
		H:      cell - 2,
		Fill:   fill,
		Stroke: stroke,
	}
}
