package game

// placeItem moves the item to a random free cell. Random sampling is tried
// gridSize² times, after which a free cell is picked uniformly from an
// explicit scan. It returns false when the snake covers the whole grid.
func (s *Session) placeItem() bool {
	n := s.GridSize
	if len(s.Snake) < n*n {
		for i := 0; i < n*n; i++ {
			c := Cell{s.rng.Intn(n), s.rng.Intn(n)}
			if !s.Occupied(c) {
				s.Item, s.HasItem = c, true
				return true
			}
		}
	}

	free := s.freeCells()
	if len(free) == 0 {
		s.HasItem = false
		return false
	}
	s.Item, s.HasItem = free[s.rng.Intn(len(free))], true
	return true
}

func (s *Session) freeCells() []Cell {
	taken := make(map[Cell]struct{}, len(s.Snake))
	for _, b := range s.Snake {
		taken[b] = struct{}{}
	}
	var free []Cell
	for y := 0; y < s.GridSize; y++ {
		for x := 0; x < s.GridSize; x++ {
			c := Cell{x, y}
			if _, ok := taken[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}
