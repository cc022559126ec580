package life

// History remembers the last few generations to spot still lifes and short
// oscillators.
type History struct {
	max   int
	grids []Grid
}

// NewHistory keeps up to depth generations.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = 5
	}
	return &History{max: depth}
}

// Period returns the smallest p such that g equals the generation recorded p
// pushes ago, or 0 when g matches nothing in the history.
func (h *History) Period(g Grid) int {
	for p := 1; p <= len(h.grids); p++ {
		if h.grids[len(h.grids)-p].Equal(g) {
			return p
		}
	}
	return 0
}

// Push records g, dropping the oldest generation when full.
func (h *History) Push(g Grid) {
	h.grids = append(h.grids, g)
	if len(h.grids) > h.max {
		h.grids = h.grids[1:]
	}
}

// Len reports how many generations are remembered.
func (h *History) Len() int { return len(h.grids) }
