package life

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"glowlife/internal/core"
)

// Cell is one grid position.
type Cell struct {
	Alive bool
	// Count is the number of live cells among the eight neighbors.
	Count int
}

// Grid is an immutable snapshot of a square, edge-bounded Life board.
// Cells are stored row-major. Every Grid returned by this package has its
// neighbor counts computed from its own alive flags.
type Grid struct {
	size  core.Size
	cells []Cell
}

// New returns an all-dead grid of size x size cells.
func New(size int) Grid {
	s := core.Square(size)
	return Grid{size: s, cells: make([]Cell, s.Area())}
}

// FromSeed builds a grid from a flattened '0'/'1' pattern. Whitespace is
// ignored, cells beyond the end of the seed are dead and excess characters are
// dropped.
func FromSeed(size int, seed string) (Grid, error) {
	g := New(size)
	alive := make([]bool, len(g.cells))
	i := 0
	for pos, r := range seed {
		if unicode.IsSpace(r) {
			continue
		}
		if r != '0' && r != '1' {
			return Grid{}, fmt.Errorf("seed: invalid character %q at offset %d", r, pos)
		}
		if i < len(alive) {
			alive[i] = r == '1'
		}
		i++
	}
	return fromAlive(g.size, alive), nil
}

func fromAlive(size core.Size, alive []bool) Grid {
	counts := countNeighbors(size, alive)
	cells := make([]Cell, len(alive))
	for i := range cells {
		cells[i] = Cell{Alive: alive[i], Count: counts[i]}
	}
	return Grid{size: size, cells: cells}
}

// countNeighbors resets every count to zero and lets each live cell add one to
// each of its in-bounds neighbors.
func countNeighbors(size core.Size, alive []bool) []int {
	counts := make([]int, len(alive))
	for i, a := range alive {
		if !a {
			continue
		}
		x, y := size.Coords(i)
		for _, d := range core.Neighborhood {
			nx, ny := x+d[0], y+d[1]
			if !size.Contains(nx, ny) {
				continue
			}
			counts[size.Index(nx, ny)]++
		}
	}
	return counts
}

// aliveNext applies B3/S23.
func aliveNext(alive bool, count int) bool {
	if alive {
		return count == 2 || count == 3
	}
	return count == 3
}

// Step returns the next generation. The receiver is left untouched.
func (g Grid) Step() Grid {
	next := make([]bool, len(g.cells))
	for i, c := range g.cells {
		next[i] = aliveNext(c.Alive, c.Count)
	}
	return fromAlive(g.size, next)
}

// ForceAlive returns a grid where the cell containing (x, y) is alive.
func (g Grid) ForceAlive(x, y float64) Grid { return g.force(x, y, true) }

// ForceDead returns a grid where the cell containing (x, y) is dead.
func (g Grid) ForceDead(x, y float64) Grid { return g.force(x, y, false) }

func (g Grid) force(x, y float64, alive bool) Grid {
	if !finite(x) || !finite(y) {
		return g
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < 0 || fy < 0 || fx >= float64(g.size.W) || fy >= float64(g.size.H) {
		return g
	}
	idx := g.size.Index(int(fx), int(fy))
	if g.cells[idx].Alive == alive {
		return g
	}
	states := g.alive()
	states[idx] = alive
	return fromAlive(g.size, states)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (g Grid) alive() []bool {
	out := make([]bool, len(g.cells))
	for i, c := range g.cells {
		out[i] = c.Alive
	}
	return out
}

// Size returns the grid dimensions.
func (g Grid) Size() core.Size { return g.size }

// Len returns the number of cells.
func (g Grid) Len() int { return len(g.cells) }

// At returns the cell at (x, y) and whether the coordinate is in range.
func (g Grid) At(x, y int) (Cell, bool) {
	if !g.size.Contains(x, y) {
		return Cell{}, false
	}
	return g.cells[g.size.Index(x, y)], true
}

// IsAlive reports the state at (x, y); out of range is dead.
func (g Grid) IsAlive(x, y int) bool {
	c, _ := g.At(x, y)
	return c.Alive
}

// Count returns the live-neighbor count at (x, y); out of range is 0.
func (g Grid) Count(x, y int) int {
	c, _ := g.At(x, y)
	return c.Count
}

// Cells returns a copy of the cells in row-major order.
func (g Grid) Cells() []Cell {
	return append([]Cell(nil), g.cells...)
}

// Population counts the live cells.
func (g Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive {
			n++
		}
	}
	return n
}

// Bytes returns the alive flags as 0/1 values.
func (g Grid) Bytes() []uint8 {
	out := make([]uint8, len(g.cells))
	for i, c := range g.cells {
		if c.Alive {
			out[i] = 1
		}
	}
	return out
}

// Equal reports whether both grids have the same size and alive flags.
func (g Grid) Equal(o Grid) bool {
	if g.size != o.size || len(g.cells) != len(o.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i].Alive != o.cells[i].Alive {
			return false
		}
	}
	return true
}

// String renders the board one row per line: live cells show their neighbor
// count, dead cells a dot.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.size.H)
	for i, c := range g.cells {
		if i > 0 && i%g.size.W == 0 {
			b.WriteByte('\n')
		}
		if c.Alive {
			b.WriteString(strconv.Itoa(c.Count))
			continue
		}
		b.WriteByte('.')
	}
	return b.String()
}
