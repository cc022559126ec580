package life

import (
	"glowlife/internal/core"
)

// Life adapts a Grid to the core.Sim contract. Each Step replaces the current
// snapshot wholesale; snapshots handed out earlier stay valid.
type Life struct {
	cfg  Config
	seed Grid
	grid Grid
}

// NewWithConfig returns a Life simulation seeded from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	seed, err := FromSeed(cfg.Size, ResolveSeed(cfg.Seed))
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, seed: seed, grid: seed}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Cells exposes the current generation as 0/1 values.
func (l *Life) Cells() []uint8 { return l.grid.Bytes() }

// Snapshot returns the current generation.
func (l *Life) Snapshot() Grid { return l.grid }

// Config returns the configuration the sim was built from.
func (l *Life) Config() Config { return l.cfg }

// Reset restores the seeded generation.
func (l *Life) Reset() { l.grid = l.seed }

// Step advances the simulation by one generation.
func (l *Life) Step() { l.grid = l.grid.Step() }

// ForceAlive sets the cell under (x, y) alive if it is on the board.
func (l *Life) ForceAlive(x, y float64) { l.grid = l.grid.ForceAlive(x, y) }

// ForceDead sets the cell under (x, y) dead if it is on the board.
func (l *Life) ForceDead(x, y float64) { l.grid = l.grid.ForceDead(x, y) }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return NewWithConfig(FromMap(cfg))
	})
}
