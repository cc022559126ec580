package life

import (
	"math"
	"slices"
	"strings"
	"testing"

	"glowlife/internal/core"
)

func gridWith(t *testing.T, size int, live ...[2]int) Grid {
	t.Helper()
	buf := []byte(strings.Repeat("0", size*size))
	for _, p := range live {
		buf[p[1]*size+p[0]] = '1'
	}
	g, err := FromSeed(size, string(buf))
	if err != nil {
		t.Fatalf("FromSeed: %v", err)
	}
	return g
}

func expectAlive(t *testing.T, g Grid, want map[[2]int]bool, note string) {
	t.Helper()
	s := g.Size()
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			alive := g.IsAlive(x, y)
			if want[[2]int{x, y}] != alive {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", note, x, y, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := gridWith(t, 5, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	g = g.Step()
	expectAlive(t, g, map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, "after first step")

	g = g.Step()
	expectAlive(t, g, map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, "after second step")
}

func TestStepIsPure(t *testing.T) {
	g, err := FromSeed(DefaultSize, ResolveSeed("letters"))
	if err != nil {
		t.Fatal(err)
	}
	before := g.Cells()
	a := g.Step()
	b := g.Step()
	if !a.Equal(b) {
		t.Fatal("stepping the same grid twice produced different results")
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Step mutated its receiver")
	}
}

func TestNeighborCountRule(t *testing.T) {
	center := [2]int{10, 10}
	for _, prior := range []bool{false, true} {
		for k := 0; k <= 8; k++ {
			live := make([][2]int, 0, k+1)
			if prior {
				live = append(live, center)
			}
			for _, d := range core.Neighborhood[:k] {
				live = append(live, [2]int{center[0] + d[0], center[1] + d[1]})
			}
			g := gridWith(t, DefaultSize, live...)
			if got := g.Count(center[0], center[1]); got != k {
				t.Fatalf("count with %d neighbors = %d", k, got)
			}
			next := g.Step().IsAlive(center[0], center[1])
			want := k == 3 || (prior && k == 2)
			if next != want {
				t.Fatalf("prior=%v neighbors=%d: alive=%v, want %v", prior, k, next, want)
			}
		}
	}
}

func TestEdgesDoNotWrap(t *testing.T) {
	// A vertical bar on the left edge must not feed the right edge.
	g := gridWith(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	if got := g.Count(4, 2); got != 0 {
		t.Fatalf("right edge sees %d neighbors across the border", got)
	}
	if got := g.Count(0, 2); got != 2 {
		t.Fatalf("corner-adjacent count = %d, want 2", got)
	}
	next := g.Step()
	expectAlive(t, next, map[[2]int]bool{{0, 2}: true, {1, 2}: true}, "edge blinker")
}

func TestExtinctionIsFixedPoint(t *testing.T) {
	g, err := FromSeed(DefaultSize, strings.Repeat("0", DefaultSize*DefaultSize))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		g = g.Step()
		if g.Population() != 0 {
			t.Fatalf("life appeared from nothing at step %d", i)
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	g := gridWith(t, DefaultSize, [2]int{5, 5}, [2]int{6, 5}, [2]int{5, 6}, [2]int{6, 6})
	if !g.Step().Equal(g) {
		t.Fatalf("block changed:\n%s", g.Step())
	}
}

func TestForceOutOfRangeIsNoop(t *testing.T) {
	g, err := FromSeed(DefaultSize, ResolveSeed("letters"))
	if err != nil {
		t.Fatal(err)
	}
	coords := [][2]float64{
		{-0.5, 3}, {3, -1}, {21, 0}, {0, 21}, {21.5, 21.5},
		{math.NaN(), 2}, {2, math.Inf(1)},
	}
	for _, c := range coords {
		if !g.ForceAlive(c[0], c[1]).Equal(g) {
			t.Fatalf("ForceAlive(%v,%v) changed the grid", c[0], c[1])
		}
		if !g.ForceDead(c[0], c[1]).Equal(g) {
			t.Fatalf("ForceDead(%v,%v) changed the grid", c[0], c[1])
		}
	}
}

func TestForceFloorsAndRecounts(t *testing.T) {
	g := New(DefaultSize)
	forced := g.ForceAlive(3.9, 4.2)
	if !forced.IsAlive(3, 4) {
		t.Fatal("fractional coordinate was not floored onto (3,4)")
	}
	if g.IsAlive(3, 4) {
		t.Fatal("ForceAlive mutated the original grid")
	}
	if forced.Count(4, 4) != 1 {
		t.Fatalf("neighbor count not refreshed after forcing: %d", forced.Count(4, 4))
	}
	if !forced.ForceAlive(0, 0).IsAlive(0, 0) {
		t.Fatal("origin must be a valid forcing target")
	}
	if forced.ForceDead(3.5, 4.5).IsAlive(3, 4) {
		t.Fatal("ForceDead left the cell alive")
	}
}

func TestOutOfRangeQueries(t *testing.T) {
	g := gridWith(t, 3, [2]int{0, 0})
	if g.IsAlive(-1, 0) || g.Count(3, 3) != 0 {
		t.Fatal("out of range queries must return the zero sentinel")
	}
	if _, ok := g.At(5, 5); ok {
		t.Fatal("At reported an out of range coordinate as valid")
	}
}

func TestFromSeed(t *testing.T) {
	g, err := FromSeed(3, "010\n111\n")
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() != 4 {
		t.Fatalf("population = %d, want 4", g.Population())
	}
	if g.IsAlive(0, 2) {
		t.Fatal("cells past the end of the seed must be dead")
	}

	long, err := FromSeed(2, "1111111")
	if err != nil {
		t.Fatal(err)
	}
	if long.Population() != 4 {
		t.Fatalf("long seed population = %d", long.Population())
	}

	if _, err := FromSeed(3, "01x"); err == nil {
		t.Fatal("expected an error for invalid seed characters")
	}
}

func TestLettersSeedFillsBoard(t *testing.T) {
	g, err := FromSeed(DefaultSize, ResolveSeed("letters"))
	if err != nil {
		t.Fatal(err)
	}
	// Row 19 is the second row of the third repetition.
	if !g.IsAlive(1, 19) {
		t.Fatal("letters seed should repeat down the board")
	}
}

func TestString(t *testing.T) {
	g := gridWith(t, 3, [2]int{0, 0}, [2]int{1, 0})
	want := "11.\n...\n..."
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestLifeSim(t *testing.T) {
	factory, ok := core.Sims()["life"]
	if !ok {
		t.Fatal("life sim not registered")
	}
	sim, err := factory(map[string]string{"size": "5", "seed": "0000000100001000010000000"})
	if err != nil {
		t.Fatal(err)
	}
	if sim.Size() != core.Square(5) {
		t.Fatalf("size = %+v", sim.Size())
	}
	start := slices.Clone(sim.Cells())
	sim.Step()
	if slices.Equal(start, sim.Cells()) {
		t.Fatal("blinker did not change after a step")
	}
	forcer, ok := sim.(core.Forcer)
	if !ok {
		t.Fatal("life sim should support forcing")
	}
	forcer.ForceAlive(0, 0)
	if sim.Cells()[0] != 1 {
		t.Fatal("ForceAlive had no effect")
	}
	sim.Reset()
	if !slices.Equal(start, sim.Cells()) {
		t.Fatal("Reset did not restore the seed")
	}

	if _, err := factory(map[string]string{"seed": "2"}); err == nil {
		t.Fatal("expected invalid seed to fail")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"size": "-3", "seed": "acorn"})
	if c.Size != DefaultSize || c.Seed != "acorn" {
		t.Fatalf("unexpected config %+v", c)
	}
	if names := SeedNames(); !slices.Contains(names, "letters") || !slices.IsSorted(names) {
		t.Fatalf("seed names %v", names)
	}
}
