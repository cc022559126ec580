// Command life-survey runs seed patterns on the bounded board and reports how
// each one ends: extinction, a still life or oscillator, or still evolving.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"glowlife/internal/core"
	"glowlife/internal/sims/life"
)

type scenario struct {
	name string
	seed string
}

type scenarioResult struct {
	scenario
	steps          int
	settledAt      int
	period         int
	extinctAt      int
	peakPopulation int
	population     int
}

func (r scenarioResult) outcome() string {
	switch {
	case r.extinctAt > 0:
		return fmt.Sprintf("extinct at %d", r.extinctAt)
	case r.period == 1:
		return fmt.Sprintf("still life at %d", r.settledAt)
	case r.period > 1:
		return fmt.Sprintf("period %d from %d", r.period, r.settledAt)
	default:
		return "evolving"
	}
}

func main() {
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", life.DefaultSize, "board side in cells")
	seeds := flag.String("seeds", strings.Join(life.SeedNames(), ","), "comma separated pattern names")
	random := flag.Int("random", 0, "additional random seeds to try")
	density := flag.Float64("density", 0.3, "live probability for random seeds")
	randSeed := flag.Int64("rand", 42, "seed for random patterns")
	flag.Parse()

	var scenarios []scenario
	for _, name := range strings.Split(*seeds, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		pattern, ok := life.Seed(name)
		if !ok {
			log.Fatalf("unknown seed %q (known: %s)", name, strings.Join(life.SeedNames(), ", "))
		}
		scenarios = append(scenarios, scenario{name: name, seed: pattern})
	}
	rng := core.NewRNG(*randSeed)
	area := *size * *size
	for i := 0; i < *random; i++ {
		scenarios = append(scenarios, scenario{
			name: fmt.Sprintf("random-%d", i),
			seed: rng.Binary(area, *density),
		})
	}

	fmt.Printf("Surveying %d scenarios (%d workers, %d steps, %dx%d)\n", len(scenarios), *workers, *steps, *size, *size)

	results := make([]scenarioResult, len(scenarios))
	var g errgroup.Group
	g.SetLimit(max(1, *workers))
	start := time.Now()
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(sc, *size, *steps)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].peakPopulation > results[j].peakPopulation })
	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range results {
		fmt.Printf("%-12s peak=%3d final=%3d %s\n", res.name, res.peakPopulation, res.population, res.outcome())
	}
}

func runScenario(sc scenario, size, steps int) (scenarioResult, error) {
	g, err := life.FromSeed(size, sc.seed)
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{scenario: sc, peakPopulation: g.Population()}
	history := life.NewHistory(8)
	for step := 1; step <= steps; step++ {
		history.Push(g)
		g = g.Step()
		res.steps = step
		pop := g.Population()
		res.peakPopulation = max(res.peakPopulation, pop)
		if pop == 0 {
			res.extinctAt = step
			break
		}
		if p := history.Period(g); p > 0 {
			res.period = p
			res.settledAt = step - p
			break
		}
	}
	res.population = g.Population()
	return res, nil
}
