// Command glowcss runs the animation headless and writes the generated pen
// style every frame, either to stdout or to a file that is replaced
// atomically so a page can poll it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"glowlife/internal/app"
	"glowlife/internal/core"
	"glowlife/internal/render"
	"glowlife/internal/sims/life"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "-", "output file, - for stdout")
	frames := flag.Int("frames", 0, "stop after this many rendered frames (0 runs until interrupted)")
	logSteps := flag.Bool("log-steps", false, "log the board with neighbor counts after every step")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		log.Fatalf("create sim: %v", err)
	}
	settings, err := cfg.Settings()
	if err != nil {
		log.Fatal(err)
	}

	runner := app.NewRunner(sim, settings, core.NewScheduler(cfg.FPS, cfg.StepInterval()), core.NewRNG(cfg.RandSeed))
	if *logSteps {
		runner.OnStep = func(gen int, sim core.Sim) {
			if l, ok := sim.(*life.Life); ok {
				log.Printf("step %d\n%s\n", gen, l.Snapshot())
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Latest frame wins: the loop never blocks on a slow writer.
	styles := make(chan string, 1)
	basics := render.BasicsCSS(settings)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(styles)
		rendered := 0
		return runner.Run(ctx, func(f app.Frame) error {
			css := f.CSS(settings)
			select {
			case <-styles:
			default:
			}
			styles <- css
			rendered++
			if *frames > 0 && rendered >= *frames {
				cancel()
			}
			return nil
		})
	})
	g.Go(func() error {
		for css := range styles {
			if err := emit(*out, basics, css); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

func emit(out, basics, css string) error {
	if out == "-" {
		return writeStyle(os.Stdout, basics, css)
	}
	return replaceFile(out, func(w io.Writer) error {
		return writeStyle(w, basics, css)
	})
}

func writeStyle(w io.Writer, basics, css string) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n", basics, css)
	return err
}

// replaceFile writes through a temporary file in the same directory and
// renames it over path.
func replaceFile(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}
