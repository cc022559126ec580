package app

import (
	"context"
	"time"

	"glowlife/internal/core"
	"glowlife/internal/render"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
)

// Pointer is the last known pointer state in cell units.
type Pointer struct {
	X, Y  float64
	Known bool
	Left  bool
	Right bool
}

// Frame is what one iteration of the loop produced.
type Frame struct {
	Kind       core.FrameKind
	Transition render.Transition
	Layers     []render.Layer
	Generation int
}

// CSS renders the frame as the pen's style block.
func (f Frame) CSS(s render.Settings) string {
	return render.PenCSS(f.Layers, s, f.Transition)
}

// Runner is the simulation context: it owns the sim, the pointer, the render
// settings, the jitter source and the scheduler. It is driven from a single
// goroutine and is not safe for concurrent use.
type Runner struct {
	sim      core.Sim
	settings render.Settings
	sched    *core.Scheduler
	rng      render.Rand
	pointer  Pointer

	generation int
	paused     bool
	stepOnce   bool

	// OnStep, when set, is called after every generation change.
	OnStep func(generation int, sim core.Sim)
}

// NewRunner wires a sim to its scheduler and look.
func NewRunner(sim core.Sim, settings render.Settings, sched *core.Scheduler, rng render.Rand) *Runner {
	return &Runner{sim: sim, settings: settings, sched: sched, rng: rng}
}

// Sim returns the driven simulation.
func (r *Runner) Sim() core.Sim { return r.sim }

// Settings returns the current render settings.
func (r *Runner) Settings() render.Settings { return r.settings }

// Scheduler returns the frame scheduler.
func (r *Runner) Scheduler() *core.Scheduler { return r.sched }

// Generation is the number of steps taken since the last reset.
func (r *Runner) Generation() int { return r.generation }

// Pointer returns the last known pointer state.
func (r *Runner) Pointer() Pointer { return r.pointer }

// Paused reports whether scheduled steps are suppressed.
func (r *Runner) Paused() bool { return r.paused }

// MovePointer records the pointer position in cell units.
func (r *Runner) MovePointer(x, y float64) {
	r.pointer.X, r.pointer.Y = x, y
	r.pointer.Known = true
}

// PressButton marks a button as held.
func (r *Runner) PressButton(b Button) { r.setButton(b, true) }

// ReleaseButton marks a button as released.
func (r *Runner) ReleaseButton(b Button) { r.setButton(b, false) }

func (r *Runner) setButton(b Button, down bool) {
	switch b {
	case ButtonLeft:
		r.pointer.Left = down
	case ButtonRight:
		r.pointer.Right = down
	}
}

// Resize freezes the animation until the window has settled.
func (r *Runner) Resize(now time.Time) {
	r.sched.Freeze(now, core.DefaultResizeSettle)
}

// TogglePause suspends or resumes scheduled steps.
func (r *Runner) TogglePause() { r.paused = !r.paused }

// StepOnce requests a single step on the next non-frozen frame, even while
// paused.
func (r *Runner) StepOnce() { r.stepOnce = true }

// Reset restores the seed and restarts the scheduler so the next frame is
// drawn without a transition.
func (r *Runner) Reset() {
	r.sim.Reset()
	r.sched.Restart()
	r.generation = 0
	r.stepOnce = false
}

func (r *Runner) applyForcing() {
	if !r.pointer.Known {
		return
	}
	forcer, ok := r.sim.(core.Forcer)
	if !ok {
		return
	}
	if r.pointer.Left {
		forcer.ForceAlive(r.pointer.X, r.pointer.Y)
	}
	if r.pointer.Right {
		forcer.ForceDead(r.pointer.X, r.pointer.Y)
	}
}

// Frame runs one frame at now. It reports false when the frame is frozen and
// nothing should be rendered.
func (r *Runner) Frame(now time.Time) (Frame, bool) {
	r.applyForcing()

	kind := r.sched.Next(now)
	if kind == core.FrameFrozen {
		return Frame{Kind: kind, Generation: r.generation}, false
	}
	if kind == core.FrameStep && r.paused {
		kind = core.FrameWobble
	}
	if kind == core.FrameWobble && r.stepOnce {
		kind = core.FrameStep
	}

	transition := render.TransitionWobble
	switch kind {
	case core.FrameInitial:
		transition = render.TransitionNone
	case core.FrameStep:
		r.stepOnce = false
		r.sim.Step()
		r.generation++
		if r.OnStep != nil {
			r.OnStep(r.generation, r.sim)
		}
		transition = render.TransitionStep
	}

	return Frame{
		Kind:       kind,
		Transition: transition,
		Layers:     render.Layers(r.sim.Size(), r.sim.Cells(), r.settings, r.rng),
		Generation: r.generation,
	}, true
}

// Run drives frames off a ticker at the scheduler's frame interval and hands
// every rendered frame to sink. It returns when ctx is done or sink fails.
func (r *Runner) Run(ctx context.Context, sink func(Frame) error) error {
	interval := r.sched.FrameInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if r.sched.FrameInterval() != interval {
				interval = r.sched.FrameInterval()
				ticker.Reset(interval)
			}
			frame, ok := r.Frame(now)
			if !ok {
				continue
			}
			if err := sink(frame); err != nil {
				return err
			}
		}
	}
}
