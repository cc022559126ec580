package core

import "time"

// FrameKind classifies what a frame should do once its delay has elapsed.
type FrameKind int

const (
	// FrameInitial is the first frame. It renders without transitions.
	FrameInitial FrameKind = iota
	// FrameWobble re-renders the current generation with fresh jitter.
	FrameWobble
	// FrameStep advances the simulation by one generation before rendering.
	FrameStep
	// FrameFrozen skips simulation and rendering while a resize settles.
	FrameFrozen
)

func (k FrameKind) String() string {
	switch k {
	case FrameInitial:
		return "initial"
	case FrameWobble:
		return "wobble"
	case FrameStep:
		return "step"
	case FrameFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// DefaultResizeSettle is how long a resize freezes the animation.
const DefaultResizeSettle = 300 * time.Millisecond

// Scheduler owns the elapsed-time bookkeeping of the animation loop: the frame
// interval, the wall-clock cadence of simulation steps and the resize freeze.
// It never reads the clock itself; callers pass the current time in.
type Scheduler struct {
	frame     time.Duration
	stepEvery time.Duration

	started     bool
	lastStep    time.Time
	frozenUntil time.Time
	steps       int
}

// NewScheduler constructs a Scheduler targeting fps frames per second and one
// simulation step every stepEvery.
func NewScheduler(fps int, stepEvery time.Duration) *Scheduler {
	s := &Scheduler{}
	s.SetFPS(fps)
	s.SetStepInterval(stepEvery)
	return s
}

// SetFPS changes the frame rate. It is safe to call from the main loop.
func (s *Scheduler) SetFPS(fps int) {
	if fps <= 0 {
		fps = 12
	}
	s.frame = time.Second / time.Duration(fps)
}

// SetStepInterval changes how much wall-clock time separates two steps.
func (s *Scheduler) SetStepInterval(d time.Duration) {
	if d <= 0 {
		d = 3 * time.Second
	}
	s.stepEvery = d
}

// FrameInterval is the delay each frame waits before doing work.
func (s *Scheduler) FrameInterval() time.Duration { return s.frame }

// StepInterval reports the current step cadence.
func (s *Scheduler) StepInterval() time.Duration { return s.stepEvery }

// Steps reports how many FrameStep frames have been issued.
func (s *Scheduler) Steps() int { return s.steps }

// Freeze suspends stepping and rendering until d after now. Calling it again
// before the freeze ends restarts the countdown.
func (s *Scheduler) Freeze(now time.Time, d time.Duration) {
	if d <= 0 {
		d = DefaultResizeSettle
	}
	s.frozenUntil = now.Add(d)
}

// Frozen reports whether a freeze is in effect at now.
func (s *Scheduler) Frozen(now time.Time) bool {
	return now.Before(s.frozenUntil)
}

// Next classifies the frame happening at now and updates the bookkeeping.
func (s *Scheduler) Next(now time.Time) FrameKind {
	if !s.started {
		s.started = true
		s.lastStep = now
		return FrameInitial
	}
	if s.Frozen(now) {
		return FrameFrozen
	}
	if now.Sub(s.lastStep) > s.stepEvery {
		s.lastStep = now
		s.steps++
		return FrameStep
	}
	return FrameWobble
}

// Restart forgets all bookkeeping so the next frame is FrameInitial again.
func (s *Scheduler) Restart() {
	s.started = false
	s.lastStep = time.Time{}
	s.frozenUntil = time.Time{}
	s.steps = 0
}
