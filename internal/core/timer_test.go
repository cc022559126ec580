package core

import (
	"testing"
	"time"
)

func TestSchedulerFrameKinds(t *testing.T) {
	s := NewScheduler(12, 3*time.Second)
	start := time.Unix(1_700_000_000, 0)

	if got := s.Next(start); got != FrameInitial {
		t.Fatalf("first frame = %v, want initial", got)
	}
	if got := s.Next(start.Add(time.Second)); got != FrameWobble {
		t.Fatalf("frame after 1s = %v, want wobble", got)
	}
	// Exactly the interval is not enough; the elapsed time must exceed it.
	if got := s.Next(start.Add(3 * time.Second)); got != FrameWobble {
		t.Fatalf("frame at 3s = %v, want wobble", got)
	}
	stepAt := start.Add(3*time.Second + time.Millisecond)
	if got := s.Next(stepAt); got != FrameStep {
		t.Fatalf("frame after 3s = %v, want step", got)
	}
	if s.Steps() != 1 {
		t.Fatalf("steps = %d, want 1", s.Steps())
	}
	if got := s.Next(stepAt.Add(time.Second)); got != FrameWobble {
		t.Fatalf("step timer must restart from the last step, got %v", got)
	}
}

func TestSchedulerFreezeRestartsOnEachResize(t *testing.T) {
	s := NewScheduler(12, time.Second)
	start := time.Unix(1_700_000_000, 0)
	s.Next(start)

	s.Freeze(start.Add(100*time.Millisecond), DefaultResizeSettle)
	s.Freeze(start.Add(300*time.Millisecond), DefaultResizeSettle)

	if got := s.Next(start.Add(500 * time.Millisecond)); got != FrameFrozen {
		t.Fatalf("frame during second freeze = %v, want frozen", got)
	}
	if got := s.Next(start.Add(2 * time.Second)); got != FrameStep {
		t.Fatalf("frame after freeze = %v, want step", got)
	}
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(0, 0)
	if s.FrameInterval() != time.Second/12 {
		t.Fatalf("frame interval = %v", s.FrameInterval())
	}
	if s.StepInterval() != 3*time.Second {
		t.Fatalf("step interval = %v", s.StepInterval())
	}
}

func TestSchedulerRestart(t *testing.T) {
	s := NewScheduler(12, time.Second)
	now := time.Unix(0, 0)
	s.Next(now)
	s.Next(now.Add(2 * time.Second))
	s.Restart()
	if s.Steps() != 0 {
		t.Fatalf("steps after restart = %d", s.Steps())
	}
	if got := s.Next(now.Add(3 * time.Second)); got != FrameInitial {
		t.Fatalf("frame after restart = %v, want initial", got)
	}
}
