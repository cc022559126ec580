package render

import (
	"strings"
	"time"
)

// Transition selects how the browser eases from the previous style.
type Transition int

const (
	// TransitionWobble eases regular jitter frames.
	TransitionWobble Transition = iota
	// TransitionNone snaps, used for the first frame.
	TransitionNone
	// TransitionStep eases births and deaths after a step.
	TransitionStep
)

// Duration reports how long the transition lasts under s.
func (t Transition) Duration(s Settings) time.Duration {
	switch t {
	case TransitionWobble:
		return time.Duration(s.WobbleTransition)
	case TransitionStep:
		return time.Duration(s.StepTransition)
	default:
		return 0
	}
}

func (t Transition) rule(s Settings) string {
	switch t {
	case TransitionWobble:
		return "transition: box-shadow " + s.WobbleTransition.CSS() + ";\n"
	case TransitionStep:
		return "transition: box-shadow " + s.StepTransition.CSS() + ";\n"
	default:
		return "transition: none;\n"
	}
}

// PenCSS builds the per-frame style block for the pen element.
func PenCSS(layers []Layer, s Settings, t Transition) string {
	var b strings.Builder
	b.WriteString(s.Selector)
	b.WriteString(" {\nbox-shadow:\n")
	for i, l := range layers {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteByte('\t')
		b.WriteString(s.Len(l.X))
		b.WriteByte(' ')
		b.WriteString(s.Len(l.Y))
		b.WriteString(" 0 ")
		b.WriteString(s.Len(l.Spread))
		b.WriteByte(' ')
		b.WriteString(l.Color.String())
	}
	b.WriteString(";\n")
	b.WriteString(t.rule(s))
	b.WriteString("}")
	return b.String()
}

// BasicsCSS builds the static style of the pen element: its one-unit size,
// the translation hiding it and, with Bubbles, the filter that melts the
// shadows into blobs.
func BasicsCSS(s Settings) string {
	var b strings.Builder
	b.WriteString(s.Selector)
	b.WriteString(" {\n")
	b.WriteString("  width: " + s.Len(1) + ";\n")
	b.WriteString("  height: " + s.Len(1) + ";\n")
	b.WriteString("  transform: translate(" + s.Len(-s.ShiftX) + ", " + s.Len(-s.ShiftY) + ");\n")
	if s.Bubbles {
		b.WriteString("  filter: blur(" + s.Len(s.BlurScale) + ") saturate(5) contrast(60) saturate(0.16);\n")
	}
	b.WriteString("}")
	return b.String()
}
