package app

import (
	"time"

	"glowlife/internal/core"
)

const (
	keyFPS           = "fps"
	keyStepSeconds   = "seconds_per_step"
	keyRndScale      = "rnd_scale"
	keyBlurScale     = "blur_scale"
	keyBubbles       = "bubbles"
	keyRenderNucleus = "render_nucleus"
)

// Parameters reports the live state and tunables for the HUD.
func (r *Runner) Parameters() core.ParameterSnapshot {
	population := 0
	for _, c := range r.sim.Cells() {
		if c != 0 {
			population++
		}
	}
	size := r.sim.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", r.generation),
				core.IntParam("population", "Population", population),
				core.IntParam("size", "Size", size.W),
				core.BoolParam("paused", "Paused", r.paused),
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				core.IntParam(keyFPS, "Frames/s", int(time.Second/r.sched.FrameInterval())),
				core.FloatParam(keyStepSeconds, "Seconds/step", r.sched.StepInterval().Seconds()),
			},
		},
		{
			Name: "Look",
			Params: []core.Parameter{
				core.FloatParam(keyRndScale, "Wobble", r.settings.RndScale),
				core.FloatParam(keyBlurScale, "Blur", r.settings.BlurScale),
				core.BoolParam(keyBubbles, "Bubbles", r.settings.Bubbles),
				core.BoolParam(keyRenderNucleus, "Nucleus", r.settings.RenderNucleus),
			},
		},
	}}
}

// ParameterControls lists the values the HUD may adjust.
func (r *Runner) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: keyFPS, Label: "Frames/s", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 60, HasMin: true, HasMax: true},
		{Key: keyStepSeconds, Label: "Seconds/step", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 30, HasMin: true, HasMax: true},
		{Key: keyRndScale, Label: "Wobble", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, Max: 3, HasMin: true, HasMax: true},
		{Key: keyBlurScale, Label: "Blur", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: keyBubbles, Label: "Bubbles", Type: core.ParamTypeBool},
		{Key: keyRenderNucleus, Label: "Nucleus", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer tunable.
func (r *Runner) SetIntParameter(key string, value int) bool {
	switch key {
	case keyFPS:
		if value <= 0 {
			return false
		}
		r.sched.SetFPS(value)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable.
func (r *Runner) SetFloatParameter(key string, value float64) bool {
	switch key {
	case keyStepSeconds:
		if value <= 0 {
			return false
		}
		r.sched.SetStepInterval(time.Duration(value * float64(time.Second)))
	case keyRndScale:
		if value < 0 {
			return false
		}
		r.settings.RndScale = value
	case keyBlurScale:
		if value < 0 {
			return false
		}
		r.settings.BlurScale = value
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a toggle.
func (r *Runner) SetBoolParameter(key string, value bool) bool {
	switch key {
	case keyBubbles:
		r.settings.Bubbles = value
	case keyRenderNucleus:
		r.settings.RenderNucleus = value
	default:
		return false
	}
	return true
}

var _ core.ParameterSource = (*Runner)(nil)
