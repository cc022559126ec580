package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Duration is a time.Duration written as a Go/CSS duration string ("0.4s").
type Duration time.Duration

// MarshalJSON writes the duration as a string.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON parses strings such as "400ms" or "0.4s".
func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	*d = Duration(parsed)
	return nil
}

// CSS formats the duration in seconds, e.g. "0.4s".
func (d Duration) CSS() string {
	return strconv.FormatFloat(time.Duration(d).Seconds(), 'f', -1, 64) + "s"
}

// Settings holds the look of the animation.
type Settings struct {
	Selector string `json:"selector"`
	// Unit is the CSS length of one cell.
	Unit string `json:"unit"`
	// Figs is the number of decimals written for lengths.
	Figs int `json:"figs"`

	NucleusColor               RGBA `json:"nucleusColor"`
	WobbleCellColor            RGBA `json:"wobbleCellColor"`
	WobbleCellColorIfNoNucleus RGBA `json:"wobbleCellColorIfNoNucleus"`
	BackgroundColor            RGBA `json:"backgroundColor"`
	BackgroundColorIfNoNucleus RGBA `json:"backgroundColorIfNoNucleus"`

	// ShiftX and ShiftY move the shadows away from the pen element so the
	// element itself stays hidden.
	ShiftX float64 `json:"shiftX"`
	ShiftY float64 `json:"shiftY"`

	RndScale  float64 `json:"rndScale"`
	BlurScale float64 `json:"blurScale"`

	Bubbles       bool `json:"bubbles"`
	RenderNucleus bool `json:"renderNucleus"`

	WobbleTransition Duration `json:"wobbleTransition"`
	StepTransition   Duration `json:"stepTransition"`
}

// DefaultSettings returns the standard look.
func DefaultSettings() Settings {
	return Settings{
		Selector:                   "#divpen",
		Unit:                       "3.81vmin",
		Figs:                       2,
		NucleusColor:               RGBA{R: 0, G: 0, B: 40, A: 0.6},
		WobbleCellColor:            RGBA{R: 0, G: 0, B: 80, A: 0.6},
		WobbleCellColorIfNoNucleus: RGBA{R: 0, G: 0, B: 80, A: 0.7},
		BackgroundColor:            RGBA{R: 200, G: 200, B: 200, A: 0.3},
		BackgroundColorIfNoNucleus: RGBA{R: 200, G: 200, B: 200, A: 0.4},
		ShiftX:                     10,
		ShiftY:                     10,
		RndScale:                   0.9,
		BlurScale:                  1.0 / 6,
		Bubbles:                    true,
		RenderNucleus:              false,
		WobbleTransition:           Duration(400 * time.Millisecond),
		StepTransition:             Duration(200 * time.Millisecond),
	}
}

// Len renders n cell units as a CSS length.
func (s Settings) Len(n float64) string {
	return "calc(" + strconv.FormatFloat(n, 'f', s.Figs, 64) + " * " + s.Unit + ")"
}

func (s Settings) cellColor() RGBA {
	if s.RenderNucleus {
		return s.WobbleCellColor
	}
	return s.WobbleCellColorIfNoNucleus
}

func (s Settings) backgroundColor() RGBA {
	if s.RenderNucleus {
		return s.BackgroundColor
	}
	return s.BackgroundColorIfNoNucleus
}
