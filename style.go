package clipdemo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when style parameters cannot produce
// a valid layout.
var ErrInvalidConfiguration = errors.New("clipdemo: invalid configuration")

// Style holds the distances that drive the demo layout. All values are in
// device-independent units and must be finite and non-negative.
type Style struct {
	StrokeWidth     float64 `toml:"stroke_width"`
	TextSize        float64 `toml:"text_size"`
	ClipRectLeft    float64 `toml:"clip_rect_left"`
	ClipRectTop     float64 `toml:"clip_rect_top"`
	ClipRectRight   float64 `toml:"clip_rect_right"`
	ClipRectBottom  float64 `toml:"clip_rect_bottom"`
	RectInset       float64 `toml:"rect_inset"`
	SmallRectOffset float64 `toml:"small_rect_offset"`
	CircleRadius    float64 `toml:"circle_radius"`
	TextOffset      float64 `toml:"text_offset"`
}

// Labels are the strings drawn by the demo.
type Labels struct {
	Clipping   string `toml:"clipping"`
	Translated string `toml:"translated"`
	Skewed     string `toml:"skewed"`
}

// DefaultStyle returns the reference dimensions of the demo.
func DefaultStyle() Style {
	return Style{
		StrokeWidth:     4,
		TextSize:        18,
		ClipRectLeft:    0,
		ClipRectTop:     0,
		ClipRectRight:   90,
		ClipRectBottom:  90,
		RectInset:       8,
		SmallRectOffset: 40,
		CircleRadius:    30,
		TextOffset:      20,
	}
}

// DefaultLabels returns the reference demo strings.
func DefaultLabels() Labels {
	return Labels{
		Clipping:   "Clipping",
		Translated: "Translated",
		Skewed:     "Skewed",
	}
}

// ClipRect returns the base clip rectangle every panel is stamped into.
func (s Style) ClipRect() Rect {
	return Rect{s.ClipRectLeft, s.ClipRectTop, s.ClipRectRight, s.ClipRectBottom}
}

// Scale returns s with every distance multiplied by f.
func (s Style) Scale(f float64) Style {
	return Style{
		StrokeWidth:     s.StrokeWidth * f,
		TextSize:        s.TextSize * f,
		ClipRectLeft:    s.ClipRectLeft * f,
		ClipRectTop:     s.ClipRectTop * f,
		ClipRectRight:   s.ClipRectRight * f,
		ClipRectBottom:  s.ClipRectBottom * f,
		RectInset:       s.RectInset * f,
		SmallRectOffset: s.SmallRectOffset * f,
		CircleRadius:    s.CircleRadius * f,
		TextOffset:      s.TextOffset * f,
	}
}

// Validate reports the first parameter that is non-finite or negative, or
// a clip rectangle without area. The error wraps ErrInvalidConfiguration.
func (s Style) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"stroke width", s.StrokeWidth},
		{"text size", s.TextSize},
		{"clip rect left", s.ClipRectLeft},
		{"clip rect top", s.ClipRectTop},
		{"clip rect right", s.ClipRectRight},
		{"clip rect bottom", s.ClipRectBottom},
		{"rect inset", s.RectInset},
		{"small rect offset", s.SmallRectOffset},
		{"circle radius", s.CircleRadius},
		{"text offset", s.TextOffset},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfiguration, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrInvalidConfiguration, f.name, f.v)
		}
	}
	if s.ClipRectRight <= s.ClipRectLeft {
		return fmt.Errorf("%w: clip rect right %g must exceed left %g",
			ErrInvalidConfiguration, s.ClipRectRight, s.ClipRectLeft)
	}
	if s.ClipRectBottom <= s.ClipRectTop {
		return fmt.Errorf("%w: clip rect bottom %g must exceed top %g",
			ErrInvalidConfiguration, s.ClipRectBottom, s.ClipRectTop)
	}
	return nil
}
