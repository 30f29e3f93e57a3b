package clipdemo

import "log/slog"

// Probe selects the candidate rectangle used by the quick-reject panel.
type Probe uint8

const (
	// ProbeInside tests a rectangle that overlaps the panel clip, so the
	// panel is painted black with the rectangle drawn on top.
	ProbeInside Probe = iota
	// ProbeOutside tests a rectangle just beyond the panel clip, so the
	// panel is painted white.
	ProbeOutside
)

// String returns the probe name as used on the command line.
func (p Probe) String() string {
	switch p {
	case ProbeInside:
		return "inside"
	case ProbeOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// ParseProbe converts "inside" or "outside" to a Probe.
func ParseProbe(s string) (Probe, bool) {
	switch s {
	case "inside":
		return ProbeInside, true
	case "outside":
		return ProbeOutside, true
	default:
		return 0, false
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := clipdemo.NewRenderer(style, labels,
//	    clipdemo.WithProbe(clipdemo.ProbeOutside),
//	    clipdemo.WithLogger(slog.Default()))
type Option func(*options)

type options struct {
	probe  Probe
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		probe:  ProbeInside,
		logger: nil, // falls back to Logger() at render time
	}
}

// WithProbe selects the quick-reject candidate.
func WithProbe(p Probe) Option {
	return func(o *options) {
		o.probe = p
	}
}

// WithLogger sets a logger for this renderer only, overriding the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
