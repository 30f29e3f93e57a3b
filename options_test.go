package clipdemo

import (
	"log/slog"
	"testing"
)

func TestNewRendererDefaults(t *testing.T) {
	r, err := NewRenderer(DefaultStyle(), DefaultLabels())
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r.Probe() != ProbeInside {
		t.Errorf("Probe() = %v, want inside", r.Probe())
	}
	if r.logger() != Logger() {
		t.Error("renderer without WithLogger should use the package logger")
	}
	if r.contour == nil {
		t.Error("scratch contour not allocated")
	}
}

func TestWithOptions(t *testing.T) {
	l := slog.Default()
	r, err := NewRenderer(DefaultStyle(), DefaultLabels(), WithProbe(ProbeOutside), WithLogger(l))
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if r.Probe() != ProbeOutside {
		t.Errorf("Probe() = %v, want outside", r.Probe())
	}
	if r.logger() != l {
		t.Error("WithLogger not applied")
	}
}

func TestParseProbe(t *testing.T) {
	for _, p := range []Probe{ProbeInside, ProbeOutside} {
		got, ok := ParseProbe(p.String())
		if !ok || got != p {
			t.Errorf("ParseProbe(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := ParseProbe("sideways"); ok {
		t.Error("ParseProbe accepted an unknown name")
	}
}

func TestAlignAnchor(t *testing.T) {
	tests := []struct {
		a    Align
		want float64
	}{
		{AlignLeft, 0},
		{AlignCenter, 0.5},
		{AlignRight, 1},
	}
	for _, tt := range tests {
		if got := tt.a.Anchor(); got != tt.want {
			t.Errorf("%v.Anchor() = %v, want %v", tt.a, got, tt.want)
		}
	}
}
