package clipdemo_test

import (
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/clipdemo"
	"github.com/gogpu/clipdemo/recording"
)

func newRenderer(t *testing.T, opts ...clipdemo.Option) *clipdemo.Renderer {
	t.Helper()
	r, err := clipdemo.NewRenderer(clipdemo.DefaultStyle(), clipdemo.DefaultLabels(), opts...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func record(t *testing.T, r *clipdemo.Renderer) *recording.Recording {
	t.Helper()
	w, h := r.Layout().CanvasSize()
	rec := recording.NewRecorder(w, h)
	r.Render(rec)
	return rec.FinishRecording()
}

func TestRenderStackBalance(t *testing.T) {
	for _, probe := range []clipdemo.Probe{clipdemo.ProbeInside, clipdemo.ProbeOutside} {
		t.Run(probe.String(), func(t *testing.T) {
			r := newRenderer(t, clipdemo.WithProbe(probe))
			w, h := r.Layout().CanvasSize()
			rec := recording.NewRecorder(w, h)

			// Enter with an outer save so a leaked level would show.
			rec.Save()
			r.Render(rec)
			if got := rec.SaveCount(); got != 1 {
				t.Errorf("SaveCount after Render = %d, want 1", got)
			}
			if rec.Underflows() != 0 {
				t.Errorf("Underflows = %d, want 0", rec.Underflows())
			}

			rc := rec.FinishRecording()
			saves, restores := rc.Count(recording.CmdSave), rc.Count(recording.CmdRestore)
			if saves != restores+1 {
				t.Errorf("saves = %d, restores = %d", saves, restores)
			}
			if want := len(clipdemo.Sequence()) + 1; saves != want {
				t.Errorf("saves = %d, want %d (one per example plus outer)", saves, want)
			}
		})
	}
}

func TestRenderSequence(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := newRenderer(t, clipdemo.WithLogger(logger))
	record(t, r)

	var names []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if i := strings.Index(line, " name="); i >= 0 {
			names = append(names, strings.Fields(line[i+len(" name="):])[0])
		}
	}
	if !reflect.DeepEqual(names, clipdemo.Sequence()) {
		t.Errorf("example order = %v, want %v", names, clipdemo.Sequence())
	}
}

func TestRenderFirstCommandIsGrayBackground(t *testing.T) {
	rc := record(t, newRenderer(t))
	cmds := rc.Commands()
	if len(cmds) == 0 {
		t.Fatal("no commands recorded")
	}
	c, ok := cmds[0].(recording.DrawColorCommand)
	if !ok || c.Color != clipdemo.ColorGray {
		t.Errorf("first command = %#v, want gray DrawColor", cmds[0])
	}
}

func TestRenderPanels(t *testing.T) {
	rc := record(t, newRenderer(t))
	st := clipdemo.DefaultStyle()

	var texts []recording.DrawTextCommand
	var lines, circles int
	for _, c := range rc.Commands() {
		switch c := c.(type) {
		case recording.DrawTextCommand:
			texts = append(texts, c)
		case recording.DrawLineCommand:
			lines++
			if c.Paint.Color != clipdemo.ColorRed {
				t.Errorf("line color = %+v, want red", c.Paint.Color)
			}
			if c.X0 != st.ClipRectLeft || c.Y0 != st.ClipRectTop || c.X1 != st.ClipRectRight || c.Y1 != st.ClipRectBottom {
				t.Errorf("line = %+v, want clip rect diagonal", c)
			}
		case recording.DrawCircleCommand:
			circles++
			if c.Paint.Color != clipdemo.ColorGreen {
				t.Errorf("circle color = %+v, want green", c.Paint.Color)
			}
			if c.CX != st.CircleRadius || c.CY != st.ClipRectBottom-st.CircleRadius {
				t.Errorf("circle center = (%v, %v)", c.CX, c.CY)
			}
		}
	}

	// Seven clipped panels stamp one line, one circle and one label each.
	if lines != 7 || circles != 7 {
		t.Errorf("lines = %d, circles = %d, want 7 each", lines, circles)
	}
	if len(texts) != 9 {
		t.Fatalf("text draws = %d, want 9", len(texts))
	}
	for _, txt := range texts[:7] {
		if txt.Text != "Clipping" || txt.Paint.Align != clipdemo.AlignRight || txt.Paint.Color != clipdemo.ColorBlue {
			t.Errorf("panel label = %+v", txt)
		}
		if txt.X != st.ClipRectRight || txt.Y != st.TextOffset {
			t.Errorf("panel label anchor = (%v, %v), want (%v, %v)", txt.X, txt.Y, st.ClipRectRight, st.TextOffset)
		}
	}

	l := newRenderer(t).Layout()
	skewed, translated := texts[7], texts[8]
	if skewed.Text != "Skewed" || skewed.Paint.Align != clipdemo.AlignRight || skewed.Paint.Color != clipdemo.ColorYellow {
		t.Errorf("skewed text = %+v", skewed)
	}
	if translated.Text != "Translated" || translated.Paint.Align != clipdemo.AlignLeft || translated.Paint.Color != clipdemo.ColorGreen {
		t.Errorf("translated text = %+v", translated)
	}
	// Both anchor at the panel's top-left; skew leaves the origin fixed.
	for _, txt := range []recording.DrawTextCommand{skewed, translated} {
		if txt.Device.X != l.ColumnTwo || txt.Device.Y != l.TextRow {
			t.Errorf("%s device anchor = %+v, want (%v, %v)", txt.Text, txt.Device, l.ColumnTwo, l.TextRow)
		}
	}
	if n := rc.Count(recording.CmdSkew); n != 1 {
		t.Errorf("skew commands = %d, want 1", n)
	}
}

func TestRenderClipOps(t *testing.T) {
	rc := record(t, newRenderer(t))
	var diffRects, diffPaths, intersectPaths int
	for _, c := range rc.Commands() {
		switch c := c.(type) {
		case recording.ClipRectCommand:
			if c.Op == clipdemo.ClipDifference {
				diffRects++
				if want := clipdemo.R(32, 32, 58, 58); c.Rect != want {
					t.Errorf("difference rect = %+v, want %+v", c.Rect, want)
				}
			}
		case recording.ClipPathCommand:
			if c.Op == clipdemo.ClipDifference {
				diffPaths++
			} else {
				intersectPaths++
			}
		}
	}
	if diffRects != 1 || diffPaths != 1 || intersectPaths != 2 {
		t.Errorf("difference rects = %d, difference paths = %d, intersect paths = %d; want 1, 1, 2",
			diffRects, diffPaths, intersectPaths)
	}
}

func TestRenderQuickReject(t *testing.T) {
	tests := []struct {
		probe    clipdemo.Probe
		rejected bool
		fill     clipdemo.Rect
	}{
		{clipdemo.ProbeInside, false, clipdemo.R(45, 45, 180, 180)},
		{clipdemo.ProbeOutside, true, clipdemo.R(91, 91, 180, 180)},
	}
	for _, tt := range tests {
		t.Run(tt.probe.String(), func(t *testing.T) {
			r := newRenderer(t, clipdemo.WithProbe(tt.probe))
			if got := r.RejectCandidate(); got != tt.fill {
				t.Errorf("RejectCandidate() = %+v, want %+v", got, tt.fill)
			}
			cmds := record(t, r).Commands()

			idx := -1
			for i, c := range cmds {
				if _, ok := c.(recording.QuickRejectCommand); ok {
					idx = i
				}
			}
			if idx < 0 {
				t.Fatal("no QuickReject recorded")
			}
			q := cmds[idx].(recording.QuickRejectCommand)
			if q.Rejected != tt.rejected || q.Edge != clipdemo.EdgeAA {
				t.Errorf("QuickReject = %+v, want rejected=%v with EdgeAA", q, tt.rejected)
			}

			tail := cmds[idx+1:]
			if tt.rejected {
				if c, ok := tail[0].(recording.DrawColorCommand); !ok || c.Color != clipdemo.ColorWhite {
					t.Errorf("after reject: %#v, want white fill", tail[0])
				}
				if _, ok := tail[1].(recording.RestoreCommand); !ok {
					t.Errorf("after white fill: %#v, want Restore", tail[1])
				}
				return
			}
			if c, ok := tail[0].(recording.DrawColorCommand); !ok || c.Color != clipdemo.ColorBlack {
				t.Errorf("after accept: %#v, want black fill", tail[0])
			}
			rect, ok := tail[1].(recording.DrawRectCommand)
			if !ok || rect.Rect != tt.fill {
				t.Fatalf("after black fill: %#v, want DrawRect %+v", tail[1], tt.fill)
			}
			// The rectangle uses the paint left over from the translated text.
			if rect.Paint.Color != clipdemo.ColorGreen {
				t.Errorf("candidate paint = %+v, want green", rect.Paint.Color)
			}
		})
	}
}

func TestRenderIdempotent(t *testing.T) {
	r := newRenderer(t)
	w, h := r.Layout().CanvasSize()
	rec := recording.NewRecorder(w, h)

	r.Render(rec)
	first := rec.FinishRecording().Commands()
	r.Render(rec)
	all := rec.FinishRecording().Commands()

	if len(all) != 2*len(first) {
		t.Fatalf("second pass recorded %d commands, want %d", len(all)-len(first), len(first))
	}
	if !reflect.DeepEqual(first, all[len(first):]) {
		t.Error("second render pass differs from the first")
	}
}

func TestSequenceIsCopy(t *testing.T) {
	s := clipdemo.Sequence()
	s[0] = "changed"
	if clipdemo.Sequence()[0] != clipdemo.ExampleUnclipped {
		t.Error("Sequence() exposes internal slice")
	}
}
