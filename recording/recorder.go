package recording

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/clipdemo"
)

// Recorder is a clipdemo.Surface that records commands.
//
// The clip is tracked as a device-space rectangle that always contains the
// true clip region. Intersections shrink it to the shape's bounding box;
// differences only empty it when an axis-aligned rectangle covers it
// entirely. QuickReject is therefore exact for rectangles in translated
// frames and conservative otherwise.
type Recorder struct {
	width, height int

	commands []Command
	state    recorderState
	stack    []recorderState

	underflows int
}

type recorderState struct {
	matrix gg.Matrix
	clip   clipdemo.Rect
}

var _ clipdemo.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder for a width x height canvas.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{width: width, height: height}
	r.Reset()
	return r
}

// Reset discards recorded commands and restores the initial state.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stack = r.stack[:0]
	r.underflows = 0
	r.state = recorderState{
		matrix: gg.Identity(),
		clip:   clipdemo.R(0, 0, float64(r.width), float64(r.height)),
	}
}

// Width returns the canvas width.
func (r *Recorder) Width() int { return r.width }

// Height returns the canvas height.
func (r *Recorder) Height() int { return r.height }

// Commands returns the commands recorded so far. The slice is owned by the
// recorder.
func (r *Recorder) Commands() []Command { return r.commands }

// Underflows returns how many Restore calls had no matching Save.
func (r *Recorder) Underflows() int { return r.underflows }

// ClipBounds returns the current conservative device-space clip.
func (r *Recorder) ClipBounds() clipdemo.Rect { return r.state.clip }

// Transform returns the current transform.
func (r *Recorder) Transform() gg.Matrix { return r.state.matrix }

// FinishRecording returns an immutable snapshot of the recorded commands.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{width: r.width, height: r.height, commands: cmds}
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Save pushes the current state and returns the depth before the push.
func (r *Recorder) Save() int {
	n := len(r.stack)
	r.stack = append(r.stack, r.state)
	r.record(SaveCommand{})
	return n
}

// Restore pops the last saved state. An unmatched Restore is counted in
// Underflows and otherwise ignored.
func (r *Recorder) Restore() {
	r.record(RestoreCommand{})
	if len(r.stack) == 0 {
		r.underflows++
		return
	}
	r.state = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// SaveCount returns the number of unmatched Save calls.
func (r *Recorder) SaveCount() int { return len(r.stack) }

func (r *Recorder) Translate(dx, dy float64) {
	r.state.matrix = r.state.matrix.Multiply(gg.Translate(dx, dy))
	r.record(TranslateCommand{DX: dx, DY: dy})
}

func (r *Recorder) Skew(sx, sy float64) {
	r.state.matrix = r.state.matrix.Multiply(gg.Shear(sx, sy))
	r.record(SkewCommand{SX: sx, SY: sy})
}

func (r *Recorder) ClipRect(rect clipdemo.Rect, op clipdemo.ClipOp) {
	dev := rect.Transform(r.state.matrix)
	switch op {
	case clipdemo.ClipIntersect:
		r.state.clip = r.state.clip.Intersect(dev)
	case clipdemo.ClipDifference:
		if axisAligned(r.state.matrix) && covers(dev, r.state.clip) {
			r.state.clip = clipdemo.Rect{}
		}
	}
	r.record(ClipRectCommand{Rect: rect, Op: op})
}

func (r *Recorder) ClipPath(p *gg.Path, op clipdemo.ClipOp) {
	dev := clipdemo.PathBounds(p, r.state.matrix)
	if op == clipdemo.ClipIntersect {
		r.state.clip = r.state.clip.Intersect(dev)
	}
	r.record(ClipPathCommand{Path: p.Clone(), Op: op, Bounds: dev})
}

func (r *Recorder) DrawColor(c gg.RGBA) {
	r.record(DrawColorCommand{Color: c})
}

func (r *Recorder) DrawLine(x0, y0, x1, y1 float64, p clipdemo.Paint) {
	r.record(DrawLineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Paint: p})
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, p clipdemo.Paint) {
	r.record(DrawCircleCommand{CX: cx, CY: cy, Radius: radius, Paint: p})
}

func (r *Recorder) DrawRect(rect clipdemo.Rect, p clipdemo.Paint) {
	r.record(DrawRectCommand{Rect: rect, Paint: p})
}

func (r *Recorder) DrawText(s string, x, y float64, p clipdemo.Paint) {
	dev := r.state.matrix.TransformPoint(gg.Pt(x, y))
	r.record(DrawTextCommand{Text: s, X: x, Y: y, Paint: p, Device: dev})
}

// QuickReject reports whether rect, mapped to device space and rounded per
// edge, misses the clip bounds. Empty rectangles are always rejected.
func (r *Recorder) QuickReject(rect clipdemo.Rect, edge clipdemo.EdgeType) bool {
	rejected := quickReject(rect, edge, r.state.matrix, r.state.clip)
	r.record(QuickRejectCommand{Rect: rect, Edge: edge, Rejected: rejected})
	return rejected
}

func quickReject(rect clipdemo.Rect, edge clipdemo.EdgeType, m gg.Matrix, clip clipdemo.Rect) bool {
	if rect.IsEmpty() || clip.IsEmpty() {
		return true
	}
	dev := rect.Transform(m)
	if edge == clipdemo.EdgeAA {
		dev = dev.RoundOut()
	} else {
		dev = dev.Round()
	}
	return !dev.Intersects(clip)
}

func axisAligned(m gg.Matrix) bool {
	return m.B == 0 && m.D == 0
}

// covers reports whether a contains all of b.
func covers(a, b clipdemo.Rect) bool {
	return a.Left <= b.Left && a.Top <= b.Top && a.Right >= b.Right && a.Bottom >= b.Bottom
}
