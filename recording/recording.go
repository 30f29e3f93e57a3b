package recording

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/clipdemo"
)

// ErrDiverged is returned by Playback when the target surface answers a
// quick-reject query differently from the recorded answer. The recorded
// draw stream is still replayed as captured.
var ErrDiverged = errors.New("recording: quick-reject diverged during playback")

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Playback replays the recording onto dst.
func (r *Recording) Playback(dst clipdemo.Surface) error {
	var diverged []int
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			dst.Save()
		case RestoreCommand:
			dst.Restore()
		case TranslateCommand:
			dst.Translate(c.DX, c.DY)
		case SkewCommand:
			dst.Skew(c.SX, c.SY)
		case ClipRectCommand:
			dst.ClipRect(c.Rect, c.Op)
		case ClipPathCommand:
			dst.ClipPath(c.Path, c.Op)
		case DrawColorCommand:
			dst.DrawColor(c.Color)
		case DrawLineCommand:
			dst.DrawLine(c.X0, c.Y0, c.X1, c.Y1, c.Paint)
		case DrawCircleCommand:
			dst.DrawCircle(c.CX, c.CY, c.Radius, c.Paint)
		case DrawRectCommand:
			dst.DrawRect(c.Rect, c.Paint)
		case DrawTextCommand:
			dst.DrawText(c.Text, c.X, c.Y, c.Paint)
		case QuickRejectCommand:
			if dst.QuickReject(c.Rect, c.Edge) != c.Rejected {
				diverged = append(diverged, i)
			}
		}
	}
	if len(diverged) > 0 {
		return fmt.Errorf("%w: commands %v", ErrDiverged, diverged)
	}
	return nil
}

// WriteTo writes one line per command to w.
func (r *Recording) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, c := range r.commands {
		var n int
		var err error
		switch c.(type) {
		case SaveCommand, RestoreCommand:
			n, err = fmt.Fprintf(w, "%4d %s\n", i, c.Type())
		default:
			n, err = fmt.Fprintf(w, "%4d %-11s %+v\n", i, c.Type(), c)
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
