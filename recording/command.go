// Package recording captures clipdemo drawing operations as typed commands.
//
// A Recorder implements clipdemo.Surface. Instead of rasterizing, it stores
// every call as a Command, tracks the save stack and keeps a conservative
// device-space clip bounds so QuickReject can answer without pixels.
// Recordings can be inspected, dumped as text, or played back onto any
// other Surface.
package recording

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/clipdemo"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave      CommandType = iota // Push transform and clip
	CmdRestore                      // Pop transform and clip
	CmdTranslate                    // Translate the current frame
	CmdSkew                         // Shear the current frame
	CmdClipRect                     // Combine a rectangle with the clip
	CmdClipPath                     // Combine a contour with the clip

	// Drawing commands
	CmdDrawColor  // Fill the clip region
	CmdDrawLine   // Stroke a line
	CmdDrawCircle // Draw a circle
	CmdDrawRect   // Draw a rectangle
	CmdDrawText   // Draw a string

	// Query commands
	CmdQuickReject // Bounding box test against the clip
)

var commandTypeNames = [...]string{
	CmdSave:        "Save",
	CmdRestore:     "Restore",
	CmdTranslate:   "Translate",
	CmdSkew:        "Skew",
	CmdClipRect:    "ClipRect",
	CmdClipPath:    "ClipPath",
	CmdDrawColor:   "DrawColor",
	CmdDrawLine:    "DrawLine",
	CmdDrawCircle:  "DrawCircle",
	CmdDrawRect:    "DrawRect",
	CmdDrawText:    "DrawText",
	CmdQuickReject: "QuickReject",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
type Command interface {
	Type() CommandType
}

// SaveCommand pushes the current state.
type SaveCommand struct{}

func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand pops the last saved state.
type RestoreCommand struct{}

func (RestoreCommand) Type() CommandType { return CmdRestore }

// TranslateCommand moves the origin by (DX, DY).
type TranslateCommand struct {
	DX, DY float64
}

func (TranslateCommand) Type() CommandType { return CmdTranslate }

// SkewCommand shears the current frame.
type SkewCommand struct {
	SX, SY float64
}

func (SkewCommand) Type() CommandType { return CmdSkew }

// ClipRectCommand combines Rect with the clip using Op.
type ClipRectCommand struct {
	Rect clipdemo.Rect
	Op   clipdemo.ClipOp
}

func (ClipRectCommand) Type() CommandType { return CmdClipRect }

// ClipPathCommand combines Path with the clip using Op. Path is a private
// copy; the renderer's scratch contour may be rewound after recording.
type ClipPathCommand struct {
	Path *gg.Path
	Op   clipdemo.ClipOp
	// Bounds is the device-space bounding box of Path when recorded.
	Bounds clipdemo.Rect
}

func (ClipPathCommand) Type() CommandType { return CmdClipPath }

func (c ClipPathCommand) String() string {
	n := 0
	if c.Path != nil {
		n = c.Path.NumVerbs()
	}
	return fmt.Sprintf("{Op:%s Bounds:%+v Verbs:%d}", c.Op, c.Bounds, n)
}

// DrawColorCommand fills the clip region.
type DrawColorCommand struct {
	Color gg.RGBA
}

func (DrawColorCommand) Type() CommandType { return CmdDrawColor }

// DrawLineCommand strokes a line from (X0, Y0) to (X1, Y1).
type DrawLineCommand struct {
	X0, Y0, X1, Y1 float64
	Paint          clipdemo.Paint
}

func (DrawLineCommand) Type() CommandType { return CmdDrawLine }

// DrawCircleCommand draws a circle.
type DrawCircleCommand struct {
	CX, CY, Radius float64
	Paint          clipdemo.Paint
}

func (DrawCircleCommand) Type() CommandType { return CmdDrawCircle }

// DrawRectCommand draws a rectangle.
type DrawRectCommand struct {
	Rect  clipdemo.Rect
	Paint clipdemo.Paint
}

func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// DrawTextCommand draws Text anchored at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Paint clipdemo.Paint
	// Device is the anchor point in device space when recorded.
	Device gg.Point
}

func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// QuickRejectCommand records a quick-reject query and its answer.
type QuickRejectCommand struct {
	Rect     clipdemo.Rect
	Edge     clipdemo.EdgeType
	Rejected bool
}

func (QuickRejectCommand) Type() CommandType { return CmdQuickReject }
