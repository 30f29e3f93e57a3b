package clipdemo

import "github.com/gogpu/gg"

// ClipOp selects how a shape combines with the current clip region.
type ClipOp uint8

const (
	// ClipIntersect keeps only the part of the clip inside the shape.
	ClipIntersect ClipOp = iota
	// ClipDifference removes the shape from the clip.
	ClipDifference
)

// String returns the name of the clip operation.
func (op ClipOp) String() string {
	switch op {
	case ClipIntersect:
		return "Intersect"
	case ClipDifference:
		return "Difference"
	default:
		return "Unknown"
	}
}

// EdgeType controls how QuickReject treats fractional edges.
type EdgeType uint8

const (
	// EdgeAA rounds the candidate out to whole pixels, as anti-aliased
	// drawing may touch partially covered pixels.
	EdgeAA EdgeType = iota
	// EdgeBW rounds the candidate edges to the nearest pixel.
	EdgeBW
)

// Align positions text relative to its anchor point. The anchor is placed
// on the named side of the text: Right puts the text to the left of x.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Anchor returns the horizontal anchor fraction in [0, 1] for a.
func (a Align) Anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// PaintStyle selects fill or stroke for shapes that support both.
type PaintStyle uint8

const (
	// StyleFill fills the shape interior.
	StyleFill PaintStyle = iota
	// StyleStroke outlines the shape with StrokeWidth.
	StyleStroke
)

// Paint carries the style for one draw call.
type Paint struct {
	Color       gg.RGBA
	Style       PaintStyle
	StrokeWidth float64
	TextSize    float64
	Align       Align
}

// Palette used by the demo.
var (
	ColorWhite  = gg.Hex("#FFFFFF")
	ColorBlack  = gg.Hex("#000000")
	ColorGray   = gg.Hex("#888888")
	ColorRed    = gg.Hex("#FF0000")
	ColorGreen  = gg.Hex("#00FF00")
	ColorBlue   = gg.Hex("#0000FF")
	ColorYellow = gg.Hex("#FFFF00")
)

// Surface is a 2D canvas with a stack of transform and clip state.
//
// Save pushes the current transform and clip and returns the depth before
// the push. Restore pops one level. Every clip call combines with the
// current clip in the current coordinate frame.
//
// Surfaces are not safe for concurrent use.
type Surface interface {
	Save() int
	Restore()
	SaveCount() int

	Translate(dx, dy float64)
	Skew(sx, sy float64)

	ClipRect(r Rect, op ClipOp)
	ClipPath(p *gg.Path, op ClipOp)

	// DrawColor fills the whole clip region with c.
	DrawColor(c gg.RGBA)
	// DrawLine strokes a line regardless of p.Style.
	DrawLine(x0, y0, x1, y1 float64, p Paint)
	DrawCircle(cx, cy, radius float64, p Paint)
	DrawRect(r Rect, p Paint)
	// DrawText draws s with its baseline at y, aligned to x per p.Align.
	DrawText(s string, x, y float64, p Paint)

	// QuickReject reports whether r, in the current frame, lies wholly
	// outside the current clip.
	QuickReject(r Rect, edge EdgeType) bool
}
