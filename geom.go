package clipdemo

import (
	"math"

	"github.com/gogpu/gg"
)

// Rect is an axis-aligned rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// R is shorthand for Rect{left, top, right, bottom}.
func R(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersect returns the overlap of r and o, or the zero Rect if they
// don't overlap.
func (r Rect) Intersect(o Rect) Rect {
	out := Rect{
		Left:   math.Max(r.Left, o.Left),
		Top:    math.Max(r.Top, o.Top),
		Right:  math.Min(r.Right, o.Right),
		Bottom: math.Min(r.Bottom, o.Bottom),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Intersects reports whether r and o share a region of positive area.
func (r Rect) Intersects(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

// RoundOut returns the smallest integer rectangle that contains r.
func (r Rect) RoundOut() Rect {
	return Rect{math.Floor(r.Left), math.Floor(r.Top), math.Ceil(r.Right), math.Ceil(r.Bottom)}
}

// Round returns r with every edge rounded to the nearest integer.
func (r Rect) Round() Rect {
	return Rect{math.Round(r.Left), math.Round(r.Top), math.Round(r.Right), math.Round(r.Bottom)}
}

// Transform returns the bounding box of r's corners mapped through m.
func (r Rect) Transform(m gg.Matrix) Rect {
	return BoundsOf(m,
		gg.Pt(r.Left, r.Top), gg.Pt(r.Right, r.Top),
		gg.Pt(r.Right, r.Bottom), gg.Pt(r.Left, r.Bottom))
}

// BoundsOf returns the bounding box of pts mapped through m.
// It returns the zero Rect for no points.
func BoundsOf(m gg.Matrix, pts ...gg.Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	out := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		q := m.TransformPoint(p)
		out.Left = math.Min(out.Left, q.X)
		out.Top = math.Min(out.Top, q.Y)
		out.Right = math.Max(out.Right, q.X)
		out.Bottom = math.Max(out.Bottom, q.Y)
	}
	return out
}

// PathBounds returns the device-space bounding box of p's points, control
// points included, mapped through m. Bezier hulls contain their curves, so
// the result is conservative.
func PathBounds(p *gg.Path, m gg.Matrix) Rect {
	var pts []gg.Point
	p.Iterate(func(_ gg.PathVerb, coords []float64) {
		for i := 0; i+1 < len(coords); i += 2 {
			pts = append(pts, gg.Pt(coords[i], coords[i+1]))
		}
	})
	return BoundsOf(m, pts...)
}
