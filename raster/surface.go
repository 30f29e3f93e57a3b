// Package raster implements clipdemo.Surface on pixels using the gg
// software rasterizer.
//
// Every draw call is rasterized by a scratch gg.Context into a coverage
// image, multiplied by the current clip mask and composited over the
// canvas. The clip itself is an 8-bit coverage mask, so intersect and
// difference work for any contour, anti-aliased edges included.
package raster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"

	"github.com/gogpu/clipdemo"
)

// Surface is a pixel canvas with a transform and clip-mask stack.
type Surface struct {
	width, height int
	canvas        *image.RGBA

	font  *text.FontSource
	faces map[float64]text.Face

	state surfaceState
	stack []surfaceState
}

// surfaceState is pushed by value. Clip masks are never modified in place
// once installed, so saved states can share them.
type surfaceState struct {
	matrix gg.Matrix
	clip   *gg.Mask // nil means unclipped
}

var _ clipdemo.Surface = (*Surface)(nil)

// Option configures a Surface during creation.
type Option func(*Surface)

// WithFont sets the font used by DrawText. Without a font DrawText draws
// nothing.
func WithFont(src *text.FontSource) Option {
	return func(s *Surface) {
		s.font = src
	}
}

// New creates a transparent width x height surface.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		canvas: image.NewRGBA(image.Rect(0, 0, width, height)),
		faces:  make(map[float64]text.Face),
		state:  surfaceState{matrix: gg.Identity()},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Width returns the canvas width.
func (s *Surface) Width() int { return s.width }

// Height returns the canvas height.
func (s *Surface) Height() int { return s.height }

// Image returns the canvas. The image is owned by the surface and changes
// with subsequent draws.
func (s *Surface) Image() *image.RGBA { return s.canvas }

// SavePNG writes the canvas to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return gg.NewContextForImage(s.canvas).SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	return gg.NewContextForImage(s.canvas).EncodePNG(w)
}

// Save pushes the current state and returns the depth before the push.
func (s *Surface) Save() int {
	n := len(s.stack)
	s.stack = append(s.stack, s.state)
	return n
}

// Restore pops the last saved state. An unmatched Restore is ignored.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		clipdemo.Logger().Warn("raster: restore without matching save")
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// SaveCount returns the number of unmatched Save calls.
func (s *Surface) SaveCount() int { return len(s.stack) }

func (s *Surface) Translate(dx, dy float64) {
	s.state.matrix = s.state.matrix.Multiply(gg.Translate(dx, dy))
}

func (s *Surface) Skew(sx, sy float64) {
	s.state.matrix = s.state.matrix.Multiply(gg.Shear(sx, sy))
}

func (s *Surface) ClipRect(r clipdemo.Rect, op clipdemo.ClipOp) {
	cov := s.coverage(func(dc *gg.Context) error {
		dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
		return dc.Fill()
	})
	s.combineClip(cov, op)
}

func (s *Surface) ClipPath(p *gg.Path, op clipdemo.ClipOp) {
	cov := s.coverage(func(dc *gg.Context) error {
		appendPath(dc, p)
		return dc.Fill()
	})
	s.combineClip(cov, op)
}

// DrawColor fills the clip region with c.
func (s *Surface) DrawColor(c gg.RGBA) {
	src := image.NewUniform(nrgba(c))
	if s.state.clip == nil {
		draw.Draw(s.canvas, s.canvas.Bounds(), src, image.Point{}, draw.Over)
		return
	}
	draw.DrawMask(s.canvas, s.canvas.Bounds(), src, image.Point{}, maskImage(s.state.clip), image.Point{}, draw.Over)
}

func (s *Surface) DrawLine(x0, y0, x1, y1 float64, p clipdemo.Paint) {
	s.paint(p.Color, func(dc *gg.Context) error {
		dc.SetLineWidth(p.StrokeWidth)
		dc.DrawLine(x0, y0, x1, y1)
		return dc.Stroke()
	})
}

func (s *Surface) DrawCircle(cx, cy, radius float64, p clipdemo.Paint) {
	s.paint(p.Color, func(dc *gg.Context) error {
		dc.DrawCircle(cx, cy, radius)
		return finish(dc, p)
	})
}

func (s *Surface) DrawRect(r clipdemo.Rect, p clipdemo.Paint) {
	s.paint(p.Color, func(dc *gg.Context) error {
		dc.DrawRectangle(r.Left, r.Top, r.Width(), r.Height())
		return finish(dc, p)
	})
}

// DrawText draws str with its baseline at y. The alignment picks which
// point of the advance box lands on x.
func (s *Surface) DrawText(str string, x, y float64, p clipdemo.Paint) {
	face := s.face(p.TextSize)
	if face == nil {
		clipdemo.Logger().Debug("raster: no font, text skipped", "text", str)
		return
	}
	s.paint(p.Color, func(dc *gg.Context) error {
		dc.SetFont(face)
		w, _ := dc.MeasureString(str)
		dc.DrawString(str, x-w*p.Align.Anchor(), y)
		return nil
	})
}

// QuickReject reports whether no clip pixel is set inside the device
// bounding box of r. EdgeAA rounds the box out; EdgeBW rounds to nearest.
func (s *Surface) QuickReject(r clipdemo.Rect, edge clipdemo.EdgeType) bool {
	if r.IsEmpty() {
		return true
	}
	dev := r.Transform(s.state.matrix)
	if edge == clipdemo.EdgeAA {
		dev = dev.RoundOut()
	} else {
		dev = dev.Round()
	}
	dev = dev.Intersect(clipdemo.R(0, 0, float64(s.width), float64(s.height)))
	if dev.IsEmpty() {
		return true
	}
	if s.state.clip == nil {
		return false
	}
	data := s.state.clip.Data()
	for y := int(dev.Top); y < int(dev.Bottom); y++ {
		row := data[y*s.width : (y+1)*s.width]
		for x := int(dev.Left); x < int(dev.Right); x++ {
			if row[x] != 0 {
				return false
			}
		}
	}
	return true
}

// paint rasterizes build in the current frame and composites c through the
// resulting coverage and the clip.
func (s *Surface) paint(c gg.RGBA, build func(dc *gg.Context) error) {
	cov := s.coverage(build)
	if s.state.clip != nil {
		clip := s.state.clip.Data()
		for i, v := range cov.Pix {
			cov.Pix[i] = mul8(v, clip[i])
		}
	}
	draw.DrawMask(s.canvas, s.canvas.Bounds(), image.NewUniform(nrgba(c)), image.Point{}, cov, image.Point{}, draw.Over)
}

// coverage runs build on a transparent scratch context in the current
// frame and returns the alpha it produced.
func (s *Surface) coverage(build func(dc *gg.Context) error) *image.Alpha {
	dc := gg.NewContext(s.width, s.height)
	defer func() { _ = dc.Close() }()
	dc.SetTransform(s.state.matrix)
	dc.SetRGBA(1, 1, 1, 1)
	if err := build(dc); err != nil {
		clipdemo.Logger().Warn("raster: rasterize failed", "err", err)
	}

	cov := image.NewAlpha(image.Rect(0, 0, s.width, s.height))
	draw.Draw(cov, cov.Bounds(), dc.Image(), image.Point{}, draw.Src)
	return cov
}

// combineClip replaces the clip with its intersection with, or difference
// from, the shape coverage.
func (s *Surface) combineClip(cov *image.Alpha, op clipdemo.ClipOp) {
	next := gg.NewMask(s.width, s.height)
	dst := next.Data()
	var cur []uint8
	if s.state.clip != nil {
		cur = s.state.clip.Data()
	}
	for i, v := range cov.Pix {
		if op == clipdemo.ClipDifference {
			v = 255 - v
		}
		if cur != nil {
			v = mul8(v, cur[i])
		}
		dst[i] = v
	}
	s.state.clip = next
}

func (s *Surface) face(size float64) text.Face {
	if s.font == nil || size <= 0 {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	f := s.font.Face(size)
	s.faces[size] = f
	return f
}

func finish(dc *gg.Context, p clipdemo.Paint) error {
	if p.Style == clipdemo.StyleStroke {
		dc.SetLineWidth(p.StrokeWidth)
		return dc.Stroke()
	}
	return dc.Fill()
}

// appendPath replays p into dc so the context transform applies.
func appendPath(dc *gg.Context, p *gg.Path) {
	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			dc.MoveTo(c[0], c[1])
		case gg.LineTo:
			dc.LineTo(c[0], c[1])
		case gg.QuadTo:
			dc.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			dc.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			dc.ClosePath()
		}
	})
}

func maskImage(m *gg.Mask) *image.Alpha {
	return &image.Alpha{
		Pix:    m.Data(),
		Stride: m.Width(),
		Rect:   image.Rect(0, 0, m.Width(), m.Height()),
	}
}

// mul8 multiplies two 8-bit coverages with rounding.
func mul8(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func nrgba(c gg.RGBA) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
