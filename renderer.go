package clipdemo

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Skew factors applied to the skewed text panel.
const (
	SkewX = 0.2
	SkewY = 0.3
)

// Example names in draw order.
const (
	ExampleUnclipped    = "unclipped"
	ExampleDifference   = "difference"
	ExampleCircular     = "circular"
	ExampleIntersection = "intersection"
	ExampleCombined     = "combined"
	ExampleRoundedRect  = "rounded-rect"
	ExampleOutside      = "outside"
	ExampleSkewedText   = "skewed-text"
	ExampleTranslated   = "translated-text"
	ExampleQuickReject  = "quick-reject"
)

var sequence = []string{
	ExampleUnclipped,
	ExampleDifference,
	ExampleCircular,
	ExampleIntersection,
	ExampleCombined,
	ExampleRoundedRect,
	ExampleOutside,
	ExampleSkewedText,
	ExampleTranslated,
	ExampleQuickReject,
}

// Sequence returns the example names in the order Render draws them.
func Sequence() []string {
	out := make([]string, len(sequence))
	copy(out, sequence)
	return out
}

// Renderer draws the clipping demo onto a Surface.
//
// A Renderer owns one scratch contour that is rewound before each example
// that builds a clip path, so it must not be used by concurrent Render
// calls.
type Renderer struct {
	style  Style
	labels Labels
	layout Layout
	opts   options

	contour *gg.Path
	paint   Paint
}

// NewRenderer validates style and derives the layout. The returned error
// wraps ErrInvalidConfiguration.
func NewRenderer(style Style, labels Labels, opts ...Option) (*Renderer, error) {
	if err := style.Validate(); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		style:   style,
		labels:  labels,
		layout:  NewLayout(style),
		opts:    o,
		contour: gg.NewPath(),
	}, nil
}

// Style returns the style the renderer was built with.
func (r *Renderer) Style() Style { return r.style }

// Labels returns the demo strings.
func (r *Renderer) Labels() Labels { return r.labels }

// Layout returns the derived grid.
func (r *Renderer) Layout() Layout { return r.layout }

// Probe returns the quick-reject candidate selection.
func (r *Renderer) Probe() Probe { return r.opts.probe }

func (r *Renderer) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return Logger()
}

// Render draws every example onto s in the fixed demo order. On return the
// save depth of s equals its depth on entry.
func (r *Renderer) Render(s Surface) {
	log := r.logger()
	depth := s.SaveCount()
	log.Debug("clipdemo: render start", "depth", depth, "probe", r.opts.probe)

	r.paint = Paint{
		Color:       ColorBlack,
		Style:       StyleFill,
		StrokeWidth: r.style.StrokeWidth,
		TextSize:    r.style.TextSize,
		Align:       AlignLeft,
	}

	r.drawBackAndUnclipped(s)
	r.drawDifference(s)
	r.drawCircular(s)
	r.drawIntersection(s)
	r.drawCombined(s)
	r.drawRoundedRect(s)
	r.drawOutside(s)
	r.drawSkewedText(s)
	r.drawTranslatedText(s)
	r.drawQuickReject(s)

	if got := s.SaveCount(); got != depth {
		log.Warn("clipdemo: unbalanced surface after render", "entry", depth, "exit", got)
	}
	log.Debug("clipdemo: render done")
}

// scoped runs draw inside save/translate/restore. Restore is deferred so a
// panicking surface still unwinds this level.
func (r *Renderer) scoped(s Surface, name string, x, y float64, draw func()) {
	r.logger().Debug("clipdemo: example", "name", name, "x", x, "y", y)
	s.Save()
	defer s.Restore()
	s.Translate(x, y)
	draw()
}

// drawClippedPanel is the stamp shared by the clip examples. Only the part
// inside the active clip is painted.
func (r *Renderer) drawClippedPanel(s Surface) {
	st := r.style
	s.ClipRect(st.ClipRect(), ClipIntersect)
	s.DrawColor(ColorWhite)

	r.paint.Color = ColorRed
	s.DrawLine(st.ClipRectLeft, st.ClipRectTop, st.ClipRectRight, st.ClipRectBottom, r.paint)

	r.paint.Color = ColorGreen
	s.DrawCircle(st.CircleRadius, st.ClipRectBottom-st.CircleRadius, st.CircleRadius, r.paint)

	// Right alignment puts the text to the left of the anchor.
	r.paint.Color = ColorBlue
	r.paint.TextSize = st.TextSize
	r.paint.Align = AlignRight
	s.DrawText(r.labels.Clipping, st.ClipRectRight, st.TextOffset, r.paint)
}

func (r *Renderer) drawBackAndUnclipped(s Surface) {
	s.DrawColor(ColorGray)
	r.scoped(s, ExampleUnclipped, r.layout.ColumnOne, r.layout.RowOne, func() {
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawDifference(s Surface) {
	st := r.style
	r.scoped(s, ExampleDifference, r.layout.ColumnTwo, r.layout.RowOne, func() {
		s.ClipRect(insetRect(st, 2*st.RectInset), ClipIntersect)
		s.ClipRect(insetRect(st, 4*st.RectInset), ClipDifference)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawCircular(s Surface) {
	st := r.style
	r.scoped(s, ExampleCircular, r.layout.ColumnOne, r.layout.RowTwo, func() {
		r.contour.Clear()
		r.contour.Circle(st.CircleRadius, st.ClipRectBottom-st.CircleRadius, st.CircleRadius)
		s.ClipPath(r.contour, ClipDifference)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawIntersection(s Surface) {
	st := r.style
	r.scoped(s, ExampleIntersection, r.layout.ColumnTwo, r.layout.RowTwo, func() {
		s.ClipRect(R(st.ClipRectLeft, st.ClipRectTop,
			st.ClipRectRight-st.SmallRectOffset, st.ClipRectBottom-st.SmallRectOffset), ClipIntersect)
		s.ClipRect(R(st.ClipRectLeft+st.SmallRectOffset, st.ClipRectTop+st.SmallRectOffset,
			st.ClipRectRight, st.ClipRectBottom), ClipIntersect)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawCombined(s Surface) {
	st := r.style
	r.scoped(s, ExampleCombined, r.layout.ColumnOne, r.layout.RowThree, func() {
		r.contour.Clear()
		r.contour.Circle(
			st.ClipRectLeft+st.RectInset+st.CircleRadius,
			st.ClipRectTop+st.CircleRadius+st.RectInset,
			st.CircleRadius)
		strip := R(
			st.ClipRectRight/2-st.CircleRadius,
			st.ClipRectTop+st.CircleRadius+st.RectInset,
			st.ClipRectRight/2+st.CircleRadius,
			st.ClipRectBottom-st.RectInset)
		r.contour.Rectangle(strip.Left, strip.Top, strip.Width(), strip.Height())
		s.ClipPath(r.contour, ClipIntersect)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawRoundedRect(s Surface) {
	st := r.style
	r.scoped(s, ExampleRoundedRect, r.layout.ColumnTwo, r.layout.RowThree, func() {
		rr := R(st.RectInset, st.RectInset, st.ClipRectRight-st.RectInset, st.ClipRectBottom-st.RectInset)
		r.contour.Clear()
		r.contour.RoundedRectangle(rr.Left, rr.Top, rr.Width(), rr.Height(), st.ClipRectRight/4)
		s.ClipPath(r.contour, ClipIntersect)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawOutside(s Surface) {
	st := r.style
	r.scoped(s, ExampleOutside, r.layout.ColumnOne, r.layout.RowFour, func() {
		s.ClipRect(insetRect(st, 2*st.RectInset), ClipIntersect)
		r.drawClippedPanel(s)
	})
}

func (r *Renderer) drawSkewedText(s Surface) {
	st := r.style
	r.paint.Color = ColorYellow
	r.paint.Align = AlignRight
	r.scoped(s, ExampleSkewedText, r.layout.ColumnTwo, r.layout.TextRow, func() {
		s.Skew(SkewX, SkewY)
		s.DrawText(r.labels.Skewed, st.ClipRectLeft, st.ClipRectTop, r.paint)
	})
}

func (r *Renderer) drawTranslatedText(s Surface) {
	st := r.style
	r.paint.Color = ColorGreen
	r.paint.Align = AlignLeft
	r.scoped(s, ExampleTranslated, r.layout.ColumnTwo, r.layout.TextRow, func() {
		s.DrawText(r.labels.Translated, st.ClipRectLeft, st.ClipRectTop, r.paint)
	})
}

func (r *Renderer) drawQuickReject(s Surface) {
	st := r.style
	candidate := r.RejectCandidate()
	r.scoped(s, ExampleQuickReject, r.layout.ColumnOne, r.layout.RejectRow, func() {
		s.ClipRect(st.ClipRect(), ClipIntersect)
		if s.QuickReject(candidate, EdgeAA) {
			s.DrawColor(ColorWhite)
			return
		}
		s.DrawColor(ColorBlack)
		s.DrawRect(candidate, r.paint)
	})
}

// RejectCandidate returns the rectangle tested by the quick-reject panel,
// in panel coordinates.
func (r *Renderer) RejectCandidate() Rect {
	st := r.style
	if r.opts.probe == ProbeOutside {
		return R(st.ClipRectRight+1, st.ClipRectBottom+1, st.ClipRectRight*2, st.ClipRectBottom*2)
	}
	return R(st.ClipRectRight/2, st.ClipRectBottom/2, st.ClipRectRight*2, st.ClipRectBottom*2)
}

// insetRect returns the panel rectangle (0,0)-(right,bottom) shrunk by d on
// every side.
func insetRect(st Style, d float64) Rect {
	return R(d, d, st.ClipRectRight-d, st.ClipRectBottom-d)
}
