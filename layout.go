package clipdemo

import "math"

// Layout holds the origins of the demo grid. Columns and rows grow by
// cumulative addition of the inset and the clip rectangle extent, so cells
// never overlap.
type Layout struct {
	ColumnOne float64
	ColumnTwo float64

	RowOne    float64
	RowTwo    float64
	RowThree  float64
	RowFour   float64
	TextRow   float64
	RejectRow float64

	cellWidth  float64
	cellHeight float64
	inset      float64
}

// NewLayout derives the grid from s. s is assumed valid.
func NewLayout(s Style) Layout {
	l := Layout{
		cellWidth:  s.ClipRectRight,
		cellHeight: s.ClipRectBottom,
		inset:      s.RectInset,
	}
	l.ColumnOne = s.RectInset
	l.ColumnTwo = l.ColumnOne + s.RectInset + s.ClipRectRight

	l.RowOne = s.RectInset
	l.RowTwo = l.RowOne + s.RectInset + s.ClipRectBottom
	l.RowThree = l.RowTwo + s.RectInset + s.ClipRectBottom
	l.RowFour = l.RowThree + s.RectInset + s.ClipRectBottom
	l.TextRow = l.RowFour + 1.5*s.ClipRectBottom
	l.RejectRow = l.RowFour + s.RectInset + 2*s.ClipRectBottom
	return l
}

// Rows returns the row origins top to bottom.
func (l Layout) Rows() []float64 {
	return []float64{l.RowOne, l.RowTwo, l.RowThree, l.RowFour, l.TextRow, l.RejectRow}
}

// CanvasSize returns the smallest whole-pixel canvas that holds every
// panel plus a trailing inset.
func (l Layout) CanvasSize() (width, height int) {
	w := l.ColumnTwo + l.cellWidth + l.inset
	h := l.RejectRow + l.cellHeight + l.inset
	return int(math.Ceil(w)), int(math.Ceil(h))
}
