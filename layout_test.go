package clipdemo

import "testing"

func TestLayoutDefault(t *testing.T) {
	l := NewLayout(DefaultStyle())

	want := map[string][2]float64{
		"ColumnOne": {l.ColumnOne, 8},
		"ColumnTwo": {l.ColumnTwo, 106},
		"RowOne":    {l.RowOne, 8},
		"RowTwo":    {l.RowTwo, 106},
		"RowThree":  {l.RowThree, 204},
		"RowFour":   {l.RowFour, 302},
		"TextRow":   {l.TextRow, 437},
		"RejectRow": {l.RejectRow, 490},
	}
	for name, v := range want {
		if v[0] != v[1] {
			t.Errorf("%s = %v, want %v", name, v[0], v[1])
		}
	}

	w, h := l.CanvasSize()
	if w != 204 || h != 588 {
		t.Errorf("CanvasSize() = (%d, %d), want (204, 588)", w, h)
	}
}

func TestLayoutMonotonic(t *testing.T) {
	styles := []Style{
		DefaultStyle(),
		DefaultStyle().Scale(2.625),
		{ClipRectRight: 1, ClipRectBottom: 1},
		{ClipRectLeft: 3, ClipRectTop: 4, ClipRectRight: 5, ClipRectBottom: 4.5, RectInset: 100},
		{ClipRectRight: 300, ClipRectBottom: 0.01, RectInset: 0},
	}
	for i, s := range styles {
		if err := s.Validate(); err != nil {
			t.Fatalf("style %d: %v", i, err)
		}
		l := NewLayout(s)
		if l.ColumnTwo <= l.ColumnOne {
			t.Errorf("style %d: ColumnTwo %v <= ColumnOne %v", i, l.ColumnTwo, l.ColumnOne)
		}
		rows := l.Rows()
		for j := 1; j < len(rows); j++ {
			if rows[j] <= rows[j-1] {
				t.Errorf("style %d: row %d (%v) <= row %d (%v)", i, j, rows[j], j-1, rows[j-1])
			}
		}
	}
}
