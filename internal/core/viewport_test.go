package core

import "testing"

func TestViewportToCells(t *testing.T) {
	// 1000x700 logical onto 100x35 cells: 10 px per column, 20 px per row
	v := NewViewport(1000, 700, 100, 35)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"aligned", NewRect(100, 200, 90, 80), NewRect(10, 10, 9, 4)},
		{"unaligned grows to cover", NewRect(105, 210, 10, 10), NewRect(10, 10, 2, 1)},
		{"thin platform keeps one row", NewRect(150, 550, 200, 5), NewRect(15, 27, 20, 1)},
		{"full width floor", NewRect(0, 650, 1000, 50), NewRect(0, 32, 100, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := v.ToCells(tc.in); got != tc.expected {
				t.Errorf("ToCells(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestViewportToLogical(t *testing.T) {
	v := NewViewport(1000, 700, 100, 35)

	p := v.ToLogical(40, 23)
	if p.X != 405 || p.Y != 470 {
		t.Errorf("ToLogical(40, 23) = %+v, expected (405, 470)", p)
	}

	// Clicking the middle cell of a drawn rect lands inside the rect
	button := NewRect(400, 450, 200, 60)
	cells := v.ToCells(button)
	cx, cy := cells.CenterX(), cells.Y+cells.H/2
	if lp := v.ToLogical(cx, cy); !button.Contains(lp.X, lp.Y) {
		t.Errorf("center cell (%d, %d) maps to %+v outside %v", cx, cy, lp, button)
	}

	// Negative coordinates round toward the top-left
	if got := v.ToCells(NewRect(-15, -30, 10, 10)); got.X != -2 || got.Y != -2 {
		t.Errorf("ToCells(negative) = %v, expected origin (-2, -2)", got)
	}
}

func TestViewportDegenerateSize(t *testing.T) {
	v := NewViewport(1000, 700, 0, 0)
	if v.Cols() != 1 || v.Rows() != 1 {
		t.Errorf("zero-size viewport should clamp to 1x1, got %dx%d", v.Cols(), v.Rows())
	}
}
