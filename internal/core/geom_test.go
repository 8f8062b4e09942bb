package core

import "testing"

func TestRectIntersects(t *testing.T) {
	floor := NewRect(0, 650, 1000, 50)

	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"player resting on the floor", NewRect(100, 560, 90, 90), floor, false},
		{"player one pixel into the floor", NewRect(100, 561, 90, 90), floor, true},
		{"player under a platform", NewRect(200, 300, 90, 90), NewRect(200, 280, 200, 20), false},
		{"touching side edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"single pixel corner overlap", NewRect(0, 0, 10, 10), NewRect(9, 9, 10, 10), true},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"apart", NewRect(0, 0, 10, 10), NewRect(0, 40, 10, 10), false},
		{"zero width never overlaps", NewRect(5, 0, 0, 10), NewRect(0, 0, 10, 10), false},
		{"zero height never overlaps", NewRect(2, 3, 4, 0), NewRect(0, 0, 10, 10), false},
		{"negative size never overlaps", NewRect(2, 2, -3, 4), NewRect(0, 0, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.want {
				t.Errorf("a.Intersects(b) = %v, want %v", got, tc.want)
			}
			if got := tc.b.Intersects(tc.a); got != tc.want {
				t.Errorf("b.Intersects(a) = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	button := NewRect(400, 450, 200, 60)

	tests := []struct {
		x, y int
		want bool
	}{
		{400, 450, true}, // top-left is inside
		{599, 509, true},
		{600, 480, false}, // right edge is outside
		{500, 510, false}, // bottom edge is outside
		{399, 480, false},
		{500, 449, false},
	}

	for _, tc := range tests {
		if got := button.Contains(tc.x, tc.y); got != tc.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 41, 15)

	if r.Right() != 46 {
		t.Errorf("Right() = %d, want 46", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, want 25", r.Bottom())
	}
	// Odd widths round down
	if r.CenterX() != 25 {
		t.Errorf("CenterX() = %d, want 25", r.CenterX())
	}
	if c := NewRect(-10, 0, 10, 10).CenterX(); c != -5 {
		t.Errorf("CenterX() with negative origin = %d, want -5", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 910, 5},
		{-5, 0, 910, 0},
		{915, 0, 910, 910},
		{0, 0, 0, 0},
		{7, 3, 1, 3}, // empty range pins to lo
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
