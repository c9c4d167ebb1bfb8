package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectClampTo(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)

	tests := []struct {
		name     string
		r        Rect
		expected Rect
	}{
		{"in bounds", NewRect(100, 100, 50, 50), NewRect(100, 100, 50, 50)},
		{"past left", NewRect(-3, 100, 50, 50), NewRect(0, 100, 50, 50)},
		{"past right", NewRect(790, 100, 50, 50), NewRect(750, 100, 50, 50)},
		{"past top", NewRect(100, -40, 50, 50), NewRect(100, 0, 50, 50)},
		{"past bottom", NewRect(100, 599, 50, 50), NewRect(100, 550, 50, 50)},
		{"past corner", NewRect(900, 900, 50, 50), NewRect(750, 550, 50, 50)},
		{"flush right", NewRect(750, 0, 50, 50), NewRect(750, 0, 50, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			once := tc.r.ClampTo(bounds)
			if once != tc.expected {
				t.Errorf("ClampTo() = %+v, expected %+v", once, tc.expected)
			}
			// Idempotence
			if twice := once.ClampTo(bounds); twice != once {
				t.Errorf("ClampTo() not idempotent: %+v then %+v", once, twice)
			}
		})
	}
}

func TestRectFlush(t *testing.T) {
	bounds := NewRect(0, 0, 800, 600)

	r := NewRect(-10, 700, 50, 50).ClampTo(bounds)
	if !r.FlushLeft(bounds) {
		t.Errorf("FlushLeft() = false for %+v", r)
	}
	if !r.FlushBottom(bounds) {
		t.Errorf("FlushBottom() = false for %+v", r)
	}
	if r.FlushTop(bounds) || r.FlushRight(bounds) {
		t.Errorf("Unexpected flush top/right for %+v", r)
	}

	// One unit short of the edge is not flush
	near := NewRect(749, 1, 50, 50)
	if near.FlushRight(bounds) || near.FlushTop(bounds) {
		t.Errorf("Near-edge rect should not be flush: %+v", near)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(10, 20, 5, 5).Translate(V(-1, 0).Scale(5))
	if r.X != 5 || r.Y != 20 {
		t.Errorf("Translate() = (%d, %d), expected (5, 20)", r.X, r.Y)
	}
	if r.W != 5 || r.H != 5 {
		t.Errorf("Translate() changed size to %dx%d", r.W, r.H)
	}
}

func TestCenteredAt(t *testing.T) {
	src := NewRect(40, 0, 50, 50)
	cx, cy := src.Center()
	r := CenteredAt(cx, cy, 50, 50)
	if r != src {
		t.Errorf("CenteredAt() = %+v, expected %+v", r, src)
	}

	small := CenteredAt(cx, cy, 20, 20)
	sx, sy := small.Center()
	if sx != cx || sy != cy {
		t.Errorf("CenteredAt() center = (%d, %d), expected (%d, %d)", sx, sy, cx, cy)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestVecSign(t *testing.T) {
	tests := []struct {
		in, expected Vec
	}{
		{V(0, 0), V(0, 0)},
		{V(5, -3), V(1, -1)},
		{V(-2, 0), V(-1, 0)},
		{V(1, 1), V(1, 1)},
	}

	for _, tc := range tests {
		if got := tc.in.Sign(); got != tc.expected {
			t.Errorf("Sign(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
