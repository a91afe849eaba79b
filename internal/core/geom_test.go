package core

import "testing"

func TestBoxOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "separate horizontally",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "separate vertically",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching vertical edge",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "feet flush with platform top",
			a:        Box{X: 0, Y: 20, W: 30, H: 40},
			b:        Box{X: 0, Y: 5, W: 100, H: 15},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 20, H: 20},
			b:        Box{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.99, Y: 9.99, W: 10, H: 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BoxOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("BoxOverlap() = %v, expected %v", got, tc.expected)
			}
			if got := BoxOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("BoxOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCircleOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Circle
		expected bool
	}{
		{"same centre", Circle{X: 5, Y: 5, R: 1}, Circle{X: 5, Y: 5, R: 1}, true},
		{"overlapping", Circle{X: 0, Y: 0, R: 5}, Circle{X: 8, Y: 0, R: 5}, true},
		{"exactly touching", Circle{X: 0, Y: 0, R: 5}, Circle{X: 10, Y: 0, R: 5}, false},
		{"apart", Circle{X: 0, Y: 0, R: 5}, Circle{X: 30, Y: 40, R: 5}, false},
		{"diagonal inside", Circle{X: 0, Y: 0, R: 3}, Circle{X: 3, Y: 4, R: 2.01}, true},
		{"diagonal touching", Circle{X: 0, Y: 0, R: 3}, Circle{X: 3, Y: 4, R: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CircleOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("CircleOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{X: 10, Y: 10, W: 100, H: 30}

	tests := []struct {
		name     string
		p        Vec
		expected bool
	}{
		{"inside", Vec{X: 50, Y: 20}, true},
		{"lower-left corner", Vec{X: 10, Y: 10}, true},
		{"upper-right corner", Vec{X: 110, Y: 40}, true},
		{"left of box", Vec{X: 9, Y: 20}, false},
		{"above box", Vec{X: 50, Y: 41}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
