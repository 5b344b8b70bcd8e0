package render

import "testing"

func TestLerpEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
	}{
		{"red to green", RGB(255, 0, 0), RGB(0, 255, 0)},
		{"black to white", RGB(0, 0, 0), RGB(255, 255, 255)},
		{"arbitrary", RGB(13, 240, 77), RGB(200, 3, 156)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Lerp(tc.a, tc.b, 0); got != tc.a {
				t.Errorf("Lerp(a, b, 0) = %v, want %v", got, tc.a)
			}
			if got := Lerp(tc.a, tc.b, 1); got != tc.b {
				t.Errorf("Lerp(a, b, 1) = %v, want %v", got, tc.b)
			}
		})
	}
}

func TestLerpMidpoint(t *testing.T) {
	got := Lerp(RGB(0, 0, 0), RGB(255, 255, 255), 0.5)
	if absInt(int(got.R)-128) > 1 || absInt(int(got.G)-128) > 1 || absInt(int(got.B)-128) > 1 {
		t.Errorf("midpoint lerp = %v, want ~(128, 128, 128)", got)
	}
}

func TestMultiplyColor(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		s        float64
		expected Color
	}{
		{"identity", RGB(100, 150, 200), 1.0, RGB(100, 150, 200)},
		{"half", RGB(100, 150, 200), 0.5, RGB(50, 75, 100)},
		{"zero", RGB(100, 150, 200), 0.0, RGB(0, 0, 0)},
		{"clamps high", RGB(200, 200, 200), 2.0, RGB(255, 255, 255)},
		{"clamps negative", RGB(100, 100, 100), -1.0, RGB(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MultiplyColor(tc.c, tc.s)
			if got != tc.expected {
				t.Errorf("MultiplyColor(%v, %v) = %v, want %v", tc.c, tc.s, got, tc.expected)
			}
		})
	}

	t.Run("preserves alpha", func(t *testing.T) {
		got := MultiplyColor(RGBA(100, 100, 100, 42), 0.5)
		if got.A != 42 {
			t.Errorf("alpha = %d, want 42", got.A)
		}
	})
}

func TestHexRoundTrip(t *testing.T) {
	colors := []Color{
		RGB(0, 0, 0),
		RGB(255, 255, 255),
		RGB(255, 140, 0),
		RGB(25, 25, 112),
	}
	for _, c := range colors {
		if got := FromHex(Hex(c)); got != c {
			t.Errorf("FromHex(Hex(%v)) = %v", c, got)
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
