package crawler

import "testing"

func TestDetectHit(t *testing.T) {
	tests := []struct {
		name     string
		a, b     [4]int // x, y, w, h
		expected bool
	}{
		{"overlap on both axes", [4]int{10, 10, 16, 16}, [4]int{20, 20, 32, 48}, true},
		{"far apart", [4]int{10, 10, 16, 16}, [4]int{100, 100, 32, 48}, false},
		{"touching right edge", [4]int{4, 20, 16, 16}, [4]int{20, 20, 32, 48}, false},
		{"touching left edge", [4]int{52, 20, 16, 16}, [4]int{20, 20, 32, 48}, false},
		{"touching top edge", [4]int{20, 4, 16, 16}, [4]int{20, 20, 32, 48}, false},
		{"touching bottom edge", [4]int{20, 68, 16, 16}, [4]int{20, 20, 32, 48}, false},
		{"one pixel past the edge", [4]int{5, 20, 16, 16}, [4]int{20, 20, 32, 48}, true},
		{"x overlaps, y apart", [4]int{20, 100, 16, 16}, [4]int{20, 20, 32, 48}, false},
		{"contained", [4]int{25, 25, 4, 4}, [4]int{20, 20, 32, 48}, true},
		{"identical", [4]int{20, 20, 32, 48}, [4]int{20, 20, 32, 48}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustEntity(t, tc.a[0], tc.a[1], "red", tc.a[2], tc.a[3])
			b := mustEntity(t, tc.b[0], tc.b[1], "blue", tc.b[2], tc.b[3])

			if got := DetectHit(a, b); got != tc.expected {
				t.Errorf("DetectHit(a, b) = %v, expected %v", got, tc.expected)
			}
			// Symmetry
			if got := DetectHit(b, a); got != tc.expected {
				t.Errorf("DetectHit(b, a) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDetectHitIsPure(t *testing.T) {
	a := mustEntity(t, 10, 10, "red", 16, 16)
	b := mustEntity(t, 20, 20, "blue", 32, 48)

	DetectHit(a, b)

	if !a.Alive() || !b.Alive() {
		t.Error("DetectHit must not change liveness")
	}
	if a.X != 10 || a.Y != 10 || b.X != 20 || b.Y != 20 {
		t.Error("DetectHit must not move entities")
	}
}

func TestDetectHitSymmetrySweep(t *testing.T) {
	ogre := mustEntity(t, 40, 40, "blue", 32, 48)
	hero := mustEntity(t, 0, 0, "red", 16, 16)

	for y := 0; y <= 100; y += 2 {
		for x := 0; x <= 100; x += 2 {
			hero.X, hero.Y = x, y
			if DetectHit(hero, ogre) != DetectHit(ogre, hero) {
				t.Fatalf("DetectHit not symmetric with hero at (%d, %d)", x, y)
			}
		}
	}
}
