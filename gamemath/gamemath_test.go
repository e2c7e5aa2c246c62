package gamemath

import "testing"

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 20, Y: 20, W: 5, H: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOscillateReversesExactlyAtBounds(t *testing.T) {
	x, dir := 1240.0, 1.0
	x, dir = Oscillate(x, 950, 1250, 60, dir, 0.5)
	if x != 1250 || dir != -1 {
		t.Fatalf("got x=%v dir=%v, want 1250 -1", x, dir)
	}
	x, dir = Oscillate(x, 950, 1250, 60, dir, 0.5)
	if x != 1220 || dir != -1 {
		t.Fatalf("got x=%v dir=%v, want 1220 -1", x, dir)
	}
	x, dir = Oscillate(960, 950, 1250, 60, -1, 0.5)
	if x != 950 || dir != 1 {
		t.Fatalf("got x=%v dir=%v, want 950 1", x, dir)
	}
}

func TestPatrolTurnsWithoutClamping(t *testing.T) {
	x, dir := Patrol(499, 350, 500, 40, 1, 0.1)
	if dir != -1 || x != 503 {
		t.Errorf("got x=%v dir=%v, want 503 -1", x, dir)
	}
}

func TestApplyGravityCapsFallSpeed(t *testing.T) {
	if got := ApplyGravity(895, 300, 900, 1); got != 900 {
		t.Errorf("ApplyGravity = %v, want 900", got)
	}
	if got := ApplyGravity(0, 300, 900, 0.5); got != 150 {
		t.Errorf("ApplyGravity = %v, want 150", got)
	}
}
