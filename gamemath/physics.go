package gamemath

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp moves from toward to by factor t.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// ApplyGravity integrates one step of gravity and caps the fall speed.
func ApplyGravity(speedY, gravity, maxFall, dt float64) float64 {
	speedY += gravity * dt
	if maxFall > 0 && speedY > maxFall {
		speedY = maxFall
	}
	return speedY
}

// Oscillate advances x along direction and reverses at the bounds.
// The position is clamped onto a bound in the step that reaches or passes it.
func Oscillate(x, from, to, speed, direction, dt float64) (float64, float64) {
	x += direction * speed * dt
	if direction > 0 && x >= to {
		return to, -1
	}
	if direction < 0 && x <= from {
		return from, 1
	}
	return x, direction
}

// Patrol advances x along direction and turns around once a bound is reached.
// Unlike Oscillate the position is not clamped.
func Patrol(x, left, right, speed, direction, dt float64) (float64, float64) {
	x += direction * speed * dt
	if direction > 0 && x >= right {
		return x, -1
	}
	if direction < 0 && x <= left {
		return x, 1
	}
	return x, direction
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
