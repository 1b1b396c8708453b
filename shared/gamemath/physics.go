package gamemath

// ApplyGravity adds gravity to a vertical speed and clamps it to maxFall.
// Upward speeds (negative) are never clamped.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if speedY > maxFall {
		return maxFall
	}
	return speedY
}

// DirectionToward returns +1 when from is strictly left of to, else -1.
func DirectionToward(from, to float64) float64 {
	if from < to {
		return 1
	}
	return -1
}
