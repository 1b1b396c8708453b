package gamemath

import "math"

// Scaler converts design units to screen pixels.
//
// Level positions use the per-axis factors so layouts span the display, while
// sizes and speeds use the uniform factor S = min(Sx, Sy) so shapes keep
// their aspect ratio.
type Scaler struct {
	Sx, Sy, S float64
}

func NewScaler(width, height, baseWidth, baseHeight float64) Scaler {
	sx := width / baseWidth
	sy := height / baseHeight
	return Scaler{Sx: sx, Sy: sy, S: math.Min(sx, sy)}
}

// X scales a horizontal position, truncated to whole pixels.
func (s Scaler) X(v float64) float64 { return math.Trunc(v * s.Sx) }

// Y scales a vertical position, truncated to whole pixels.
func (s Scaler) Y(v float64) float64 { return math.Trunc(v * s.Sy) }

// Scale scales a size or distance uniformly, truncated to whole pixels.
func (s Scaler) Scale(v float64) float64 { return math.Trunc(v * s.S) }

// Mul scales a per-frame rate (gravity, impulses) without truncation.
func (s Scaler) Mul(v float64) float64 { return v * s.S }
