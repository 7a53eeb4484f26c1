package motion

import "math/rand/v2"

// Shape is one decorative gear of the background.
type Shape struct {
	Name        string    `json:"name"`
	Size        int       `json:"size"`     // px
	Position    string    `json:"position"` // inline CSS offsets
	Fill        string    `json:"fill"`
	SpinSeconds float64   `json:"spin_seconds"`
	Reverse     bool      `json:"reverse"`
	Rotate      Transform `json:"rotate"`
	Y           Transform `json:"y"`
	Depth       float64   `json:"depth"` // pointer parallax strength, px
}

// RotationAt is the scroll-linked rotation in degrees for a given initial
// angle and scroll fraction.
func (s Shape) RotationAt(initial, fraction float64) float64 {
	return initial + s.Rotate.At(fraction)
}

// OffsetAt is the scroll-linked vertical offset in px.
func (s Shape) OffsetAt(fraction float64) float64 {
	return s.Y.At(fraction)
}

// Background is the fixed decorative layer behind every section.
type Background struct {
	Shapes           []Shape      `json:"shapes"`
	Opacity          Transform    `json:"opacity"`
	RandomizeInitial bool         `json:"randomize_initial"`
	Spring           SpringConfig `json:"spring"`
}

// OpacityAt is the layer opacity for a scroll fraction.
func (b Background) OpacityAt(fraction float64) float64 {
	return b.Opacity.At(fraction)
}

// DefaultBackground returns the four-gear layer.
func DefaultBackground() Background {
	return Background{
		Shapes: []Shape{
			{
				Name:        "top-right",
				Size:        256,
				Position:    "right:-6rem;top:-6rem",
				Fill:        "rgba(255, 69, 0, 0.15)",
				SpinSeconds: 20,
				Rotate:      Linear(0, 360),
				Y:           Linear(0, 100),
				Depth:       20,
			},
			{
				Name:        "bottom-left",
				Size:        192,
				Position:    "left:-4rem;bottom:-4rem",
				Fill:        "rgba(255, 69, 0, 0.1)",
				SpinSeconds: 25,
				Reverse:     true,
				Rotate:      Linear(0, -360),
				Y:           Linear(0, 150),
				Depth:       30,
			},
			{
				Name:        "middle-right",
				Size:        128,
				Position:    "right:8rem;top:33.333%",
				Fill:        "rgba(255, 69, 0, 0.12)",
				SpinSeconds: 15,
				Rotate:      Linear(0, 180),
				Y:           Linear(0, 50),
				Depth:       12,
			},
			{
				Name:        "middle-left",
				Size:        96,
				Position:    "left:25%;top:50%",
				Fill:        "rgba(255, 69, 0, 0.08)",
				SpinSeconds: 30,
				Rotate:      Linear(0, 360),
				Y:           Linear(0, 100),
				Depth:       8,
			},
		},
		Opacity: Transform{
			Input:  []float64{0, 0.2, 0.8, 1},
			Output: []float64{0.2, 0.4, 0.4, 0.2},
		},
		RandomizeInitial: true,
		Spring:           SpringConfig{Stiffness: 120, Mass: 1},
	}
}

// InitialAngles draws a starting angle in [0,360) for each of n shapes.
func InitialAngles(rng *rand.Rand, n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = rng.Float64() * 360
	}
	return angles
}

// PointerOffset maps a pointer position to a shape offset. The offset is
// zero at the viewport centre and reaches ±depth at the edges.
func PointerOffset(x, y, viewportW, viewportH, depth float64) (dx, dy float64) {
	if viewportW <= 0 || viewportH <= 0 {
		return 0, 0
	}
	nx := clamp((x-viewportW/2)/(viewportW/2), -1, 1)
	ny := clamp((y-viewportH/2)/(viewportH/2), -1, 1)
	return nx * depth, ny * depth
}
