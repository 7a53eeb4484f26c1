// Package motion models the page's scroll and pointer driven behaviour:
// one-shot section reveals, the scroll-linked parallax background, the
// navbar and the scroll-to-top control. The browser script applies the same
// parameters, which are serialised from ClientConfig.
package motion

// Interpolate maps v through the piecewise-linear function defined by the
// input and output stops. Values outside the input range are clamped to the
// first or last output. input must be ascending and the same length as output.
func Interpolate(input, output []float64, v float64) float64 {
	n := len(input)
	if n == 0 || n != len(output) {
		return 0
	}
	if n == 1 || v <= input[0] {
		return output[0]
	}
	if v >= input[n-1] {
		return output[n-1]
	}
	for i := 1; i < n; i++ {
		if v > input[i] {
			continue
		}
		span := input[i] - input[i-1]
		if span == 0 {
			return output[i]
		}
		t := (v - input[i-1]) / span
		return output[i-1] + t*(output[i]-output[i-1])
	}
	return output[n-1]
}

// Transform is a scroll-linked value mapping.
type Transform struct {
	Input  []float64 `json:"input"`
	Output []float64 `json:"output"`
}

// Linear returns a transform from [0,1] onto [from,to].
func Linear(from, to float64) Transform {
	return Transform{Input: []float64{0, 1}, Output: []float64{from, to}}
}

// At evaluates the transform.
func (t Transform) At(v float64) float64 {
	return Interpolate(t.Input, t.Output, v)
}

// ScrollFraction normalises a vertical scroll offset into [0,1] across the
// scrollable height of the document.
func ScrollFraction(scrollY, documentHeight, viewportHeight float64) float64 {
	scrollable := documentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp(scrollY/scrollable, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
