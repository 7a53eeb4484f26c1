package motion

// Rect is a vertical band in document coordinates. The page is a single
// column so only the vertical extent matters.
type Rect struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Bottom is the lower edge of the band.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Viewport returns the visible band for a scroll offset.
func Viewport(scrollY, height float64) Rect {
	return Rect{Top: scrollY, Height: height}
}

// VisibleFraction is the share of el inside vp, in [0,1]. Elements taller
// than the viewport are measured against the viewport height so they can
// still reach a full reveal.
func VisibleFraction(el, vp Rect) float64 {
	basis := min(el.Height, vp.Height)
	if basis <= 0 {
		return 0
	}
	top := max(el.Top, vp.Top)
	bottom := min(el.Bottom(), vp.Bottom())
	if bottom <= top {
		return 0
	}
	return min((bottom-top)/basis, 1)
}

// Reveal latches a section into its visible state the first time at least
// Amount of it has entered the viewport.
type Reveal struct {
	Amount float64
	Once   bool

	visible bool
	fired   int
}

// NewReveal returns a one-shot reveal for the given amount.
func NewReveal(amount float64) *Reveal {
	return &Reveal{Amount: amount, Once: true}
}

// Observe samples the element against the viewport and reports whether it
// should be in its visible state.
func (r *Reveal) Observe(el, vp Rect) bool {
	if r.Once && r.visible {
		return true
	}
	in := r.intersects(el, vp)
	if in && !r.visible {
		r.fired++
	}
	r.visible = in
	return r.visible
}

func (r *Reveal) intersects(el, vp Rect) bool {
	frac := VisibleFraction(el, vp)
	if r.Amount <= 0 {
		return frac > 0
	}
	return frac >= r.Amount
}

// Visible reports the current state.
func (r *Reveal) Visible() bool { return r.visible }

// Fired is how many times the reveal has transitioned to visible.
func (r *Reveal) Fired() int { return r.fired }
