package motion

import (
	"fmt"
	"strings"

	"github.com/pankajah/portfolio-site/internal/content"
)

// SectionLayout positions a section in the document.
type SectionLayout struct {
	ID   string
	Rect Rect
}

// Stack lays sections out top to bottom with the given heights.
func Stack(ids []string, heights []float64) ([]SectionLayout, error) {
	if len(ids) != len(heights) {
		return nil, fmt.Errorf("stack: %d ids but %d heights", len(ids), len(heights))
	}
	layout := make([]SectionLayout, len(ids))
	top := 0.0
	for i, id := range ids {
		layout[i] = SectionLayout{ID: id, Rect: Rect{Top: top, Height: heights[i]}}
		top += heights[i]
	}
	return layout, nil
}

type sceneSection struct {
	layout SectionLayout
	reveal *Reveal // nil for sections that animate on mount
}

// Scene ties every scroll-driven component of the page together.
type Scene struct {
	ViewportHeight float64
	Navbar         *Navbar
	ScrollTop      *ScrollToTop
	Background     Background

	sections []sceneSection
	scrollY  float64
}

// NewScene builds a scene for the layout and samples it at zero scroll, the
// state of a fresh page load.
func NewScene(layout []SectionLayout, viewportHeight float64) *Scene {
	s := &Scene{
		ViewportHeight: viewportHeight,
		Navbar:         NewNavbar(),
		ScrollTop:      NewScrollToTop(),
		Background:     DefaultBackground(),
	}
	for _, l := range layout {
		sec := sceneSection{layout: l}
		if cfg, ok := SectionByID(l.ID); ok {
			sec.reveal = NewReveal(cfg.Amount)
		}
		s.sections = append(s.sections, sec)
	}
	s.Scroll(0)
	return s
}

// DocumentHeight is the bottom edge of the last section.
func (s *Scene) DocumentHeight() float64 {
	if len(s.sections) == 0 {
		return 0
	}
	return s.sections[len(s.sections)-1].layout.Rect.Bottom()
}

// MaxScroll is the largest reachable scroll offset.
func (s *Scene) MaxScroll() float64 {
	return max(s.DocumentHeight()-s.ViewportHeight, 0)
}

// ScrollY is the current offset.
func (s *Scene) ScrollY() float64 { return s.scrollY }

// Fraction is the current scroll fraction.
func (s *Scene) Fraction() float64 {
	return ScrollFraction(s.scrollY, s.DocumentHeight(), s.ViewportHeight)
}

// Scroll moves the viewport and notifies every component.
func (s *Scene) Scroll(y float64) {
	s.scrollY = clamp(y, 0, s.MaxScroll())
	vp := Viewport(s.scrollY, s.ViewportHeight)
	for _, sec := range s.sections {
		if sec.reveal != nil {
			sec.reveal.Observe(sec.layout.Rect, vp)
		}
	}
	s.Navbar.OnScroll(s.scrollY)
	s.ScrollTop.OnScroll(s.scrollY)
}

// Visible reports whether a section is in its resting state.
func (s *Scene) Visible(id string) bool {
	sec, ok := s.section(id)
	if !ok {
		return false
	}
	return sec.reveal == nil || sec.reveal.Visible()
}

// Fired is the number of reveal transitions of a section.
func (s *Scene) Fired(id string) int {
	sec, ok := s.section(id)
	if !ok || sec.reveal == nil {
		return 0
	}
	return sec.reveal.Fired()
}

// Navigate follows a navbar link and returns the new scroll offset.
func (s *Scene) Navigate(anchor string) (float64, error) {
	id := s.Navbar.Activate(anchor)
	sec, ok := s.section(id)
	if !ok {
		return s.scrollY, fmt.Errorf("navigate %q: %w", anchor, content.ErrNotFound)
	}
	s.Scroll(ScrollTarget(sec.layout.Rect.Top, HeaderOffset))
	return s.scrollY, nil
}

// ReturnToTop activates the scroll-to-top control.
func (s *Scene) ReturnToTop() {
	s.Scroll(s.ScrollTop.Activate())
}

func (s *Scene) section(id string) (sceneSection, bool) {
	id = strings.TrimPrefix(id, "#")
	for _, sec := range s.sections {
		if sec.layout.ID == id {
			return sec, true
		}
	}
	return sceneSection{}, false
}
