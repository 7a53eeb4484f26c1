package motion

import "strings"

const (
	// NavbarThreshold is the scroll offset past which the navbar turns opaque.
	NavbarThreshold = 50
	// HeaderOffset is the height reserved for the fixed navbar when jumping
	// to an anchor.
	HeaderOffset = 64
	// ScrollTopThreshold is the scroll offset past which the scroll-to-top
	// control is shown.
	ScrollTopThreshold = 300
)

// Navbar tracks the fixed header's background style and mobile menu.
type Navbar struct {
	Threshold float64

	scrolled bool
	open     bool
}

// NewNavbar returns a transparent navbar with a closed menu.
func NewNavbar() *Navbar {
	return &Navbar{Threshold: NavbarThreshold}
}

// OnScroll updates the background style. An offset exactly at the
// threshold stays transparent.
func (n *Navbar) OnScroll(y float64) bool {
	n.scrolled = y > n.Threshold
	return n.scrolled
}

// Scrolled reports whether the opaque background is active.
func (n *Navbar) Scrolled() bool { return n.scrolled }

// Toggle flips the mobile menu.
func (n *Navbar) Toggle() bool {
	n.open = !n.open
	return n.open
}

// Open reports whether the mobile menu is open.
func (n *Navbar) Open() bool { return n.open }

// Activate follows a nav link: the menu closes and the anchor's section id
// is returned.
func (n *Navbar) Activate(anchor string) string {
	n.open = false
	return strings.TrimPrefix(anchor, "#")
}

// ScrollTarget is the scroll offset that aligns a section top with the
// viewport top below the fixed header.
func ScrollTarget(sectionTop, headerOffset float64) float64 {
	return max(sectionTop-headerOffset, 0)
}

// ScrollToTop is the floating return-to-top control.
type ScrollToTop struct {
	Threshold float64

	visible bool
}

// NewScrollToTop returns a hidden control.
func NewScrollToTop() *ScrollToTop {
	return &ScrollToTop{Threshold: ScrollTopThreshold}
}

// OnScroll updates visibility.
func (s *ScrollToTop) OnScroll(y float64) bool {
	s.visible = y > s.Threshold
	return s.visible
}

// Visible reports whether the control is shown.
func (s *ScrollToTop) Visible() bool { return s.visible }

// Activate returns the smooth-scroll destination.
func (s *ScrollToTop) Activate() float64 { return 0 }
