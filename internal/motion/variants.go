package motion

import "github.com/pankajah/portfolio-site/internal/content"

// Pose is an opacity plus translation state.
type Pose struct {
	Opacity float64 `json:"opacity"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// Variant describes a transition from Hidden to Visible.
type Variant struct {
	Hidden   Pose    `json:"hidden"`
	Visible  Pose    `json:"visible"`
	Duration float64 `json:"duration"`
	Ease     string  `json:"ease,omitempty"`
}

// Stagger offsets the start of successive children.
type Stagger struct {
	DelayChildren   float64 `json:"delay_children"`
	StaggerChildren float64 `json:"stagger_children"`
}

// Delay is the start offset in seconds of child i.
func (s Stagger) Delay(i int) float64 {
	return s.DelayChildren + float64(i)*s.StaggerChildren
}

// ItemDelay is the start offset of list item j inside card i. Lists inside
// cards begin after the cards have started arriving.
func ItemDelay(i, j int) float64 {
	return 0.5 + float64(i)*0.1 + float64(j)*0.05
}

// SectionMotion is the reveal configuration of one content section.
type SectionMotion struct {
	ID      string  `json:"id"`
	Amount  float64 `json:"amount"`
	Stagger Stagger `json:"stagger"`
	Header  Variant `json:"header"`
	Item    Variant `json:"item"`
}

var (
	fadeUp = Variant{
		Hidden:   Pose{Opacity: 0, Y: 20},
		Visible:  Pose{Opacity: 1},
		Duration: 0.6,
	}
	cardUp = Variant{
		Hidden:   Pose{Opacity: 0, Y: 50},
		Visible:  Pose{Opacity: 1},
		Duration: 0.6,
		Ease:     "easeOut",
	}
	cardLeft = Variant{
		Hidden:   Pose{Opacity: 0, X: -50},
		Visible:  Pose{Opacity: 1},
		Duration: 0.6,
		Ease:     "easeOut",
	}
)

// Sections returns the reveal configuration for every animated section in
// document order. The hero animates on mount and is not listed.
func Sections() []SectionMotion {
	return []SectionMotion{
		{
			ID:      content.SectionEducation,
			Amount:  0.3,
			Stagger: Stagger{DelayChildren: 0.3, StaggerChildren: 0.2},
			Header:  fadeUp,
			Item:    fadeUp,
		},
		{
			ID:      content.SectionSkills,
			Amount:  0.2,
			Stagger: Stagger{DelayChildren: 0.3, StaggerChildren: 0.1},
			Header:  fadeUp,
			Item:    Variant{Hidden: Pose{Opacity: 0, Y: 20}, Visible: Pose{Opacity: 1}, Duration: 0.5},
		},
		{
			ID:      content.SectionExperience,
			Amount:  0.1,
			Stagger: Stagger{StaggerChildren: 0.3},
			Header:  fadeUp,
			Item:    cardUp,
		},
		{
			ID:      content.SectionProjects,
			Amount:  0.1,
			Stagger: Stagger{StaggerChildren: 0.3},
			Header:  fadeUp,
			Item:    cardUp,
		},
		{
			ID:      content.SectionLeadership,
			Amount:  0.1,
			Stagger: Stagger{StaggerChildren: 0.3},
			Header:  fadeUp,
			Item:    cardLeft,
		},
	}
}

// SectionByID looks up the reveal configuration of a section.
func SectionByID(id string) (SectionMotion, bool) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return SectionMotion{}, false
}
