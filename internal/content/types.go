package content

// SocialLink is an outbound profile or contact link.
type SocialLink struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	Href string `json:"href"`
}

// NavItem is a same-page navigation anchor.
type NavItem struct {
	Name   string `json:"name"`
	Anchor string `json:"anchor"`
}

// Profile holds the hero section copy and contact details.
type Profile struct {
	Name     string       `json:"name"`
	Initials string       `json:"initials"`
	Greeting string       `json:"greeting"`
	Headline string       `json:"headline"`
	Summary  string       `json:"summary"` // markdown
	Phone    string       `json:"phone"`
	Email    string       `json:"email"`
	Headshot string       `json:"headshot"`
	Socials  []SocialLink `json:"socials"`
}

// Education is a single degree entry.
type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Period      string   `json:"period"`
	Location    string   `json:"location"`
	Highlights  []string `json:"highlights"`
	Coursework  []string `json:"coursework"`
}

// SkillCategory groups skills under a heading.
type SkillCategory struct {
	Name   string   `json:"name"`
	Icon   string   `json:"icon"`
	Skills []string `json:"skills"`
}

// FocusArea is one of the highlight tiles under the skill grid.
type FocusArea struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Experience is a professional position. Leadership roles share the shape.
type Experience struct {
	Organization string   `json:"organization"`
	Title        string   `json:"title"`
	Period       string   `json:"period"`
	Location     string   `json:"location"`
	Icon         string   `json:"icon"`
	Color        string   `json:"color"`
	Skills       []string `json:"skills,omitempty"`
	Achievements []string `json:"achievements"`
}

// Role is an extracurricular position.
type Role = Experience

// ProjectLink points at a repository, video or other external page.
type ProjectLink struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	URL   string `json:"url"`
}

// Project is a portfolio project card.
type Project struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Period      string        `json:"period"`
	Skills      []string      `json:"skills"`
	Description []string      `json:"description"`
	Image       string        `json:"image,omitempty"`
	Links       []ProjectLink `json:"links,omitempty"`
}

// Section is the heading and intro copy of a content section.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Intro string `json:"intro,omitempty"` // markdown
}

// Portfolio aggregates everything the page renders.
type Portfolio struct {
	Profile    Profile         `json:"profile"`
	Nav        []NavItem       `json:"nav"`
	Sections   []Section       `json:"sections"`
	Education  []Education     `json:"education"`
	Skills     []SkillCategory `json:"skills"`
	FocusAreas []FocusArea     `json:"focus_areas"`
	Experience []Experience    `json:"experience"`
	Projects   []Project       `json:"projects"`
	Leadership []Role          `json:"leadership"`
}
