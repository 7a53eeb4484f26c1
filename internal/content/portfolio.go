package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNotFound is returned when a section or project id is unknown.
var ErrNotFound = errors.New("not found")

// Anchors returns the section ids the navbar links to, in order.
func (p *Portfolio) Anchors() []string {
	anchors := make([]string, 0, len(p.Nav))
	for _, item := range p.Nav {
		anchors = append(anchors, strings.TrimPrefix(item.Anchor, "#"))
	}
	return anchors
}

// Section returns the section with the given id.
func (p *Portfolio) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ProjectByID returns a specific project by id.
func (p *Portfolio) ProjectByID(id string) (*Project, error) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}

// Validate checks that required fields are present and every link target
// is a usable URL or same-page anchor.
func (p *Portfolio) Validate() error {
	var errs []error
	required := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", field))
		}
	}
	link := func(field, href string) {
		if err := checkHref(href); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
	}

	required("profile.name", p.Profile.Name)
	required("profile.email", p.Profile.Email)
	for i, s := range p.Profile.Socials {
		required(fmt.Sprintf("profile.socials[%d].name", i), s.Name)
		link(fmt.Sprintf("profile.socials[%d].href", i), s.Href)
	}

	sectionIDs := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		required(fmt.Sprintf("sections[%d].id", i), s.ID)
		required(fmt.Sprintf("sections[%d].title", i), s.Title)
		sectionIDs[s.ID] = true
	}
	for i, item := range p.Nav {
		required(fmt.Sprintf("nav[%d].name", i), item.Name)
		if !strings.HasPrefix(item.Anchor, "#") {
			errs = append(errs, fmt.Errorf("nav[%d].anchor %q must be a same-page anchor", i, item.Anchor))
			continue
		}
		if !sectionIDs[strings.TrimPrefix(item.Anchor, "#")] {
			errs = append(errs, fmt.Errorf("nav[%d].anchor %q has no matching section", i, item.Anchor))
		}
	}

	for i, e := range p.Education {
		required(fmt.Sprintf("education[%d].institution", i), e.Institution)
		required(fmt.Sprintf("education[%d].degree", i), e.Degree)
	}
	for i, c := range p.Skills {
		required(fmt.Sprintf("skills[%d].name", i), c.Name)
		if len(c.Skills) == 0 {
			errs = append(errs, fmt.Errorf("skills[%d] has no skills", i))
		}
	}
	checkEntries := func(prefix string, entries []Experience) {
		for i, e := range entries {
			required(fmt.Sprintf("%s[%d].organization", prefix, i), e.Organization)
			required(fmt.Sprintf("%s[%d].title", prefix, i), e.Title)
			required(fmt.Sprintf("%s[%d].period", prefix, i), e.Period)
		}
	}
	checkEntries("experience", p.Experience)
	checkEntries("leadership", p.Leadership)

	seen := make(map[string]bool, len(p.Projects))
	for i, pr := range p.Projects {
		required(fmt.Sprintf("projects[%d].id", i), pr.ID)
		required(fmt.Sprintf("projects[%d].title", i), pr.Title)
		if seen[pr.ID] {
			errs = append(errs, fmt.Errorf("projects[%d].id %q is duplicated", i, pr.ID))
		}
		seen[pr.ID] = true
		for j, l := range pr.Links {
			link(fmt.Sprintf("projects[%d].links[%d].url", i, j), l.URL)
		}
	}

	return errors.Join(errs...)
}

func checkHref(href string) error {
	if href == "" {
		return errors.New("empty link")
	}
	if strings.HasPrefix(href, "#") {
		return nil
	}
	u, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("invalid link %q: %w", href, err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("link %q has no host", href)
		}
	case "mailto", "tel":
		if u.Opaque == "" {
			return fmt.Errorf("link %q has no target", href)
		}
	default:
		return fmt.Errorf("link %q has unsupported scheme %q", href, u.Scheme)
	}
	return nil
}

// TelHref returns the tel: URI for the profile phone number.
func (p Profile) TelHref() string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, p.Phone)
	return "tel:" + digits
}

// MailtoHref returns the mailto: URI for the profile email.
func (p Profile) MailtoHref() string {
	return "mailto:" + p.Email
}
