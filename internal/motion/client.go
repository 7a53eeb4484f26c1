package motion

// ClientConfig is everything the browser script needs, serialised into the
// page as JSON.
type ClientConfig struct {
	NavbarThreshold    float64         `json:"navbar_threshold"`
	ScrollTopThreshold float64         `json:"scroll_top_threshold"`
	HeaderOffset       float64         `json:"header_offset"`
	Sections           []SectionMotion `json:"sections"`
	Background         Background      `json:"background"`
}

// Config returns the client configuration for the page.
func Config() ClientConfig {
	return ClientConfig{
		NavbarThreshold:    NavbarThreshold,
		ScrollTopThreshold: ScrollTopThreshold,
		HeaderOffset:       HeaderOffset,
		Sections:           Sections(),
		Background:         DefaultBackground(),
	}
}
