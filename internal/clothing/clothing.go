package clothing

// Features is the structured description of a clothing item extracted from a
// photo. It is produced by the analyze stage and sent back by the client to
// the search stage unchanged.
type Features struct {
	Type     string   `json:"type"`
	Color    []string `json:"color"`
	Style    []string `json:"style"`
	Pattern  string   `json:"pattern"`
	Material string   `json:"material"`
	// Brand is nil when no brand is visible in the image.
	Brand       *string `json:"brand,omitempty"`
	Description string  `json:"description"`
}

// HasBrand reports whether a non-empty brand was detected.
func (f Features) HasBrand() bool {
	return f.Brand != nil && *f.Brand != ""
}
