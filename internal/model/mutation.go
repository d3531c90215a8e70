package model

// VariationInfo describes one variation found in a project.
type VariationInfo struct {
	Path     Path     `json:"path"`
	Line     int      `json:"line"`
	Name     string   `json:"name,omitempty"`
	Variants []string `json:"variants"`
	Active   int      `json:"active"`
	Tags     []string `json:"tags,omitempty"`
}

// ActiveName returns the active variant name, or BaseName.
func (i VariationInfo) ActiveName() string {
	if i.Active <= 0 || i.Active > len(i.Variants) {
		return BaseName
	}

	return i.Variants[i.Active-1]
}

// DisplayName returns the variation name or "anonymous".
func (i VariationInfo) DisplayName() string {
	if i.Name == "" {
		return "anonymous"
	}

	return i.Name
}

// SetResult describes a change of the active body of one variation.
type SetResult struct {
	File      Path   `json:"file"`
	Line      int    `json:"line"`
	Variation string `json:"variation,omitempty"`
	Previous  int    `json:"previous"`
	Current   int    `json:"current"`
	From      string `json:"from"`
	To        string `json:"to"`
}
