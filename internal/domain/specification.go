package domain

// Feature is a single product selling point split into a short title and an
// optional longer description.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Specification is the partial attribute set mined from reference text or
// supplied by an override profile. Every field is optional; an empty string
// or nil slice means the attribute is unknown and must be omitted from any
// rendered output.
type Specification struct {
	FiberContent  string    `json:"fiber_content,omitempty"`
	Weight        string    `json:"weight,omitempty"`
	Length        string    `json:"length,omitempty"`
	NeedleSize    string    `json:"needle_size,omitempty"`
	CrochetHook   string    `json:"crochet_hook,omitempty"`
	GaugeStitches string    `json:"gauge_stitches,omitempty"`
	GaugeRows     string    `json:"gauge_rows,omitempty"`
	Care          string    `json:"care,omitempty"`
	Origin        string    `json:"origin,omitempty"`
	Features      []Feature `json:"features,omitempty"`
	ProjectTypes  []string  `json:"project_types,omitempty"`
}

// Empty reports whether no attribute at all was extracted.
func (s Specification) Empty() bool {
	return s.FiberContent == "" &&
		s.Weight == "" &&
		s.Length == "" &&
		s.NeedleSize == "" &&
		s.CrochetHook == "" &&
		s.GaugeStitches == "" &&
		s.GaugeRows == "" &&
		s.Care == "" &&
		s.Origin == "" &&
		len(s.Features) == 0 &&
		len(s.ProjectTypes) == 0
}
