// Package catalog defines the printer catalog domain model: the Printer
// record harvested from upstream sources, the normalized keys used for
// deduplication, the merge engine that reconciles the per-source lists,
// and the build metadata aggregate.
package catalog

// Technology is the print technology of a machine.
type Technology string

// Supported print technologies. Technology is fixed per upstream source,
// never inferred from record content.
const (
	// TechnologyFDM is fused deposition modeling (filament printers).
	TechnologyFDM Technology = "FDM"
	// TechnologySLA is stereolithography (resin printers).
	TechnologySLA Technology = "SLA"
)

// String returns the string representation of the technology.
func (t Technology) String() string {
	return string(t)
}

// IsValid returns true if the technology is one of the defined constants.
func (t Technology) IsValid() bool {
	return t == TechnologyFDM || t == TechnologySLA
}

// Volume is a build volume in millimeters. X and Y are the build-plate
// footprint, Z is the maximum build height.
type Volume struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Printer is one catalog record: a single machine as reported by an
// upstream source, with its name already cleaned and its volume resolved.
type Printer struct {
	Brand      string     `json:"brand"`
	Model      string     `json:"model"`
	Technology Technology `json:"technology"`
	Volume     Volume     `json:"volume"`
	ImageURL   string     `json:"image_url,omitempty"`
	Source     string     `json:"source"`
}

// MinFootprintMM is the plausibility threshold for the build-plate
// footprint width. Records with Volume.X below this never enter the
// catalog.
const MinFootprintMM = 10.0

// HasImage reports whether a cover image was resolved for this record.
func (p *Printer) HasImage() bool {
	return p.ImageURL != ""
}
