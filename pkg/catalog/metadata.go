package catalog

import (
	"sort"

	"github.com/agentstation/utc"
)

// Metadata summarizes one catalog build. It has no identity of its own
// and is recomputed fresh on every run; LastUpdated is the only
// non-deterministic field in the pipeline.
type Metadata struct {
	LastUpdated   utc.Time          `json:"last_updated"`
	TotalPrinters int               `json:"total_printers"`
	FDMCount      int               `json:"fdm_count"`
	SLACount      int               `json:"sla_count"`
	WithImages    int               `json:"with_images"`
	BrandCount    int               `json:"brand_count"`
	Brands        []string          `json:"brands"`
	Sources       map[string]string `json:"sources"`
}

// Summarize aggregates metadata over the final merged record list.
// Brands are distinct case-sensitive as stored, sorted. The sources map
// attributes each technology to its upstream repository URL.
func Summarize(printers []Printer, sources map[string]string) Metadata {
	meta := Metadata{
		LastUpdated:   utc.Now(),
		TotalPrinters: len(printers),
		Sources:       sources,
	}

	seen := make(map[string]struct{})
	for i := range printers {
		p := &printers[i]
		switch p.Technology {
		case TechnologyFDM:
			meta.FDMCount++
		case TechnologySLA:
			meta.SLACount++
		}
		if p.HasImage() {
			meta.WithImages++
		}
		seen[p.Brand] = struct{}{}
	}

	meta.Brands = make([]string, 0, len(seen))
	for brand := range seen {
		meta.Brands = append(meta.Brands, brand)
	}
	sort.Strings(meta.Brands)
	meta.BrandCount = len(meta.Brands)

	return meta
}
