package catalog

import (
	"sort"

	"github.com/printdex/printdex/pkg/logging"
)

// Merge reconciles the FDM-origin and SLA-origin record lists into one
// deduplicated catalog. Records are keyed by normalized
// (brand, model, technology), FDM list inserted first, then SLA, so
// entries differing only in technology never collide and both survive.
// A same-technology duplicate overwrites the earlier entry; the inputs
// are individually deduplicated so this is a defensive path, logged at
// debug level rather than treated as an error.
//
// The result is sorted by case-insensitive (brand, model) with
// technology breaking exact ties, making the final order independent of
// upstream enumeration order and of map iteration.
func Merge(fdm, sla []Printer) []Printer {
	merged := make(map[string]Printer, len(fdm)+len(sla))

	for _, p := range append(append([]Printer{}, fdm...), sla...) {
		key := p.MergeKey()
		if prev, ok := merged[key]; ok {
			logging.Debug().
				Str("brand", p.Brand).
				Str("model", p.Model).
				Str("technology", p.Technology.String()).
				Str("kept_source", p.Source).
				Str("dropped_source", prev.Source).
				Msg("Same-technology merge collision, last write wins")
		}
		merged[key] = p
	}

	result := make([]Printer, 0, len(merged))
	for _, p := range merged {
		result = append(result, p)
	}
	Sort(result)
	return result
}

// Sort orders printers in place by case-insensitive (brand, model).
// Technology is the final tie-break: the same brand and model kept under
// both technologies is a legitimate pair, and without a total order its
// relative position would follow map iteration. FDM sorts before SLA.
func Sort(printers []Printer) {
	sort.Slice(printers, func(i, j int) bool {
		bi, bj := fold.String(printers[i].Brand), fold.String(printers[j].Brand)
		if bi != bj {
			return bi < bj
		}
		mi, mj := fold.String(printers[i].Model), fold.String(printers[j].Model)
		if mi != mj {
			return mi < mj
		}
		return printers[i].Technology < printers[j].Technology
	})
}
