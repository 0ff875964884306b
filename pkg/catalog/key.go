package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold is a Unicode case-folding caser used for all case-insensitive
// comparisons on brand and model names.
var fold = cases.Fold()

// NormalizeBrand normalizes a brand name for keying: case-folded,
// trimmed, spaces collapsed to underscores.
func NormalizeBrand(brand string) string {
	b := fold.String(strings.TrimSpace(brand))
	return strings.ReplaceAll(b, " ", "_")
}

// NormalizeModel normalizes a model name for keying: case-folded,
// trimmed, spaces and hyphens collapsed to underscores. Hyphens are
// folded too so "Ender-3" and "Ender 3" dedupe to the same record.
func NormalizeModel(model string) string {
	m := fold.String(strings.TrimSpace(model))
	m = strings.ReplaceAll(m, " ", "_")
	return strings.ReplaceAll(m, "-", "_")
}

// Key is the normalized (brand, model) pair used to deduplicate records
// within a single source's extraction run.
func Key(brand, model string) string {
	return NormalizeBrand(brand) + "|" + NormalizeModel(model)
}

// MergeKey extends Key with the technology so the same brand and model
// may exist once per print technology in the merged catalog.
func MergeKey(brand, model string, tech Technology) string {
	return Key(brand, model) + "|" + fold.String(string(tech))
}

// Key returns the printer's intra-source deduplication key.
func (p *Printer) Key() string {
	return Key(p.Brand, p.Model)
}

// MergeKey returns the printer's cross-source deduplication key.
func (p *Printer) MergeKey() string {
	return MergeKey(p.Brand, p.Model, p.Technology)
}
