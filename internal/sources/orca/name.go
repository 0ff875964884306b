package orca

import (
	"regexp"
	"strings"
)

// Nozzle-diameter qualifiers appended to profile names: a numeric token
// with an optional mm unit before the word nozzle, either inline
// ("0.4mm nozzle") or parenthetical ("(0.4 nozzle)").
var (
	nozzleSuffixRe = regexp.MustCompile(`(?i)\s+\d+(\.\d+)?\s*(mm)?\s*nozzle`)
	nozzleParenRe  = regexp.MustCompile(`(?i)\s*\(.*nozzle.*\)`)
)

// baseModelName produces the canonical model name: the brand stripped
// as a case-insensitive literal prefix, then nozzle qualifiers removed.
func baseModelName(name, brand string) string {
	prefix := strings.ToLower(brand) + " "
	if strings.HasPrefix(strings.ToLower(name), prefix) {
		name = strings.TrimSpace(name[len(prefix):])
	}

	name = nozzleSuffixRe.ReplaceAllString(name, "")
	name = nozzleParenRe.ReplaceAllString(name, "")

	return strings.TrimSpace(name)
}
