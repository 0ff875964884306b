package orca

import (
	"context"
	"strings"
)

// findImage probes the conventional cover-art locations for a printer
// and returns the first URL that answers, or "" when none do. This is
// best-effort only; probe failures are absences, never errors.
func (s *Source) findImage(ctx context.Context, brand, model string) string {
	dir := s.cfg.RawBase + "/" + s.cfg.ProfilesPath + "/" + brand + "/"
	safeName := strings.ReplaceAll(brand+" "+model, " ", "_")

	candidates := []string{
		dir + brand + " " + model + "_cover.png",
		dir + safeName + "_cover.png",
	}

	for _, candidate := range candidates {
		url := strings.ReplaceAll(candidate, " ", "%20")
		if s.client.Exists(ctx, url) {
			return url
		}
	}
	return ""
}
