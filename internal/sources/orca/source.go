// Package orca extracts FDM printer records from the OrcaSlicer
// repository: a tree of per-brand machine profile JSON files enumerated
// through the GitHub contents API.
package orca

import (
	"context"
	"path"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/printdex/printdex/internal/config"
	"github.com/printdex/printdex/internal/sources"
	"github.com/printdex/printdex/internal/transport"
	"github.com/printdex/printdex/pkg/catalog"
	"github.com/printdex/printdex/pkg/constants"
	"github.com/printdex/printdex/pkg/errors"
	"github.com/printdex/printdex/pkg/logging"
)

// sourceTag is the attribution recorded on every emitted record.
const sourceTag = "OrcaSlicer"

// Source is the OrcaSlicer profile-tree extractor.
type Source struct {
	cfg    config.FDMConfig
	client *transport.Client
}

// Option configures a Source.
type Option func(*Source)

// WithClient replaces the transport client. Used by tests.
func WithClient(c *transport.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// New creates an OrcaSlicer source for the configured upstream.
func New(cfg config.FDMConfig, opts ...Option) *Source {
	s := &Source{
		cfg:    cfg,
		client: transport.New(sources.OrcaSlicerID.String()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID implements sources.Source.
func (s *Source) ID() sources.ID {
	return sources.OrcaSlicerID
}

// contentEntry is one entry of a GitHub contents API directory listing.
type contentEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Extract implements sources.Source. Brands are processed under a
// bounded errgroup; each brand owns its candidate files and its part of
// the dedup space (keys embed the brand, so brands cannot collide).
// The combined list is sorted so concurrency never changes the result.
func (s *Source) Extract(ctx context.Context) ([]catalog.Printer, error) {
	log := logging.Ctx(ctx)

	brands, err := s.brands(ctx)
	if err != nil {
		// No brand listing means a degraded-but-valid empty run.
		log.Warn().Err(err).Msg("Failed to list brands, skipping FDM extraction")
		return []catalog.Printer{}, nil
	}
	log.Info().Int("brands", len(brands)).Msg("Listed brand directories")

	var (
		mu       sync.Mutex
		printers []catalog.Printer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MaxConcurrentFetches)
	for _, brand := range brands {
		brand := brand
		g.Go(func() error {
			records := s.extractBrand(logging.WithBrand(gctx, brand), brand)
			mu.Lock()
			printers = append(printers, records...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return []catalog.Printer{}, nil
	}

	catalog.Sort(printers)
	log.Info().Int("printers", len(printers)).Msg("Extracted FDM printers")
	return printers, nil
}

// brands lists the brand directories under the profiles tree.
func (s *Source) brands(ctx context.Context) ([]string, error) {
	url := s.cfg.APIBase + "/contents/" + s.cfg.ProfilesPath
	var entries []contentEntry
	if err := s.client.GetJSON(ctx, url, &entries); err != nil {
		return nil, err
	}

	var brands []string
	for _, e := range entries {
		if e.Type == "dir" {
			brands = append(brands, e.Name)
		}
	}
	return brands, nil
}

// machineFiles lists the JSON machine candidates for a brand. The
// conventional "machine" subdirectory is tried first; a 404 there is
// not an error, it falls back to the brand directory itself.
func (s *Source) machineFiles(ctx context.Context, brand string) ([]contentEntry, error) {
	base := s.cfg.APIBase + "/contents/" + s.cfg.ProfilesPath + "/" + brand

	var entries []contentEntry
	err := s.client.GetJSON(ctx, base+"/machine", &entries)
	if errors.IsNotFound(err) {
		err = s.client.GetJSON(ctx, base, &entries)
	}
	if err != nil {
		return nil, err
	}

	var files []contentEntry
	for _, e := range entries {
		if strings.HasSuffix(e.Name, ".json") && e.DownloadURL != "" {
			files = append(files, e)
		}
	}
	return files, nil
}

// extractBrand walks one brand's machine files and returns its accepted
// records. Every failure below the brand listing is per-file and skips
// only that file.
func (s *Source) extractBrand(ctx context.Context, brand string) []catalog.Printer {
	log := logging.Ctx(ctx)

	files, err := s.machineFiles(ctx, brand)
	if err != nil {
		log.Debug().Err(err).Msg("Failed to list machine files")
		return nil
	}

	var printers []catalog.Printer
	seen := make(map[string]struct{})

	for _, file := range files {
		var data map[string]any
		if err := s.client.GetJSON(ctx, file.DownloadURL, &data); err != nil {
			log.Debug().Err(err).Str("file", file.Name).Msg("Skipping unreadable machine file")
			continue
		}

		// Files without geometry keys are unrelated profiles sharing
		// the directory (filament, process presets).
		if !hasGeometry(data) {
			continue
		}

		rawName := resolveRawName(data, file.Name)
		if rawName == "" || isBlacklisted(rawName, s.cfg.Blacklist) {
			continue
		}

		model := baseModelName(rawName, brand)
		key := catalog.Key(brand, model)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		volume := resolveVolume(data)
		if volume.X < s.cfg.MinFootprintMM {
			continue
		}

		printers = append(printers, catalog.Printer{
			Brand:      brand,
			Model:      model,
			Technology: catalog.TechnologyFDM,
			Volume:     volume,
			ImageURL:   s.findImage(ctx, brand, model),
			Source:     sourceTag,
		})
	}

	return printers
}

// resolveRawName picks the display name: an explicit model field, then
// the generic name field, then the filename stem. First non-empty wins.
func resolveRawName(data map[string]any, filename string) string {
	if name := stringField(data, "printer_model"); name != "" {
		return name
	}
	if name := stringField(data, "name"); name != "" {
		return name
	}
	return strings.TrimSuffix(path.Base(filename), ".json")
}

// isBlacklisted reports whether the raw name names an accessory rather
// than a printer (case-insensitive substring match).
func isBlacklisted(name string, blacklist []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range blacklist {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
