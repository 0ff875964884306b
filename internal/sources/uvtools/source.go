// Package uvtools extracts SLA printer records from the UVtools
// repository, where machine definitions live as an array of positional
// tuple literals inside one C# source file.
package uvtools

import (
	"context"
	"math"
	"strings"

	"github.com/printdex/printdex/internal/config"
	"github.com/printdex/printdex/internal/sources"
	"github.com/printdex/printdex/internal/transport"
	"github.com/printdex/printdex/pkg/catalog"
	"github.com/printdex/printdex/pkg/logging"
)

// sourceTag is the attribution recorded on every emitted record.
const sourceTag = "UVtools"

// Source is the UVtools embedded-literal extractor.
type Source struct {
	cfg    config.SLAConfig
	client *transport.Client
	parser Parser
}

// Option configures a Source.
type Option func(*Source)

// WithClient replaces the transport client. Used by tests.
func WithClient(c *transport.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithParser replaces the tuple parser.
func WithParser(p Parser) Option {
	return func(s *Source) {
		s.parser = p
	}
}

// New creates a UVtools source for the configured upstream.
func New(cfg config.SLAConfig, opts ...Option) *Source {
	s := &Source{
		cfg:    cfg,
		client: transport.New(sources.UVToolsID.String()),
		parser: RegexParser{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID implements sources.Source.
func (s *Source) ID() sources.ID {
	return sources.UVToolsID
}

// Extract implements sources.Source. The whole document is fetched in
// one call; a fetch failure degrades to an empty list rather than
// failing the build.
func (s *Source) Extract(ctx context.Context) ([]catalog.Printer, error) {
	log := logging.Ctx(ctx)

	text, err := s.client.GetText(ctx, s.cfg.MachineURL)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch machine definitions, skipping SLA extraction")
		return []catalog.Printer{}, nil
	}
	log.Debug().Int("bytes", len(text)).Msg("Fetched machine definitions")

	tuples := s.parser.Parse(text)

	printers := make([]catalog.Printer, 0, len(tuples))
	seen := make(map[string]struct{})

	for _, tuple := range tuples {
		if s.isPlaceholder(tuple.Model) {
			continue
		}

		key := catalog.Key(tuple.Brand, tuple.Model)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		printers = append(printers, catalog.Printer{
			Brand:      tuple.Brand,
			Model:      tuple.Model,
			Technology: catalog.TechnologySLA,
			Volume: catalog.Volume{
				X: round2(tuple.Width),
				Y: round2(tuple.Height),
				Z: round2(tuple.Z),
			},
			Source: sourceTag,
		})
	}

	catalog.Sort(printers)
	log.Info().Int("printers", len(printers)).Msg("Extracted SLA printers")
	return printers, nil
}

// isPlaceholder reports whether a model name is a non-product entry
// (case-insensitive exact match against the configured list).
func (s *Source) isPlaceholder(model string) bool {
	for _, placeholder := range s.cfg.PlaceholderModels {
		if strings.EqualFold(model, placeholder) {
			return true
		}
	}
	return false
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
