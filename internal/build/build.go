// Package build drives one full catalog rebuild: both extractors run,
// their lists are merged and summarized, and the two output documents
// are written. Each run starts from upstream state; nothing is carried
// over between runs besides the files it overwrites.
package build

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/printdex/printdex/internal/config"
	"github.com/printdex/printdex/internal/save"
	"github.com/printdex/printdex/internal/sources"
	"github.com/printdex/printdex/internal/sources/orca"
	"github.com/printdex/printdex/internal/sources/uvtools"
	"github.com/printdex/printdex/pkg/catalog"
	"github.com/printdex/printdex/pkg/logging"
)

// Output file names inside the configured output directory.
const (
	PrintersFile = "printers.json"
	MetadataFile = "metadata.json"
)

// Builder runs the extraction and reconciliation pipeline.
type Builder struct {
	cfg config.Config
	fdm sources.Source
	sla sources.Source
}

// Option configures a Builder.
type Option func(*Builder)

// WithFDMSource replaces the FDM extractor. Used by tests.
func WithFDMSource(s sources.Source) Option {
	return func(b *Builder) {
		b.fdm = s
	}
}

// WithSLASource replaces the SLA extractor. Used by tests.
func WithSLASource(s sources.Source) Option {
	return func(b *Builder) {
		b.sla = s
	}
}

// New creates a Builder over the configured upstreams.
func New(cfg config.Config, opts ...Option) *Builder {
	b := &Builder{
		cfg: cfg,
		fdm: orca.New(cfg.FDM),
		sla: uvtools.New(cfg.SLA),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result holds the outcome of one build run.
type Result struct {
	Printers     []catalog.Printer
	Metadata     catalog.Metadata
	PrintersPath string
	MetadataPath string
}

// Run executes the full pipeline. The extractors run concurrently and
// never fail the build; writing the outputs is the only fatal path.
func (b *Builder) Run(ctx context.Context) (*Result, error) {
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.Ctx(ctx)
	log.Info().Msg("Starting catalog build")

	var fdm, sla []catalog.Printer

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		fdm, err = b.fdm.Extract(logging.WithSource(gctx, b.fdm.ID().String()))
		return err
	})
	g.Go(func() error {
		var err error
		sla, err = b.sla.Extract(logging.WithSource(gctx, b.sla.ID().String()))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := catalog.Merge(fdm, sla)
	meta := catalog.Summarize(merged, b.cfg.Sources())
	log.Info().
		Int("total", meta.TotalPrinters).
		Int("fdm", meta.FDMCount).
		Int("sla", meta.SLACount).
		Int("brands", meta.BrandCount).
		Msg("Merged catalog")

	result := &Result{
		Printers:     merged,
		Metadata:     meta,
		PrintersPath: filepath.Join(b.cfg.OutputDir, PrintersFile),
		MetadataPath: filepath.Join(b.cfg.OutputDir, MetadataFile),
	}

	if err := save.JSON(result.PrintersPath, merged); err != nil {
		return nil, err
	}
	if err := save.JSON(result.MetadataPath, meta); err != nil {
		return nil, err
	}
	log.Info().
		Str("printers", result.PrintersPath).
		Str("metadata", result.MetadataPath).
		Msg("Catalog written")

	return result, nil
}
