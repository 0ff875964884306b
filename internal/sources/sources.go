// Package sources defines the interface implemented by upstream
// extractors. A source owns its own fetching, filtering, and intra-run
// deduplication, and emits ready-to-merge catalog records. Sources
// share no state and may run concurrently with no coordination.
package sources

import (
	"context"
	"slices"

	"github.com/printdex/printdex/pkg/catalog"
)

// ID represents the identifier of an upstream data source.
type ID string

// String returns the string representation of a source ID.
func (id ID) String() string {
	return string(id)
}

// Known source IDs.
const (
	// OrcaSlicerID is the FDM profile tree in the OrcaSlicer repository.
	OrcaSlicerID ID = "orcaslicer"
	// UVToolsID is the SLA machine table embedded in UVtools source.
	UVToolsID ID = "uvtools"
)

// IDs returns all known source IDs.
func IDs() []ID {
	return []ID{OrcaSlicerID, UVToolsID}
}

// IsValid returns true if the ID is one of the defined constants.
func (id ID) IsValid() bool {
	return slices.Contains(IDs(), id)
}

// Source extracts printer records from one upstream.
type Source interface {
	// ID identifies this source.
	ID() ID

	// Extract fetches and normalizes this source's records. A source
	// that cannot reach its upstream at all returns an empty list, not
	// an error; zero records is a valid degraded outcome. Individual
	// item failures are skipped inside the source.
	Extract(ctx context.Context) ([]catalog.Printer, error)
}
