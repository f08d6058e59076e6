package ports

import (
	"context"

	"gobayes/domain/tables"
)

// TableReader loads a 2x2 contingency table from an external data file
type TableReader interface {
	ReadTable(ctx context.Context, path string) (tables.ContingencyTable, error)
}
