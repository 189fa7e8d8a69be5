package out

import (
	"context"

	"flowstreak/internal/modules/history/domain"
)

type HistoryStore interface {
	Load(ctx context.Context) (domain.History, error)
	// Update applies fn to the stored history and writes the result atomically.
	Update(ctx context.Context, fn func(domain.History) error) error
	// LoadRaw returns the stored document as-is; found is false when nothing was written yet.
	LoadRaw(ctx context.Context) (raw string, found bool, err error)
}

type LegacyCounterStore interface {
	LoadLegacy(ctx context.Context) (domain.LegacyCounters, error)
}

type SchemaChecker interface {
	Validate(raw string) ([]string, error)
}

type Exporter interface {
	Export(history domain.History, format string) ([]byte, error)
}
