package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker reports whether a record collection has been seeded.
type CatalogChecker interface {
	Exists(ctx context.Context) (bool, error)
}
