package ports

import (
	"context"

	"queryinsights/domain/result"
)

// ResultReader executes a query against a backing store and returns
// the fully materialized result set that feeds the insight engine.
type ResultReader interface {
	ReadQuery(ctx context.Context, query string) (*result.Set, error)
}
