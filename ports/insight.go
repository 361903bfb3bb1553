package ports

import (
	"queryinsights/domain/insight"
	"queryinsights/domain/result"
)

// InsightEngine computes statistical summaries for materialized query
// results. Implementations must be pure: same input, same output, no
// mutation of the given set.
type InsightEngine interface {
	// Compute produces the report with the engine's configured
	// top-frequent count.
	Compute(set *result.Set) (*insight.Report, error)

	// ComputeTopN is Compute with an explicit top-frequent count.
	ComputeTopN(set *result.Set, topN int) (*insight.Report, error)

	// DistributionProfile computes the extended numeric profile for
	// one column of the set.
	DistributionProfile(set *result.Set, column string) (*insight.DistributionProfile, error)
}
