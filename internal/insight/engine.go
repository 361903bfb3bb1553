package insight

import (
	"queryinsights/domain/insight"
	"queryinsights/domain/result"
	"queryinsights/internal/errors"
)

// Config holds statistics engine tuning
type Config struct {
	// TopFrequentCount is the N of the top-frequent list per column.
	TopFrequentCount int
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{TopFrequentCount: 1}
}

// Engine computes per-column statistical summaries for materialized
// query results. It is pure and synchronous: no shared state across
// invocations, no mutation of its input, identical input gives
// structurally identical output.
type Engine struct {
	cfg Config
}

// NewEngine creates a statistics engine
func NewEngine(cfg Config) *Engine {
	if cfg.TopFrequentCount < 1 {
		cfg.TopFrequentCount = 1
	}
	return &Engine{cfg: cfg}
}

// Compute produces the statistics report for a result set using the
// configured top-frequent count.
func (e *Engine) Compute(set *result.Set) (*insight.Report, error) {
	return e.ComputeTopN(set, e.cfg.TopFrequentCount)
}

// ComputeTopN is Compute with an explicit top-frequent count. A
// structurally invalid set (nil, unnamed or duplicate columns) is an
// error; malformed individual values never are. Zero rows short-circuit
// to an empty report without per-column work.
func (e *Engine) ComputeTopN(set *result.Set, topN int) (*insight.Report, error) {
	if set == nil {
		return nil, errors.InvalidInput("result set is required")
	}
	if err := set.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}
	if topN < 1 {
		topN = 1
	}

	if len(set.Rows) == 0 {
		return &insight.Report{RowCount: 0, ColumnCount: 0, Columns: []insight.ColumnInsight{}}, nil
	}

	rowCount := len(set.Rows)
	columns := make([]insight.ColumnInsight, 0, len(set.Columns))
	for _, col := range set.Columns {
		columns = append(columns, computeColumn(col, set.ColumnValues(col.Name), rowCount, topN))
	}

	return &insight.Report{
		RowCount:    rowCount,
		ColumnCount: len(set.Columns),
		Columns:     columns,
	}, nil
}

// computeColumn assembles the common fields for one column and
// dispatches to exactly one category calculator, selected by the
// declared generic type and never by inspecting runtime value shapes.
func computeColumn(col result.Column, values []any, rowCount, topN int) insight.ColumnInsight {
	emptyCount := 0
	distinct := make(map[string]struct{})
	for _, v := range values {
		if isEmpty(v, col.GenericType) {
			emptyCount++
			continue
		}
		distinct[canonicalString(v)] = struct{}{}
	}

	entry := insight.ColumnInsight{
		Name:            col.Name,
		GenericType:     col.GenericType,
		EmptyCount:      emptyCount,
		EmptyPercent:    percentOf(emptyCount, rowCount),
		DistinctCount:   len(distinct),
		DistinctPercent: percentOf(len(distinct), rowCount),
		TopFrequent:     topFrequent(values, topN),
	}

	switch col.GenericType {
	case result.TypeNumeric:
		entry.Numeric = computeNumeric(values, rowCount)
	case result.TypeString:
		entry.String = computeString(values)
	case result.TypeTemporal:
		entry.Temporal = computeTemporal(values)
	case result.TypeBoolean:
		entry.Boolean = computeBoolean(values)
	}

	return entry
}
