package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"queryinsights/domain/result"
	"queryinsights/internal/errors"
	"queryinsights/ports"
)

// resultReader executes SQL against Postgres and materializes the
// outcome as the engine's input contract: ordered columns with generic
// types plus ordered rows of raw values.
type resultReader struct {
	db *sqlx.DB
}

// NewResultReader creates a SQL result reader
func NewResultReader(db *sqlx.DB) ports.ResultReader {
	return &resultReader{db: db}
}

// ReadQuery runs the query and converts driver column types to the
// four generic categories. Unknown database types fall back to string.
func (r *resultReader) ReadQuery(ctx context.Context, query string) (*result.Set, error) {
	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute query")
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read column types")
	}

	columns := make([]result.Column, len(columnTypes))
	for i, ct := range columnTypes {
		columns[i] = result.Column{
			Name:        ct.Name(),
			GenericType: genericTypeForDB(ct.DatabaseTypeName()),
		}
	}

	set := &result.Set{Columns: columns}
	for rows.Next() {
		raw, err := rows.SliceScan()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan result row")
		}
		row := make(result.Row, len(columns))
		for i, v := range raw {
			row[columns[i].Name] = normalizeValue(v)
		}
		set.Rows = append(set.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "result iteration failed")
	}

	return set, nil
}

// genericTypeForDB maps a Postgres type name onto a generic category
func genericTypeForDB(dbType string) result.GenericType {
	switch strings.ToUpper(dbType) {
	case "INT2", "INT4", "INT8", "FLOAT4", "FLOAT8", "NUMERIC", "DECIMAL", "MONEY", "OID":
		return result.TypeNumeric
	case "BOOL":
		return result.TypeBoolean
	case "DATE", "TIME", "TIMETZ", "TIMESTAMP", "TIMESTAMPTZ":
		return result.TypeTemporal
	default:
		return result.TypeString
	}
}

// normalizeValue flattens driver values to the raw value domain the
// engine accepts: nil, numbers, strings, booleans, time.Time.
func normalizeValue(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t
	default:
		return v
	}
}
