package result

import (
	"fmt"
	"strings"
)

// GenericType is the semantic category assigned to a column, independent
// of the underlying storage representation.
type GenericType string

const (
	TypeNumeric  GenericType = "numeric"
	TypeString   GenericType = "string"
	TypeTemporal GenericType = "temporal"
	TypeBoolean  GenericType = "boolean"
)

// IsValid reports whether t is one of the four known categories.
func (t GenericType) IsValid() bool {
	switch t {
	case TypeNumeric, TypeString, TypeTemporal, TypeBoolean:
		return true
	}
	return false
}

// ParseGenericType maps a free-form type label onto a GenericType.
// Unrecognized labels default to string, the least assuming category.
func ParseGenericType(s string) GenericType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "numeric", "number", "int", "integer", "float", "double", "decimal":
		return TypeNumeric
	case "temporal", "timestamp", "date", "datetime", "time":
		return TypeTemporal
	case "boolean", "bool":
		return TypeBoolean
	default:
		return TypeString
	}
}

// Column describes one column of a query result: its name and the
// semantic category its values are expected to belong to.
type Column struct {
	Name        string      `json:"name"`
	GenericType GenericType `json:"genericType"`
}

// Row maps column names to raw values. Values are dynamically shaped:
// nil, a number, a string, or a boolean. A missing key counts the same
// as nil.
type Row map[string]any

// Set is a fully materialized query result: ordered columns plus
// ordered rows. The engine never mutates a Set.
type Set struct {
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// RowCount returns the number of rows in the set.
func (s *Set) RowCount() int {
	return len(s.Rows)
}

// ColumnValues resolves the ordered sequence of raw values for one
// column across all rows. Absent keys yield nil entries so the sequence
// always has one slot per row.
func (s *Set) ColumnValues(name string) []any {
	values := make([]any, len(s.Rows))
	for i, row := range s.Rows {
		values[i] = row[name]
	}
	return values
}

// Validate checks the structural contract: every column needs a
// non-blank name, names must be unique, and the declared type must be
// one of the four categories.
func (s *Set) Validate() error {
	seen := make(map[string]bool, len(s.Columns))
	for i, col := range s.Columns {
		if strings.TrimSpace(col.Name) == "" {
			return fmt.Errorf("column %d has no name", i)
		}
		if seen[col.Name] {
			return fmt.Errorf("duplicate column name: %s", col.Name)
		}
		seen[col.Name] = true
		if !col.GenericType.IsValid() {
			return fmt.Errorf("column %s has unknown generic type %q", col.Name, col.GenericType)
		}
	}
	return nil
}
