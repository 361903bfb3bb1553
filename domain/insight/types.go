package insight

import (
	"queryinsights/domain/core"
	"queryinsights/domain/result"
)

// FrequentValue is one entry of a column's top-frequent list. Value
// retains the native form of the observed value for display; nil marks
// the empty bucket.
type FrequentValue struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

// NumericSummary holds statistics for columns declared numeric.
// ZeroPercent is normalized against the full row count, not the count
// of numeric values, so zero share and empty share stay comparable.
type NumericSummary struct {
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Mean        float64 `json:"mean"`
	StdDev      float64 `json:"stdDev"`
	P25         float64 `json:"p25"`
	P50         float64 `json:"p50"`
	P75         float64 `json:"p75"`
	ZeroCount   int     `json:"zeroCount"`
	ZeroPercent float64 `json:"zeroPercent"`
}

// StringSummary holds length statistics over non-blank strings.
// Lengths are measured in characters of the original, untrimmed value.
type StringSummary struct {
	MinLength int     `json:"minLength"`
	MaxLength int     `json:"maxLength"`
	AvgLength float64 `json:"avgLength"`
}

// TemporalSummary holds the observed time range. Min and Max are
// ISO-8601 timestamps; RangeDescription is a human-readable span such
// as "same day", "3 days" or "1 year, 2 months".
type TemporalSummary struct {
	Min              string `json:"min"`
	Max              string `json:"max"`
	RangeDescription string `json:"rangeDescription"`
}

// BooleanSummary tallies boolean-like values (literal booleans and the
// numbers 0/1). Percentages are normalized against the boolean-like
// count, not the row count.
type BooleanSummary struct {
	TrueCount    int     `json:"trueCount"`
	FalseCount   int     `json:"falseCount"`
	TruePercent  float64 `json:"truePercent"`
	FalsePercent float64 `json:"falsePercent"`
}

// ColumnInsight is the per-column output entry. Exactly one category
// summary is populated, chosen by the declared generic type; the other
// three stay nil. A nil summary means "insufficient data", which is
// distinct from a summary with zero-valued fields.
type ColumnInsight struct {
	Name            string             `json:"name"`
	GenericType     result.GenericType `json:"genericType"`
	EmptyCount      int                `json:"emptyCount"`
	EmptyPercent    float64            `json:"emptyPercent"`
	DistinctCount   int                `json:"distinctCount"`
	DistinctPercent float64            `json:"distinctPercent"`
	TopFrequent     []FrequentValue    `json:"topFrequent"`
	Numeric         *NumericSummary    `json:"numeric,omitempty"`
	String          *StringSummary     `json:"string,omitempty"`
	Temporal        *TemporalSummary   `json:"temporal,omitempty"`
	Boolean         *BooleanSummary    `json:"boolean,omitempty"`
}

// Report is the full statistics report for one query result. It is a
// pure function of its input: no timestamps, no identifiers, so two
// computations over identical input are structurally equal.
type Report struct {
	RowCount    int             `json:"rowCount"`
	ColumnCount int             `json:"columnCount"`
	Columns     []ColumnInsight `json:"columns"`
}

// DistributionProfile is the extended numeric profile computed outside
// the core report: shape of the distribution plus a normality verdict.
type DistributionProfile struct {
	Column     string  `json:"column"`
	SampleSize int     `json:"sampleSize"`
	Skewness   float64 `json:"skewness"`
	Kurtosis   float64 `json:"kurtosis"`
	IsNormal   bool    `json:"isNormal"`
	NormalityP float64 `json:"normalityP"`
}

// StoredReport wraps a Report with persistence metadata. The engine
// never produces one; the service layer does after a compute call.
type StoredReport struct {
	ID        core.ReportID  `json:"id"`
	Source    string         `json:"source,omitempty"`
	Report    *Report        `json:"report"`
	CreatedAt core.Timestamp `json:"createdAt"`
}
