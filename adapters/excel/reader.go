package excel

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"queryinsights/domain/result"
)

// DataReader reads Excel and CSV files into the engine's result-set
// contract, inferring a generic type per column from the data.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read loads the file and returns a typed result set
func (r *DataReader) Read() (*result.Set, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var (
		grid [][]string
		err  error
	)
	switch r.fileType {
	case "csv":
		grid, err = r.readCSVRows()
	case "xlsx":
		grid, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(grid) < 2 {
		return nil, fmt.Errorf("%s file must have at least a header row and one data row", strings.ToUpper(r.fileType))
	}

	return buildResultSet(grid)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// buildResultSet converts the raw string grid: headers from the first
// row, per-column type inference over the rest, then cell conversion
// into the raw value domain.
func buildResultSet(grid [][]string) (*result.Set, error) {
	headerRow := grid[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := grid[1:]
	columns := make([]result.Column, len(headers))
	for i, header := range headers {
		columns[i] = result.Column{
			Name:        header,
			GenericType: inferColumnType(dataRows, i),
		}
	}

	set := &result.Set{Columns: columns}
	for _, raw := range dataRows {
		row := make(result.Row, len(columns))
		for i, col := range columns {
			var cell string
			if i < len(raw) {
				cell = strings.TrimSpace(raw[i])
			}
			row[col.Name] = convertCell(cell, col.GenericType)
		}
		set.Rows = append(set.Rows, row)
	}

	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("invalid file structure: %w", err)
	}
	return set, nil
}

// inferColumnType samples the non-blank cells of one column and picks
// the category the clear majority of them parses as, string otherwise.
func inferColumnType(rows [][]string, colIdx int) result.GenericType {
	numericCount := 0
	boolCount := 0
	temporalCount := 0
	total := 0

	for _, row := range rows {
		if colIdx >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[colIdx])
		if cell == "" {
			continue
		}
		total++

		if isBoolLiteral(cell) {
			boolCount++
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err == nil {
			numericCount++
			continue
		}
		if parsesAsTime(cell) {
			temporalCount++
		}
	}

	if total == 0 {
		return result.TypeString
	}
	ratio := func(count int) float64 { return float64(count) / float64(total) }
	switch {
	case ratio(boolCount) > 0.8:
		return result.TypeBoolean
	case ratio(numericCount) > 0.8:
		return result.TypeNumeric
	case ratio(temporalCount) > 0.8:
		return result.TypeTemporal
	default:
		return result.TypeString
	}
}

// convertCell maps a raw cell into the value domain for its declared
// category. Blank cells become nil outside string columns; cells that
// fail to convert are left as strings for the engine to filter.
func convertCell(cell string, genericType result.GenericType) any {
	if cell == "" && genericType != result.TypeString {
		return nil
	}
	switch genericType {
	case result.TypeNumeric:
		if f, err := strconv.ParseFloat(cell, 64); err == nil {
			return f
		}
	case result.TypeBoolean:
		if b, err := strconv.ParseBool(strings.ToLower(cell)); err == nil {
			return b
		}
	}
	return cell
}

func isBoolLiteral(cell string) bool {
	switch strings.ToLower(cell) {
	case "true", "false":
		return true
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

func parsesAsTime(cell string) bool {
	for _, layout := range timeLayouts {
		if _, err := time.Parse(layout, cell); err == nil {
			return true
		}
	}
	return false
}
