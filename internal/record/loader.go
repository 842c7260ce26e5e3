package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrMissingColumn is returned when the category column is absent from the header,
	// or when a numeric column is absent in strict mode.
	ErrMissingColumn = errors.New("missing column")
	// ErrUnsupportedFormat is returned for files that are neither CSV nor XLSX.
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
)

// ValueError reports a cell that could not be read as a number in strict mode.
type ValueError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("row %d: column %q: non-numeric value %q", e.Row, e.Column, e.Value)
}

// Columns maps record fields to header names in the source table.
type Columns struct {
	Name     string
	Category string
	Mass     string
	Size     string
	Traits   [NumTraits]string
}

// DefaultColumns matches the pokemon_alopez247 dataset.
func DefaultColumns() Columns {
	return Columns{
		Name:     "Name",
		Category: "Type_1",
		Mass:     "Weight_kg",
		Size:     "Height_m",
		Traits:   traitNames,
	}
}

// Options controls how a dataset is read.
type Options struct {
	Columns Columns
	// Strict rejects empty, missing and non-numeric values instead of coercing them.
	Strict bool
	// Sheet selects the worksheet of an XLSX file. Empty means the first sheet.
	Sheet string
}

// Load reads every record from a CSV or XLSX file, chosen by extension.
func Load(path string, opts Options) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open dataset: %w", err)
		}
		defer f.Close()
		return ReadCSV(f, opts)
	case ".xlsx":
		return LoadXLSX(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadCSV parses a CSV stream with a header row.
func ReadCSV(r io.Reader, opts Options) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return fromRows(rows, opts)
}

// LoadXLSX reads records from a workbook sheet whose first row is the header.
func LoadXLSX(path string, opts Options) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return fromRows(rows, opts)
}

func fromRows(rows [][]string, opts Options) ([]Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := opts.Columns
	if cols.Category == "" {
		cols = DefaultColumns()
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		// Some exporters prefix the first header with a BOM.
		index[strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")] = i
	}

	catIdx, ok := index[cols.Category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, cols.Category)
	}
	nameIdx, hasName := index[cols.Name]
	if cols.Name == "" {
		hasName = false
	}

	numeric := make([]string, 0, 2+NumTraits)
	numeric = append(numeric, cols.Mass, cols.Size)
	numeric = append(numeric, cols.Traits[:]...)

	numIdx := make([]int, len(numeric))
	for i, name := range numeric {
		idx, ok := index[name]
		if !ok {
			if opts.Strict {
				return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
			}
			idx = -1
		}
		numIdx[i] = idx
	}

	records := make([]Record, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := Record{Category: cell(row, catIdx)}
		if hasName {
			rec.Name = cell(row, nameIdx)
		}

		values := make([]float64, len(numeric))
		for i, idx := range numIdx {
			if idx < 0 {
				values[i] = math.NaN()
				continue
			}
			raw := cell(row, idx)
			if !opts.Strict {
				values[i] = Coerce(raw)
				continue
			}
			v, ok := parseStrict(raw)
			if !ok {
				return nil, &ValueError{Row: n + 1, Column: numeric[i], Value: raw}
			}
			values[i] = v
		}

		rec.Mass, rec.Size = values[0], values[1]
		copy(rec.Traits[:], values[2:])
		records = append(records, rec)
	}

	return records, nil
}

// cell returns the raw value at idx, or "" for short rows.
func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
