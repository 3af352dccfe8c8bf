// Package importer reads SKU lists from CSV and Excel files.
// Columns are matched by header name (case-insensitive, with aliases); files
// without a header are read positionally as name, width, depth, height, weight.
package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// Format identifies an input file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ErrUnsupportedFormat is returned for file types other than CSV and XLSX.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Result holds the parsed SKUs plus row-level problems.
// Rows listed in Errors are not part of SKUs.
type Result struct {
	SKUs     []model.SKU `json:"skus"`
	Errors   []string    `json:"errors,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

// OK reports whether at least one SKU was read and no row failed.
func (r Result) OK() bool {
	return len(r.SKUs) > 0 && len(r.Errors) == 0
}

// ColumnMapping maps column roles to indices; -1 means absent.
type ColumnMapping struct {
	Name   int
	Width  int
	Depth  int
	Height int
	Weight int
}

var headerAliases = map[string][]string{
	"name":   {"name", "sku", "item", "product", "description", "label"},
	"width":  {"width", "w", "x"},
	"depth":  {"depth", "d", "length", "len", "l", "y"},
	"height": {"height", "h", "z"},
	"weight": {"weight", "wt", "mass", "kg", "lbs"},
}

// FormatFromName picks the format from a file extension.
func FormatFromName(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ImportFile reads a CSV or XLSX file from disk.
func ImportFile(path string) (Result, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return Result{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Import(f, format)
}

// Import reads SKUs from r. It returns an error only when the input cannot be read at all.
func Import(r io.Reader, format Format) (Result, error) {
	switch format {
	case FormatCSV:
		data, err := io.ReadAll(r)
		if err != nil {
			return Result{}, fmt.Errorf("read csv: %w", err)
		}
		return importCSV(data)
	case FormatXLSX:
		return importXLSX(r)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DetectCSVDelimiter picks the delimiter among comma, semicolon, tab and pipe that
// splits the most rows into the same number of columns as the first row.
func DetectCSVDelimiter(data []byte) rune {
	best := ','
	bestScore := 0

	for _, delim := range []rune{',', ';', '\t', '|'} {
		records, _, err := readCSV(data, delim)
		if err != nil || len(records) == 0 {
			continue
		}
		cols := len(records[0])
		if cols < 2 {
			continue
		}
		consistent := 0
		for _, row := range records {
			if len(row) == cols {
				consistent++
			}
		}
		if score := consistent*10 + cols; score > bestScore {
			bestScore = score
			best = delim
		}
	}
	return best
}

// DetectColumns maps a header row. The second return is false when the row
// does not look like a header, in which case the positional mapping is returned.
func DetectColumns(row []string) (ColumnMapping, bool) {
	m := ColumnMapping{Name: -1, Width: -1, Depth: -1, Height: -1, Weight: -1}
	found := false

	for i, cell := range row {
		key := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if key != alias {
					continue
				}
				found = true
				slot := m.slot(role)
				if *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !found {
		return ColumnMapping{Name: 0, Width: 1, Depth: 2, Height: 3, Weight: 4}, false
	}
	return m, true
}

func (m *ColumnMapping) slot(role string) *int {
	switch role {
	case "name":
		return &m.Name
	case "width":
		return &m.Width
	case "depth":
		return &m.Depth
	case "height":
		return &m.Height
	default:
		return &m.Weight
	}
}

// readCSV returns the records and the 1-based source line of each one.
// Blank lines are skipped by encoding/csv, so indices alone would drift.
func readCSV(data []byte, delim rune) ([][]string, []int, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delim
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var records [][]string
	var lines []int
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return records, lines, nil
		}
		if err != nil {
			return nil, nil, err
		}
		line, _ := reader.FieldPos(0)
		records = append(records, record)
		lines = append(lines, line)
	}
}

func importCSV(data []byte) (Result, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if len(bytes.TrimSpace(data)) == 0 {
		return Result{Errors: []string{"file is empty"}}, nil
	}

	delim := DetectCSVDelimiter(data)
	var warnings []string
	if delim != ',' {
		name := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delim]
		warnings = append(warnings, fmt.Sprintf("detected %s delimiter", name))
	}

	records, lines, err := readCSV(data, delim)
	if err != nil {
		return Result{}, fmt.Errorf("read csv: %w", err)
	}
	return fromRows(records, lines, "line", warnings), nil
}

func importXLSX(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Result{Errors: []string{"workbook has no sheets"}}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Result{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return Result{Errors: []string{"sheet is empty"}}, nil
	}
	return fromRows(rows, nil, "row", nil), nil
}

// fromRows parses data rows. lines holds source line numbers; nil means row index + 1.
func fromRows(rows [][]string, lines []int, prefix string, warnings []string) Result {
	res := Result{Warnings: warnings}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
		var missing []string
		if mapping.Width == -1 {
			missing = append(missing, "width")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "depth")
		}
		if mapping.Height == -1 {
			missing = append(missing, "height")
		}
		if len(missing) > 0 {
			res.Errors = append(res.Errors, "required columns not found in header: "+strings.Join(missing, ", "))
			return res
		}
	} else if len(rows[0]) >= 2 {
		if _, err := parseNumber(cell(rows[0], 1)); err != nil {
			start = 1
			res.Warnings = append(res.Warnings, "unrecognized header row skipped, reading columns by position")
		}
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		num := i + 1
		if lines != nil {
			num = lines[i]
		}
		label := fmt.Sprintf("%s %d", prefix, num)
		sku, warning, err := parseRow(row, mapping, len(res.SKUs))
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", label, err))
			continue
		}
		if warning != "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %s", label, warning))
		}
		res.SKUs = append(res.SKUs, sku)
	}

	if len(res.SKUs) == 0 && len(res.Errors) == 0 {
		res.Errors = append(res.Errors, "no data rows found")
	}
	return res
}

func parseRow(row []string, m ColumnMapping, index int) (model.SKU, string, error) {
	sku := model.SKU{Name: cell(row, m.Name)}

	for _, field := range []struct {
		name string
		col  int
		dst  *float64
	}{
		{"width", m.Width, &sku.Width},
		{"depth", m.Depth, &sku.Depth},
		{"height", m.Height, &sku.Height},
	} {
		raw := cell(row, field.col)
		if raw == "" {
			return model.SKU{}, "", fmt.Errorf("missing %s", field.name)
		}
		v, err := parseNumber(raw)
		if err != nil {
			return model.SKU{}, "", fmt.Errorf("invalid %s %q", field.name, raw)
		}
		*field.dst = v
	}

	var warning string
	if raw := cell(row, m.Weight); raw != "" {
		v, err := parseNumber(raw)
		switch {
		case err != nil:
			warning = fmt.Sprintf("invalid weight %q, using %g", raw, model.DefaultSKUWeight)
		case v <= 0:
			warning = fmt.Sprintf("non-positive weight %q, using %g", raw, model.DefaultSKUWeight)
		default:
			sku.Weight = v
		}
	}

	sku = sku.Normalize(index)
	if err := sku.Dimensions.Validate(); err != nil {
		return model.SKU{}, "", err
	}
	return sku, warning, nil
}

// parseNumber accepts a decimal comma when no dot is present ("12,5").
func parseNumber(s string) (float64, error) {
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
