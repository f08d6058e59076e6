package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"gobayes/domain/tables"
	"gobayes/ports"
)

// TableReader reads a 2x2 contingency table from Excel or CSV files.
// Accepted layouts:
//
//	5,94            bare counts, two rows of two cells
//	18,188
//
//	,fatal,nonfatal          labeled: header row of outcome names,
//	aspirin,5,94             first column of group names
//	placebo,18,188
type TableReader struct {
	sheet string
}

// NewTableReader creates a reader; sheet applies to .xlsx input only
func NewTableReader(sheet string) *TableReader {
	if sheet == "" {
		sheet = "Sheet1"
	}
	return &TableReader{sheet: sheet}
}

var _ ports.TableReader = (*TableReader)(nil)

// ReadTable loads and parses a 2x2 count table from the given file
func (r *TableReader) ReadTable(_ context.Context, path string) (tables.ContingencyTable, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return tables.ContingencyTable{}, fmt.Errorf("table file not found: %s", path)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = r.readCSVRows(path)
	case ".xlsx":
		rows, err = r.readExcelRows(path)
	default:
		return tables.ContingencyTable{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
	if err != nil {
		return tables.ContingencyTable{}, err
	}

	return parseTable(rows)
}

func (r *TableReader) readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return rows, nil
}

func (r *TableReader) readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", r.sheet, err)
	}
	log.Printf("[TableReader] Read %d rows from %s", len(rows), filepath.Base(path))
	return rows, nil
}

// parseTable interprets raw string rows as either a bare 2x2 count
// block or a labeled block with a header row and a group-name column.
func parseTable(raw [][]string) (tables.ContingencyTable, error) {
	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if len(row) == 0 || allBlank(row) {
			continue
		}
		rows = append(rows, row)
	}

	switch {
	case len(rows) == 2 && len(rows[0]) >= 2 && isNumeric(rows[0][0]):
		return parseBare(rows)
	case len(rows) == 3:
		return parseLabeled(rows)
	default:
		return tables.ContingencyTable{}, fmt.Errorf("expected a 2x2 count table, got %d data rows", len(rows))
	}
}

func parseBare(rows [][]string) (tables.ContingencyTable, error) {
	var counts [2][2]int
	for i := 0; i < 2; i++ {
		if len(rows[i]) < 2 {
			return tables.ContingencyTable{}, fmt.Errorf("row %d has %d cells, need 2", i+1, len(rows[i]))
		}
		for j := 0; j < 2; j++ {
			n, err := parseCount(rows[i][j])
			if err != nil {
				return tables.ContingencyTable{}, fmt.Errorf("row %d col %d: %w", i+1, j+1, err)
			}
			counts[i][j] = n
		}
	}
	return tables.New(counts)
}

func parseLabeled(rows [][]string) (tables.ContingencyTable, error) {
	header := rows[0]
	if len(header) < 3 {
		return tables.ContingencyTable{}, fmt.Errorf("header row has %d cells, need outcome labels in columns 2-3", len(header))
	}
	colLabels := [2]string{strings.TrimSpace(header[1]), strings.TrimSpace(header[2])}

	var counts [2][2]int
	var rowLabels [2]string
	for i := 0; i < 2; i++ {
		row := rows[i+1]
		if len(row) < 3 {
			return tables.ContingencyTable{}, fmt.Errorf("data row %d has %d cells, need a label and 2 counts", i+1, len(row))
		}
		rowLabels[i] = strings.TrimSpace(row[0])
		for j := 0; j < 2; j++ {
			n, err := parseCount(row[j+1])
			if err != nil {
				return tables.ContingencyTable{}, fmt.Errorf("row %q col %q: %w", rowLabels[i], colLabels[j], err)
			}
			counts[i][j] = n
		}
	}
	return tables.NewLabeled(counts, rowLabels, colLabels)
}

func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer count: %q", s)
	}
	return n, nil
}

func isNumeric(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

func allBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
