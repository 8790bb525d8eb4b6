// Package export writes extracted content and test-case records as XLSX
// workbooks. Row order is preserved, headers become the first row, and an
// empty row set is a usage error rather than a silently empty file.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/caseloom/caseloom-cli/internal/testcase"
)

// Default sheet names, matching what downstream consumers expect.
const (
	CaseSheetName    = "Cas_de_test"
	ContentSheetName = "Data"
)

const (
	caseWidthCap    = 100
	contentWidthCap = 50
	headerFillColor = "4472C4"
)

// caseHeaders are the exported column names, in schema order.
var caseHeaders = []string{"ID", "Titre", "Préconditions", "Données d'entrée", "Étapes", "Résultat attendu"}

// WriteTestCases renders records onto a single styled sheet. An empty sheet
// name falls back to CaseSheetName.
func WriteTestCases(records []testcase.Record, sheet string) (*bytes.Buffer, error) {
	if len(records) == 0 {
		return nil, errors.New("no test cases to export")
	}
	if sheet == "" {
		sheet = CaseSheetName
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Title, r.Preconditions, r.InputData, r.Steps, r.ExpectedResult})
	}
	return WriteTable(caseHeaders, rows, sheet, caseWidthCap)
}

// WriteContents renders raw document texts as a single "Contenu" column.
func WriteContents(texts []string, sheet string) (*bytes.Buffer, error) {
	if len(texts) == 0 {
		return nil, errors.New("no content to export")
	}
	if sheet == "" {
		sheet = ContentSheetName
	}
	rows := make([][]string, 0, len(texts))
	for _, t := range texts {
		rows = append(rows, []string{t})
	}
	return WriteTable([]string{"Contenu"}, rows, sheet, contentWidthCap)
}

// WriteTable writes headers and rows to a workbook and returns the XLSX
// bytes. Column widths fit the longest cell (header included) plus a small
// margin, capped at widthCap characters.
func WriteTable(headers []string, rows [][]string, sheet string, widthCap float64) (*bytes.Buffer, error) {
	if len(rows) == 0 {
		return nil, errors.New("no rows to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for c, h := range headers {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for rIdx, row := range rows {
		for c := range headers {
			var v string
			if c < len(row) {
				v = row[c]
			}
			cell, err := excelize.CoordinatesToCellName(c+1, rIdx+2)
			if err != nil {
				return nil, fmt.Errorf("data cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("write cell: %w", err)
			}
		}
	}

	if err := styleHeader(f, sheet, len(headers)); err != nil {
		return nil, err
	}
	if err := fitColumns(f, sheet, headers, rows, widthCap); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

// styleHeader applies the bold white-on-blue header row format.
func styleHeader(f *excelize.File, sheet string, ncol int) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFillColor}},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(ncol)
	if err != nil {
		return fmt.Errorf("last column name: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}
	return nil
}

// fitColumns sizes each column to its longest value plus margin, capped.
func fitColumns(f *excelize.File, sheet string, headers []string, rows [][]string, widthCap float64) error {
	for c, h := range headers {
		maxLen := len([]rune(h))
		for _, row := range rows {
			if c < len(row) {
				if n := len([]rune(row[c])); n > maxLen {
					maxLen = n
				}
			}
		}
		width := float64(maxLen + 2)
		if width > widthCap {
			width = widthCap
		}
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}
	return nil
}
