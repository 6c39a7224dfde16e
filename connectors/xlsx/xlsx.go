package xlsx

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name written by ConvertCSV.
const DefaultSheet = "Sheet1"

// ReadSheet returns the header and data rows of a workbook sheet.
// An empty sheet name selects the first sheet.
func ReadSheet(path, sheet string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil, fmt.Errorf("%s: workbook has no sheets", filepath.Base(path))
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: sheet %q: %w", filepath.Base(path), sheet, err)
	}
	if len(rows) == 0 {
		return []string{}, nil, nil
	}
	return rows[0], rows[1:], nil
}

// ConvertCSV copies a CSV file into a single-sheet workbook. Cells that parse as
// numbers are stored as numbers, everything else as text.
func ConvertCSV(csvPath, xlsxPath string) error {
	in, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer in.Close()
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(csvPath), err)
	}

	f := excelize.NewFile()
	defer f.Close()
	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(rec))
		for j, v := range rec {
			values[j] = cellValue(v, i == 0)
		}
		if err := f.SetSheetRow(DefaultSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(xlsxPath), 0o755); err != nil {
		return err
	}
	return f.SaveAs(xlsxPath)
}

func cellValue(v string, header bool) interface{} {
	if header || v == "" {
		return v
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		return n
	}
	return v
}
