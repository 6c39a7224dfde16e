package csv

import (
	"encoding/csv"
	"os"

	lo "github.com/samber/lo"
)

// ReadRows loads a report CSV as one map per data row, keyed by the header.
// Values stay strings. Average, Total and blank separator rows are kept as-is.
func ReadRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []map[string]string{}, nil
	}

	header := records[0]
	return lo.Map(records[1:], func(row []string, _ int) map[string]string {
		m := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(row) {
				m[col] = row[j]
			} else {
				m[col] = ""
			}
		}
		return m
	}), nil
}
