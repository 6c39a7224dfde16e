package xlsx_test

import (
	"os"
	"path/filepath"
	"testing"

	"agent-activity/connectors/xlsx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestConvertCSV(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "calculate_time.csv")
	require.NoError(t, os.WriteFile(src, []byte("Date,Agent,Hours\n2024-01-02,A,2.5\nAverage,A,2.5\n,,\n"), 0o644))
	dst := filepath.Join(dir, "out", "calculate_time.xlsx")

	require.NoError(t, xlsx.ConvertCSV(src, dst))

	f, err := excelize.OpenFile(dst)
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(xlsx.DefaultSheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "2.5", v)
	typ, err := f.GetCellType(xlsx.DefaultSheet, "C2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)

	v, err = f.GetCellValue(xlsx.DefaultSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "Average", v)

	header, rows, err := xlsx.ReadSheet(dst, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Agent", "Hours"}, header)
	require.GreaterOrEqual(t, len(rows), 2)
	assert.Equal(t, []string{"2024-01-02", "A", "2.5"}, rows[0])
}

func TestReadSheet_Named(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Tickets")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Tickets", "A1", &[]interface{}{"Ticket group", "Assignee name"}))
	require.NoError(t, f.SetSheetRow("Tickets", "A2", &[]interface{}{"UAP", "Alice"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	header, rows, err := xlsx.ReadSheet(path, "Tickets")
	require.NoError(t, err)
	assert.Equal(t, []string{"Ticket group", "Assignee name"}, header)
	assert.Equal(t, [][]string{{"UAP", "Alice"}}, rows)

	_, _, err = xlsx.ReadSheet(path, "Missing")
	assert.Error(t, err)
}
