package excel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadData_CSV(t *testing.T) {
	path := writeFile(t, "launches.csv", "\ufeffLaunch Site, class \nCCAFS LC-40,0\n\nVAFB SLC-4E , 1\n")

	table, err := NewDataReader(path).ReadData()
	require.NoError(t, err)

	assert.Equal(t, []string{"Launch Site", "class"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "VAFB SLC-4E", table.Rows[1]["Launch Site"])
	assert.Equal(t, "1", table.Rows[1]["class"])
	assert.True(t, table.HasColumn("class"))
	assert.False(t, table.HasColumn("Flight Number"))
}

func TestReadData_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"header only", "Launch Site,class\n"},
		{"ragged row", "Launch Site,class\nCCAFS LC-40\n"},
		{"extra cells", "Launch Site,class\nCCAFS LC-40,1,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "launches.csv", tt.content)
			_, err := NewDataReader(path).ReadData()
			assert.Error(t, err)
		})
	}
}

func TestReadData_MissingFile(t *testing.T) {
	_, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadData()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadData_XLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Launch Site", "Payload Mass (kg)", "class"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"KSC LC-39A", 2490, 1}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"CCAFS SLC-40", 5300.5, 0}))
	path := filepath.Join(t.TempDir(), "launches.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	reader := NewDataReader(path)
	assert.Equal(t, "xlsx", reader.FileType())

	table, err := reader.ReadData()
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", table.Sheet)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "KSC LC-39A", table.Rows[0]["Launch Site"])
	assert.Equal(t, "2490", table.Rows[0]["Payload Mass (kg)"])
	assert.Equal(t, "5300.5", table.Rows[1]["Payload Mass (kg)"])
}
