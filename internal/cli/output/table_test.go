package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableData(t *testing.T) {
	table := NewTableData("Frame", "Port", "Input")

	assert.Equal(t, []string{"Frame", "Port", "Input"}, table.Headers())
	assert.Empty(t, table.Rows())

	table.AddRow("0", "0", "00 00 ff")
	table.AddRow("1", "0", "00 40 ff")

	rows := table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"0", "0", "00 00 ff"}, rows[0])
	assert.Equal(t, []string{"1", "0", "00 40 ff"}, rows[1])
}

func TestPrintTable(t *testing.T) {
	table := NewTableData("Frame", "Input")
	table.AddRow("0", "00 ff")
	table.AddRow("1", "40 ff")

	var buf bytes.Buffer
	err := PrintTable(&buf, table)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FRAME")
	assert.Contains(t, out, "INPUT")
	assert.Contains(t, out, "00 ff")
	assert.Contains(t, out, "40 ff")
}

func TestSimpleTable(t *testing.T) {
	pairs := [][2]string{
		{"Author", "alice"},
		{"Total frames", "1200"},
	}

	var buf bytes.Buffer
	err := SimpleTable(&buf, pairs)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Author")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "Total frames")
	assert.Contains(t, out, "1200")
}
