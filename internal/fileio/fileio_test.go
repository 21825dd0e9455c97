package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/korean"
)

func xlsxBytes(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadAnyXLSXPreservesLeadingZeros(t *testing.T) {
	b := xlsxBytes(t, [][]string{
		{"주문번호", "받는분 전화번호"},
		{"A-1", "01012345678"},
	})
	tbl, err := ReadAny(bytes.NewReader(b), "orders.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"주문번호", "받는분 전화번호"}, tbl.Headers)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "01012345678", tbl.Cell(0, 1))
}

func TestReadAnyXLSXBlankTrailingHeaders(t *testing.T) {
	// Letter-addressed exports ship columns without header cells; excelize
	// trims each row at its last non-empty cell, so the data rows must set
	// the table width.
	b := xlsxBytes(t, [][]string{
		{"주문번호", "", ""},
		{"ORD-1", "01012345678", "3"},
	})
	tbl, err := ReadAny(bytes.NewReader(b), "orders.xlsx")
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Width())
	assert.Equal(t, []string{"주문번호", "Column 2", "Column 3"}, tbl.Headers)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "01012345678", tbl.Cell(0, 1))
	assert.Equal(t, "3", tbl.Cell(0, 2))
}

func TestReadAnyCSVUTF8(t *testing.T) {
	src := "주문번호,수량\nA-1,3\n\nA-2,4\n"
	tbl, err := ReadAny(strings.NewReader(src), "orders.csv")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "4", tbl.Cell(1, 1))
}

func TestReadAnyCSVEUCKR(t *testing.T) {
	utf := "주문번호,받는분 이름\nA-1,홍길동\n"
	enc, err := korean.EUCKR.NewEncoder().Bytes([]byte(utf))
	require.NoError(t, err)
	tbl, rerr := ReadAny(bytes.NewReader(enc), "orders.csv")
	require.NoError(t, rerr)
	assert.Equal(t, "주문번호", tbl.Headers[0])
	assert.Equal(t, "홍길동", tbl.Cell(0, 1))
}

func TestReadAnyUnsupported(t *testing.T) {
	_, err := ReadAny(strings.NewReader("x"), "orders.pdf")
	require.Error(t, err)
	var re *ReadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "orders.pdf", re.Filename)
}

func TestReadAnyGarbageXLSX(t *testing.T) {
	_, err := ReadAny(bytes.NewReader([]byte("not a zip")), "broken.xlsx")
	require.Error(t, err)
	var re *ReadError
	assert.ErrorAs(t, err, &re)
}
