package tabular

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHeader(t *testing.T) {
	cases := map[string]string{
		"  주문번호 ":      "주문번호",
		"옵션명:옵션값":      "옵션명옵션값",
		"옵션명：옵션값":      "옵션명옵션값",
		"수취인 연락처-1":    "수취인연락처1",
		"배송메세지(판매자)":   "배송메세지판매자",
		"Phone / Cell": "phonecell",
		"[메모]":         "메모",
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeHeader(in), in)
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	for _, s := range []string{"옵션명:옵션값", " A-B ", "수취인연락처1"} {
		once := NormalizeHeader(s)
		assert.Equal(t, once, NormalizeHeader(once))
	}
}

func TestResolveColumnExactWinsOverSubstring(t *testing.T) {
	headers := []string{"긴긴 주문번호 비고", "주문번호"}
	i, err := ResolveColumn([]string{"주문번호"}, headers)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestResolveColumnSubstringPrefersShortest(t *testing.T) {
	headers := []string{"배송메세지(판매자)", "메모란", "기타"}
	i, err := ResolveColumn([]string{"메모"}, headers)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestResolveColumnShortestCountsRunes(t *testing.T) {
	// "메모란 memo" is 9 runes / 14 bytes, "memofield123" is 12 runes /
	// 12 bytes. Shortest-by-character picks the Korean header; a byte
	// comparison would pick the other one.
	headers := []string{"memofield123", "메모란 memo"}
	i, err := ResolveColumn([]string{"memo"}, headers)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestResolveColumnCandidatePriority(t *testing.T) {
	headers := []string{"수취인휴대폰", "수취인연락처1"}
	i, err := ResolveColumn([]string{"수취인연락처1", "수취인휴대폰"}, headers)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
}

func TestResolveColumnNotFound(t *testing.T) {
	_, err := ResolveColumn([]string{"주문번호", "주문ID"}, []string{"이름", "주소"})
	require.Error(t, err)
	var nf *ColumnNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"주문번호", "주문ID"}, nf.Candidates)
}

func TestFromRowsKeepsInteriorBlanksAndFillsHeaders(t *testing.T) {
	tbl := FromRows([][]string{
		{"주문번호", "", "수량"},
		{"A-1", "x", "3"},
		{"", "  ", ""},
		{"A-2"},
	}, 1)
	assert.Equal(t, []string{"주문번호", "Column 2", "수량"}, tbl.Headers)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, "3", tbl.Cell(0, 2))
	assert.Equal(t, "", tbl.Cell(1, 0)) // blank row between data rows survives
	assert.Equal(t, "A-2", tbl.Cell(2, 0))
}

func TestFromRowsWidensToDataRows(t *testing.T) {
	// Sheet readers hand back ragged rows with trailing blanks trimmed, so a
	// file whose header row stops short of the data must not lose columns.
	tbl := FromRows([][]string{
		{"주문번호"},
		{"ORD-1", "01012345678", "3"},
	}, 1)
	assert.Equal(t, []string{"주문번호", "Column 2", "Column 3"}, tbl.Headers)
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "01012345678", tbl.Cell(0, 1))
	assert.Equal(t, "3", tbl.Cell(0, 2))
}

func TestFromRowsDropsTrailingBlankRows(t *testing.T) {
	tbl := FromRows([][]string{
		{"a"},
		{"1"},
		{""},
		{"  "},
	}, 1)
	assert.Equal(t, 1, tbl.Len())
}

func TestAddColumnAndClone(t *testing.T) {
	tbl := FromRows([][]string{{"a"}, {"1"}, {"2"}}, 1)
	c := tbl.Clone()
	idx := c.AddColumn("b", "x")
	assert.Equal(t, 1, idx)
	assert.Equal(t, "x", c.Cell(0, 1))
	assert.Equal(t, 1, tbl.Width()) // original untouched
}
