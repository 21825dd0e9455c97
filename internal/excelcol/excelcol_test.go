package excelcol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLetterToIndex(t *testing.T) {
	cases := map[string]int{
		"A":  0,
		"B":  1,
		"Z":  25,
		"AA": 26,
		"AB": 27,
		"AZ": 51,
		"BA": 52,
		"ZZ": 701,
	}
	for in, want := range cases {
		got, err := LetterToIndex(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestLetterToIndexCaseAndSpace(t *testing.T) {
	got, err := LetterToIndex(" ab ")
	require.NoError(t, err)
	assert.Equal(t, 27, got)
}

func TestLetterToIndexInvalid(t *testing.T) {
	for _, in := range []string{"", "A1", "Ä", "A B", "-"} {
		_, err := LetterToIndex(in)
		require.Error(t, err, in)
		var ie *InvalidLettersError
		assert.True(t, errors.As(err, &ie), in)
	}
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 2000; i++ {
		s := IndexToLetter(i)
		back, err := LetterToIndex(s)
		require.NoError(t, err, s)
		assert.Equal(t, i, back, s)
	}
}

func TestLetters(t *testing.T) {
	got := Letters(28)
	require.Len(t, got, 28)
	assert.Equal(t, "A", got[0])
	assert.Equal(t, "Z", got[25])
	assert.Equal(t, "AA", got[26])
	assert.Equal(t, "AB", got[27])
}
