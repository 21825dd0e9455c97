// Package excelcol converts between spreadsheet column letters ("A", "AB")
// and zero-based column indexes. Letters are a bijective base-26 numeral
// system: A=1 .. Z=26, AA=27.
package excelcol

import (
	"fmt"
	"strings"
)

// InvalidLettersError — the token contained something other than A-Z.
type InvalidLettersError struct {
	Letters string
}

func (e *InvalidLettersError) Error() string {
	return fmt.Sprintf("invalid excel column letters: %q", e.Letters)
}

// LetterToIndex parses a column letter token (case-insensitive) into a
// zero-based index.
func LetterToIndex(letters string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(letters))
	if s == "" {
		return 0, &InvalidLettersError{Letters: letters}
	}
	idx := 0
	for _, ch := range s {
		if ch < 'A' || ch > 'Z' {
			return 0, &InvalidLettersError{Letters: letters}
		}
		idx = idx*26 + int(ch-'A') + 1
	}
	return idx - 1, nil
}

// IndexToLetter is the inverse of LetterToIndex and is total for all
// non-negative indexes.
func IndexToLetter(index int) string {
	n := index + 1
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('A' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// Letters enumerates the first count column letters in order.
func Letters(count int) []string {
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, IndexToLetter(i))
	}
	return out
}
