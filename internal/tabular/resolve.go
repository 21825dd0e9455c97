package tabular

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Separators that vary freely between exporter revisions of the same header:
// whitespace, brackets, colons (incl. fullwidth), slashes, hyphens.
var headerSeps = regexp.MustCompile(`[\s\(\)\[\]{}:：/\\\-]`)

// NormalizeHeader lowercases, trims and strips separator characters. Two
// headers with equal normal forms are treated as the same column.
func NormalizeHeader(s string) string {
	return headerSeps.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// ColumnNotFoundError — no header matched any of the tried candidates.
type ColumnNotFoundError struct {
	Candidates []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("no column matches candidates: %s", strings.Join(e.Candidates, ", "))
}

// ResolveColumn finds the source column for an ordered candidate list
// (most-preferred first). Pass 1 tries exact normalized equality in candidate
// priority order; pass 2 tries substring containment, preferring the shortest
// matching header so a plain "메모" beats "배송메세지(판매자)".
func ResolveColumn(candidates []string, headers []string) (int, error) {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = NormalizeHeader(h)
	}

	for _, cand := range candidates {
		want := NormalizeHeader(cand)
		if want == "" {
			continue
		}
		for i := range norm {
			if norm[i] == want {
				return i, nil
			}
		}
	}

	for _, cand := range candidates {
		want := NormalizeHeader(cand)
		if want == "" {
			continue
		}
		best := -1
		for i := range norm {
			if !strings.Contains(norm[i], want) {
				continue
			}
			// shortest in characters, not bytes: Korean headers are
			// three bytes per rune and would lose byte-length ties
			// against ASCII ones.
			if best == -1 || utf8.RuneCountInString(headers[i]) < utf8.RuneCountInString(headers[best]) {
				best = i
			}
		}
		if best >= 0 {
			return best, nil
		}
	}

	return 0, &ColumnNotFoundError{Candidates: append([]string(nil), candidates...)}
}

// FindColumn is the tolerant variant for optional fields.
func FindColumn(candidates []string, headers []string) (int, bool) {
	i, err := ResolveColumn(candidates, headers)
	if err != nil {
		return 0, false
	}
	return i, true
}
