package service

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d\.\-]`)

// ParseQuantity parses order-quantity text tolerantly: "3", " 3 ", "1 234",
// "2,5" (NBSP/NNBSP group separators included). Returns ok=false for
// anything non-numeric — an unknown quantity, not an error.
func ParseQuantity(s string) (float64, bool) {
	s = strings.TrimSpace(ScrubNaN(s))
	if s == "" {
		return 0, false
	}
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", "\t", "", ",", ".")
	s = repl.Replace(s)
	cleaned := rxKeepNums.ReplaceAllString(s, "")
	// reject values that were not numeric to begin with ("abc" cleans to "")
	if cleaned != s {
		return 0, false
	}
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	return f, err == nil
}

// FormatNumber renders a coerced number the way a spreadsheet shows it:
// integers without a decimal point.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
