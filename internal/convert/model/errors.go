package model

import "fmt"

// OutOfRangeError — a letter mapping points past the end of the source
// table. Carries enough context for the operator to fix the mapping without
// opening the source file.
type OutOfRangeError struct {
	Letters string
	Index   int
	Width   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("source has no column %s (0-based index %d); source column count: %d",
		e.Letters, e.Index, e.Width)
}

// MappingAbsentError — a letter-addressed conversion was requested before
// the operator saved a mapping.
type MappingAbsentError struct {
	Platform Platform
}

func (e *MappingAbsentError) Error() string {
	return fmt.Sprintf("no saved column mapping for %s; save a mapping first", e.Platform)
}
