// Package mapstore keeps the operator-edited 라오라 column mapping between
// requests. One operator per process; last writer wins. The transforms never
// read this store directly — handlers snapshot it and pass the mapping as an
// explicit argument.
package mapstore

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync"
)

var rxLetters = regexp.MustCompile(`^[A-Za-z]+$`)

type Store struct {
	mu       sync.RWMutex
	defaults map[string]string
	mapping  map[string]string
}

func New(defaults map[string]string) *Store {
	s := &Store{defaults: copyMap(defaults)}
	s.mapping = copyMap(defaults)
	return s
}

// Current returns a snapshot of the saved mapping.
func (s *Store) Current() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyMap(s.mapping)
}

// Save replaces the mapping, keeping only entries with a letter value.
func (s *Store) Save(m map[string]string) {
	clean := make(map[string]string, len(m))
	for k, v := range m {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" {
			clean[k] = v
		}
	}
	s.mu.Lock()
	s.mapping = clean
	s.mu.Unlock()
}

// ImportJSON loads a mapping export. Keys outside the template schema and
// values that are not letter runs are discarded; discarded or missing fields
// fall back to the previously saved value, then the factory default.
func (s *Store) ImportJSON(data []byte, templateColumns []string) error {
	var loaded map[string]string
	if err := json.Unmarshal(data, &loaded); err != nil {
		return err
	}

	inTemplate := make(map[string]bool, len(templateColumns))
	for _, c := range templateColumns {
		inTemplate[c] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(templateColumns))
	for k, v := range loaded {
		if inTemplate[k] && rxLetters.MatchString(v) {
			next[k] = strings.ToUpper(v)
		}
	}
	for _, c := range templateColumns {
		if _, ok := next[c]; ok {
			continue
		}
		if v, ok := s.mapping[c]; ok && v != "" {
			next[c] = v
		} else if v, ok := s.defaults[c]; ok {
			next[c] = v
		}
	}
	s.mapping = next
	return nil
}

// ExportJSON renders the saved mapping for download.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.mapping, "", "  ")
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
