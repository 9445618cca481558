// Package dict resolves free-text queries against a preloaded
// term -> definition table.
package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
)

// Entry is one dictionary definition.
type Entry struct {
	Definition   string
	PartOfSpeech string
}

// Status classifies a lookup result.
type Status int

const (
	// StatusNotReady means the table has not finished loading.
	StatusNotReady Status = iota
	// StatusEmptyQuery means the query normalized to nothing.
	StatusEmptyQuery
	// StatusNotFound means no entry matches the normalized key.
	StatusNotFound
	// StatusFound means the entry was resolved.
	StatusFound
)

// trailingAnnotation matches one trailing parenthesized annotation,
// e.g. the "(v.)" in "run (v.)".
var trailingAnnotation = regexp.MustCompile(`\s*\([^)]*\)$`)

// Normalize canonicalizes a query or table key: trimmed, lowercased,
// whitespace runs collapsed, trailing parenthetical stripped.
func Normalize(term string) string {
	t := strings.ToLower(strings.TrimSpace(term))
	t = trailingAnnotation.ReplaceAllString(t, "")
	return strings.Join(strings.Fields(t), " ")
}

// Dictionary is the supplementary word-definition table. It is
// populated once by a (possibly asynchronous) load and read-only
// afterwards; lookups before the load completes report not-ready.
type Dictionary struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ready   bool
}

// New returns an empty, not-yet-ready dictionary.
func New() *Dictionary {
	return &Dictionary{}
}

// Ready reports whether the table has been loaded.
func (d *Dictionary) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.ready
}

// Len returns the number of loaded entries.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

// Lookup resolves a free-text query. It never mutates the table and
// is synchronous once the table is loaded.
func (d *Dictionary) Lookup(term string) (Entry, Status) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if !d.ready {
		return Entry{}, StatusNotReady
	}
	key := Normalize(term)
	if key == "" {
		return Entry{}, StatusEmptyQuery
	}
	e, ok := d.entries[key]
	if !ok {
		return Entry{}, StatusNotFound
	}
	return e, StatusFound
}

// rawEntry mirrors the resource wire format: {"zh": ..., "pos": ...}.
type rawEntry struct {
	Zh  string `json:"zh"`
	Pos string `json:"pos"`
}

// LoadBytes parses a JSON object mapping terms to definitions and
// marks the dictionary ready. Keys are normalized on the way in.
func (d *Dictionary) LoadBytes(data []byte) error {
	var raw map[string]rawEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("dict: parse: %w", err)
	}

	entries := make(map[string]Entry, len(raw))
	for term, e := range raw {
		key := Normalize(term)
		if key == "" {
			continue
		}
		entries[key] = Entry{Definition: e.Zh, PartOfSpeech: e.Pos}
	}

	d.mu.Lock()
	d.entries = entries
	d.ready = true
	d.mu.Unlock()
	return nil
}

// LoadFile loads the table from a local JSON file.
func (d *Dictionary) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dict: read %s: %w", path, err)
	}
	return d.LoadBytes(data)
}
