// Package vocab provides the vocabulary list: parsing delimited word
// files, the in-memory store, and random card selection.
package vocab

import "math/rand/v2"

// Record is a single English/Chinese vocabulary pair. Records are
// immutable once parsed.
type Record struct {
	English     string
	Chinese     string
	CheckStatus string

	// Auxiliary dictionary columns, empty when the source file does
	// not carry them.
	AuxiliaryZh  string
	AuxiliaryPos string

	// LookupKey is the untransformed source term used to cross-reference
	// the supplementary dictionary table.
	LookupKey string
}

// Store holds the parsed vocabulary in source order. It is never
// mutated after load.
type Store struct {
	records []Record
}

// NewStore creates a Store over the given records.
func NewStore(records []Record) *Store {
	return &Store{records: records}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at index i, or a zero Record when i is out of range.
func (s *Store) At(i int) Record {
	if i >= 0 && i < len(s.records) {
		return s.records[i]
	}
	return Record{}
}

// Records returns the underlying record slice. Callers must not modify it.
func (s *Store) Records() []Record {
	return s.records
}

// PickNext returns a random index into a list of length n that differs
// from current. Rejection sampling is fine here: n is a few thousand at
// most, so the expected number of draws is barely above one.
// For n <= 1 there is no other card to pick, so it returns 0.
func PickNext(current, n int) int {
	if n <= 1 {
		return 0
	}
	for {
		i := rand.IntN(n)
		if i != current {
			return i
		}
	}
}
