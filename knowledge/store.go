// Package knowledge implements the learning engine's persistent weight
// table: a bounded mapping from encoded board states to signed move
// weights, file-backed in the 1973 ttt.k record format.
package knowledge

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	// MaxEntries is the fixed table capacity. Once full, unknown
	// positions read as neutral and new entries are dropped.
	MaxEntries = 200

	// MinWeight and MaxWeight bound a stored weight.
	MinWeight = -128
	MaxWeight = 127
)

// ErrTableFull is returned when an entry cannot be created because the
// table is at capacity.
var ErrTableFull = errors.New("knowledge table full")

// Entry is one learned position: an encoded board state and its weight.
type Entry struct {
	Code   uint16
	Weight int8
}

// Store holds the learned entries in insertion order. Lookups are a
// linear scan; at this capacity that is cheaper than maintaining an
// index. A Store is not safe for concurrent use.
type Store struct {
	entries []Entry
	codec   Codec
}

// NewStore returns an empty store using the 3-byte record codec.
func NewStore() *Store {
	return &Store{codec: RecordCodec{}}
}

// NewStoreWithCodec returns an empty store persisted via codec.
func NewStoreWithCodec(codec Codec) *Store {
	return &Store{codec: codec}
}

// Len returns the number of learned entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns the entries in store order. The slice is shared;
// callers must not modify it.
func (s *Store) Entries() []Entry {
	return s.entries
}

// Lookup returns the weight stored for code, or 0 for an unknown
// position ("no preference").
func (s *Store) Lookup(code uint16) int8 {
	for i := range s.entries {
		if s.entries[i].Code == code {
			return s.entries[i].Weight
		}
	}
	return 0
}

// FindOrCreate returns the entry for code, appending a zero-weight
// entry if absent. It returns ErrTableFull if the entry is absent and
// the table is at capacity.
func (s *Store) FindOrCreate(code uint16) (*Entry, error) {
	for i := range s.entries {
		if s.entries[i].Code == code {
			return &s.entries[i], nil
		}
	}
	if len(s.entries) >= MaxEntries {
		return nil, ErrTableFull
	}
	s.entries = append(s.entries, Entry{Code: code})
	return &s.entries[len(s.entries)-1], nil
}

// Apply adds delta to the weight stored for code, clamping the result
// to [MinWeight, MaxWeight]. A full table makes this a silent no-op;
// learning degrades rather than aborting play.
func (s *Store) Apply(code uint16, delta int) {
	e, err := s.FindOrCreate(code)
	if err != nil {
		log.Debug().Uint16("code", code).Msg("knowledge table full; update skipped")
		return
	}
	w := int(e.Weight) + delta
	if w > MaxWeight {
		w = MaxWeight
	}
	if w < MinWeight {
		w = MinWeight
	}
	e.Weight = int8(w)
}

// Reset discards every entry.
func (s *Store) Reset() {
	s.entries = s.entries[:0]
}

// LoadFile replaces the store contents with the entries persisted at
// path and returns how many were loaded. An unreadable file is the
// normal first-run state: the store is left empty and 0 is returned.
func (s *Store) LoadFile(path string) int {
	f, err := os.Open(path)
	if err != nil {
		log.Debug().Str("path", path).Msg("no accumulated knowledge")
		s.entries = nil
		return 0
	}
	defer f.Close()
	n := s.Load(f)
	log.Debug().Str("path", path).Int("entries", n).Msg("loaded knowledge")
	return n
}

// SaveFile writes every entry to path and returns the count written.
// Unlike loading, a save failure is surfaced: silently losing learned
// weights would be surprising.
func (s *Store) SaveFile(path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	if err := s.codec.Encode(f, s.entries); err != nil {
		return 0, err
	}
	return len(s.entries), nil
}
