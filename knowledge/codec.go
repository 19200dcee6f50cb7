package knowledge

import (
	"io"
)

// Codec serializes a knowledge table. The on-disk layout is hidden
// behind this interface so an alternate format could replace the
// historical one without touching the decision engines.
type Codec interface {
	Encode(w io.Writer, entries []Entry) error
	Decode(r io.Reader, max int) ([]Entry, error)
}

// RecordCodec is the 1973 ttt.k layout: a headerless sequence of
// 3-byte records, bytes 0-1 the encoded board state as a little-endian
// 16-bit unsigned integer and byte 2 the weight as a signed byte. The
// file length alone determines the entry count.
type RecordCodec struct{}

const recordSize = 3

// Encode writes the entries in order.
func (RecordCodec) Encode(w io.Writer, entries []Entry) error {
	buf := make([]byte, recordSize)
	for _, e := range entries {
		buf[0] = byte(e.Code)
		buf[1] = byte(e.Code >> 8)
		buf[2] = byte(e.Weight)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads records until the input is exhausted or max entries are
// read. A truncated trailing record is ignored.
func (RecordCodec) Decode(r io.Reader, max int) ([]Entry, error) {
	var entries []Entry
	buf := make([]byte, recordSize)
	for len(entries) < max {
		if _, err := io.ReadFull(r, buf); err != nil {
			// EOF ends the table; a partial record is dropped.
			return entries, nil
		}
		entries = append(entries, Entry{
			Code:   uint16(buf[0]) | uint16(buf[1])<<8,
			Weight: int8(buf[2]),
		})
	}
	return entries, nil
}

// Load replaces the store contents from r, up to capacity, and returns
// the number of entries read.
func (s *Store) Load(r io.Reader) int {
	entries, err := s.codec.Decode(r, MaxEntries)
	if err != nil {
		s.entries = nil
		return 0
	}
	s.entries = entries
	return len(entries)
}

// Save writes the store to w and returns the entry count.
func (s *Store) Save(w io.Writer) (int, error) {
	if err := s.codec.Encode(w, s.entries); err != nil {
		return 0, err
	}
	return len(s.entries), nil
}
