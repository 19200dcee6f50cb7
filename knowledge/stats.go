package knowledge

// Stats summarizes what the table has learned.
type Stats struct {
	Entries  int
	Capacity int
	// Bits is the persisted size in bytes; the 1973 game reported it
	// to the player as "n 'bits' of knowledge".
	Bits      int
	Positive  int
	Negative  int
	Neutral   int
	MinWeight int8
	MaxWeight int8
}

// Stats computes a summary of the current table.
func (s *Store) Stats() Stats {
	st := Stats{
		Entries:  len(s.entries),
		Capacity: MaxEntries,
		Bits:     len(s.entries) * recordSize,
	}
	for i, e := range s.entries {
		switch {
		case e.Weight > 0:
			st.Positive++
		case e.Weight < 0:
			st.Negative++
		default:
			st.Neutral++
		}
		if i == 0 || e.Weight < st.MinWeight {
			st.MinWeight = e.Weight
		}
		if i == 0 || e.Weight > st.MaxWeight {
			st.MaxWeight = e.Weight
		}
	}
	return st
}
