package model

// History is an append-only log of field snapshots, one per generation,
// indexed 1-based. It is owned by the application, never by the engine:
// fields stored here are treated as immutable, and rewinding is just an
// index lookup.
type History struct {
	fields []*Field
}

// NewHistory starts a history at generation 1 with the given field.
func NewHistory(initial *Field) *History {
	return &History{fields: []*Field{initial}}
}

// Append records the next generation.
func (h *History) Append(f *Field) {
	h.fields = append(h.fields, f)
}

// Len returns the number of recorded generations.
func (h *History) Len() int {
	return len(h.fields)
}

// Generation returns the snapshot for the 1-based generation number.
func (h *History) Generation(n int) (*Field, bool) {
	if n < 1 || n > len(h.fields) {
		return nil, false
	}
	return h.fields[n-1], true
}

// Latest returns the most recent snapshot, or nil for an empty history.
func (h *History) Latest() *Field {
	if len(h.fields) == 0 {
		return nil
	}
	return h.fields[len(h.fields)-1]
}

// Truncate cuts the log back to n generations, discarding everything
// after. Used when the user rewinds and branches off an earlier
// generation. A non-positive n clears the log.
func (h *History) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(h.fields) {
		h.fields = h.fields[:n]
	}
}

// Reset clears the log and reseeds it with a fresh generation 1.
func (h *History) Reset(initial *Field) {
	h.fields = []*Field{initial}
}

// Stagnant reports whether the latest generation's live cell set
// already occurred within the previous window generations, i.e. the
// simulation is static or cycling.
func (h *History) Stagnant(window int) bool {
	if len(h.fields) < 2 {
		return false
	}

	current := h.Latest().Fingerprint()
	for i := 2; i <= window+1 && i <= len(h.fields); i++ {
		if h.fields[len(h.fields)-i].Fingerprint() == current {
			return true
		}
	}
	return false
}
