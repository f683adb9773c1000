package inventory

// Patch is a single patch record as reported by OPatch.
type Patch struct {
	ID          int
	Description string
	// ExtraLines holds the free-text detail lines that follow the
	// description in lsinventory output, newline-joined. Always empty for
	// lspatches records.
	ExtraLines string
}

// Set is an insertion-ordered collection of patches keyed by patch ID.
// Order is load-bearing: release-update lookup is first-match-wins and
// comparison output must be deterministic.
type Set struct {
	order   []int
	records map[int]Patch
}

// NewSet returns an empty patch set.
func NewSet() *Set {
	return &Set{records: make(map[int]Patch)}
}

// Insert adds a patch to the set. Inserting an ID that is already present
// replaces the record but keeps its original position.
func (s *Set) Insert(p Patch) {
	if _, ok := s.records[p.ID]; !ok {
		s.order = append(s.order, p.ID)
	}
	s.records[p.ID] = p
}

// Get returns the patch with the given ID.
func (s *Set) Get(id int) (Patch, bool) {
	p, ok := s.records[id]
	return p, ok
}

// Contains reports whether the set holds a patch with the given ID.
func (s *Set) Contains(id int) bool {
	_, ok := s.records[id]
	return ok
}

// Len returns the number of patches in the set.
func (s *Set) Len() int {
	return len(s.order)
}

// IDs returns the patch IDs in insertion order.
func (s *Set) IDs() []int {
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	return ids
}
