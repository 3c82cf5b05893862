package sentence

// Set holds records in input order with a lookup by sequence number.
// Duplicate numbers are kept in order; the later one wins in lookups.
type Set struct {
	records  []Record
	byNumber map[int]string
}

func NewSet() *Set {
	return &Set{byNumber: make(map[int]string)}
}

// Add appends a record.
func (s *Set) Add(r Record) {
	s.records = append(s.records, r)
	s.byNumber[r.Number] = r.Text
}

// Len returns the number of records, duplicates included.
func (s *Set) Len() int {
	return len(s.records)
}

// Records returns a copy of the records in input order.
func (s *Set) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Texts returns the sentence texts in input order.
func (s *Set) Texts() []string {
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = r.Text
	}
	return out
}

// ByNumber returns the sentence stored under n.
func (s *Set) ByNumber(n int) (string, bool) {
	t, ok := s.byNumber[n]
	return t, ok
}

// Index returns a copy of the number to text mapping.
func (s *Set) Index() map[int]string {
	out := make(map[int]string, len(s.byNumber))
	for k, v := range s.byNumber {
		out[k] = v
	}
	return out
}
