package actions

// FieldStore mirrors the values of the page's input elements. It is owned by
// whichever goroutine runs the update cycle and is not safe for concurrent use.
type FieldStore struct {
	values map[string]string
}

func NewFieldStore() *FieldStore {
	return &FieldStore{values: make(map[string]string)}
}

func (s *FieldStore) InputValue(id string) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

func (s *FieldStore) Set(id, value string) {
	s.values[id] = value
}

func (s *FieldStore) Merge(values map[string]string) {
	for id, v := range values {
		s.values[id] = v
	}
}

func (s *FieldStore) Clear(id string) {
	delete(s.values, id)
}
