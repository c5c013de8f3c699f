package router

// slot holds at most one presented destination of a given kind.
type slot[D Destination] struct {
	destination D
	completion  *Completion
	occupied    bool
}

// set stores d and returns the completion it displaced, if any.
func (s *slot[D]) set(d D, c *Completion) (*Completion, bool) {
	prev, had := s.completion, s.occupied
	s.destination = d
	s.completion = c
	s.occupied = true
	return prev, had
}

// take empties the slot and hands back its completion.
func (s *slot[D]) take() (*Completion, bool) {
	if !s.occupied {
		return nil, false
	}
	c := s.completion
	s.clear()
	return c, true
}

func (s *slot[D]) clear() {
	var zero D
	s.destination = zero
	s.completion = nil
	s.occupied = false
}

func (s *slot[D]) get() (D, bool) {
	return s.destination, s.occupied
}

// discard empties the slot and disarms its completion.
func (s *slot[D]) discard() {
	s.completion.Drop()
	s.clear()
}
