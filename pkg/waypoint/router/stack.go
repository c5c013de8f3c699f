package router

// StackEntry is a single entry in a node's navigation stack: the pushed
// destination and the completion to fire when it is popped.
type StackEntry struct {
	Destination Push
	Completion  *Completion
}

// Stack is an insertion-ordered back stack. The top is the last entry.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push appends an entry to the top of the stack.
func (s *Stack) Push(destination Push, completion *Completion) {
	s.entries = append(s.entries, StackEntry{
		Destination: destination,
		Completion:  completion,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = StackEntry{}
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Destinations returns the pushed destinations bottom to top, without completions.
func (s *Stack) Destinations() []Push {
	out := make([]Push, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Destination
	}
	return out
}

// Clear removes all entries. Completions are dropped, never fired.
func (s *Stack) Clear() {
	for i := range s.entries {
		s.entries[i].Completion.Drop()
		s.entries[i] = StackEntry{}
	}
	s.entries = s.entries[:0]
}
