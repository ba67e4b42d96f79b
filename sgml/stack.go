package sgml

import (
	"errors"

	"golang.org/x/exp/slices"
)

// TagStack is a stack of open aggregate tag names.
type TagStack interface {
	Push(string)
	Pop() (string, error)
	Peek() (string, error)
	Contains(string) bool
	IsEmpty() bool
	Size() int
	Dump() []string
}

// stack is a stack of tag names.
type stack struct {
	items []string
}

// NewStack returns an initialized empty stack.
func NewStack() TagStack {
	return &stack{
		items: make([]string, 0),
	}
}

// Push adds the given tag to top of stack.
func (s *stack) Push(t string) {
	s.items = append(s.items, t)
}

// Pop removes and returns the topmost tag of the stack.
func (s *stack) Pop() (string, error) {
	l := len(s.items)
	if l == 0 {
		return "", errors.New("error - popping from empty stack")
	}
	i := s.items[l-1]
	s.items = s.items[:l-1]
	return i, nil
}

// Peek returns the topmost tag without removing it.
func (s *stack) Peek() (string, error) {
	l := len(s.items)
	if l == 0 {
		return "", errors.New("error - peeking into empty stack")
	}
	return s.items[l-1], nil
}

// Contains returns true if the given tag is open anywhere on the stack.
func (s *stack) Contains(t string) bool {
	return slices.Index(s.items, t) != -1
}

// IsEmpty returns true if the stack is empty, else false.
func (s *stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *stack) Size() int {
	return len(s.items)
}

// Dump returns a copy of the stack, bottom first, for debugging.
func (s *stack) Dump() []string {
	result := make([]string, 0, len(s.items))
	return append(result, s.items...)
}
