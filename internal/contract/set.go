package contract

import (
	"github.com/elliotchance/orderedmap/v2"
)

// OrderedSet is a set of strings that remembers insertion order
type OrderedSet struct {
	items *orderedmap.OrderedMap[string, struct{}]
}

// NewOrderedSet creates a set holding values in the given order
func NewOrderedSet(values ...string) *OrderedSet {
	s := &OrderedSet{items: orderedmap.NewOrderedMap[string, struct{}]()}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was not present yet
func (s *OrderedSet) Add(v string) bool {
	if _, ok := s.items.Get(v); ok {
		return false
	}
	s.items.Set(v, struct{}{})
	return true
}

// Len returns the number of members
func (s *OrderedSet) Len() int {
	return s.items.Len()
}

// Values returns the members in insertion order
func (s *OrderedSet) Values() []string {
	return s.items.Keys()
}
