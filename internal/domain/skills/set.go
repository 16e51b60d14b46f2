package skills

import "sort"

// Set is an ordered string set. Elements keep insertion order, which for
// extracted skills is taxonomy declaration order; that fixed order is what
// makes the positional required/preferred fallback split reproducible.
// Sets are never mutated after being returned: all set operations build a
// new Set.
type Set struct {
	index map[string]struct{}
	order []string
}

// NewSet creates a set from the given values, keeping first-seen order.
func NewSet(values ...string) Set {
	s := newSet()
	for _, v := range values {
		s.add(v)
	}
	return s
}

func newSet() Set {
	return Set{index: make(map[string]struct{})}
}

func (s *Set) add(v string) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s Set) Len() int { return len(s.order) }

// IsEmpty reports whether the set has no elements.
func (s Set) IsEmpty() bool { return len(s.order) == 0 }

// Values returns the elements in insertion order.
func (s Set) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Sorted returns the elements in lexicographic order.
func (s Set) Sorted() []string {
	out := s.Values()
	sort.Strings(out)
	return out
}

// Intersect returns a new set with elements present in both s and o,
// in s's order.
func (s Set) Intersect(o Set) Set {
	out := newSet()
	for _, v := range s.order {
		if o.Has(v) {
			out.add(v)
		}
	}
	return out
}

// Diff returns a new set with elements of s not present in o, in s's order.
func (s Set) Diff(o Set) Set {
	out := newSet()
	for _, v := range s.order {
		if !o.Has(v) {
			out.add(v)
		}
	}
	return out
}

// Union returns a new set with elements of s followed by elements of o not
// already present.
func (s Set) Union(o Set) Set {
	out := newSet()
	for _, v := range s.order {
		out.add(v)
	}
	for _, v := range o.order {
		out.add(v)
	}
	return out
}

// SkillSet groups the vocabulary detected in one text into the three
// taxonomy categories.
type SkillSet struct {
	Technical  Set
	Education  Set
	Experience Set
}
