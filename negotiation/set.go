package negotiation

import (
	"encoding/json"
	"sort"

	"github.com/vitwit/agentcommerce/types"
)

// Set is an unordered collection of identifiers without duplicates.
// A nil Set is a valid empty set for reads.
type Set[T ~string] map[T]struct{}

// NewSet builds a set from ids. Duplicates collapse.
func NewSet[T ~string](ids ...T) Set[T] {
	s := make(Set[T], len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a member.
func (s Set[T]) Has(id T) bool {
	_, ok := s[id]
	return ok
}

func (s Set[T]) Len() int {
	return len(s)
}

func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Clone returns an independent copy. Cloning nil yields an empty set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every member of s is in other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexical order.
func (s Set[T]) Sorted() []T {
	out := make([]T, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MarshalJSON encodes the set as a sorted array.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes an array into the set, dropping duplicates.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var ids []T
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewSet(ids...)
	return nil
}

// Intersect returns the members present in both a and b.
// It is total and commutative; the result never aliases its inputs.
func Intersect[T ~string](a, b Set[T]) Set[T] {
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	out := make(Set[T], len(small))
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// Toggle removes id when present and adds it otherwise. The input set is
// left untouched, so Toggle(Toggle(s, id), id) equals s.
func Toggle[T ~string](s Set[T], id T) Set[T] {
	out := s.Clone()
	if out.Has(id) {
		delete(out, id)
	} else {
		out[id] = struct{}{}
	}
	return out
}

// IntersectCapabilities is Intersect over the capability domain.
func IntersectCapabilities(a, b Set[types.CapabilityID]) Set[types.CapabilityID] {
	return Intersect(a, b)
}

// IntersectHandlers is Intersect over the payment handler domain.
func IntersectHandlers(a, b Set[types.HandlerID]) Set[types.HandlerID] {
	return Intersect(a, b)
}
