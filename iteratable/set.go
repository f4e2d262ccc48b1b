package iteratable

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// Set is an ordered set of strings, backed by a red-black tree so that
// Values() always comes back sorted — needed for reproducible Dump()
// output and for the structural hashing of a built grammar.
type Set struct {
	tree *treeset.Set
}

// New creates an empty Set, optionally seeded with members.
func New(members ...string) *Set {
	s := &Set{tree: treeset.NewWith(utils.StringComparator)}
	for _, m := range members {
		s.tree.Add(m)
	}
	return s
}

// Add inserts a member, returning true if the set changed.
func (s *Set) Add(member string) bool {
	before := s.tree.Size()
	s.tree.Add(member)
	return s.tree.Size() != before
}

// Contains reports whether member is in the set.
func (s *Set) Contains(member string) bool {
	return s.tree.Contains(member)
}

// Union adds every member of other to s, returning true if s changed.
func (s *Set) Union(other *Set) bool {
	if other == nil {
		return false
	}
	changed := false
	for _, v := range other.Values() {
		if s.Add(v) {
			changed = true
		}
	}
	return changed
}

// Values returns the set's members in sorted order.
func (s *Set) Values() []string {
	raw := s.tree.Values()
	out := make([]string, len(raw))
	for i, v := range raw {
		out[i] = v.(string)
	}
	return out
}

// Size returns the number of members.
func (s *Set) Size() int {
	return s.tree.Size()
}

// Empty reports whether the set has no members.
func (s *Set) Empty() bool {
	return s.tree.Empty()
}

// Copy returns a shallow, independent copy of s.
func (s *Set) Copy() *Set {
	cp := New()
	cp.Union(s)
	return cp
}

// Equals reports whether s and other contain exactly the same members.
func (s *Set) Equals(other *Set) bool {
	if other == nil {
		return s.Size() == 0
	}
	if s.Size() != other.Size() {
		return false
	}
	for _, v := range s.Values() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// String renders the set as "{ a, b, c }", sorted.
func (s *Set) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v)
	}
	b.WriteString(" }")
	return b.String()
}
