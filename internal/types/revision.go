// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "sort"

// Revision identifies one atomic change set in the source Subversion
// repository. Revision numbers are strictly ordered but not required to be
// contiguous; gaps are valid.
type Revision int

// RevisionSet is a set of revision numbers with O(1) membership tests.
// A set is populated during a single pass over its input stream and is
// treated as read-only once the pass completes.
type RevisionSet struct {
	members map[Revision]struct{}
}

// NewRevisionSet returns an empty RevisionSet.
func NewRevisionSet() *RevisionSet {
	return &RevisionSet{members: make(map[Revision]struct{})}
}

// Add inserts rev into the set and reports whether it was newly added.
// Inserting an existing revision is a no-op returning false.
func (s *RevisionSet) Add(rev Revision) bool {
	if _, exists := s.members[rev]; exists {
		return false
	}
	s.members[rev] = struct{}{}
	return true
}

// Contains reports whether rev is a member of the set.
func (s *RevisionSet) Contains(rev Revision) bool {
	_, ok := s.members[rev]
	return ok
}

// Len returns the number of revisions in the set.
func (s *RevisionSet) Len() int {
	return len(s.members)
}

// Values returns the members in ascending revision order.
func (s *RevisionSet) Values() []Revision {
	values := make([]Revision, 0, len(s.members))
	for rev := range s.members {
		values = append(values, rev)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	return values
}
