// Package reconcile compares the SVN-side and git-side revision sets and
// classifies the discrepancies.
package reconcile

import (
	"github.com/emirpasic/gods/sets/treeset"

	"github.com/dbsmedya/svnaudit/internal/types"
)

// Report is the reconciliation result. MissingInTarget is the audit verdict:
// it is non-empty iff the migration is incomplete. MissingInSource is
// informational only; target-only revisions usually point at hand-crafted
// commits rather than migration defects.
type Report struct {
	SourceTotal int
	TargetTotal int

	MissingInTarget []types.Revision // source − target, ascending
	MissingInSource []types.Revision // target − source, ascending

	Anomalies []types.Anomaly
}

// Compare computes both set differences. Output ordering is always ascending
// by revision number regardless of input iteration order, so reports are
// reproducible and diffable across runs. Membership is exact; there is no
// notion of a close match.
func Compare(source, target *types.RevisionSet) *Report {
	return &Report{
		SourceTotal:     source.Len(),
		TargetTotal:     target.Len(),
		MissingInTarget: difference(source, target),
		MissingInSource: difference(target, source),
	}
}

// difference returns a − b in ascending order with no duplicates.
func difference(a, b *types.RevisionSet) []types.Revision {
	ordered := treeset.NewWithIntComparator()
	for _, rev := range a.Values() {
		if !b.Contains(rev) {
			ordered.Add(int(rev))
		}
	}

	diff := make([]types.Revision, 0, ordered.Size())
	for _, v := range ordered.Values() {
		diff = append(diff, types.Revision(v.(int)))
	}
	return diff
}

// Attach appends anomaly batches collected by the extractors.
func (r *Report) Attach(batches ...[]types.Anomaly) {
	for _, batch := range batches {
		r.Anomalies = append(r.Anomalies, batch...)
	}
}

// Complete reports whether every source revision has at least one migrated
// commit.
func (r *Report) Complete() bool {
	return len(r.MissingInTarget) == 0
}

// NothingToVerify reports whether both sides were empty.
func (r *Report) NothingToVerify() bool {
	return r.SourceTotal == 0 && r.TargetTotal == 0
}
