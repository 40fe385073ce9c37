package types

import "fmt"

// AnomalyKind classifies a non-fatal irregularity found during extraction.
type AnomalyKind string

const (
	// DuplicateRevision means the dump declared the same revision number twice.
	// The derived set is unaffected (insertion is idempotent) but a well-formed
	// dump should never do this.
	DuplicateRevision AnomalyKind = "duplicate-revision"

	// AmbiguousTrailer means a commit message carried a git-svn-id marker whose
	// revision portion could not be parsed. Surfaced prominently because it may
	// hide a genuinely missing revision.
	AmbiguousTrailer AnomalyKind = "ambiguous-trailer"
)

// Anomaly records one non-fatal irregularity. Anomalies are accumulated during
// extraction and attached to the final reconciliation report rather than
// raised immediately, so a single run surfaces all of them.
type Anomaly struct {
	Kind     AnomalyKind
	Revision Revision // revision involved, if one was recoverable
	Detail   string
}

func (a Anomaly) String() string {
	if a.Revision > 0 {
		return fmt.Sprintf("%s (r%d): %s", a.Kind, a.Revision, a.Detail)
	}
	return fmt.Sprintf("%s: %s", a.Kind, a.Detail)
}
