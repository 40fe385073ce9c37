package gitlog

import (
	"github.com/dbsmedya/svnaudit/internal/logger"
	"github.com/dbsmedya/svnaudit/internal/types"
)

// TargetSet is the git side of the reconciliation: every original revision
// recovered from a commit trailer, plus the commits that realized each one.
type TargetSet struct {
	Revisions *types.RevisionSet
	Commits   map[types.Revision][]string // revision -> commit hashes
	Anomalies []types.Anomaly
	Scanned   int // commits examined
	Matched   int // commits carrying a usable trailer
}

// Extract recovers the original revision number from each commit's trailer.
// Commits without a trailer are skipped silently; they were created after or
// outside the migration and contribute nothing to the target set. A commit
// whose trailer is present but unparsable becomes an AmbiguousTrailer
// anomaly and the run continues.
//
// Two commits legitimately may map to the same revision (a branched
// revision migrates once per branch), so this is not an anomaly; the report
// can show the full hash list per revision.
func Extract(commits []Commit, log *logger.Logger) *TargetSet {
	if log == nil {
		log = logger.NewDefault()
	}

	out := &TargetSet{
		Revisions: types.NewRevisionSet(),
		Commits:   make(map[types.Revision][]string),
	}

	for _, commit := range commits {
		out.Scanned++

		rev, found, err := Trailer(commit.Message)
		if err != nil {
			out.Anomalies = append(out.Anomalies, types.Anomaly{
				Kind:   types.AmbiguousTrailer,
				Detail: "commit " + commit.Hash + ": " + err.Error(),
			})
			log.Warnf("commit %s: %v", commit.Hash, err)
			continue
		}
		if !found {
			log.Debugf("commit %s carries no trailer, skipping", commit.Hash)
			continue
		}

		out.Matched++
		out.Revisions.Add(rev)
		out.Commits[rev] = append(out.Commits[rev], commit.Hash)
	}

	log.Infof("commit scan complete: %d revisions from %d of %d commits",
		out.Revisions.Len(), out.Matched, out.Scanned)

	return out
}
