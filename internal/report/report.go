// Package report renders the reconciliation result for the console.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dbsmedya/svnaudit/internal/dump"
	"github.com/dbsmedya/svnaudit/internal/gitlog"
	"github.com/dbsmedya/svnaudit/internal/reconcile"
	"github.com/dbsmedya/svnaudit/internal/types"
)

// Summary bundles everything one audit run produced.
type Summary struct {
	DumpPath string
	RepoPath string

	DumpStats      dump.Stats
	Reconciliation *reconcile.Report

	// CommitsByRevision maps each migrated revision to the commits that
	// realized it. Rendered only when ShowCommits is set.
	CommitsByRevision map[types.Revision][]string
	ShowCommits       bool

	// Branches holds per-remote-branch commit counts, empty when the
	// branch summary was disabled.
	Branches []gitlog.BranchCount
}

// Render writes the summary in the requested format ("text" or "yaml").
func Render(w io.Writer, format string, s *Summary) error {
	switch format {
	case "yaml":
		return renderYAML(w, s)
	case "text", "":
		return renderText(w, s)
	default:
		return fmt.Errorf("unknown report format: %s", format)
	}
}

// joinRevisions formats revisions as a comma-separated ascending list.
func joinRevisions(revs []types.Revision) string {
	parts := make([]string, len(revs))
	for i, rev := range revs {
		parts[i] = fmt.Sprintf("%d", rev)
	}
	return strings.Join(parts, ", ")
}

// sortedRevisions returns the map keys in ascending order.
func sortedRevisions(m map[types.Revision][]string) []types.Revision {
	revs := make([]types.Revision, 0, len(m))
	for rev := range m {
		revs = append(revs, rev)
	}
	sort.Slice(revs, func(i, j int) bool { return revs[i] < revs[j] })
	return revs
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
