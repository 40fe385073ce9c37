package report

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

func renderText(w io.Writer, s *Summary) error {
	rec := s.Reconciliation

	fmt.Fprintf(w, "=== Migration Audit ===\n")
	fmt.Fprintf(w, "Dump:       %s (format %d, %d revisions",
		s.DumpPath, s.DumpStats.FormatVersion, rec.SourceTotal)
	if rec.SourceTotal > 0 {
		fmt.Fprintf(w, ", r%d..r%d", s.DumpStats.First, s.DumpStats.Last)
	}
	fmt.Fprintf(w, ")\n")
	fmt.Fprintf(w, "Repository: %s (%d migrated revisions)\n\n", s.RepoPath, rec.TargetTotal)

	switch {
	case rec.NothingToVerify():
		fmt.Fprintln(w, color.Yellow.Sprint("Nothing to verify: the dump declares no revisions and the repository carries no migrated commits."))
	case rec.Complete():
		fmt.Fprintln(w, color.Green.Sprint("✅ Migration verified complete"))
	default:
		n := len(rec.MissingInTarget)
		fmt.Fprintln(w, color.Red.Sprintf("❌ Migration incomplete: %d revision%s missing", n, plural(n)))
		fmt.Fprintf(w, "Missing revisions: %s\n", joinRevisions(rec.MissingInTarget))
	}

	if len(rec.MissingInSource) > 0 {
		fmt.Fprintf(w, "\nTarget-only revisions (informational): %s\n", joinRevisions(rec.MissingInSource))
	}

	if len(rec.Anomalies) > 0 {
		fmt.Fprintf(w, "\n%s\n", color.Yellow.Sprintf("Anomalies (%d):", len(rec.Anomalies)))
		for _, a := range rec.Anomalies {
			fmt.Fprintf(w, "  - %s\n", a)
		}
	}

	if s.ShowCommits && len(s.CommitsByRevision) > 0 {
		fmt.Fprintf(w, "\nMigrated commits by revision:\n")
		for _, rev := range sortedRevisions(s.CommitsByRevision) {
			hashes := s.CommitsByRevision[rev]
			fmt.Fprintf(w, "  r%-8d %d commit%s", rev, len(hashes), plural(len(hashes)))
			for _, hash := range hashes {
				fmt.Fprintf(w, " %s", hash)
			}
			fmt.Fprintln(w)
		}
	}

	if len(s.Branches) > 0 {
		width := 0
		for _, b := range s.Branches {
			if bw := runewidth.StringWidth(b.Ref); bw > width {
				width = bw
			}
		}
		fmt.Fprintf(w, "\nBranches:\n")
		for _, b := range s.Branches {
			fmt.Fprintf(w, "  %s  %6d commit%s\n", runewidth.FillRight(b.Ref, width), b.Commits, plural(b.Commits))
		}
	}

	return nil
}
