// Package gitlog reads migrated commits from the git repository and recovers
// the original Subversion revision embedded in each commit message.
package gitlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dbsmedya/svnaudit/internal/types"
)

// Commit is one migrated commit's metadata. It is consumed exactly once, to
// extract a revision number or to determine that it carries none.
type Commit struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// TrailerMarker is the token git-svn writes at the start of the provenance
// trailer: "git-svn-id: <repository-URL>@<revision> <instance-uuid>".
const TrailerMarker = "git-svn-id:"

// ErrAmbiguousTrailer means a message carried the trailer marker but its
// revision portion could not be parsed. This indicates a corrupted or
// hand-edited commit message and may mask a genuinely missing revision, so
// it is reported rather than silently dropped.
var ErrAmbiguousTrailer = errors.New("ambiguous git-svn-id trailer")

// Trailer scans a commit message for the git-svn-id provenance trailer and
// returns the embedded revision number. The match is structural: marker
// token, repository locator containing an '@' separator, a non-negative
// integer, then the instance identifier. Incidental mentions of revision
// numbers elsewhere in the message never match.
//
// Migrated history should carry at most one trailer per commit; if several
// lines carry the marker, the first is authoritative.
func Trailer(message string) (rev types.Revision, found bool, err error) {
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, TrailerMarker) {
			continue
		}

		fields := strings.Fields(line[len(TrailerMarker):])
		if len(fields) != 2 {
			return 0, false, fmt.Errorf("%w: %q: expected locator and instance id", ErrAmbiguousTrailer, line)
		}

		locator, instance := fields[0], fields[1]
		at := strings.LastIndex(locator, "@")
		if at < 1 || instance == "" {
			return 0, false, fmt.Errorf("%w: %q: locator has no '@<revision>' suffix", ErrAmbiguousTrailer, line)
		}

		number, convErr := strconv.Atoi(locator[at+1:])
		if convErr != nil || number < 0 {
			return 0, false, fmt.Errorf("%w: %q: revision portion %q is not a non-negative integer",
				ErrAmbiguousTrailer, line, locator[at+1:])
		}

		return types.Revision(number), true, nil
	}

	return 0, false, nil
}
