package dump

import (
	"errors"
	"fmt"
	"io"

	"github.com/dbsmedya/svnaudit/internal/logger"
	"github.com/dbsmedya/svnaudit/internal/types"
)

// Stats describes what one pass over the dump stream saw.
type Stats struct {
	FormatVersion int
	ReposUUID     string
	RecordCount   int // every record in the stream, preamble included
	NodeCount     int // per-path change records
	First         types.Revision
	Last          types.Revision
}

// SourceSet is the SVN side of the reconciliation: the set of revision
// numbers the dump declares, plus anomalies collected along the way.
type SourceSet struct {
	Revisions *types.RevisionSet
	Anomalies []types.Anomaly
	Stats     Stats
}

// Extract consumes the record sequence and collects every declared revision
// number. Records without a Revision-number header are per-path change
// records nested under the most recent revision; they carry no revision of
// their own and are simply filtered out, with no running-revision state.
//
// A revision number declared twice is a DuplicateRevision anomaly: reported,
// not fatal, since set insertion is idempotent. A revision header that does
// not parse as a non-negative integer is structural corruption and aborts
// the run.
func Extract(r *Reader, log *logger.Logger) (*SourceSet, error) {
	if log == nil {
		log = logger.NewDefault()
	}

	out := &SourceSet{Revisions: types.NewRevisionSet()}

	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		out.Stats.RecordCount++

		switch {
		case rec.IsRevision():
			number, err := rec.Int(RevisionNumberHeader)
			if err != nil || number < 0 {
				value, _ := rec.Header(RevisionNumberHeader)
				return nil, fmt.Errorf("%w: %s %q is not a valid revision number", ErrMalformedDump, RevisionNumberHeader, value)
			}
			rev := types.Revision(number)
			if !out.Revisions.Add(rev) {
				out.Anomalies = append(out.Anomalies, types.Anomaly{
					Kind:     types.DuplicateRevision,
					Revision: rev,
					Detail:   fmt.Sprintf("revision %d declared more than once", number),
				})
				log.Warnf("duplicate declaration of revision %d", number)
				continue
			}
			if out.Revisions.Len() == 1 {
				out.Stats.First = rev
			}
			if rev > out.Stats.Last {
				out.Stats.Last = rev
			}
			log.Debugf("revision %d declared", number)

		case rec.Has(NodePathHeader):
			out.Stats.NodeCount++

		case rec.Has(VersionHeader):
			out.Stats.FormatVersion, _ = rec.Int(VersionHeader)

		case rec.Has(UUIDHeader):
			out.Stats.ReposUUID, _ = rec.Header(UUIDHeader)
		}
	}

	log.Infof("dump scan complete: %d revisions across %d records",
		out.Revisions.Len(), out.Stats.RecordCount)

	return out, nil
}
