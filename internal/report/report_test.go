package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/svnaudit/internal/dump"
	"github.com/dbsmedya/svnaudit/internal/gitlog"
	"github.com/dbsmedya/svnaudit/internal/reconcile"
	"github.com/dbsmedya/svnaudit/internal/types"
)

func summaryFor(source, target []types.Revision) *Summary {
	src := types.NewRevisionSet()
	for _, rev := range source {
		src.Add(rev)
	}
	tgt := types.NewRevisionSet()
	for _, rev := range target {
		tgt.Add(rev)
	}

	stats := dump.Stats{FormatVersion: 2}
	if len(source) > 0 {
		stats.First = source[0]
		stats.Last = source[len(source)-1]
	}

	return &Summary{
		DumpPath:       "project.dump",
		RepoPath:       "/srv/git/project",
		DumpStats:      stats,
		Reconciliation: reconcile.Compare(src, tgt),
	}
}

func TestRenderText_Complete(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1, 2, 3}, []types.Revision{1, 2, 3})

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Migration verified complete")
	assert.Contains(t, out, "project.dump")
	assert.Contains(t, out, "3 revisions")
	assert.NotContains(t, out, "Missing revisions")
}

func TestRenderText_Incomplete(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1, 2, 3}, []types.Revision{1, 3})

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Migration incomplete: 1 revision missing")
	assert.Contains(t, out, "Missing revisions: 2")
}

func TestRenderText_NothingToVerify(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor(nil, nil)

	require.NoError(t, Render(&buf, "text", s))
	assert.Contains(t, buf.String(), "Nothing to verify")
}

func TestRenderText_TargetOnlyIsInformational(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1, 2}, []types.Revision{1, 2, 9})

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Migration verified complete")
	assert.Contains(t, out, "Target-only revisions (informational): 9")
}

func TestRenderText_Anomalies(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1}, []types.Revision{1})
	s.Reconciliation.Attach([]types.Anomaly{
		{Kind: types.DuplicateRevision, Revision: 1, Detail: "revision 1 declared more than once"},
	})

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Anomalies (1):")
	assert.Contains(t, out, "duplicate-revision (r1)")
}

func TestRenderText_BranchesAligned(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1}, []types.Revision{1})
	s.Branches = []gitlog.BranchCount{
		{Ref: "origin/main", Commits: 120},
		{Ref: "origin/release-1.x", Commits: 1},
	}

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Branches:")
	assert.Contains(t, out, "origin/main")
	assert.Contains(t, out, "120 commits")
	assert.Contains(t, out, "1 commit\n")
}

func TestRenderText_CommitsByRevision(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1, 2}, []types.Revision{1, 2})
	s.ShowCommits = true
	s.CommitsByRevision = map[types.Revision][]string{
		2: {"def456"},
		1: {"abc123", "abc124"},
	}

	require.NoError(t, Render(&buf, "text", s))
	out := buf.String()

	assert.Contains(t, out, "Migrated commits by revision:")
	r1 := strings.Index(out, "abc123")
	r2 := strings.Index(out, "def456")
	assert.Greater(t, r2, r1, "revisions render in ascending order")
	assert.Contains(t, out, "2 commits abc123 abc124")
}

func TestRenderYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	s := summaryFor([]types.Revision{1, 2, 3}, []types.Revision{1, 3})
	s.Branches = []gitlog.BranchCount{{Ref: "origin/main", Commits: 2}}
	s.Reconciliation.Attach([]types.Anomaly{
		{Kind: types.AmbiguousTrailer, Detail: "commit zzz: bad trailer"},
	})

	require.NoError(t, Render(&buf, "yaml", s))

	var decoded struct {
		Dump            string `yaml:"dump"`
		Complete        bool   `yaml:"complete"`
		SourceRevisions int    `yaml:"source_revisions"`
		MissingInTarget []int  `yaml:"missing_in_target"`
		Anomalies       []struct {
			Kind string `yaml:"kind"`
		} `yaml:"anomalies"`
		Branches []struct {
			Ref     string `yaml:"ref"`
			Commits int    `yaml:"commits"`
		} `yaml:"branches"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "project.dump", decoded.Dump)
	assert.False(t, decoded.Complete)
	assert.Equal(t, 3, decoded.SourceRevisions)
	assert.Equal(t, []int{2}, decoded.MissingInTarget)
	require.Len(t, decoded.Anomalies, 1)
	assert.Equal(t, "ambiguous-trailer", decoded.Anomalies[0].Kind)
	require.Len(t, decoded.Branches, 1)
	assert.Equal(t, "origin/main", decoded.Branches[0].Ref)
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "xml", summaryFor(nil, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
}
