package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dbsmedya/svnaudit/internal/types"
)

// yamlSummary is the machine-readable report schema.
type yamlSummary struct {
	Dump            string           `yaml:"dump"`
	Repository      string           `yaml:"repository"`
	FormatVersion   int              `yaml:"dump_format_version"`
	ReposUUID       string           `yaml:"repository_uuid,omitempty"`
	SourceRevisions int              `yaml:"source_revisions"`
	TargetRevisions int              `yaml:"target_revisions"`
	Complete        bool             `yaml:"complete"`
	MissingInTarget []types.Revision `yaml:"missing_in_target"`
	MissingInSource []types.Revision `yaml:"missing_in_source,omitempty"`
	Anomalies       []yamlAnomaly    `yaml:"anomalies,omitempty"`
	Branches        []yamlBranch     `yaml:"branches,omitempty"`
	Commits         map[int][]string `yaml:"commits_by_revision,omitempty"`
}

type yamlAnomaly struct {
	Kind     string `yaml:"kind"`
	Revision int    `yaml:"revision,omitempty"`
	Detail   string `yaml:"detail"`
}

type yamlBranch struct {
	Ref     string `yaml:"ref"`
	Commits int    `yaml:"commits"`
}

func renderYAML(w io.Writer, s *Summary) error {
	rec := s.Reconciliation

	out := yamlSummary{
		Dump:            s.DumpPath,
		Repository:      s.RepoPath,
		FormatVersion:   s.DumpStats.FormatVersion,
		ReposUUID:       s.DumpStats.ReposUUID,
		SourceRevisions: rec.SourceTotal,
		TargetRevisions: rec.TargetTotal,
		Complete:        rec.Complete(),
		MissingInTarget: rec.MissingInTarget,
		MissingInSource: rec.MissingInSource,
	}

	for _, a := range rec.Anomalies {
		out.Anomalies = append(out.Anomalies, yamlAnomaly{
			Kind:     string(a.Kind),
			Revision: int(a.Revision),
			Detail:   a.Detail,
		})
	}

	for _, b := range s.Branches {
		out.Branches = append(out.Branches, yamlBranch{Ref: b.Ref, Commits: b.Commits})
	}

	if s.ShowCommits && len(s.CommitsByRevision) > 0 {
		out.Commits = make(map[int][]string, len(s.CommitsByRevision))
		for rev, hashes := range s.CommitsByRevision {
			out.Commits[int(rev)] = hashes
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
