package gitlog

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dbsmedya/svnaudit/internal/logger"
)

// Field and record separators for the git log pretty format. Control bytes
// cannot occur in hashes, names, or dates, and record separation keeps
// multi-line messages intact.
const (
	fieldSep  = "\x00"
	recordSep = "\x1e"
	logFormat = "%H" + fieldSep + "%an" + fieldSep + "%ad" + fieldSep + "%B" + recordSep
)

// Runner executes a git subcommand and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	binary string
}

func (e *execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, e.binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return nil, fmt.Errorf("%s %s: %w", e.binary, strings.Join(args, " "), err)
		}
		return nil, fmt.Errorf("%s %s: %w: %s", e.binary, strings.Join(args, " "), err, detail)
	}
	return out, nil
}

// BranchCount is the number of commits reachable from one remote branch.
type BranchCount struct {
	Ref     string
	Commits int
}

// Repo enumerates commits in the migrated git repository.
type Repo struct {
	path   string
	runner Runner
	logger *logger.Logger
}

// NewRepo returns a Repo invoking the given git binary against path.
func NewRepo(path, gitBinary string, log *logger.Logger) *Repo {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Repo{
		path:   path,
		runner: &execRunner{binary: gitBinary},
		logger: log,
	}
}

// SetRunner replaces the subprocess runner. Used by tests to feed canned
// git output.
func (r *Repo) SetRunner(runner Runner) {
	r.runner = runner
}

// Log returns every commit reachable from any branch whose message mentions
// the git-svn-id marker. Ordering is whatever git emits; the extractor makes
// no ordering assumption.
func (r *Repo) Log(ctx context.Context) ([]Commit, error) {
	out, err := r.runner.Run(ctx,
		"-C", r.path,
		"log", "--all", "--date=iso",
		"--grep="+TrailerMarker,
		"--pretty=format:"+logFormat,
	)
	if err != nil {
		return nil, fmt.Errorf("enumerating migrated commits: %w", err)
	}

	commits := parseLog(out)
	r.logger.Debugf("git log yielded %d candidate commits", len(commits))
	return commits, nil
}

// BranchSummary returns per-remote-branch commit counts, skipping symbolic
// refs such as "origin/HEAD -> origin/main".
func (r *Repo) BranchSummary(ctx context.Context) ([]BranchCount, error) {
	out, err := r.runner.Run(ctx, "-C", r.path, "branch", "-r")
	if err != nil {
		return nil, fmt.Errorf("listing remote branches: %w", err)
	}

	var summary []BranchCount
	for _, line := range strings.Split(string(out), "\n") {
		ref := strings.TrimSpace(line)
		if ref == "" || strings.Contains(ref, "->") {
			continue
		}

		countOut, err := r.runner.Run(ctx, "-C", r.path, "rev-list", "--count", ref)
		if err != nil {
			return nil, fmt.Errorf("counting commits on %s: %w", ref, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(string(countOut)))
		if err != nil {
			return nil, fmt.Errorf("counting commits on %s: unexpected rev-list output %q", ref, countOut)
		}

		summary = append(summary, BranchCount{Ref: ref, Commits: count})
	}

	return summary, nil
}

// parseLog splits record-separated git log output into commits. Empty or
// short records (a trailing separator leaves one) are dropped.
func parseLog(out []byte) []Commit {
	var commits []Commit
	for _, record := range strings.Split(string(out), recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}
		fields := strings.SplitN(record, fieldSep, 4)
		if len(fields) != 4 {
			continue
		}
		commits = append(commits, Commit{
			Hash:    fields[0],
			Author:  fields[1],
			Date:    fields[2],
			Message: fields[3],
		})
	}
	return commits
}
