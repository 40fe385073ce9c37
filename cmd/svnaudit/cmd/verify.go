package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/svnaudit/internal/dump"
	"github.com/dbsmedya/svnaudit/internal/gitlog"
	"github.com/dbsmedya/svnaudit/internal/logger"
	"github.com/dbsmedya/svnaudit/internal/reconcile"
	"github.com/dbsmedya/svnaudit/internal/report"
)

// ErrIncomplete signals a successful audit that found missing revisions.
// Execute maps it to exit code 1; every other error is a failure to verify.
var ErrIncomplete = errors.New("migration incomplete")

var (
	showCommits bool
	noBranches  bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify every dump revision has a migrated commit",
	Long: `Verify parses the svnadmin dump file, enumerates every commit on every
branch of the migrated git repository, and reconciles the two revision
sets.

The run aborts without a report on structural dump corruption or git
failure: a partial revision set is untrustworthy for an audit. Non-fatal
anomalies (duplicate revision declarations, unparsable git-svn-id
trailers) are collected and attached to the report instead.

Example:
  svnaudit verify --dump project.dump --repo /srv/git/project`,
	RunE:         runVerify,
	SilenceUsage: true,
}

func init() {
	verifyCmd.Flags().StringVar(&repoPath, "repo", "",
		"Path to the migrated git repository")
	verifyCmd.Flags().StringVar(&gitBinary, "git", "",
		"Git binary to invoke (default from config, usually 'git')")
	verifyCmd.Flags().StringVar(&reportFormat, "format", "",
		"Report format (text, yaml)")
	verifyCmd.Flags().BoolVar(&showCommits, "show-commits", false,
		"List migrated commit hashes per revision")
	verifyCmd.Flags().BoolVar(&noBranches, "no-branches", false,
		"Skip the per-branch commit summary")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	// Load configuration and apply CLI overrides
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if showCommits {
		cfg.Report.ShowCommits = true
	}
	if noBranches {
		cfg.Report.ShowBranches = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Initialize logger
	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	ctx := context.Background()

	// Source side: revision numbers declared by the dump.
	f, err := dump.Open(cfg.Source.DumpFile)
	if err != nil {
		return fmt.Errorf("could not verify: %w", err)
	}
	defer f.Close()

	src, err := dump.Extract(f.Records(), log.WithDump(cfg.Source.DumpFile))
	if err != nil {
		return fmt.Errorf("could not verify: %w", err)
	}

	// Target side: revisions recovered from migrated commit trailers.
	repo := gitlog.NewRepo(cfg.Target.RepoPath, cfg.Target.GitBinary, log.WithRepo(cfg.Target.RepoPath))
	commits, err := repo.Log(ctx)
	if err != nil {
		return fmt.Errorf("could not verify: %w", err)
	}
	target := gitlog.Extract(commits, log.WithRepo(cfg.Target.RepoPath))

	// Reconcile and attach accumulated anomalies.
	rec := reconcile.Compare(src.Revisions, target.Revisions)
	rec.Attach(src.Anomalies, target.Anomalies)

	summary := &report.Summary{
		DumpPath:          cfg.Source.DumpFile,
		RepoPath:          cfg.Target.RepoPath,
		DumpStats:         src.Stats,
		Reconciliation:    rec,
		CommitsByRevision: target.Commits,
		ShowCommits:       cfg.Report.ShowCommits,
	}

	if cfg.Report.ShowBranches {
		branches, err := repo.BranchSummary(ctx)
		if err != nil {
			return fmt.Errorf("could not verify: %w", err)
		}
		summary.Branches = branches
	}

	if err := report.Render(os.Stdout, cfg.Report.Format, summary); err != nil {
		return err
	}

	if !rec.Complete() {
		return ErrIncomplete
	}
	return nil
}
