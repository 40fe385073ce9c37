package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/svnaudit/internal/dump"
	"github.com/dbsmedya/svnaudit/internal/logger"
	"github.com/dbsmedya/svnaudit/internal/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Summarize a dump file without touching the git side",
	Long: `Inspect parses the svnadmin dump file and prints what the audit would
use as its source side: format version, repository UUID, revision range,
numbering gaps, and record counts.

Example:
  svnaudit inspect --dump project.dump`,
	RunE:         runInspect,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Source.DumpFile == "" {
		return fmt.Errorf("no dump file given (use --dump or source.dump_file in the config)")
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	f, err := dump.Open(cfg.Source.DumpFile)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dump.Extract(f.Records(), log.WithDump(cfg.Source.DumpFile))
	if err != nil {
		return err
	}

	cmd.Printf("Dump: %s (%d bytes)\n", cfg.Source.DumpFile, f.Size())
	cmd.Printf("  Format version: %d\n", src.Stats.FormatVersion)
	if src.Stats.ReposUUID != "" {
		cmd.Printf("  Repository UUID: %s\n", src.Stats.ReposUUID)
	}
	cmd.Printf("  Records: %d (%d node records)\n", src.Stats.RecordCount, src.Stats.NodeCount)

	if src.Revisions.Len() == 0 {
		cmd.Println("  Revisions: none")
		return nil
	}

	cmd.Printf("  Revisions: %d (r%d..r%d)\n", src.Revisions.Len(), src.Stats.First, src.Stats.Last)
	if gaps := gapRanges(src.Revisions.Values()); len(gaps) > 0 {
		cmd.Printf("  Numbering gaps: %d\n", len(gaps))
		for _, gap := range gaps {
			cmd.Printf("    %s\n", gap)
		}
	}

	for _, a := range src.Anomalies {
		cmd.Printf("  Anomaly: %s\n", a)
	}

	return nil
}

// gapRanges formats the holes in an ascending revision list. Gaps are valid
// in a dump (filtered or partial histories renumber nothing), so this is
// informational.
func gapRanges(revs []types.Revision) []string {
	var gaps []string
	for i := 1; i < len(revs); i++ {
		prev, next := revs[i-1], revs[i]
		switch {
		case next == prev+1:
			// contiguous
		case next == prev+2:
			gaps = append(gaps, fmt.Sprintf("r%d", prev+1))
		default:
			gaps = append(gaps, fmt.Sprintf("r%d..r%d", prev+1, next-1))
		}
	}
	return gaps
}
