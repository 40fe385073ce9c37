package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/svnaudit/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	dumpFile     string
	repoPath     string
	gitBinary    string
	reportFormat string
	logLevel     string
	logFormat    string
)

// Exit codes form the tool's externally load-bearing contract:
// 0 = migration verified complete, 1 = migration incomplete,
// 2 = could not verify (parse or subprocess failure).
const (
	exitIncomplete = 1
	exitFatal      = 2
)

var rootCmd = &cobra.Command{
	Use:   "svnaudit",
	Short: "SVN-to-git Migration Auditor",
	Long: `A one-shot CLI tool that verifies the completeness of an SVN-to-git
repository migration: every revision declared in an svnadmin dump file
must have at least one migrated commit carrying the matching git-svn-id
trailer.

Features:
  - Streaming dump parse without materializing file contents
  - Structural git-svn-id trailer matching across all branches
  - Deterministic, diffable reconciliation reports (text or YAML)
  - Non-fatal anomalies collected and reported in a single run`,
	Version: Version,
}

// Execute runs the root command and maps the error class to an exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, ErrIncomplete) {
			os.Exit(exitIncomplete)
		}
		os.Exit(exitFatal)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "svnaudit.yaml",
		"Path to configuration file")

	// Input overrides
	rootCmd.PersistentFlags().StringVar(&dumpFile, "dump", "",
		"Path to the svnadmin dump file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")
}

// loadConfig loads the (optional) config file and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(cfgFile)
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(dumpFile, repoPath, gitBinary, reportFormat, logLevel, logFormat)
	return cfg, nil
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}
