// Package config provides configuration structures and loading for svnaudit.
package config

// Config represents the complete application configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source" mapstructure:"source"`
	Target  TargetConfig  `yaml:"target" mapstructure:"target"`
	Report  ReportConfig  `yaml:"report" mapstructure:"report"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// SourceConfig describes the SVN side of the audit.
type SourceConfig struct {
	DumpFile string `yaml:"dump_file" mapstructure:"dump_file"`
}

// TargetConfig describes the migrated git repository.
type TargetConfig struct {
	RepoPath  string `yaml:"repo_path" mapstructure:"repo_path"`
	GitBinary string `yaml:"git_binary" mapstructure:"git_binary"`
}

// ReportConfig controls how the reconciliation report is rendered.
type ReportConfig struct {
	Format       string `yaml:"format" mapstructure:"format"` // text or yaml
	ShowCommits  bool   `yaml:"show_commits" mapstructure:"show_commits"`
	ShowBranches bool   `yaml:"show_branches" mapstructure:"show_branches"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			GitBinary: "git",
		},
		Report: ReportConfig{
			Format:       "text",
			ShowBranches: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ApplyOverrides applies CLI flag overrides to the configuration.
// Only non-zero/non-empty values are applied.
func (c *Config) ApplyOverrides(dumpFile, repoPath, gitBinary, reportFormat, logLevel, logFormat string) {
	if dumpFile != "" {
		c.Source.DumpFile = dumpFile
	}
	if repoPath != "" {
		c.Target.RepoPath = repoPath
	}
	if gitBinary != "" {
		c.Target.GitBinary = gitBinary
	}
	if reportFormat != "" {
		c.Report.Format = reportFormat
	}
	if logLevel != "" {
		c.Logging.Level = logLevel
	}
	if logFormat != "" {
		c.Logging.Format = logFormat
	}
}
