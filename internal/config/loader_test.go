package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
source:
  dump_file: /data/project.dump

target:
  repo_path: /srv/git/project
  git_binary: /usr/local/bin/git

report:
  format: yaml
  show_commits: true
  show_branches: false

logging:
  level: debug
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Source.DumpFile != "/data/project.dump" {
		t.Errorf("Source.DumpFile = %q, expected /data/project.dump", cfg.Source.DumpFile)
	}
	if cfg.Target.RepoPath != "/srv/git/project" {
		t.Errorf("Target.RepoPath = %q, expected /srv/git/project", cfg.Target.RepoPath)
	}
	if cfg.Target.GitBinary != "/usr/local/bin/git" {
		t.Errorf("Target.GitBinary = %q, expected /usr/local/bin/git", cfg.Target.GitBinary)
	}
	if cfg.Report.Format != "yaml" {
		t.Errorf("Report.Format = %q, expected yaml", cfg.Report.Format)
	}
	if !cfg.Report.ShowCommits {
		t.Error("Report.ShowCommits should be true")
	}
	if cfg.Report.ShowBranches {
		t.Error("Report.ShowBranches should be false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadOptional(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("LoadOptional returned error: %v", err)
		}
		if cfg.Target.GitBinary != "git" {
			t.Errorf("expected default git binary, got %q", cfg.Target.GitBinary)
		}
		if cfg.Report.Format != "text" {
			t.Errorf("expected default report format, got %q", cfg.Report.Format)
		}
	})

	t.Run("existing file is loaded", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "audit.yaml")
		content := "source:\n  dump_file: from-file.dump\n"
		if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		cfg, err := LoadOptional(configPath)
		if err != nil {
			t.Fatalf("LoadOptional returned error: %v", err)
		}
		if cfg.Source.DumpFile != "from-file.dump" {
			t.Errorf("Source.DumpFile = %q, expected from-file.dump", cfg.Source.DumpFile)
		}
	})
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("SVNAUDIT_TEST_DUMP", "/mnt/dumps/big.dump")

	configPath := filepath.Join(t.TempDir(), "test.yaml")
	configContent := `
source:
  dump_file: ${SVNAUDIT_TEST_DUMP}
target:
  repo_path: $SVNAUDIT_TEST_UNSET
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Source.DumpFile != "/mnt/dumps/big.dump" {
		t.Errorf("env substitution failed, got %q", cfg.Source.DumpFile)
	}
	// Unset variables are left untouched.
	if cfg.Target.RepoPath != "$SVNAUDIT_TEST_UNSET" {
		t.Errorf("unset env var should remain literal, got %q", cfg.Target.RepoPath)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.DumpFile = "original.dump"

	cfg.ApplyOverrides("override.dump", "/repo", "", "yaml", "debug", "")

	if cfg.Source.DumpFile != "override.dump" {
		t.Errorf("dump override not applied, got %q", cfg.Source.DumpFile)
	}
	if cfg.Target.RepoPath != "/repo" {
		t.Errorf("repo override not applied, got %q", cfg.Target.RepoPath)
	}
	if cfg.Target.GitBinary != "git" {
		t.Errorf("empty override should keep default, got %q", cfg.Target.GitBinary)
	}
	if cfg.Report.Format != "yaml" {
		t.Errorf("format override not applied, got %q", cfg.Report.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level override not applied, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("empty log format override should keep default, got %q", cfg.Logging.Format)
	}
}
