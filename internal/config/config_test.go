package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseConfig_ValidMinimal(t *testing.T) {
	yaml := `
plugins:
  - asserttype
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Plugins) != 1 || cfg.Plugins[0] != "asserttype" {
		t.Errorf("plugins = %v, want [asserttype]", cfg.Plugins)
	}
	if cfg.Path != "test.yaml" {
		t.Errorf("path = %q, want test.yaml", cfg.Path)
	}
}

func TestParseConfig_ValidFull(t *testing.T) {
	yaml := `
plugins: [asserttype]
host_version: go1.22.3
supported_versions: ">= 1.21, < 2"
targets:
  - example.com/testing/typetest.AssertType
  - example.com/testing/typetest/v2.Is
`
	cfg, err := ParseConfig([]byte(yaml), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HostVersion != "go1.22.3" {
		t.Errorf("host_version = %q, want go1.22.3", cfg.HostVersion)
	}
	if cfg.SupportedVersions != ">= 1.21, < 2" {
		t.Errorf("supported_versions = %q", cfg.SupportedVersions)
	}
	if len(cfg.Targets) != 2 {
		t.Fatalf("targets len = %d, want 2", len(cfg.Targets))
	}
	if cfg.Targets[1] != "example.com/testing/typetest/v2.Is" {
		t.Errorf("targets[1] = %q", cfg.Targets[1])
	}
}

func TestParseConfig_DefaultPlugins(t *testing.T) {
	cfg, err := ParseConfig([]byte("host_version: go1.23\n"), "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Plugins) != 1 || cfg.Plugins[0] != "asserttype" {
		t.Errorf("plugins = %v, want default [asserttype]", cfg.Plugins)
	}
}

func TestParseConfig_EmptyFile(t *testing.T) {
	cfg, err := ParseConfig(nil, "test.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Plugins) != 1 {
		t.Errorf("plugins = %v, want defaults", cfg.Plugins)
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			yaml:    "plugins: [asserttype",
			wantErr: "parsing test.yaml",
		},
		{
			name:    "empty plugin name",
			yaml:    "plugins: ['']",
			wantErr: "plugins[0]: name is required",
		},
		{
			name:    "duplicate plugin",
			yaml:    "plugins: [asserttype, asserttype]",
			wantErr: `plugin "asserttype" listed twice`,
		},
		{
			name:    "bad host version",
			yaml:    "host_version: '0.930'",
			wantErr: "must be a Go toolchain version",
		},
		{
			name:    "host version without go release",
			yaml:    "host_version: golang",
			wantErr: "must be a Go toolchain version",
		},
		{
			name:    "host version with go inside a word",
			yaml:    "host_version: ago",
			wantErr: "must be a Go toolchain version",
		},
		{
			name:    "host version missing minor",
			yaml:    "host_version: go",
			wantErr: "must be a Go toolchain version",
		},
		{
			name:    "bad constraint",
			yaml:    "supported_versions: 'newer please'",
			wantErr: "supported_versions",
		},
		{
			name:    "unqualified target",
			yaml:    "targets: [AssertType]",
			wantErr: "not a fully-qualified function name",
		},
		{
			name:    "trailing dot target",
			yaml:    "targets: ['example.com/x.']",
			wantErr: "not a fully-qualified function name",
		},
		{
			name:    "duplicate target",
			yaml:    "targets: [a/b.F, a/b.F]",
			wantErr: "listed twice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml), "test.yaml")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParseConfig_HostVersionForms(t *testing.T) {
	for _, v := range []string{"go1.22", "go1.22.3", "go1.23rc1", "devel go1.26-0a1b2c3 Mon Jan 5 2026"} {
		cfg, err := ParseConfig([]byte("host_version: '"+v+"'\n"), "test.yaml")
		if err != nil {
			t.Errorf("host_version %q: unexpected error: %v", v, err)
			continue
		}
		if cfg.HostVersion != v {
			t.Errorf("HostVersion = %q, want %q", cfg.HostVersion, v)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Plugins) != 1 || cfg.Plugins[0] != "asserttype" {
		t.Errorf("plugins = %v", cfg.Plugins)
	}
	if cfg.Path != "" || cfg.HostVersion != "" || len(cfg.Targets) != 0 {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}

	// Defaults must not alias the package-level slice.
	cfg.Plugins[0] = "changed"
	if DefaultPlugins[0] != "asserttype" {
		t.Error("Default() shares DefaultPlugins backing array")
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "a", ConfigFileName)
	if err := os.WriteFile(want, []byte("plugins: [asserttype]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindConfig(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("FindConfig = %q, want %q", got, want)
	}
}

func TestFindConfig_YmlAlternative(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "typeasserts.yml")
	if err := os.WriteFile(want, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := FindConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("FindConfig = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Resolve("", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// A parent of the temp dir may hold a config; only check that
	// something usable came back.
	if len(cfg.Plugins) == 0 {
		t.Error("expected plugins")
	}

	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("host_version: go1.21\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Resolve(path, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HostVersion != "go1.21" || cfg.Path != path {
		t.Errorf("Resolve(path) = %+v", cfg)
	}

	if _, err := Resolve(filepath.Join(dir, "missing.yaml"), ""); err == nil {
		t.Error("expected error for missing explicit config")
	}
}
