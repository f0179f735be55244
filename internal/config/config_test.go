package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	body := "rule: sand\nwidth: 64\ntps: 12\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rule != "sand" || cfg.Width != 64 || cfg.TPS != 12 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// Untouched keys keep their defaults.
	if cfg.Height != Default().Height || cfg.Scale != Default().Scale {
		t.Fatalf("defaults lost for unset keys: %+v", cfg)
	}
}

func TestLoadEmptyPathIsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestParseFlagsLayersFlagsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	if err := os.WriteFile(path, []byte("rule: sand\nwidth: 64\ntps: 12\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseFlags(fs, []string{"-config", path, "-rule", "rule110"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}

	if cfg.Rule != "rule110" {
		t.Fatalf("flag did not win over the file: %+v", cfg)
	}
	if cfg.Width != 64 || cfg.TPS != 12 {
		t.Fatalf("unflagged values lost the file layer: %+v", cfg)
	}
	if cfg.Height != Default().Height {
		t.Fatalf("unset key lost its default: %+v", cfg)
	}
}

func TestParseFlagsWithoutFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := ParseFlags(fs, []string{"-width", "32"})
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Width != 32 || cfg.Rule != Default().Rule {
		t.Fatalf("flag-only parse wrong: %+v", cfg)
	}
}

func TestDims(t *testing.T) {
	cfg := Default()
	cfg.Width = 10
	cfg.Height = 6
	dims := cfg.Dims()
	if len(dims) != 2 || dims[0] != 10 || dims[1] != 6 {
		t.Fatalf("Dims() = %v, expected width first", dims)
	}
}
