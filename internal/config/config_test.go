package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "cfg.yml")
	body := "ignore: \"*.log,dist/**\"\nmax_bytes: 2048\nno_cache: true\nfail_on: high\n"
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Ignore == nil || *cfg.Ignore != "*.log,dist/**" {
		t.Fatalf("ignore = %v", cfg.Ignore)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 2048 {
		t.Fatalf("max_bytes = %v", cfg.MaxBytes)
	}
	if cfg.NoCache == nil || !*cfg.NoCache {
		t.Fatalf("no_cache = %v", cfg.NoCache)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "high" {
		t.Fatalf("fail_on = %v", cfg.FailOn)
	}
	if cfg.MaxDepth != nil {
		t.Fatalf("max_depth should be unset, got %v", *cfg.MaxDepth)
	}
}

func TestLoadLocalPrefersDotFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".secretsweep.yml"), []byte("max_depth: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "secretsweep.yml"), []byte("max_depth: 9\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 5 {
		t.Fatalf("expected dotfile to win, got %v", cfg.MaxDepth)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatal("expected error for missing local config")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(p, []byte(":\n\t- nope"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected YAML error")
	}
}
