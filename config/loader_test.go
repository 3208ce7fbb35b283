package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
connections:
  - start: Waldfriedhof
    destination: Marienplatz
    walk_to_start: 5m
  - start: Marienplatz
    destination: Garching
    walk_to_start: 10m
    ignore_starting_with: ["S2", "947"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Connections) != 2 {
		t.Fatalf("got %d connections, want 2", len(cfg.Connections))
	}
	first := cfg.Connections[0]
	if first.Start != "Waldfriedhof" || first.Destination != "Marienplatz" {
		t.Errorf("got %+v", first)
	}
	if first.WalkToStart.Std() != 5*time.Minute {
		t.Errorf("got walk %v, want 5m", first.WalkToStart)
	}
	if len(first.IgnoreStartingWith) != 0 {
		t.Errorf("got ignore list %v, want empty", first.IgnoreStartingWith)
	}
	second := cfg.Connections[1]
	if len(second.IgnoreStartingWith) != 2 || second.IgnoreStartingWith[0] != "S2" {
		t.Errorf("got ignore list %v, want [S2 947]", second.IgnoreStartingWith)
	}
}

func TestLoadRejectsMissingDestination(t *testing.T) {
	path := writeConfig(t, `
connections:
  - start: Waldfriedhof
    walk_to_start: 5m
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load accepted a connection without a destination")
	}
	if !strings.Contains(err.Error(), "invalid connection") {
		t.Errorf("got error %v, want a validation error", err)
	}
}

func TestLoadRejectsEmptyConnectionList(t *testing.T) {
	path := writeConfig(t, "connections: []\n")
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an empty connection list")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("Load succeeded on a missing file")
	}
}
