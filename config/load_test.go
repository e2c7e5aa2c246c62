package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadBytesOverlaysNamedKeys(t *testing.T) {
	t.Cleanup(Reset)

	doc := []byte(`
player:
  max_jumps: 3
hearts:
  respawn_delay: 1s
`)
	if err := LoadBytes(doc); err != nil {
		t.Fatalf("LoadBytes: %v", err)
	}
	if Player.MaxJumps != 3 {
		t.Errorf("MaxJumps = %d, want 3", Player.MaxJumps)
	}
	if Hearts.RespawnDelay != time.Second {
		t.Errorf("RespawnDelay = %s, want 1s", Hearts.RespawnDelay)
	}
	if Player.MoveSpeed != 220 || Hearts.Max != 3 {
		t.Errorf("untouched keys changed: move_speed=%g hearts.max=%d", Player.MoveSpeed, Hearts.Max)
	}
}

func TestLoadBytesRejectsInvalidValues(t *testing.T) {
	t.Cleanup(Reset)

	tests := []struct {
		name string
		doc  string
	}{
		{"no jumps", "player:\n  max_jumps: 0\n"},
		{"no hearts", "hearts:\n  max: 0\n"},
		{"blend above one", "ladder:\n  snap_blend: 1.5\n"},
		{"zero frame", "window:\n  frame_delta: 0s\n"},
		{"not yaml", "player: [\n"},
	}
	for _, tt := range tests {
		if err := LoadBytes([]byte(tt.doc)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
	if Player.MaxJumps != 2 || Hearts.Max != 3 || Ladder.SnapBlend != 0.25 {
		t.Error("a rejected document must leave the globals untouched")
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	t.Cleanup(Reset)

	if err := LoadBytes(defaultTuningYAML); err != nil {
		t.Fatalf("embedded tuning: %v", err)
	}
	if C.FrameDelta != time.Second/60 {
		t.Errorf("FrameDelta = %s", C.FrameDelta)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  gravity: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	used, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if used != path || Physics.Gravity != 500 {
		t.Errorf("used=%s gravity=%g", used, Physics.Gravity)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("a missing explicit file is an error")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("player:\n  max_jumps: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("player:\n  max_jumps: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if abs, _ := filepath.Abs(path); got != abs && got != path {
			t.Errorf("event for %s, want %s", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event for the tuning file")
	}

	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Events is closed once the loop exits, so draining terminates.
	for range w.Events {
	}
}
