package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileConfigDefaults(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if got := f.TickInterval(); got != 10*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 10ms", got)
	}
	if f.Simulate() {
		t.Error("Simulate() = true, want false")
	}
	if f.StoreDir() == "" {
		t.Error("StoreDir() is empty")
	}
}

func TestFileConfigSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	f.SetStoreDir("/tmp/cal")
	f.SetTickInterval(25 * time.Millisecond)
	f.SetSimulate(true)
	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	g, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile (reload): %v", err)
	}
	if got := g.StoreDir(); got != "/tmp/cal" {
		t.Errorf("StoreDir() = %q, want /tmp/cal", got)
	}
	if got := g.TickInterval(); got != 25*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 25ms", got)
	}
	if !g.Simulate() {
		t.Error("Simulate() = false, want true")
	}
}

func TestFileConfigEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	// Empty file means all defaults.
	if got := f.TickInterval(); got != 10*time.Millisecond {
		t.Errorf("TickInterval() = %v, want 10ms", got)
	}
}

func TestFileConfigNonPositiveInterval(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	f.SetTickInterval(0)
	if got := f.TickInterval(); got != 10*time.Millisecond {
		t.Errorf("TickInterval() = %v, want fallback 10ms", got)
	}
}
