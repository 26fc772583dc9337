package prompt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadPackPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	body := `
sections:
  - writer: "Custom writer for section one."
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack failed: %v", err)
	}

	w, _ := reg.WriterInstruction(0)
	if w != "Custom writer for section one." {
		t.Errorf("writer override not applied: %q", w)
	}
	// Unspecified fields fall back positionally.
	rv, _ := reg.ReviewerInstruction(0)
	if !strings.Contains(rv, "Review Section 1") {
		t.Errorf("reviewer fallback missing: %q", rv)
	}
	name, _ := reg.SectionName(0)
	if name != defaultSections[0].Name {
		t.Errorf("name fallback missing: %q", name)
	}
	if reg.AssembleInstruction() != defaultAssembleInstruction {
		t.Error("assemble fallback missing")
	}
}

func TestLoadPackEmptyFileIsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadPack(path)
	if err != nil {
		t.Fatalf("LoadPack failed: %v", err)
	}
	if reg.Count() != Default().Count() {
		t.Errorf("empty pack should mirror the defaults, got %d sections", reg.Count())
	}
}

func TestLoadPackMissingFile(t *testing.T) {
	if _, err := LoadPack(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing pack")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}

	holder := NewHolder(Default())
	w, err := NewWatcher(path, holder)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	body := `
sections:
  - writer: "Reloaded writer."
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		wInst, _ := holder.Get().WriterInstruction(0)
		if wInst == "Reloaded writer." {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Error("pack was not reloaded after write")
}
