package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFallbackDefaults(t *testing.T) {
	r, err := LoadFromFile("")
	if err != nil {
		t.Fatalf("LoadFromFile(\"\"): %v", err)
	}

	d := r.Defaults()
	if d.Currency != "USD" {
		t.Errorf("currency = %q, want USD", d.Currency)
	}
	want := []string{"UBER", "CABIFY", "BOLT", "TAXXILO"}
	if len(d.EnabledPlatforms) != len(want) {
		t.Fatalf("platforms = %v, want %v", d.EnabledPlatforms, want)
	}
	for i := range want {
		if d.EnabledPlatforms[i] != want[i] {
			t.Errorf("platform %d = %q, want %q", i, d.EnabledPlatforms[i], want[i])
		}
	}
	if len(d.CustomPlatforms) != 0 {
		t.Errorf("custom platforms = %v, want empty", d.CustomPlatforms)
	}
}

func TestLoadFromFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.json")
	content := `{"currency":"EUR","enabled_platforms":["FREENOW","BOLT"]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	r, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}

	d := r.Defaults()
	if d.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", d.Currency)
	}
	if len(d.EnabledPlatforms) != 2 || d.EnabledPlatforms[0] != "FREENOW" {
		t.Errorf("platforms = %v", d.EnabledPlatforms)
	}
	if d.CustomPlatforms == nil {
		t.Error("custom platforms should default to empty, not nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing defaults file")
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	r := NewRegistry()
	d := r.Defaults()
	d.EnabledPlatforms[0] = "MUTATED"

	if r.Defaults().EnabledPlatforms[0] == "MUTATED" {
		t.Error("Defaults leaked a shared slice")
	}
}
