package files

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestExpand_DoubleStar(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.json"))
	touch(t, filepath.Join(dir, "2029", "b.json"))
	touch(t, filepath.Join(dir, "2029", "c.csv"))

	got, err := Expand([]string{filepath.Join(dir, "**", "*.json")})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	want := []string{filepath.Join(dir, "2029", "b.json"), filepath.Join(dir, "a.json")}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestExpand_PlainPathsAndDuplicates(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.csv")
	touch(t, p)
	got, err := Expand([]string{p, "missing.json", filepath.Join(dir, "*.csv")})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(got) != 2 || got[0] != p || got[1] != "missing.json" {
		t.Fatalf("unexpected expansion: %v", got)
	}
}

func TestExpand_NoMatch(t *testing.T) {
	_, err := Expand([]string{filepath.Join(t.TempDir(), "*.json")})
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}
