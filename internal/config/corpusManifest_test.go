package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCorpusManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")

	content := `document:
  name: Bhagavad-gita As It Is
  path: assets/11-Bhagavad-gita_As_It_Is.pdf
  start_page: 10
collection: gita-verses
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	manifest, err := LoadCorpusManifest(path)
	if err != nil {
		t.Fatalf("LoadCorpusManifest failed: %v", err)
	}

	if manifest.Document.Name != "Bhagavad-gita As It Is" {
		t.Errorf("Name got %q", manifest.Document.Name)
	}
	if manifest.Document.StartPage != 10 {
		t.Errorf("StartPage got %d, want 10", manifest.Document.StartPage)
	}
	if manifest.Collection != "gita-verses" {
		t.Errorf("Collection got %q", manifest.Collection)
	}
}

func TestLoadCorpusManifest_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.yaml")

	content := `document:
  path: gita.pdf
  start_page: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	manifest, err := LoadCorpusManifest(path)
	if err != nil {
		t.Fatalf("LoadCorpusManifest failed: %v", err)
	}

	if manifest.Document.Name != "gita.pdf" {
		t.Errorf("Name should default to path, got %q", manifest.Document.Name)
	}
	if manifest.Document.StartPage != 1 {
		t.Errorf("StartPage should normalize to 1, got %d", manifest.Document.StartPage)
	}
	if manifest.Collection != VerseCollectionName {
		t.Errorf("Collection should default to %q, got %q", VerseCollectionName, manifest.Collection)
	}
}

func TestLoadCorpusManifest_Errors(t *testing.T) {
	if _, err := LoadCorpusManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yaml")
	os.WriteFile(empty, []byte("collection: x\n"), 0644)
	if _, err := LoadCorpusManifest(empty); err == nil {
		t.Error("expected error for manifest without document path")
	}
}
