package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CorpusManifest describes the fixed document this service answers from.
// It lives next to the binary as corpus.yaml so deployments can swap the
// asset path without a rebuild.
type CorpusManifest struct {
	Document struct {
		Name      string `yaml:"name"`
		Path      string `yaml:"path"`
		StartPage int    `yaml:"start_page"`
	} `yaml:"document"`
	Collection string `yaml:"collection"`
}

func LoadCorpusManifest(path string) (CorpusManifest, error) {
	var manifest CorpusManifest

	data, err := os.ReadFile(path)
	if err != nil {
		return manifest, fmt.Errorf("reading corpus manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("parsing corpus manifest: %w", err)
	}

	if manifest.Document.Path == "" {
		return manifest, fmt.Errorf("corpus manifest %s has no document path", path)
	}
	if manifest.Document.Name == "" {
		manifest.Document.Name = manifest.Document.Path
	}
	if manifest.Document.StartPage < 1 {
		manifest.Document.StartPage = 1
	}
	if manifest.Collection == "" {
		manifest.Collection = VerseCollectionName
	}

	return manifest, nil
}
