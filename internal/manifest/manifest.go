// Package manifest loads prompt entries from a YAML file, so a fixed set of
// variables can be declared once instead of repeated on the command line.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MPLew-is/prompt-env/internal/entry"
)

// File is the on-disk manifest format.
type File struct {
	Prompts []Prompt `yaml:"prompts"`
}

// Prompt declares one variable to collect. Prompt defaults to Name when
// omitted, mirroring the command-line form.
type Prompt struct {
	Name   string `yaml:"name"`
	Prompt string `yaml:"prompt"`
	Secure bool   `yaml:"secure"`
}

// Load reads a manifest and converts it to the same entries the argument
// parser produces.
func Load(path string) ([]entry.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m File
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	entries := make([]entry.Entry, 0, len(m.Prompts))
	for i, p := range m.Prompts {
		if p.Name == "" {
			return nil, fmt.Errorf("manifest %s: prompt %d has no name", path, i)
		}
		label := p.Prompt
		if label == "" {
			label = p.Name
		}
		entries = append(entries, entry.Entry{Prompt: label, Name: p.Name, Secure: p.Secure})
	}
	return entries, nil
}
