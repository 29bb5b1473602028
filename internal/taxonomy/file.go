package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML document mapping category names to phrase lists:
//
//	technical_skills:
//	  - python
//	  - go
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML taxonomy document.
func Parse(data []byte) (*Taxonomy, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode taxonomy yaml: %w", err)
	}
	entries := make(map[Category][]string, len(raw))
	for name, phrases := range raw {
		entries[Category(name)] = phrases
	}
	return New(entries)
}
