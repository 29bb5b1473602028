package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// Category names one scoring taxonomy.
type Category string

const (
	TechnicalSkills Category = "technical_skills"
	SoftSkills      Category = "soft_skills"
	ActionVerbs     Category = "action_verbs"
	Education       Category = "education_keywords"
	Certifications  Category = "certifications"
)

// Categories lists every category in scoring order.
var Categories = []Category{TechnicalSkills, SoftSkills, ActionVerbs, Education, Certifications}

var (
	ErrMissingCategory = errors.New("taxonomy category missing")
	ErrEmptyCategory   = errors.New("taxonomy category empty")
	ErrUnknownCategory = errors.New("unknown taxonomy category")
)

// Taxonomy is an immutable, ordered set of lowercase phrases per category.
// It is built once at startup and shared read-only across requests.
type Taxonomy struct {
	phrases map[Category][]string
}

// New validates and normalizes entries into a Taxonomy. Phrases are trimmed and
// lowercased; duplicates within a category are dropped keeping first position.
func New(entries map[Category][]string) (*Taxonomy, error) {
	for cat := range entries {
		if !IsKnown(cat) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, cat)
		}
	}

	out := make(map[Category][]string, len(Categories))
	for _, cat := range Categories {
		raw, ok := entries[cat]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingCategory, cat)
		}
		seen := make(map[string]bool, len(raw))
		phrases := make([]string, 0, len(raw))
		for _, p := range raw {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			phrases = append(phrases, p)
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, cat)
		}
		out[cat] = phrases
	}
	return &Taxonomy{phrases: out}, nil
}

// IsKnown reports whether cat is one of the fixed categories.
func IsKnown(cat Category) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Phrases returns a copy of the category's phrases in taxonomy order.
func (t *Taxonomy) Phrases(cat Category) []string {
	return append([]string(nil), t.phrases[cat]...)
}

// Size returns the number of phrases in a category.
func (t *Taxonomy) Size(cat Category) int {
	return len(t.phrases[cat])
}

// Total returns the number of phrases across all categories.
func (t *Taxonomy) Total() int {
	n := 0
	for _, cat := range Categories {
		n += len(t.phrases[cat])
	}
	return n
}

// Sample returns up to n leading phrases of a category.
func (t *Taxonomy) Sample(cat Category, n int) []string {
	phrases := t.phrases[cat]
	if n > len(phrases) {
		n = len(phrases)
	}
	if n < 0 {
		n = 0
	}
	return append([]string(nil), phrases[:n]...)
}

// Entries returns a deep copy of the taxonomy contents.
func (t *Taxonomy) Entries() map[Category][]string {
	out := make(map[Category][]string, len(t.phrases))
	for cat, phrases := range t.phrases {
		out[cat] = append([]string(nil), phrases...)
	}
	return out
}
