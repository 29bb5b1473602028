package ats

import (
	"math"
	"strings"

	"resume-ats/internal/taxonomy"
)

// KeywordMatcher matches text against a taxonomy by case-insensitive
// substring containment. Short phrases such as "r" or "go" therefore match
// inside longer words.
type KeywordMatcher struct {
	tax *taxonomy.Taxonomy
}

// NewKeywordMatcher builds a matcher over tax.
func NewKeywordMatcher(tax *taxonomy.Taxonomy) *KeywordMatcher {
	return &KeywordMatcher{tax: tax}
}

// Match returns the found phrases per category in taxonomy order.
func (m *KeywordMatcher) Match(text string) KeywordMatch {
	lower := strings.ToLower(text)
	out := KeywordMatch{
		Found:       make(map[taxonomy.Category][]string, len(taxonomy.Categories)),
		Percentages: make(map[taxonomy.Category]float64, len(taxonomy.Categories)),
	}
	for _, cat := range taxonomy.Categories {
		phrases := m.tax.Phrases(cat)
		found := []string{}
		for _, p := range phrases {
			if strings.Contains(lower, p) {
				found = append(found, p)
			}
		}
		out.Found[cat] = found
		out.Percentages[cat] = percent(len(found), len(phrases))
		out.TotalFound += len(found)
		out.TotalPossible += len(phrases)
	}
	return out
}

// Counts summarizes the match per category.
func (k KeywordMatch) Counts() KeywordCounts {
	return KeywordCounts{
		Total:          k.TotalFound,
		Technical:      len(k.Found[taxonomy.TechnicalSkills]),
		Soft:           len(k.Found[taxonomy.SoftSkills]),
		Actions:        len(k.Found[taxonomy.ActionVerbs]),
		Education:      len(k.Found[taxonomy.Education]),
		Certifications: len(k.Found[taxonomy.Certifications]),
	}
}

// Score is the overall keyword percentage across every category.
func (k KeywordMatch) Score() float64 {
	return percent(k.TotalFound, k.TotalPossible)
}

func percent(found, possible int) float64 {
	if possible == 0 {
		return 0
	}
	return round1(float64(found) / float64(possible) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
