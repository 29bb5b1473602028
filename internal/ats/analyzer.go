package ats

import "resume-ats/internal/taxonomy"

// Sample sizes returned alongside every report.
var sampleSizes = map[taxonomy.Category]int{
	taxonomy.TechnicalSkills: 10,
	taxonomy.SoftSkills:      8,
	taxonomy.ActionVerbs:     10,
}

// Analyzer runs the scoring pipeline over extracted résumé text. It holds only
// read-only state and is safe for concurrent use.
type Analyzer struct {
	tax          *taxonomy.Taxonomy
	keywords     *KeywordMatcher
	contacts     *ContactExtractor
	achievements *AchievementExtractor
}

// NewAnalyzer wires the extractors around tax and the phone strategy.
func NewAnalyzer(tax *taxonomy.Taxonomy, phones PhoneStrategy) *Analyzer {
	return &Analyzer{
		tax:          tax,
		keywords:     NewKeywordMatcher(tax),
		contacts:     NewContactExtractor(phones),
		achievements: NewAchievementExtractor(),
	}
}

// Analyze scores text and builds the full report.
func (a *Analyzer) Analyze(text string) Report {
	kw := a.keywords.Match(text)
	contact := a.contacts.Extract(text)
	achievements := a.achievements.Extract(text)
	words := WordCount(text)

	scores := ComposeScore(kw, contact, achievements, words)
	rating := RatingFor(scores.FinalScore)
	counts := kw.Counts()

	samples := make(map[taxonomy.Category][]string, len(sampleSizes))
	for cat, n := range sampleSizes {
		samples[cat] = a.tax.Sample(cat, n)
	}

	return Report{
		ScoreBreakdown:    scores,
		CategoryScores:    kw.Percentages,
		FoundKeywords:     kw.Found,
		KeywordCounts:     counts,
		ContactInfo:       contact,
		Achievements:      achievements,
		WordCount:         words,
		Rating:            rating.Label,
		RatingDescription: rating.Description,
		Recommendations: GenerateRecommendations(RecommendationInput{
			Scores:       scores,
			Counts:       counts,
			Contact:      contact,
			Achievements: achievements,
			WordCount:    words,
		}),
		SampleKeywords: samples,
	}
}
