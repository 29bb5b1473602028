package ats

import (
	"regexp"
	"strings"
)

var (
	sectionHeaderKeywords = []string{"achievement", "award", "honor", "recognition"}

	achievementKeywords = []string{
		"achievement", "award", "honor", "honour", "recognition",
		"won", "winner", "prize", "rank", "medal", "secured",
	}

	competingSectionKeywords = []string{"skill", "education", "project", "experience"}

	bulletGlyphs = []string{"•", "●", "▪", "◦", "■", "➢", "►", "✓", "-", "*"}

	achievementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`secured\s+[^.\n]{0,40}?rank`),
		regexp.MustCompile(`won\s+[^.\n]{0,40}?(prize|award|medal|place|competition|hackathon)`),
		regexp.MustCompile(`achieved\s+\d+`),
		regexp.MustCompile(`ranked\s+#?\d+`),
		regexp.MustCompile(`\b(1st|2nd|3rd|first|second|third)\s+(place|prize|position|rank)`),
		regexp.MustCompile(`winner\s+of`),
	}
)

// headerMaxWords is the word count below which a keyword line is treated as a
// section header even without a colon.
const headerMaxWords = 8

// AchievementExtractor finds achievement evidence in résumé text.
type AchievementExtractor struct{}

// NewAchievementExtractor returns an AchievementExtractor.
func NewAchievementExtractor() *AchievementExtractor {
	return &AchievementExtractor{}
}

// Extract runs three passes and sums their counts: a line-oriented section
// scan, a whole-text pattern scan, and a bullet-line scan.
//
// Counts are not deduplicated across passes: a bullet captured by the section
// scan can also match a pattern and be counted twice.
func (e *AchievementExtractor) Extract(text string) AchievementInfo {
	acc := &achievementAccumulator{list: []string{}, seen: make(map[string]bool)}
	lines := strings.Split(text, "\n")

	acc.scanSection(lines)
	acc.count += countPatternMatches(strings.ToLower(text))
	acc.scanBullets(lines)

	return AchievementInfo{
		HasAchievements: acc.count > 0,
		Count:           acc.count,
		List:            acc.list,
		Score:           AchievementScore(acc.count),
	}
}

// AchievementScore buckets an achievement count.
func AchievementScore(count int) int {
	switch {
	case count >= 3:
		return 10
	case count == 2:
		return 7
	case count == 1:
		return 4
	default:
		return 0
	}
}

type achievementAccumulator struct {
	list  []string
	seen  map[string]bool
	count int
}

func (a *achievementAccumulator) add(line string) {
	if a.seen[line] {
		return
	}
	a.seen[line] = true
	a.list = append(a.list, line)
	a.count++
}

func (a *achievementAccumulator) scanSection(lines []string) {
	inSection := false
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if !inSection {
			if containsAny(lower, sectionHeaderKeywords) &&
				(strings.Contains(line, ":") || len(strings.Fields(line)) < headerMaxWords) {
				inSection = true
			}
			continue
		}
		if containsAny(lower, competingSectionKeywords) {
			inSection = false
			continue
		}
		if containsAny(lower, achievementKeywords) || hasBullet(line) {
			a.add(line)
		}
	}
}

func (a *achievementAccumulator) scanBullets(lines []string) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if !hasBullet(line) {
			continue
		}
		if containsAny(strings.ToLower(line), achievementKeywords) {
			a.add(line)
		}
	}
}

func countPatternMatches(lower string) int {
	n := 0
	for _, re := range achievementPatterns {
		n += len(re.FindAllStringIndex(lower, -1))
	}
	return n
}

func hasBullet(line string) bool {
	for _, g := range bulletGlyphs {
		if strings.HasPrefix(line, g) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
