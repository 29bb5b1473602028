package ats

import "strings"

// Contact bonuses. They are independent and additive.
const (
	emailBonus      = 3
	phoneBonus      = 3
	linkedInBonus   = 2
	gitHubBonus     = 2
	linkedInQRBonus = 2
	gitHubQRBonus   = 2
	qrCodeBonus     = 1
)

// Weights applied by ComposeScore. They do not normalize to 100.
const (
	keywordWeight = 0.7
	contactWeight = 2.0
	lengthWeight  = 0.5
)

// ContactScore sums the fixed bonuses earned by info.
func ContactScore(info ContactInfo) int {
	score := 0
	if len(info.Email) > 0 {
		score += emailBonus
	}
	if len(info.Phone) > 0 {
		score += phoneBonus
	}
	if info.LinkedIn {
		score += linkedInBonus
	}
	if info.GitHub {
		score += gitHubBonus
	}
	if info.LinkedInQR {
		score += linkedInQRBonus
	}
	if info.GitHubQR {
		score += gitHubQRBonus
	}
	if info.QRCodeMentioned {
		score += qrCodeBonus
	}
	return score
}

// LengthScore buckets a word count. Résumés over 800 words score below the
// 600-800 bucket.
func LengthScore(words int) int {
	switch {
	case words < 300:
		return 2
	case words < 400:
		return 5
	case words < 600:
		return 8
	case words < 800:
		return 10
	default:
		return 7
	}
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ComposeScore combines the component scores into a ScoreBreakdown.
func ComposeScore(kw KeywordMatch, contact ContactInfo, achievements AchievementInfo, words int) ScoreBreakdown {
	s := ScoreBreakdown{
		KeywordScore:     kw.Score(),
		ContactScore:     ContactScore(contact),
		LengthScore:      LengthScore(words),
		AchievementScore: achievements.Score,
	}
	s.FinalScore = round1(s.KeywordScore*keywordWeight +
		float64(s.ContactScore)*contactWeight +
		float64(s.LengthScore)*lengthWeight +
		float64(s.AchievementScore))
	return s
}
