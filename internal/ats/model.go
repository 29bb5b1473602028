package ats

import "resume-ats/internal/taxonomy"

// ContactInfo holds what the contact extractor found in a résumé.
type ContactInfo struct {
	Email           []string `json:"email"`
	Phone           []string `json:"phone"`
	LinkedIn        bool     `json:"linkedin"`
	GitHub          bool     `json:"github"`
	Portfolio       bool     `json:"portfolio"`
	LinkedInQR      bool     `json:"linkedin_qr"`
	GitHubQR        bool     `json:"github_qr"`
	QRCodeMentioned bool     `json:"qr_code"`
}

// AchievementInfo summarizes achievement evidence. List keeps scan order.
type AchievementInfo struct {
	HasAchievements bool     `json:"has_achievements"`
	Count           int      `json:"count"`
	List            []string `json:"list"`
	Score           int      `json:"score"`
}

// KeywordMatch is the per-category result of matching text against a taxonomy.
type KeywordMatch struct {
	Found         map[taxonomy.Category][]string
	Percentages   map[taxonomy.Category]float64
	TotalFound    int
	TotalPossible int
}

// KeywordCounts mirrors the found counts per category.
type KeywordCounts struct {
	Total          int `json:"total"`
	Technical      int `json:"technical"`
	Soft           int `json:"soft"`
	Actions        int `json:"actions"`
	Education      int `json:"education"`
	Certifications int `json:"certifications"`
}

// ScoreBreakdown is the composed score and its components.
type ScoreBreakdown struct {
	FinalScore       float64 `json:"final_score"`
	KeywordScore     float64 `json:"keyword_score"`
	ContactScore     int     `json:"contact_score"`
	LengthScore      int     `json:"length_score"`
	AchievementScore int     `json:"achievement_score"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Recommendation is one improvement suggestion.
type Recommendation struct {
	Category string   `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Examples []string `json:"examples"`
}

// Rating is the discrete label for a final score.
type Rating struct {
	Label       string
	Description string
}

// Report is the full analysis of one résumé.
type Report struct {
	ScoreBreakdown
	CategoryScores    map[taxonomy.Category]float64  `json:"category_scores"`
	FoundKeywords     map[taxonomy.Category][]string `json:"found_keywords"`
	KeywordCounts     KeywordCounts                  `json:"keyword_counts"`
	ContactInfo       ContactInfo                    `json:"contact_info"`
	Achievements      AchievementInfo                `json:"achievements"`
	WordCount         int                            `json:"word_count"`
	Rating            string                         `json:"rating"`
	RatingDescription string                         `json:"rating_description"`
	Recommendations   []Recommendation               `json:"recommendations"`
	SampleKeywords    map[taxonomy.Category][]string `json:"sample_keywords"`
}
