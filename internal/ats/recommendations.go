package ats

// MaxRecommendations caps the recommendation list.
const MaxRecommendations = 7

// RecommendationInput is everything the rules inspect.
type RecommendationInput struct {
	Scores       ScoreBreakdown
	Counts       KeywordCounts
	Contact      ContactInfo
	Achievements AchievementInfo
	WordCount    int
}

type recommendationRule func(RecommendationInput) (Recommendation, bool)

// Rule order is the output order. Once MaxRecommendations rules fire, the
// later ones (education, certifications) are dropped.
var recommendationRules = []recommendationRule{
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Technical Skills",
			Priority: PriorityHigh,
			Message:  "Add more technical skills relevant to your target role. Include programming languages, frameworks, and tools.",
			Examples: []string{"Python", "Java", "SQL", "AWS", "Docker", "React"},
		}, in.Counts.Technical < 5
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Soft Skills",
			Priority: PriorityMedium,
			Message:  "Include soft skills that employers look for.",
			Examples: []string{"Leadership", "Communication", "Problem Solving", "Teamwork"},
		}, in.Counts.Soft < 3
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Action Verbs",
			Priority: PriorityHigh,
			Message:  "Use strong action verbs to describe your achievements.",
			Examples: []string{"Developed", "Managed", "Implemented", "Led", "Achieved"},
		}, in.Counts.Actions < 5
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Contact Info",
			Priority: PriorityCritical,
			Message:  "Add your email address to your resume.",
			Examples: []string{"your.name@email.com"},
		}, len(in.Contact.Email) == 0
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Contact Info",
			Priority: PriorityHigh,
			Message:  "Include a phone number for recruiters to contact you.",
			Examples: []string{"+91 98765 43210"},
		}, len(in.Contact.Phone) == 0
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Professional Links",
			Priority: PriorityMedium,
			Message:  "Add your LinkedIn profile URL or a QR code linking to it.",
			Examples: []string{"linkedin.com/in/yourprofile"},
		}, !in.Contact.LinkedIn
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Professional Links",
			Priority: PriorityLow,
			Message:  "Add your GitHub profile to showcase your work.",
			Examples: []string{"github.com/yourusername"},
		}, !in.Contact.GitHub
	},
	func(in RecommendationInput) (Recommendation, bool) {
		if in.Achievements.Count == 0 {
			return Recommendation{
				Category: "Achievements",
				Priority: PriorityHigh,
				Message:  "Add an achievements section with awards, rankings, or measurable results.",
				Examples: []string{"Won 1st prize in a national hackathon", "Ranked #5 out of 200 participants", "Achieved 40% faster load times"},
			}, true
		}
		return Recommendation{
			Category: "Achievements",
			Priority: PriorityMedium,
			Message:  "List more achievements to strengthen your profile.",
			Examples: []string{"Awards", "Competition rankings", "Quantified results"},
		}, in.Achievements.Count < 3
	},
	func(in RecommendationInput) (Recommendation, bool) {
		if in.WordCount < 300 {
			return Recommendation{
				Category: "Resume Length",
				Priority: PriorityMedium,
				Message:  "Your resume is too short. Add more details about your experience and achievements.",
				Examples: []string{"Add project descriptions", "Include more responsibilities", "Quantify achievements"},
			}, true
		}
		return Recommendation{
			Category: "Resume Length",
			Priority: PriorityLow,
			Message:  "Your resume is long. Consider making it more concise (target 500-800 words).",
			Examples: []string{"Remove outdated experience", "Consolidate similar points"},
		}, in.WordCount > 1000
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Education",
			Priority: PriorityMedium,
			Message:  "Highlight your education section better.",
			Examples: []string{"Degree name", "University", "Graduation year", "GPA if >3.5"},
		}, in.Counts.Education < 2
	},
	func(in RecommendationInput) (Recommendation, bool) {
		return Recommendation{
			Category: "Certifications",
			Priority: PriorityLow,
			Message:  "Consider adding relevant certifications to stand out.",
			Examples: []string{"AWS Certified", "PMP", "Scrum Master", "Google Analytics"},
		}, in.Counts.Certifications < 1
	},
}

// GenerateRecommendations evaluates every rule in order and keeps the first
// MaxRecommendations that apply.
func GenerateRecommendations(in RecommendationInput) []Recommendation {
	out := make([]Recommendation, 0, MaxRecommendations)
	for _, rule := range recommendationRules {
		rec, ok := rule(in)
		if !ok {
			continue
		}
		out = append(out, rec)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}
