package ats

// RatingFor maps a final score to its label and description.
func RatingFor(score float64) Rating {
	switch {
	case score >= 90:
		return Rating{Label: "Excellent", Description: "🎯 Top 5% Resume"}
	case score >= 80:
		return Rating{Label: "Very Good", Description: "📈 Strong Contender"}
	case score >= 70:
		return Rating{Label: "Good", Description: "👍 Above Average"}
	case score >= 60:
		return Rating{Label: "Average", Description: "📊 Needs Optimization"}
	case score >= 50:
		return Rating{Label: "Below Average", Description: "⚠️ Improve Keywords"}
	default:
		return Rating{Label: "Poor", Description: "❌ Major Changes Needed"}
	}
}
