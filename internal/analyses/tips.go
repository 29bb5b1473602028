package analyses

// TipGroup is one titled list of résumé tips.
type TipGroup struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// TipsResponse is the static body served by GET /check_ats.
type TipsResponse struct {
	Message string     `json:"message"`
	Tips    []TipGroup `json:"tips"`
}

var atsTips = TipsResponse{
	Message: "🔍 Amazon ATS (Applicant Tracking System) Test",
	Tips: []TipGroup{
		{
			Title: "Formatting Tips",
			Items: []string{
				"Use standard fonts (Arial, Calibri, Times New Roman)",
				"Save as PDF or DOCX (not JPEG or PNG)",
				"Avoid headers, footers, tables, and columns",
				"Use bullet points for easy scanning",
			},
		},
		{
			Title: "Content Tips",
			Items: []string{
				"Include job-specific keywords from description",
				"Quantify achievements with numbers and percentages",
				"Use both technical skills and soft skills",
				"Add complete contact information",
			},
		},
		{
			Title: "Amazon Specific Tips",
			Items: []string{
				"Include Leadership Principles examples",
				"Use STAR method for achievements",
				"Highlight customer obsession examples",
				"Show ownership and bias for action",
			},
		},
	},
}
