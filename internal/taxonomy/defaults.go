package taxonomy

var defaultEntries = map[Category][]string{
	TechnicalSkills: {
		// Programming languages
		"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin",
		"typescript", "go", "rust", "scala", "perl", "r", "matlab",

		// Web
		"html", "css", "react", "angular", "vue", "node.js", "express", "django",
		"flask", "spring", "bootstrap", "jquery", "ajax", "rest api", "graphql",

		// Databases
		"sql", "mysql", "postgresql", "mongodb", "oracle", "redis", "elasticsearch",
		"cassandra", "dynamodb", "firebase", "mariadb", "sqlite",

		// Cloud & DevOps
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes", "jenkins",
		"git", "github", "gitlab", "ci/cd", "terraform", "ansible", "puppet",
		"chef", "prometheus", "grafana", "elk stack",

		// Data & ML
		"machine learning", "deep learning", "ai", "artificial intelligence",
		"data science", "data analysis", "tensorflow", "pytorch", "keras",
		"pandas", "numpy", "scikit-learn", "opencv", "nlp", "llm",

		// Tools
		"jira", "confluence", "slack", "trello", "asana", "microsoft office",
		"excel", "powerpoint", "word", "outlook", "photoshop", "figma", "sketch",
		"tableau", "power bi", "looker", "sas", "spss",
	},
	SoftSkills: {
		"leadership", "teamwork", "communication", "problem solving",
		"critical thinking", "time management", "project management",
		"adaptability", "creativity", "collaboration", "analytical",
		"decision making", "conflict resolution", "negotiation",
		"presentation", "public speaking", "writing", "interpersonal",
		"emotional intelligence", "empathy", "patience", "mentoring",
		"coaching", "training", "customer service", "sales", "marketing",
	},
	ActionVerbs: {
		"developed", "managed", "created", "implemented", "designed",
		"led", "achieved", "improved", "increased", "reduced",
		"built", "coordinated", "established", "generated", "launched",
		"delivered", "executed", "facilitated", "guided", "handled",
		"initiated", "innovated", "introduced", "maintained", "monitored",
		"organized", "performed", "planned", "prioritized", "produced",
		"recommended", "resolved", "reviewed", "scheduled", "simplified",
		"streamlined", "strengthened", "supervised", "trained", "transformed",
		"updated", "validated", "wrote", "analyzed", "architected",
	},
	Education: {
		"bachelor", "master", "phd", "b.tech", "m.tech", "b.e.", "m.e.",
		"b.sc", "m.sc", "b.com", "m.com", "b.a.", "m.a.", "mba", "bca", "mca",
		"diploma", "certification", "degree", "university", "college",
		"gpa", "cgpa", "honors", "distinction", "merit", "scholarship",
	},
	Certifications: {
		"aws certified", "azure certified", "google certified", "pmp",
		"prince2", "scrum master", "csm", "psm", "safe", "itil",
		"ccna", "ccnp", "ceh", "cissp", "cisa", "cism",
		"comptia", "microsoft certified", "oracle certified", "salesforce",
		"tableau certified", "power bi certified", "six sigma", "lean",
	},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultEntries)
	if err != nil {
		panic("taxonomy: invalid built-in taxonomy: " + err.Error())
	}
	return t
}
