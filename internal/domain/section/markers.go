package section

// Marker phrases drive the line classifier. They are evaluated as a
// prioritized rule list: irrelevant markers first (the line is dropped),
// then relevant markers (the line opens a section and is kept).

var relevantMarkers = []string{
	"responsibilities", "requirements", "qualifications", "required", "require",
	"preferred", "skills", "experience", "education", "what you'll do",
	"what you will do", "what you need", "you will", "must have",
	"should have", "nice to have", "technical skills", "key responsibilities",
	"core responsibilities", "essential", "desired", "minimum qualifications",
	"basic qualifications", "preferred qualifications", "technical requirements",
	"role requirements", "job requirements", "candidate profile",
}

var irrelevantMarkers = []string{
	"about us", "about the company", "company overview", "who we are", "our mission",
	"our values", "our culture", "why work here", "why join",
	"benefits", "compensation", "salary", "perks", "what we offer", "package",
	"equal opportunity", "eeo", "diversity", "application process", "apply now",
	"how to apply", "contact", "location details", "office location",
	"company description", "about the role", "team", "our team",
}

var requiredIndicators = []string{
	"required", "must have", "must-have", "essential", "mandatory", "minimum",
	"basic qualifications", "minimum qualifications", "requirements:",
	"required qualifications", "required skills", "you must", "you will need",
}

var preferredIndicators = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "plus", "desired",
	"ideal", "preferred qualifications", "preferred skills", "would be a plus",
	"it would be great if", "we'd love if", "additional", "optional",
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if contains(line, m) {
			return true
		}
	}
	return false
}
