package match

import "strings"

const maxSuggestedSkills = 5

// Suggestions turns missing and matched skill lists into actionable resume
// advice. Always returns at least one entry.
func Suggestions(missing, matched []string) []string {
	var out []string

	if len(missing) > 0 {
		top := missing
		if len(top) > maxSuggestedSkills {
			top = top[:maxSuggestedSkills]
		}
		out = append(out, "Add these key skills to your resume: "+strings.Join(top, ", "))
	}

	if len(matched) < 5 {
		out = append(out, "Expand your technical skills section with more specific tools and frameworks")
	}

	missingSet := make(map[string]struct{}, len(missing))
	for _, s := range missing {
		missingSet[s] = struct{}{}
	}
	has := func(skills ...string) bool {
		for _, s := range skills {
			if _, ok := missingSet[s]; ok {
				return true
			}
		}
		return false
	}

	if has("python") {
		out = append(out, "Python is highly valued - add Python projects to your experience section")
	}
	if has("aws", "azure", "gcp", "google cloud") {
		out = append(out, "Consider getting cloud platform experience (AWS/Azure/GCP)")
	}
	if has("docker", "kubernetes", "k8s") {
		out = append(out, "Container technologies (Docker/Kubernetes) are in high demand")
	}
	if has("llm", "llms", "generative ai", "genai") {
		out = append(out, "Generative AI skills are trending - consider adding LLM experience")
	}

	if len(out) == 0 {
		out = append(out, "Strong skill match! Consider highlighting achievements and quantifiable impact")
	}

	return out
}
