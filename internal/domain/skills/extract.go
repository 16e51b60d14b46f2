package skills

import "strings"

// Extract scans text against the taxonomy and returns the detected technical
// skills, education levels, and experience markers. Pure and deterministic:
// rerunning on the same text yields the same SkillSet, and each set lists
// terms in taxonomy declaration order.
func Extract(text string) SkillSet {
	lower := strings.ToLower(text)
	return SkillSet{
		Technical:  scan(lower, technicalTerms),
		Education:  scan(lower, educationTerms),
		Experience: scan(lower, experienceTerms),
	}
}

func scan(lower string, terms []term) Set {
	s := newSet()
	for _, t := range terms {
		if t.re.MatchString(lower) {
			s.add(t.text)
		}
	}
	return s
}
