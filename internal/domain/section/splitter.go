package section

import "strings"

// Sections is the split of a job posting into scoring-relevant text.
// Cleaned is a filtered subsequence of FullText's lines. Required and
// Preferred hold the lines attributed to each classification; relevant lines
// with no explicit classification land in Required, since unstated
// requirements are more often mandatory than optional.
type Sections struct {
	Cleaned   string
	Required  string
	Preferred string
	FullText  string
}

// kind is the active section classification while scanning.
type kind int

const (
	kindNone kind = iota
	kindGeneral
	kindRequired
	kindPreferred
)

// minCleanedChars is the threshold under which header-based extraction is
// considered failed and the positional fallback takes over.
const minCleanedChars = 100

// Split parses a raw job posting into cleaned, required, and preferred text.
//
// The scan is line by line; blank lines are skipped without resetting state.
// An irrelevant marker (company/benefits/process vocabulary) starts a skipped
// region and drops the marker line itself. A relevant marker ends skipping,
// classifies the new section as required, preferred, or general, and the
// header line is kept. Irrelevant markers are checked first, so a line
// matching both is dropped.
//
// If the cleaned output ends up under minCleanedChars the whole extraction is
// discarded in favor of the middle-section positional fallback. If neither a
// required nor a preferred section was found, a secondary regex pass over the
// full text tries labeled requirement/preference blocks.
func Split(jobText string) Sections {
	var cleaned, required, preferred []string
	current := kindNone
	skipping := false
	inRelevant := false

	for _, line := range strings.Split(jobText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lower := strings.ToLower(strings.TrimSpace(line))

		if containsAny(lower, irrelevantMarkers) {
			skipping = true
			inRelevant = false
			continue
		}

		if containsAny(lower, relevantMarkers) {
			skipping = false
			inRelevant = true
			current = classify(lower)
		}

		if skipping || (!inRelevant && current == kindNone) {
			continue
		}

		cleaned = append(cleaned, line)
		switch current {
		case kindRequired, kindGeneral:
			required = append(required, line)
		case kindPreferred:
			preferred = append(preferred, line)
		case kindNone:
		}
	}

	s := Sections{
		Cleaned:   strings.Join(cleaned, "\n"),
		Required:  strings.Join(required, "\n"),
		Preferred: strings.Join(preferred, "\n"),
		FullText:  jobText,
	}

	if len(s.Cleaned) < minCleanedChars {
		s.Cleaned = middleSection(jobText)
		s.Required = s.Cleaned
	}

	if s.Required == "" && s.Preferred == "" {
		s.Required, s.Preferred = regexSections(jobText)
	}

	return s
}

// classify labels a relevant header line. Required indicators take priority
// over preferred ones; a header with neither is general.
func classify(lower string) kind {
	if containsAny(lower, requiredIndicators) {
		return kindRequired
	}
	if containsAny(lower, preferredIndicators) {
		return kindPreferred
	}
	return kindGeneral
}

func contains(line, marker string) bool {
	return strings.Contains(line, marker)
}
