package section

import (
	"strings"
	"testing"
)

const sampleJob = `About Us
We build widgets for the data industry.

Requirements:
5+ years of experience with Python and SQL
Strong knowledge of Docker and Kubernetes
Familiarity with PostgreSQL

Preferred Qualifications:
Familiarity with AWS
Terraform and Grafana knowledge

Benefits
Free snacks and unlimited vacation`

func TestSplit_SectionClassification(t *testing.T) {
	s := Split(sampleJob)

	if strings.Contains(s.Cleaned, "widgets") {
		t.Error("company pitch leaked into cleaned text")
	}
	if strings.Contains(s.Cleaned, "snacks") {
		t.Error("benefits section leaked into cleaned text")
	}
	if !strings.Contains(s.Cleaned, "Requirements:") {
		t.Error("relevant header line should be retained in cleaned text")
	}

	for _, line := range []string{"Python and SQL", "Docker and Kubernetes", "PostgreSQL"} {
		if !strings.Contains(s.Required, line) {
			t.Errorf("required text missing line %q", line)
		}
	}
	for _, line := range []string{"Familiarity with AWS", "Terraform and Grafana"} {
		if !strings.Contains(s.Preferred, line) {
			t.Errorf("preferred text missing line %q", line)
		}
		if strings.Contains(s.Required, line) {
			t.Errorf("preferred line %q leaked into required text", line)
		}
	}

	if s.FullText != sampleJob {
		t.Error("full text must be passed through unchanged")
	}
}

func TestSplit_RequiredAndPreferredLines(t *testing.T) {
	s := Split("Requirements:\nPython required\n\nPreferred:\nDocker nice to have")

	if !strings.Contains(s.Required, "Python required") {
		t.Error("Python line should be classified as required")
	}
	if !strings.Contains(s.Preferred, "Docker nice to have") {
		t.Error("Docker line should be classified as preferred")
	}
	if strings.Contains(s.Preferred, "Python required") {
		t.Error("required line leaked into preferred text")
	}
	if !strings.Contains(s.Cleaned, "Python required") || !strings.Contains(s.Cleaned, "Docker nice to have") {
		t.Error("cleaned text must contain both classified lines")
	}
}

func TestSplit_IrrelevantWinsOverRelevant(t *testing.T) {
	// "team" is an irrelevant marker, "requirements" a relevant one.
	// Irrelevant is checked first, so the line and its section are dropped.
	job := `Requirements:
Python and Kubernetes experience with production distributed systems at scale in regulated environments
Team requirements
We are a fun team that pairs daily`

	s := Split(job)

	if strings.Contains(s.Cleaned, "fun team") {
		t.Error("lines after an irrelevant marker should be skipped")
	}
	if strings.Contains(s.Cleaned, "Team requirements") {
		t.Error("the ambiguous marker line itself should be dropped")
	}
}

func TestSplit_BlankLinesDoNotResetState(t *testing.T) {
	job := `Requirements:
Solid grounding in Python and strong SQL fundamentals across analytical work

Deep production Kubernetes and Docker operations background over many years`

	s := Split(job)

	if !strings.Contains(s.Required, "Kubernetes and Docker") {
		t.Error("blank line should not end the required section")
	}
}

func TestSplit_ShortExtractionFallsBack(t *testing.T) {
	// No recognizable headers: extraction yields nothing, so the positional
	// middle-section fallback supplies cleaned and required text.
	lines := []string{
		"line one intro", "line two intro",
		"middle a", "middle b", "middle c", "middle d", "middle e", "middle f",
		"closing one", "closing two",
	}
	job := strings.Join(lines, "\n")

	s := Split(job)

	if s.Cleaned != s.Required {
		t.Error("fallback must use the middle section as both cleaned and required")
	}
	if strings.Contains(s.Cleaned, "line one intro") || strings.Contains(s.Cleaned, "closing two") {
		t.Error("fallback should drop the leading and trailing fifths")
	}
	if !strings.Contains(s.Cleaned, "middle a") || !strings.Contains(s.Cleaned, "middle f") {
		t.Error("fallback should keep the middle three-fifths")
	}
}

func TestMiddleSection_ShortTextReturnedWhole(t *testing.T) {
	text := "one\ntwo\nthree"
	if got := middleSection(text); got != text {
		t.Errorf("texts under 10 lines should be returned whole, got %q", got)
	}
}

func TestRegexSections_LabeledBlocks(t *testing.T) {
	text := "Intro paragraph\nMust have:\nPython\nSQL\nPreferred\nDocker\nTerraform"

	required, preferred := regexSections(text)

	if !strings.Contains(required, "Python") || !strings.Contains(required, "SQL") {
		t.Errorf("required block not captured, got %q", required)
	}
	if strings.Contains(required, "Docker") {
		t.Errorf("required block should stop at the preferred header, got %q", required)
	}
	if !strings.Contains(preferred, "Docker") || !strings.Contains(preferred, "Terraform") {
		t.Errorf("preferred block not captured, got %q", preferred)
	}
}

func TestRegexSections_UnmatchedCategoryStaysEmpty(t *testing.T) {
	required, preferred := regexSections("Requirements:\nPython\nSQL")

	if required == "" {
		t.Error("expected a required block")
	}
	if preferred != "" {
		t.Errorf("expected empty preferred block, got %q", preferred)
	}
}
