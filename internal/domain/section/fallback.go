package section

import (
	"regexp"
	"strings"
)

// middleSection keeps the middle three-fifths of non-blank lines. Requirements
// usually sit in the middle of a posting, between the company pitch and the
// benefits/apply boilerplate. Short texts are returned whole.
func middleSection(text string) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	if len(lines) < 10 {
		return text
	}

	start := len(lines) / 5
	end := len(lines) - len(lines)/5
	return strings.Join(lines[start:end], "\n")
}

// blockRule locates a labeled block: header marks where the block starts,
// stop marks where it ends (end of text when stop never matches).
type blockRule struct {
	header *regexp.Regexp
	stop   *regexp.Regexp
}

var requiredBlockRules = []blockRule{
	{
		header: regexp.MustCompile(`(?i)(?:required|must have|minimum|essential|basic qualifications?)[\s:]*\n`),
		stop:   regexp.MustCompile(`(?i)\n(?:preferred|nice to have|bonus|desired|\n)`),
	},
	{
		header: regexp.MustCompile(`(?i)requirements?[\s:]*\n`),
		stop:   regexp.MustCompile(`(?i)\n(?:preferred|nice to have|bonus|\n)`),
	},
	{
		header: regexp.MustCompile(`(?i)minimum qualifications?[\s:]*\n`),
		stop:   regexp.MustCompile(`(?i)\n(?:preferred|desired|\n)`),
	},
}

var preferredBlockRules = []blockRule{
	{
		header: regexp.MustCompile(`(?i)(?:preferred|nice to have|bonus|desired|ideal)[\s:]*\n`),
		stop:   regexp.MustCompile(`\n\n`),
	},
	{
		header: regexp.MustCompile(`(?i)preferred qualifications?[\s:]*\n`),
		stop:   regexp.MustCompile(`\n\n`),
	},
	{
		header: regexp.MustCompile(`(?i)it would be (?:great|nice|a plus) if[^\n]*\n`),
		stop:   regexp.MustCompile(`\n\n`),
	},
}

// regexSections is the secondary pass over the full original text, used when
// line-state splitting found neither a required nor a preferred section.
// Rules run in priority order; the first matching header per category wins,
// and an unmatched category stays empty.
func regexSections(text string) (required, preferred string) {
	return firstBlock(text, requiredBlockRules), firstBlock(text, preferredBlockRules)
}

func firstBlock(text string, rules []blockRule) string {
	for _, r := range rules {
		loc := r.header.FindStringIndex(text)
		if loc == nil {
			continue
		}
		block := text[loc[1]:]
		if stop := r.stop.FindStringIndex(block); stop != nil {
			block = block[:stop[0]]
		}
		return strings.TrimSpace(block)
	}
	return ""
}
