package domain

// Explanation is a human-readable account of why a resume matched a job.
// Fallback is true when the text was built locally from the score breakdown
// instead of coming from the explanation provider.
type Explanation struct {
	Text        string
	Strengths   []string
	Gaps        []string
	Suggestions []string
	Fallback    bool
}

// ExplainRequest carries the inputs an explanation provider needs.
type ExplainRequest struct {
	JobText    string
	TopChunks  []string
	MatchScore float64
}
