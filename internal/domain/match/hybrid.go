package match

// Hybrid fusion weights, fixed and documented to the user: 40% technical
// keyword matching, 30% semantic similarity, 20% experience, 10% education.
const (
	technicalWeight  = 0.40
	semanticWeight   = 0.30
	experienceWeight = 0.20
	educationWeight  = 0.10
)

// Verdict bands, lower bound inclusive.
const (
	bandExcellent = 0.85
	bandGood      = 0.71
	bandFair      = 0.40
)

// Verdict labels.
const (
	VerdictExcellent = "Excellent"
	VerdictGood      = "Good"
	VerdictFair      = "Fair"
	VerdictLow       = "Low"
)

// Breakdown is the final fused score with its displayed sub-scores and the
// matched/missing skill lists carried through unchanged from the keyword
// result.
type Breakdown struct {
	HybridScore float64
	Verdict     string

	TechnicalScore  float64
	SemanticScore   float64
	ExperienceScore float64
	EducationScore  float64

	MatchedSkills    []string
	MissingSkills    []string
	MissingRequired  []string
	MissingPreferred []string
}

// Hybrid fuses the semantic score and the keyword sub-scores into the final
// weighted verdict.
func Hybrid(semanticScore float64, kw Result) Breakdown {
	score := technicalWeight*kw.TechnicalScore +
		semanticWeight*semanticScore +
		experienceWeight*kw.ExperienceScore +
		educationWeight*kw.EducationScore

	return Breakdown{
		HybridScore: score,
		Verdict:     VerdictFor(score),

		TechnicalScore:  kw.TechnicalScore,
		SemanticScore:   semanticScore,
		ExperienceScore: kw.ExperienceScore,
		EducationScore:  kw.EducationScore,

		MatchedSkills:    kw.MatchedSkills,
		MissingSkills:    kw.MissingSkills,
		MissingRequired:  kw.MissingRequired,
		MissingPreferred: kw.MissingPreferred,
	}
}

// VerdictFor maps a hybrid score to its verdict band.
func VerdictFor(score float64) string {
	switch {
	case score >= bandExcellent:
		return VerdictExcellent
	case score >= bandGood:
		return VerdictGood
	case score >= bandFair:
		return VerdictFair
	default:
		return VerdictLow
	}
}
