package match

import (
	"github.com/hireloop/matchd/internal/domain/section"
	"github.com/hireloop/matchd/internal/domain/skills"
)

// Keyword scoring constants. Required skills dominate the technical blend,
// and a pile of missing required skills costs an extra 15%.
const (
	requiredWeight  = 0.80
	preferredWeight = 0.20

	// neutralRequired applies when the job states no requirements: absence
	// of requirements should neither penalize nor perfect-score a candidate.
	neutralRequired  = 0.8
	neutralPreferred = 1.0

	missingRequiredLimit   = 3
	missingRequiredPenalty = 0.85

	// requiredSplitRatio drives the positional fallback: the first 70% of
	// the job's technical skills count as required, the rest as preferred.
	requiredSplitRatio = 0.7

	technicalBlendWeight  = 0.70
	educationBlendWeight  = 0.20
	experienceBlendWeight = 0.10
)

// Result is the keyword-matching score breakdown.
type Result struct {
	TechnicalScore  float64
	RequiredScore   float64
	PreferredScore  float64
	EducationScore  float64
	ExperienceScore float64
	OverallKeyword  float64

	MatchedSkills    []string
	MissingSkills    []string
	MissingRequired  []string
	MissingPreferred []string

	ResumeSkillCount    int
	JobSkillCount       int
	RequiredSkillCount  int
	PreferredSkillCount int
}

// Keywords compares resume-extracted keywords against job-extracted keywords,
// weighting required skills over preferred ones. sections may be nil; when it
// carries usable required/preferred text those sections are re-extracted
// independently, otherwise the positional 70/30 fallback splits the job's
// technical skills.
func Keywords(resume, job skills.SkillSet, sections *section.Sections) Result {
	requiredSkills, preferredSkills := splitJobSkills(job.Technical, sections)

	matchedRequired := resume.Technical.Intersect(requiredSkills)
	matchedPreferred := resume.Technical.Intersect(preferredSkills)
	missingRequired := requiredSkills.Diff(resume.Technical)
	missingPreferred := preferredSkills.Diff(resume.Technical)

	requiredScore := neutralRequired
	if !requiredSkills.IsEmpty() {
		requiredScore = float64(matchedRequired.Len()) / float64(requiredSkills.Len())
	}

	preferredScore := neutralPreferred
	if !preferredSkills.IsEmpty() {
		preferredScore = float64(matchedPreferred.Len()) / float64(preferredSkills.Len())
	}

	technical := requiredWeight*requiredScore + preferredWeight*preferredScore
	if missingRequired.Len() > missingRequiredLimit {
		technical *= missingRequiredPenalty
	}
	// Bounded inputs keep the penalized value in range already; the clamp
	// guards against future constant changes pushing it out of [0,1].
	technical = clamp01(technical)

	educationScore := scoreEducation(resume.Education, job.Education)
	experienceScore := scoreExperience(resume.Experience, job.Experience)

	overall := technicalBlendWeight*technical +
		educationBlendWeight*educationScore +
		experienceBlendWeight*experienceScore

	return Result{
		TechnicalScore:  technical,
		RequiredScore:   requiredScore,
		PreferredScore:  preferredScore,
		EducationScore:  educationScore,
		ExperienceScore: experienceScore,
		OverallKeyword:  overall,

		MatchedSkills:    matchedRequired.Union(matchedPreferred).Sorted(),
		MissingSkills:    missingRequired.Union(missingPreferred).Sorted(),
		MissingRequired:  missingRequired.Sorted(),
		MissingPreferred: missingPreferred.Sorted(),

		ResumeSkillCount:    resume.Technical.Len(),
		JobSkillCount:       job.Technical.Len(),
		RequiredSkillCount:  requiredSkills.Len(),
		PreferredSkillCount: preferredSkills.Len(),
	}
}

// splitJobSkills separates the job's technical skills into required and
// preferred sets, preferring section text over the positional fallback.
func splitJobSkills(job skills.Set, sections *section.Sections) (required, preferred skills.Set) {
	if sections != nil && (sections.Required != "" || sections.Preferred != "") {
		required = skills.Extract(sections.Required).Technical
		preferred = skills.Extract(sections.Preferred).Technical
		if !required.IsEmpty() || !preferred.IsEmpty() {
			return required, preferred
		}
	}
	return positionalSplit(job)
}

// positionalSplit splits the job skills at the 70% index. Set values keep
// taxonomy declaration order, so the split is deterministic across runs.
func positionalSplit(job skills.Set) (required, preferred skills.Set) {
	all := job.Values()
	split := int(float64(len(all)) * requiredSplitRatio)
	if split == 0 {
		return job, skills.NewSet()
	}
	return skills.NewSet(all[:split]...), skills.NewSet(all[split:]...)
}

func scoreEducation(resume, job skills.Set) float64 {
	switch {
	case !resume.IsEmpty() && !job.IsEmpty():
		if !resume.Intersect(job).IsEmpty() {
			return 1.0
		}
		return 0.5
	case job.IsEmpty():
		// Nothing required.
		return 1.0
	default:
		// Education required but absent from the resume.
		return 0.5
	}
}

func scoreExperience(resume, job skills.Set) float64 {
	if !resume.IsEmpty() && !job.IsEmpty() {
		if !resume.Intersect(job).IsEmpty() {
			return 1.0
		}
		return 0.7
	}
	// Neutral when either side carries no signal.
	return 0.8
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
