package matching

import (
	"fmt"
	"math"
	"time"
)

// WorkExperience is one entry of a candidate's work history. Dates are
// free text expected to start with YYYY or YYYY-MM; anything else is
// skipped during scoring.
type WorkExperience struct {
	Title     string
	StartDate string
	EndDate   string
	IsCurrent bool
}

// ResumeFacts is the fully hydrated resume view the matcher scores.
// The matcher never mutates it.
type ResumeFacts struct {
	Skills            []string
	WorkExperience    []WorkExperience
	PreferredLocation string
	RemotePreference  string // remote | onsite | hybrid | any
	Keywords          []string
}

// JobFacts is the fully hydrated job-posting view the matcher scores.
type JobFacts struct {
	Title            string
	Description      string
	RequiredSkills   []string
	NiceToHaveSkills []string
	ExperienceLevel  string // entry | mid | senior | lead | executive
	Location         string
	IsRemote         bool
	IsHybrid         bool
	Keywords         []string
}

// MatchResult is the outcome of one resume-vs-job evaluation. All scores
// are 0-100, rounded to one decimal. MatchingSkills and MissingSkills
// partition the job's required-skill list.
type MatchResult struct {
	Score           float64
	MatchingSkills  []string
	MissingSkills   []string
	ExperienceMatch float64
	LocationMatch   float64
	Reasons         []string
}

const (
	requiredSkillWeight   = 2.0
	niceToHaveSkillWeight = 1.0

	skillsWeight     = 0.40
	experienceWeight = 0.20
	locationWeight   = 0.15
	keywordWeight    = 0.15
	titleWeight      = 0.10

	qualifiedBoost      = 1.1
	qualifiedSkillRatio = 0.8
)

// Matcher scores resumes against job postings. It holds only immutable
// lookup tables and a clock, so a single instance is safe for concurrent
// use without synchronization.
type Matcher struct {
	synonyms map[string][]string
	levels   map[string]LevelBand
	now      func() time.Time
}

func New() *Matcher {
	return &Matcher{
		synonyms: defaultSynonyms,
		levels:   defaultLevelBands,
		now:      time.Now,
	}
}

// NewWithTables builds a matcher with custom synonym groups and
// experience-level bands. Nil arguments fall back to the defaults.
func NewWithTables(synonyms map[string][]string, levels map[string]LevelBand) *Matcher {
	m := New()
	if synonyms != nil {
		m.synonyms = synonyms
	}
	if levels != nil {
		m.levels = levels
	}
	return m
}

// CalculateMatch computes the weighted compatibility score between a
// resume and a job. It is a pure function of its inputs: repeated calls
// with identical values return identical results.
func (m *Matcher) CalculateMatch(resume ResumeFacts, job JobFacts) MatchResult {
	reasons := make([]string, 0, 6)

	skillsScore, matched, missing := m.skillsScore(resume.Skills, job.RequiredSkills, job.NiceToHaveSkills)
	if len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %d required/nice-to-have skills", len(matched)))
	}

	experienceScore := m.experienceScore(resume.WorkExperience, job.ExperienceLevel)
	if experienceScore >= 80 {
		reasons = append(reasons, "Experience level matches job requirements")
	}

	locScore := locationScore(resume.PreferredLocation, resume.RemotePreference, job.Location, job.IsRemote, job.IsHybrid)
	if locScore >= 80 {
		reasons = append(reasons, "Location preferences align")
	}

	kwScore := keywordScore(resume.Keywords, job.Keywords, job.Description)
	if kwScore >= 70 {
		reasons = append(reasons, "Strong keyword alignment with job description")
	}

	tScore := titleScore(resume.WorkExperience, job.Title)
	if tScore >= 70 {
		reasons = append(reasons, "Previous roles similar to this position")
	}

	total := skillsScore*skillsWeight +
		experienceScore*experienceWeight +
		locScore*locationWeight +
		kwScore*keywordWeight +
		tScore*titleWeight

	// When required skills are empty the ratio threshold is zero, so the
	// boost fires on experience alone. That boundary is intentional.
	if float64(len(matched)) >= float64(len(job.RequiredSkills))*qualifiedSkillRatio && experienceScore >= 80 {
		total = math.Min(100, total*qualifiedBoost)
		reasons = append(reasons, "Highly qualified candidate")
	}

	return MatchResult{
		Score:           round1(total),
		MatchingSkills:  matched,
		MissingSkills:   missing,
		ExperienceMatch: round1(experienceScore),
		LocationMatch:   round1(locScore),
		Reasons:         reasons,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
