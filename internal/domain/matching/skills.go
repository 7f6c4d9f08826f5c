package matching

import "strings"

// defaultSynonyms maps a canonical skill spelling to its accepted
// alternates. Two skills match when both fall inside the same group.
var defaultSynonyms = map[string][]string{
	"javascript":              {"js", "ecmascript"},
	"typescript":              {"ts"},
	"python":                  {"py"},
	"react":                   {"reactjs", "react.js"},
	"node":                    {"nodejs", "node.js"},
	"aws":                     {"amazon web services"},
	"gcp":                     {"google cloud platform", "google cloud"},
	"azure":                   {"microsoft azure"},
	"machine learning":        {"ml"},
	"artificial intelligence": {"ai"},
	"user interface":          {"ui"},
	"user experience":         {"ux"},
}

// SkillMatches reports whether a job skill and a resume skill refer to
// the same thing: exact match, substring containment either direction,
// or membership in the same synonym group. Comparison is case-insensitive
// and whitespace-trimmed.
func (m *Matcher) SkillMatches(jobSkill, resumeSkill string) bool {
	jobSkill = strings.TrimSpace(strings.ToLower(jobSkill))
	resumeSkill = strings.TrimSpace(strings.ToLower(resumeSkill))

	if jobSkill == resumeSkill {
		return true
	}

	if strings.Contains(jobSkill, resumeSkill) || strings.Contains(resumeSkill, jobSkill) {
		return true
	}

	for canonical, alts := range m.synonyms {
		if inSynonymGroup(jobSkill, canonical, alts) && inSynonymGroup(resumeSkill, canonical, alts) {
			return true
		}
	}

	return false
}

func inSynonymGroup(skill, canonical string, alts []string) bool {
	if skill == canonical {
		return true
	}
	for _, a := range alts {
		if skill == a {
			return true
		}
	}
	return false
}

// skillsScore weighs required skills at 2.0 and nice-to-have at 1.0 and
// returns the percentage achieved plus the matched/missing lists. Matched
// preserves the job's own ordering (required first, then nice-to-have),
// deduplicated by first occurrence. Missing tracks required skills only.
func (m *Matcher) skillsScore(resumeSkills, requiredSkills, niceToHaveSkills []string) (float64, []string, []string) {
	matched := make([]string, 0, len(requiredSkills)+len(niceToHaveSkills))
	missing := make([]string, 0)

	if len(requiredSkills) == 0 && len(niceToHaveSkills) == 0 {
		return 100, matched, missing
	}

	seen := make(map[string]struct{}, len(requiredSkills)+len(niceToHaveSkills))
	addMatched := func(skill string) {
		key := strings.TrimSpace(strings.ToLower(skill))
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		matched = append(matched, skill)
	}

	var score, maxScore float64

	for _, skill := range requiredSkills {
		maxScore += requiredSkillWeight
		if m.anyResumeSkillMatches(skill, resumeSkills) {
			score += requiredSkillWeight
			addMatched(skill)
		} else {
			missing = append(missing, skill)
		}
	}

	for _, skill := range niceToHaveSkills {
		maxScore += niceToHaveSkillWeight
		if m.anyResumeSkillMatches(skill, resumeSkills) {
			score += niceToHaveSkillWeight
			addMatched(skill)
		}
	}

	if maxScore == 0 {
		return 100, matched, missing
	}
	return score / maxScore * 100, matched, missing
}

func (m *Matcher) anyResumeSkillMatches(jobSkill string, resumeSkills []string) bool {
	for _, rs := range resumeSkills {
		if m.SkillMatches(jobSkill, rs) {
			return true
		}
	}
	return false
}
