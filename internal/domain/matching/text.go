package matching

import (
	"math"
	"regexp"
	"strings"
)

// Alphabetic runs of four or more letters count as description keywords.
// Compiled once; the scorer runs in hot ranking loops.
var descWordPattern = regexp.MustCompile(`\b[A-Za-z]{4,}\b`)

// keywordScore is the share of job keywords (declared plus extracted from
// the description) covered by the resume's keyword set.
func keywordScore(resumeKeywords, jobKeywords []string, jobDescription string) float64 {
	if len(jobKeywords) == 0 && jobDescription == "" {
		return 100
	}

	resumeSet := make(map[string]struct{}, len(resumeKeywords))
	for _, k := range resumeKeywords {
		resumeSet[strings.ToLower(k)] = struct{}{}
	}

	allJobKeywords := make(map[string]struct{})
	if jobDescription != "" {
		for _, w := range descWordPattern.FindAllString(strings.ToLower(jobDescription), -1) {
			allJobKeywords[w] = struct{}{}
		}
	}
	for _, k := range jobKeywords {
		allJobKeywords[strings.ToLower(k)] = struct{}{}
	}

	if len(allJobKeywords) == 0 {
		return 100
	}

	matches := 0
	for k := range allJobKeywords {
		if _, ok := resumeSet[k]; ok {
			matches++
		}
	}

	return float64(matches) / float64(len(allJobKeywords)) * 100
}

// titleScore is the best similarity between the job title and any past
// role title: exact match wins outright, substring containment scores 80,
// otherwise word-set Jaccard overlap scaled to 0-100. Neutral 50 when
// either side has nothing to compare.
func titleScore(history []WorkExperience, jobTitle string) float64 {
	if jobTitle == "" || len(history) == 0 {
		return 50
	}

	jobTitleLower := strings.ToLower(jobTitle)
	best := 0.0

	for _, exp := range history {
		expTitle := strings.ToLower(exp.Title)
		if expTitle == "" {
			continue
		}

		if jobTitleLower == expTitle {
			return 100
		}

		if strings.Contains(jobTitleLower, expTitle) || strings.Contains(expTitle, jobTitleLower) {
			best = math.Max(best, 80)
		}

		best = math.Max(best, wordOverlap(jobTitleLower, expTitle)*100)
	}

	return best
}

// wordOverlap is the Jaccard index of the whitespace-split word sets.
func wordOverlap(a, b string) float64 {
	aWords := wordSet(a)
	bWords := wordSet(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	intersection := 0
	union := len(bWords)
	for w := range aWords {
		if _, ok := bWords[w]; ok {
			intersection++
		} else {
			union++
		}
	}

	return float64(intersection) / float64(union)
}

func wordSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(s) {
		out[w] = struct{}{}
	}
	return out
}
