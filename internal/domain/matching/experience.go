package matching

import (
	"math"
	"strconv"
	"strings"
)

// LevelBand is the expected years-of-experience range for a job's
// experience level.
type LevelBand struct {
	MinYears float64
	MaxYears float64
}

var defaultLevelBands = map[string]LevelBand{
	"entry":     {MinYears: 0, MaxYears: 2},
	"mid":       {MinYears: 2, MaxYears: 5},
	"senior":    {MinYears: 5, MaxYears: 10},
	"lead":      {MinYears: 7, MaxYears: 15},
	"executive": {MinYears: 10, MaxYears: 50},
}

// experienceScore compares total years of work history against the band
// for the required level. Empty or unknown levels impose no requirement.
func (m *Matcher) experienceScore(history []WorkExperience, requiredLevel string) float64 {
	if requiredLevel == "" {
		return 100
	}

	band, ok := m.levels[strings.ToLower(requiredLevel)]
	if !ok {
		return 100
	}

	totalYears := m.totalYears(history)

	if totalYears >= band.MinYears {
		if totalYears <= band.MaxYears+2 {
			return 100
		}
		// Overqualified, still a strong candidate.
		return 90
	}

	if band.MinYears <= 0 {
		return 100
	}
	return math.Min(100, totalYears/band.MinYears*100)
}

// totalYears sums (end-start) year spans over the work history. Entries
// with unparseable dates contribute nothing; negative spans clamp to zero.
// Open-ended entries run to the current calendar year.
func (m *Matcher) totalYears(history []WorkExperience) float64 {
	totalMonths := 0
	currentYear := m.now().Year()

	for _, exp := range history {
		startYear, ok := parseYear(exp.StartDate)
		if !ok {
			continue
		}

		endYear := currentYear
		if !exp.IsCurrent && exp.EndDate != "" {
			endYear, ok = parseYear(exp.EndDate)
			if !ok {
				continue
			}
		}

		months := (endYear - startYear) * 12
		if months < 0 {
			months = 0
		}
		totalMonths += months
	}

	return float64(totalMonths) / 12
}

// parseYear extracts the leading year from a YYYY or YYYY-MM string.
func parseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	if date == "" {
		return 0, false
	}

	head, _, _ := strings.Cut(date, "-")
	year, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return year, true
}
