package dto

import "talent-match/internal/domain/matching"

type MatchResultResponse struct {
	Score           float64  `json:"score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	ExperienceMatch float64  `json:"experience_match"`
	LocationMatch   float64  `json:"location_match"`
	Reasons         []string `json:"reasons"`
}

func NewMatchResultResponse(res matching.MatchResult) MatchResultResponse {
	return MatchResultResponse{
		Score:           res.Score,
		MatchingSkills:  emptyIfNil(res.MatchingSkills),
		MissingSkills:   emptyIfNil(res.MissingSkills),
		ExperienceMatch: res.ExperienceMatch,
		LocationMatch:   res.LocationMatch,
		Reasons:         emptyIfNil(res.Reasons),
	}
}

// emptyIfNil keeps list fields as [] in JSON instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
