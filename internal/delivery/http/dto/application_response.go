package dto

import (
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ApplicationID uuid.UUID           `json:"application_id"`
	Match         MatchResultResponse `json:"match"`
}

func NewApplicationResponse(res usecase.ApplicationResult) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID: res.ApplicationID,
		Match:         NewMatchResultResponse(res.Match),
	}
}
