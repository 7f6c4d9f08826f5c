package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RankingCache is the slice of the cache the ranking usecases need.
type RankingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	InvalidateJobRankings(ctx context.Context, jobID string) error
}

type rankingCacheKeyInput struct {
	JobID    string  `json:"job_id"`
	MinScore float64 `json:"min_score"`
	Limit    int     `json:"limit"`
}

// CandidateRankingsCacheKey keeps the job id in the key prefix so a new
// application can invalidate every cached ranking for that job with one
// pattern scan.
func CandidateRankingsCacheKey(jobID uuid.UUID, minScore float64, limit int) string {
	in := rankingCacheKeyInput{JobID: jobID.String(), MinScore: minScore, Limit: limit}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "rankings:" + jobID.String() + ":" + hex.EncodeToString(sum[:])
}

func RankingLockKey(cacheKey string) string {
	cacheKey = strings.TrimSpace(cacheKey)
	if strings.HasPrefix(cacheKey, "rankings:") {
		return "rankings:lock:" + strings.TrimPrefix(cacheKey, "rankings:")
	}
	return "rankings:lock:" + cacheKey
}
