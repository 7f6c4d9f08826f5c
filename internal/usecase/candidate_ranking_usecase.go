package usecase

import (
	"context"
	"errors"
	"runtime"
	"sort"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/pkg/workerpool"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultRankingLimit = 20
	maxRankingLimit     = 50
	defaultMinScore     = 50

	// Public resumes considered per ranking run. Keeps one request from
	// scoring the whole table.
	candidatePoolSize = 1000
)

type CandidateRankingParams struct {
	MinScore float64
	Limit    int
}

// CandidateRankingItem is one scored candidate in a recruiter's ranking,
// shaped for both the cache and the HTTP response.
type CandidateRankingItem struct {
	ResumeID        uuid.UUID `json:"resume_id"`
	UserID          uuid.UUID `json:"user_id"`
	Headline        string    `json:"headline"`
	Score           float64   `json:"score"`
	MatchingSkills  []string  `json:"matching_skills"`
	MissingSkills   []string  `json:"missing_skills"`
	ExperienceMatch float64   `json:"experience_match"`
	LocationMatch   float64   `json:"location_match"`
	Reasons         []string  `json:"reasons"`
}

type CandidateRankingUsecase interface {
	RankCandidates(ctx context.Context, requesterID, jobID uuid.UUID, params CandidateRankingParams) ([]CandidateRankingItem, error)
}

type CandidateRanking struct {
	jobs     repository.JobRepository
	resumes  repository.ResumeRepository
	matcher  *matching.Matcher
	cache    RankingCache
	cacheTTL time.Duration
	minScore float64
	maxLimit int
	logger   *zap.Logger
}

func NewCandidateRankingUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	matcher *matching.Matcher,
	cache RankingCache,
	cacheTTL time.Duration,
	minScore float64,
	maxLimit int,
	logger *zap.Logger,
) *CandidateRanking {
	if matcher == nil {
		matcher = matching.New()
	}
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	if minScore <= 0 {
		minScore = defaultMinScore
	}
	if maxLimit <= 0 {
		maxLimit = maxRankingLimit
	}
	return &CandidateRanking{
		jobs:     jobs,
		resumes:  resumes,
		matcher:  matcher,
		cache:    cache,
		cacheTTL: cacheTTL,
		minScore: minScore,
		maxLimit: maxLimit,
		logger:   logger,
	}
}

// RankCandidates scores every public resume against the job and returns
// the best matches for the job's owner. Results are cached per job and
// query shape.
func (u *CandidateRanking) RankCandidates(ctx context.Context, requesterID, jobID uuid.UUID, params CandidateRankingParams) ([]CandidateRankingItem, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	minScore := params.MinScore
	if minScore <= 0 {
		minScore = u.minScore
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultRankingLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	if job.OrgUserID != requesterID {
		return nil, ErrForbidden
	}

	cacheKey := CandidateRankingsCacheKey(jobID, minScore, limit)
	if u.cache != nil {
		var cached []CandidateRankingItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	holdsLock := false
	if u.cache != nil {
		holdsLock, _ = u.cache.SetIfNotExists(ctx, RankingLockKey(cacheKey), "1", 30*time.Second)
	}

	pool := candidatePoolSize
	resumes, err := u.resumes.ListPublic(ctx, pool)
	if err != nil {
		return nil, ErrInternal
	}

	items := u.score(ctx, resumes, jobFacts(job), minScore, limit)

	if u.cache != nil && holdsLock {
		if err := u.cache.SetJSON(ctx, cacheKey, items, u.cacheTTL); err != nil && u.logger != nil {
			u.logger.Warn("ranking cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return items, nil
}

// score fans resume scoring out over a worker pool, then filters and
// sorts. Ties keep the resumes' input order.
func (u *CandidateRanking) score(ctx context.Context, resumes []repository.Resume, job matching.JobFacts, minScore float64, limit int) []CandidateRankingItem {
	results := make([]matching.MatchResult, len(resumes))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(resumes) && len(resumes) > 0 {
		workers = len(resumes)
	}
	p := workerpool.New(workers, len(resumes))
	for i := range resumes {
		i := i
		p.Submit(func(ctx context.Context) error {
			results[i] = u.matcher.CalculateMatch(resumeFacts(resumes[i]), job)
			return nil
		})
	}
	p.Close()
	for range p.Run(ctx) {
	}

	items := make([]CandidateRankingItem, 0, len(resumes))
	for i, r := range resumes {
		res := results[i]
		if res.Score < minScore {
			continue
		}
		items = append(items, CandidateRankingItem{
			ResumeID:        r.ID,
			UserID:          r.UserID,
			Headline:        r.Headline,
			Score:           res.Score,
			MatchingSkills:  res.MatchingSkills,
			MissingSkills:   res.MissingSkills,
			ExperienceMatch: res.ExperienceMatch,
			LocationMatch:   res.LocationMatch,
			Reasons:         res.Reasons,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
