package usecase

import (
	"context"
	"errors"
	"sort"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type JobRecommendationParams struct {
	Limit    int
	Offset   int
	MinScore float64
}

type JobRecommendationItem struct {
	JobID         uuid.UUID `json:"job_id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	IsRemote      bool      `json:"is_remote"`
	Score         float64   `json:"score"`
	MissingSkills []string  `json:"missing_skills"`
	Reasons       []string  `json:"reasons"`
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error)
}

// activeJobPoolSize bounds how many active jobs are loaded for scoring.
// Pagination applies to the scored ranking, not to the rows read, so the
// best match cannot be cut off by its position in the table.
const activeJobPoolSize = 1000

type matchScorer interface {
	CalculateMatch(resume matching.ResumeFacts, job matching.JobFacts) matching.MatchResult
}

type JobRecommendation struct {
	jobs    repository.JobRepository
	resumes repository.ResumeRepository
	scorer  matchScorer
	logger  *zap.Logger
}

func NewJobRecommendationUsecase(jobs repository.JobRepository, resumes repository.ResumeRepository, matcher *matching.Matcher, logger *zap.Logger) *JobRecommendation {
	var scorer matchScorer = matcher
	if matcher == nil {
		scorer = matching.New()
	}
	return &JobRecommendation{jobs: jobs, resumes: resumes, scorer: scorer, logger: logger}
}

func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params JobRecommendationParams) ([]JobRecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}

	resume, err := u.resumes.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.ListActive(ctx, activeJobPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	facts := resumeFacts(resume)

	items := make([]JobRecommendationItem, 0, len(jobs))
	for _, job := range jobs {
		res := u.safeCalculate(facts, job)
		if res.Score < minScore {
			continue
		}
		items = append(items, JobRecommendationItem{
			JobID:         job.ID,
			Title:         job.Title,
			Location:      job.Location,
			IsRemote:      job.IsRemote,
			Score:         res.Score,
			MissingSkills: res.MissingSkills,
			Reasons:       res.Reasons,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})

	if offset >= len(items) {
		return []JobRecommendationItem{}, nil
	}
	items = items[offset:]
	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}

// safeCalculate scores one job and turns a panic into a zero result so a
// single malformed posting cannot fail the whole recommendation list.
func (u *JobRecommendation) safeCalculate(resume matching.ResumeFacts, job repository.Job) (res matching.MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			if u.logger != nil {
				u.logger.Error("match calculation panicked",
					zap.String("job_id", job.ID.String()), zap.Any("panic", r))
			}
			res = matching.MatchResult{}
		}
	}()
	return u.scorer.CalculateMatch(resume, jobFacts(job))
}
