package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MatchAlert is pushed to the recruiter who owns a job when an incoming
// application scores at or above the alert threshold.
type MatchAlert struct {
	JobID       uuid.UUID `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
}

type MatchAlertNotifier interface {
	NotifyMatchAlert(userID uuid.UUID, alert MatchAlert)
}

type ApplicationResult struct {
	ApplicationID uuid.UUID
	Match         matching.MatchResult
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID) (ApplicationResult, error)
}

type Application struct {
	jobs         repository.JobRepository
	resumes      repository.ResumeRepository
	applications repository.ApplicationRepository
	matcher      *matching.Matcher
	cache        RankingCache
	notifier     MatchAlertNotifier
	alertScore   float64
	logger       *zap.Logger
}

func NewApplicationUsecase(
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	applications repository.ApplicationRepository,
	matcher *matching.Matcher,
	cache RankingCache,
	notifier MatchAlertNotifier,
	alertScore float64,
	logger *zap.Logger,
) *Application {
	if matcher == nil {
		matcher = matching.New()
	}
	if alertScore <= 0 {
		alertScore = 80
	}
	return &Application{
		jobs:         jobs,
		resumes:      resumes,
		applications: applications,
		matcher:      matcher,
		cache:        cache,
		notifier:     notifier,
		alertScore:   alertScore,
		logger:       logger,
	}
}

// Apply scores the candidate against the job and persists the application
// with the result frozen at submit time.
func (u *Application) Apply(ctx context.Context, userID, jobID uuid.UUID) (ApplicationResult, error) {
	if userID == uuid.Nil {
		return ApplicationResult{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return ApplicationResult{}, ErrJobNotFound
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return ApplicationResult{}, ErrJobNotFound
		}
		return ApplicationResult{}, ErrInternal
	}

	resume, err := u.resumes.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return ApplicationResult{}, ErrResumeNotFound
		}
		return ApplicationResult{}, ErrInternal
	}

	applied, err := u.applications.ExistsByUserAndJob(ctx, userID, jobID)
	if err != nil {
		return ApplicationResult{}, ErrInternal
	}
	if applied {
		return ApplicationResult{}, ErrAlreadyApplied
	}

	res := u.matcher.CalculateMatch(resumeFacts(resume), jobFacts(job))

	id, err := u.applications.Create(ctx, repository.Application{
		JobID:           jobID,
		UserID:          userID,
		MatchScore:      res.Score,
		ExperienceMatch: res.ExperienceMatch,
		LocationMatch:   res.LocationMatch,
		MatchingSkills:  res.MatchingSkills,
		MissingSkills:   res.MissingSkills,
		MatchReasons:    res.Reasons,
	})
	if err != nil {
		return ApplicationResult{}, ErrInternal
	}

	// The candidate pool for this job changed, recruiters should not see
	// stale rankings.
	if u.cache != nil {
		if err := u.cache.InvalidateJobRankings(ctx, jobID.String()); err != nil && u.logger != nil {
			u.logger.Warn("ranking cache invalidation failed",
				zap.String("job_id", jobID.String()), zap.Error(err))
		}
	}

	if u.notifier != nil && res.Score >= u.alertScore {
		u.notifier.NotifyMatchAlert(job.OrgUserID, MatchAlert{
			JobID:       jobID,
			JobTitle:    job.Title,
			CandidateID: userID,
			Score:       res.Score,
			Reasons:     res.Reasons,
		})
	}

	return ApplicationResult{ApplicationID: id, Match: res}, nil
}
