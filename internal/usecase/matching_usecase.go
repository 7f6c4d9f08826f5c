package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type MatchingUsecase interface {
	CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.MatchResult, error)
}

type Matching struct {
	jobs    repository.JobRepository
	resumes repository.ResumeRepository
	matcher *matching.Matcher
}

func NewMatchingUsecase(jobs repository.JobRepository, resumes repository.ResumeRepository, matcher *matching.Matcher) *Matching {
	if matcher == nil {
		matcher = matching.New()
	}
	return &Matching{jobs: jobs, resumes: resumes, matcher: matcher}
}

func (u *Matching) CalculateMatch(ctx context.Context, userID, jobID uuid.UUID) (matching.MatchResult, error) {
	if userID == uuid.Nil {
		return matching.MatchResult{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return matching.MatchResult{}, ErrJobNotFound
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.MatchResult{}, ErrJobNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	resume, err := u.resumes.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrResumeNotFound) {
			return matching.MatchResult{}, ErrResumeNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	return u.matcher.CalculateMatch(resumeFacts(resume), jobFacts(job)), nil
}
