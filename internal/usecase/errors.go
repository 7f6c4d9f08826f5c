package usecase

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")

	ErrJobNotFound    = errors.New("Job not found")
	ErrResumeNotFound = errors.New("Resume not found")
	ErrNoJobsFound    = errors.New("No jobs found")
	ErrAlreadyApplied = errors.New("Already applied to this job")
)
