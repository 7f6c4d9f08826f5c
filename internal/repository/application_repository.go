package repository

import (
	"context"
	"time"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

// Application stores the outcome of one application submission, with the
// match result computed at submit time frozen alongside it for recruiter
// review.
type Application struct {
	ID              uuid.UUID
	JobID           uuid.UUID
	UserID          uuid.UUID
	MatchScore      float64
	ExperienceMatch float64
	LocationMatch   float64
	MatchingSkills  []string
	MissingSkills   []string
	MatchReasons    []string
	CreatedAt       time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, app Application) (uuid.UUID, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, app Application) (uuid.UUID, error) {
	id := app.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO applications
		     (id, job_id, user_id, match_score, experience_match, location_match,
		      matching_skills, missing_skills, match_reasons)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		id, app.JobID, app.UserID, app.MatchScore, app.ExperienceMatch, app.LocationMatch,
		app.MatchingSkills, app.MissingSkills, app.MatchReasons,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresApplicationRepository) ExistsByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_id = $2)`,
		userID, jobID,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
