package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID               uuid.UUID
	OrgUserID        uuid.UUID
	Title            string
	Description      string
	RequiredSkills   []string
	NiceToHaveSkills []string
	ExperienceLevel  string
	Location         string
	IsRemote         bool
	IsHybrid         bool
	Keywords         []string
}

type JobRepository interface {
	FindByID(ctx context.Context, jobID uuid.UUID) (Job, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListActive(ctx context.Context, limit, offset int) ([]Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, org_user_id, COALESCE(title, ''), COALESCE(description, ''),
	required_skills, nice_to_have_skills, COALESCE(experience_level, ''),
	COALESCE(location, ''), is_remote, is_hybrid, keywords`

func (r *PostgresJobRepository) FindByID(ctx context.Context, jobID uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`,
		jobID,
	)

	var j Job
	err := row.Scan(&j.ID, &j.OrgUserID, &j.Title, &j.Description,
		&j.RequiredSkills, &j.NiceToHaveSkills, &j.ExperienceLevel,
		&j.Location, &j.IsRemote, &j.IsHybrid, &j.Keywords)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit, offset int) ([]Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE is_active = true
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.OrgUserID, &j.Title, &j.Description,
			&j.RequiredSkills, &j.NiceToHaveSkills, &j.ExperienceLevel,
			&j.Location, &j.IsRemote, &j.IsHybrid, &j.Keywords); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
