package repository

import (
	"context"
	"database/sql"
	"errors"

	"talent-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrResumeNotFound = errors.New("resume not found")

// Resume is the stored resume row plus its work history, the raw material
// the usecases turn into matching.ResumeFacts.
type Resume struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Headline          string
	Skills            []string
	Keywords          []string
	PreferredLocation string
	RemotePreference  string
	WorkExperience    []WorkExperienceRow
}

type WorkExperienceRow struct {
	Title     string
	StartDate string
	EndDate   string
	IsCurrent bool
}

type ResumeRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (Resume, error)
	ListPublic(ctx context.Context, limit int) ([]Resume, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, COALESCE(headline, ''), skills, keywords,
		        COALESCE(preferred_location, ''), COALESCE(remote_preference, 'any')
		 FROM resumes
		 WHERE user_id = $1`,
		userID,
	)

	var res Resume
	err := row.Scan(&res.ID, &res.UserID, &res.Headline, &res.Skills, &res.Keywords,
		&res.PreferredLocation, &res.RemotePreference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Resume{}, ErrResumeNotFound
		}
		return Resume{}, err
	}

	history, err := r.workExperienceByResumeIDs(ctx, []uuid.UUID{res.ID})
	if err != nil {
		return Resume{}, err
	}
	res.WorkExperience = history[res.ID]

	return res, nil
}

func (r *PostgresResumeRepository) ListPublic(ctx context.Context, limit int) ([]Resume, error) {
	if limit <= 0 {
		limit = 200
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, COALESCE(headline, ''), skills, keywords,
		        COALESCE(preferred_location, ''), COALESCE(remote_preference, 'any')
		 FROM resumes
		 WHERE is_public = true
		 ORDER BY updated_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Resume, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var res Resume
		if err := rows.Scan(&res.ID, &res.UserID, &res.Headline, &res.Skills, &res.Keywords,
			&res.PreferredLocation, &res.RemotePreference); err != nil {
			return nil, err
		}
		out = append(out, res)
		ids = append(ids, res.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	history, err := r.workExperienceByResumeIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].WorkExperience = history[out[i].ID]
	}

	return out, nil
}

func (r *PostgresResumeRepository) workExperienceByResumeIDs(ctx context.Context, resumeIDs []uuid.UUID) (map[uuid.UUID][]WorkExperienceRow, error) {
	out := make(map[uuid.UUID][]WorkExperienceRow, len(resumeIDs))
	if len(resumeIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT resume_id, COALESCE(title, ''), COALESCE(start_date, ''),
		        COALESCE(end_date, ''), is_current
		 FROM work_experiences
		 WHERE resume_id = ANY($1)
		 ORDER BY resume_id, position ASC`,
		resumeIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resumeID uuid.UUID
		var we WorkExperienceRow
		if err := rows.Scan(&resumeID, &we.Title, &we.StartDate, &we.EndDate, &we.IsCurrent); err != nil {
			return nil, err
		}
		out[resumeID] = append(out[resumeID], we)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
