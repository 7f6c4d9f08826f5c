package seeder

import (
	"context"
	"fmt"

	"talent-match/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoData seeds a recruiter, a candidate with a public resume, and a
// pair of postings for local development. Idempotent on email and title.
type DemoData struct {
	Password string
}

func (DemoData) Name() string { return "demo_data" }

func (s DemoData) Run(ctx context.Context, db database.DB) error {
	password := s.Password
	if password == "" {
		password = "password123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	var recruiterID string
	err = db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, 'recruiter')
		 ON CONFLICT (email) DO UPDATE SET updated_at = now()
		 RETURNING id`,
		"recruiter@demo.local", string(hash),
	).Scan(&recruiterID)
	if err != nil {
		return err
	}

	var candidateID string
	err = db.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role)
		 VALUES ($1, $2, 'candidate')
		 ON CONFLICT (email) DO UPDATE SET updated_at = now()
		 RETURNING id`,
		"candidate@demo.local", string(hash),
	).Scan(&candidateID)
	if err != nil {
		return err
	}

	var resumeID string
	err = db.QueryRow(ctx,
		`INSERT INTO resumes (user_id, headline, skills, keywords, preferred_location, remote_preference, is_public)
		 VALUES ($1, $2, $3, $4, $5, $6, true)
		 ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
		 RETURNING id`,
		candidateID,
		"Backend engineer, distributed systems",
		[]string{"Go", "PostgreSQL", "Redis", "Docker"},
		[]string{"backend", "distributed", "microservices"},
		"Austin, Texas",
		"remote",
	).Scan(&resumeID)
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO work_experiences (resume_id, title, start_date, end_date, is_current, position)
		 SELECT $1, 'Backend Engineer', '2018-03-01', '', true, 0
		 WHERE NOT EXISTS (SELECT 1 FROM work_experiences WHERE resume_id = $1)`,
		resumeID,
	); err != nil {
		return err
	}

	jobs := []struct {
		title       string
		description string
		required    []string
		niceToHave  []string
		level       string
		location    string
		isRemote    bool
		keywords    []string
	}{
		{
			title:       "Senior Backend Engineer",
			description: "Build and operate high throughput matching services in Go against PostgreSQL and Redis.",
			required:    []string{"Go", "PostgreSQL"},
			niceToHave:  []string{"Redis", "Kubernetes"},
			level:       "senior",
			location:    "Remote",
			isRemote:    true,
			keywords:    []string{"backend", "distributed"},
		},
		{
			title:       "Platform Engineer",
			description: "Own the deployment pipeline and container platform for the product teams.",
			required:    []string{"Kubernetes", "Terraform"},
			niceToHave:  []string{"Go"},
			level:       "mid",
			location:    "Austin, Texas",
			keywords:    []string{"platform", "infrastructure"},
		},
	}
	for _, j := range jobs {
		if _, err := db.Exec(ctx,
			`INSERT INTO jobs (org_user_id, title, description, required_skills, nice_to_have_skills,
			                   experience_level, location, is_remote, keywords)
			 SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
			 WHERE NOT EXISTS (SELECT 1 FROM jobs WHERE org_user_id = $1 AND title = $2)`,
			recruiterID, j.title, j.description, j.required, j.niceToHave,
			j.level, j.location, j.isRemote, j.keywords,
		); err != nil {
			return err
		}
	}

	return nil
}
