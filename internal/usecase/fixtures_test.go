package usecase

import (
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// Work history uses closed date ranges so scores do not depend on the
// wall clock.

func strongResume(userID uuid.UUID) repository.Resume {
	return repository.Resume{
		ID:                uuid.New(),
		UserID:            userID,
		Headline:          "Backend engineer, distributed systems",
		Skills:            []string{"Go", "PostgreSQL", "Redis"},
		Keywords:          []string{"backend", "distributed"},
		PreferredLocation: "Remote",
		RemotePreference:  "remote",
		WorkExperience: []repository.WorkExperienceRow{
			{Title: "Backend Engineer", StartDate: "2016-01-01", EndDate: "2024-01-01"},
		},
	}
}

func weakResume(userID uuid.UUID) repository.Resume {
	return repository.Resume{
		ID:                uuid.New(),
		UserID:            userID,
		Headline:          "Office administrator",
		Skills:            []string{"Excel"},
		PreferredLocation: "Boise",
		RemotePreference:  "onsite",
	}
}

func backendJob(orgUserID uuid.UUID) repository.Job {
	return repository.Job{
		ID:               uuid.New(),
		OrgUserID:        orgUserID,
		Title:            "Senior Backend Engineer",
		RequiredSkills:   []string{"Go", "PostgreSQL"},
		NiceToHaveSkills: []string{"Redis"},
		ExperienceLevel:  "senior",
		Location:         "Remote",
		IsRemote:         true,
		Keywords:         []string{"backend", "distributed"},
	}
}
