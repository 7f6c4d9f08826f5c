package usecase

import (
	"talent-match/internal/domain/matching"
	"talent-match/internal/repository"
)

func resumeFacts(r repository.Resume) matching.ResumeFacts {
	exp := make([]matching.WorkExperience, 0, len(r.WorkExperience))
	for _, w := range r.WorkExperience {
		exp = append(exp, matching.WorkExperience{
			Title:     w.Title,
			StartDate: w.StartDate,
			EndDate:   w.EndDate,
			IsCurrent: w.IsCurrent,
		})
	}
	return matching.ResumeFacts{
		Skills:            r.Skills,
		WorkExperience:    exp,
		PreferredLocation: r.PreferredLocation,
		RemotePreference:  r.RemotePreference,
		Keywords:          r.Keywords,
	}
}

func jobFacts(j repository.Job) matching.JobFacts {
	return matching.JobFacts{
		Title:            j.Title,
		Description:      j.Description,
		RequiredSkills:   j.RequiredSkills,
		NiceToHaveSkills: j.NiceToHaveSkills,
		ExperienceLevel:  j.ExperienceLevel,
		Location:         j.Location,
		IsRemote:         j.IsRemote,
		IsHybrid:         j.IsHybrid,
		Keywords:         j.Keywords,
	}
}
