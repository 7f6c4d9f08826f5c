package matching

import (
	"reflect"
	"testing"
)

func sampleResume() ResumeFacts {
	return ResumeFacts{
		Skills:           []string{"Python", "AWS"},
		RemotePreference: "any",
	}
}

func sampleJob() JobFacts {
	return JobFacts{
		RequiredSkills: []string{"python", "aws", "docker"},
	}
}

func TestCalculateMatch_WeightedTotal(t *testing.T) {
	m := testMatcher(2026)

	res := m.CalculateMatch(sampleResume(), sampleJob())

	// skills 66.67*0.40 + experience 100*0.20 + location 80*0.15 +
	// keyword 100*0.15 + title 50*0.10 = 78.67, no boost (2 < 2.4).
	if res.Score != 78.7 {
		t.Fatalf("expected score 78.7, got %v", res.Score)
	}
	if res.ExperienceMatch != 100 {
		t.Fatalf("expected experience_match 100, got %v", res.ExperienceMatch)
	}
	if res.LocationMatch != 80 {
		t.Fatalf("expected location_match 80, got %v", res.LocationMatch)
	}

	wantMatched := []string{"python", "aws"}
	if !reflect.DeepEqual(res.MatchingSkills, wantMatched) {
		t.Fatalf("unexpected matching_skills: %v", res.MatchingSkills)
	}
	wantMissing := []string{"docker"}
	if !reflect.DeepEqual(res.MissingSkills, wantMissing) {
		t.Fatalf("unexpected missing_skills: %v", res.MissingSkills)
	}

	wantReasons := []string{
		"Matches 2 required/nice-to-have skills",
		"Experience level matches job requirements",
		"Location preferences align",
		"Strong keyword alignment with job description",
	}
	if !reflect.DeepEqual(res.Reasons, wantReasons) {
		t.Fatalf("unexpected reasons: %v", res.Reasons)
	}
}

func TestCalculateMatch_Deterministic(t *testing.T) {
	m := testMatcher(2026)

	resume := ResumeFacts{
		Skills:            []string{"Go", "PostgreSQL", "Redis"},
		WorkExperience:    []WorkExperience{{Title: "Backend Engineer", StartDate: "2019", IsCurrent: true}},
		PreferredLocation: "Jakarta, ID",
		RemotePreference:  "hybrid",
		Keywords:          []string{"backend", "microservices"},
	}
	job := JobFacts{
		Title:           "Senior Backend Engineer",
		Description:     "Own backend microservices built with Go and PostgreSQL.",
		RequiredSkills:  []string{"go", "postgresql"},
		ExperienceLevel: "senior",
		Location:        "Jakarta, ID",
		IsHybrid:        true,
		Keywords:        []string{"golang"},
	}

	first := m.CalculateMatch(resume, job)
	for i := 0; i < 5; i++ {
		if got := m.CalculateMatch(resume, job); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestCalculateMatch_ScoreBounds(t *testing.T) {
	m := testMatcher(2026)

	inputs := []struct {
		resume ResumeFacts
		job    JobFacts
	}{
		{ResumeFacts{}, JobFacts{}},
		{ResumeFacts{RemotePreference: "remote"}, JobFacts{ExperienceLevel: "executive"}},
		{sampleResume(), sampleJob()},
		{
			ResumeFacts{
				Skills:           []string{"go"},
				WorkExperience:   []WorkExperience{{Title: "CTO", StartDate: "2000", IsCurrent: true}},
				RemotePreference: "remote",
				Keywords:         []string{"leadership"},
			},
			JobFacts{
				Title:           "CTO",
				RequiredSkills:  []string{"go"},
				ExperienceLevel: "executive",
				IsRemote:        true,
				Keywords:        []string{"leadership"},
			},
		},
	}

	for i, in := range inputs {
		res := m.CalculateMatch(in.resume, in.job)
		if res.Score < 0 || res.Score > 100 {
			t.Fatalf("input %d: score out of bounds: %v", i, res.Score)
		}
		if res.ExperienceMatch < 0 || res.ExperienceMatch > 100 {
			t.Fatalf("input %d: experience_match out of bounds: %v", i, res.ExperienceMatch)
		}
		if res.LocationMatch < 0 || res.LocationMatch > 100 {
			t.Fatalf("input %d: location_match out of bounds: %v", i, res.LocationMatch)
		}
	}
}

func TestCalculateMatch_BoostCappedAt100(t *testing.T) {
	m := testMatcher(2024)

	resume := ResumeFacts{
		Skills:         []string{"Go", "Python"},
		WorkExperience: []WorkExperience{{Title: "Software Engineer", StartDate: "2020", IsCurrent: true}},
	}
	job := JobFacts{
		Title:           "Software Engineer",
		RequiredSkills:  []string{"go", "python"},
		ExperienceLevel: "mid",
	}

	res := m.CalculateMatch(resume, job)

	// Unboosted total is 92.5; the 1.1 boost would exceed 100 and must cap.
	if res.Score != 100 {
		t.Fatalf("expected capped score 100, got %v", res.Score)
	}
	if !containsReason(res.Reasons, "Highly qualified candidate") {
		t.Fatalf("expected boost reason, got %v", res.Reasons)
	}
}

func TestCalculateMatch_BoostFiresOnEmptyRequiredSkills(t *testing.T) {
	// Zero required skills makes the ratio threshold trivially satisfied,
	// so experience alone triggers the boost. Preserved boundary behavior.
	m := testMatcher(2026)

	resume := ResumeFacts{RemotePreference: "any"}
	job := JobFacts{}

	res := m.CalculateMatch(resume, job)

	if !containsReason(res.Reasons, "Highly qualified candidate") {
		t.Fatalf("expected boost reason on empty required skills, got %v", res.Reasons)
	}
	if containsReason(res.Reasons, "Matches 0 required/nice-to-have skills") {
		t.Fatalf("skills reason must not appear when nothing matched")
	}
	if res.Score != 100 {
		// 100*0.4 + 100*0.2 + 80*0.15 + 100*0.15 + 50*0.1 = 92, boosted past cap.
		t.Fatalf("expected score 100, got %v", res.Score)
	}
}

func TestCalculateMatch_NoBoostWithoutExperience(t *testing.T) {
	m := testMatcher(2026)

	resume := ResumeFacts{Skills: []string{"go"}}
	job := JobFacts{
		RequiredSkills:  []string{"go"},
		ExperienceLevel: "senior", // empty history scores 0
	}

	res := m.CalculateMatch(resume, job)
	if containsReason(res.Reasons, "Highly qualified candidate") {
		t.Fatalf("boost requires experience >= 80, got reasons %v", res.Reasons)
	}
}

func containsReason(reasons []string, want string) bool {
	for _, r := range reasons {
		if r == want {
			return true
		}
	}
	return false
}
