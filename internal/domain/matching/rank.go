package matching

import "sort"

// RankedResume pairs a candidate resume with its match result for one job.
type RankedResume struct {
	Resume ResumeFacts
	Result MatchResult
}

// RankedJob pairs a job with its match result for one resume.
type RankedJob struct {
	Job    JobFacts
	Result MatchResult
}

// RankCandidates scores every resume against the job, drops results below
// minScore and returns the rest sorted by score descending. Equal scores
// keep their input order.
func (m *Matcher) RankCandidates(resumes []ResumeFacts, job JobFacts, minScore float64) []RankedResume {
	out := make([]RankedResume, 0, len(resumes))
	for _, resume := range resumes {
		res := m.CalculateMatch(resume, job)
		if res.Score >= minScore {
			out = append(out, RankedResume{Resume: resume, Result: res})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}

// FindMatchingJobs scores one resume against every job, symmetric to
// RankCandidates.
func (m *Matcher) FindMatchingJobs(resume ResumeFacts, jobs []JobFacts, minScore float64) []RankedJob {
	out := make([]RankedJob, 0, len(jobs))
	for _, job := range jobs {
		res := m.CalculateMatch(resume, job)
		if res.Score >= minScore {
			out = append(out, RankedJob{Job: job, Result: res})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Result.Score > out[j].Result.Score
	})
	return out
}
