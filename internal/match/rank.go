package match

import "sort"

// RankedCandidate pairs a candidate with its score against one job.
type RankedCandidate struct {
	Candidate Candidate `json:"candidate"`
	Result    Result    `json:"result"`
}

// RankedJob pairs a job with its score against one candidate.
type RankedJob struct {
	Job    Job    `json:"job"`
	Result Result `json:"result"`
}

// RankCandidates scores every candidate against the job and sorts descending
// by total score. The sort is stable: ties keep their input order.
func RankCandidates(job Job, candidates []Candidate) []RankedCandidate {
	ranked := make([]RankedCandidate, len(candidates))
	for i, c := range candidates {
		ranked[i] = RankedCandidate{Candidate: c, Result: Score(job, c)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	return ranked
}

// RankJobs scores every job against the candidate and sorts descending by
// total score, ties keeping input order.
func RankJobs(candidate Candidate, jobs []Job) []RankedJob {
	ranked := make([]RankedJob, len(jobs))
	for i, j := range jobs {
		ranked[i] = RankedJob{Job: j, Result: Score(j, candidate)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.Score > ranked[j].Result.Score
	})
	return ranked
}
