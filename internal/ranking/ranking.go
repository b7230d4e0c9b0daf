// Package ranking produces score-sorted, size-bounded match lists on top of
// the status engine and the matching engine.
package ranking

import (
	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

// DefaultLimit bounds result lists when the caller does not ask for a size.
const DefaultLimit = 10

// Service filters pools for eligibility, scores the remainder, and truncates.
// It holds no state and is safe for concurrent use.
type Service struct{}

// NewService creates a ranking service.
func NewService() *Service {
	return &Service{}
}

// TopCandidates ranks the candidate pool against one job. Deleted and
// unverified candidates are skipped before scoring. An empty pool yields an
// empty slice, never an error.
func (s *Service) TopCandidates(job match.Job, pool []match.Candidate, limit int) []match.RankedCandidate {
	eligible := make([]match.Candidate, 0, len(pool))
	for _, c := range pool {
		if c.Deleted || c.ProfileStatus != match.ProfileVerified {
			continue
		}
		eligible = append(eligible, c)
	}

	return truncateCandidates(match.RankCandidates(job, eligible), limit)
}

// TopJobs ranks the job pool against one candidate. Only live ACTIVE posts
// are scored; deleted posts and posts in any other status are skipped.
func (s *Service) TopJobs(candidate match.Candidate, pool []match.Job, limit int) []match.RankedJob {
	eligible := make([]match.Job, 0, len(pool))
	for _, j := range pool {
		if !jobstatus.AcceptsApplications(j.Status, j.Deleted) {
			continue
		}
		eligible = append(eligible, j)
	}

	ranked := match.RankJobs(candidate, eligible)
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func truncateCandidates(ranked []match.RankedCandidate, limit int) []match.RankedCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
