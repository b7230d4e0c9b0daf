package domain

import (
	"errors"
)

var (
	ErrJobPostNotFound   = errors.New("job post not found")
	ErrCandidateNotFound = errors.New("candidate not found")
)

// Cache entity types for the aggregate ranking queries.
const (
	CacheEntityJobCandidates = "job_candidates"
	CacheEntityCandidateJobs = "candidate_jobs"
)
