package domain

import (
	"encoding/json"
	"fmt"

	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

// CacheEntityJobCandidates is the cache entity type for per-post candidate
// rankings. Must stay in sync with the API service, which serves reads from
// the same keys.
const CacheEntityJobCandidates = "job_candidates"

// RefreshMessage represents a match-refresh request from RabbitMQ
type RefreshMessage struct {
	JobPostID   string `json:"job_post_id"`
	DeliveryTag uint64 `json:"-"`
}

// JobPost holds the job post fields the refresh pipeline needs
type JobPost struct {
	JobPostID          string
	Status             string
	Deleted            bool
	Skills             []string
	ExperienceRequired string
	SalaryRange        string
	Location           string
	MinQualification   string
}

// Descriptor converts the row into the snapshot the matching engine consumes
func (j *JobPost) Descriptor() match.Job {
	return match.Job{
		ID:                 j.JobPostID,
		Status:             jobstatus.Status(j.Status),
		Deleted:            j.Deleted,
		Skills:             j.Skills,
		ExperienceRequired: j.ExperienceRequired,
		SalaryRange:        j.SalaryRange,
		Location:           j.Location,
		MinQualification:   j.MinQualification,
	}
}

// Candidate holds a verified candidate row. Experience and Qualifications
// are raw JSONB from the candidates table.
type Candidate struct {
	CandidateID    string
	FullName       string
	Skills         []string
	Experience     []byte
	ExpectedSalary int
	Address        string
	Qualifications []byte
}

type experienceEntry struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Duration string `json:"duration"`
}

type qualificationEntry struct {
	Degree string `json:"degree"`
}

// Descriptor converts the row into the snapshot the matching engine consumes
func (c *Candidate) Descriptor() (match.Candidate, error) {
	var history []experienceEntry
	if len(c.Experience) > 0 {
		if err := json.Unmarshal(c.Experience, &history); err != nil {
			return match.Candidate{}, fmt.Errorf("failed to decode candidate experience: %w", err)
		}
	}

	var degrees []qualificationEntry
	if len(c.Qualifications) > 0 {
		if err := json.Unmarshal(c.Qualifications, &degrees); err != nil {
			return match.Candidate{}, fmt.Errorf("failed to decode candidate qualifications: %w", err)
		}
	}

	descriptor := match.Candidate{
		ID:             c.CandidateID,
		Skills:         c.Skills,
		ExpectedSalary: c.ExpectedSalary,
		Address:        c.Address,
		ProfileStatus:  match.ProfileVerified,
	}
	for _, e := range history {
		descriptor.Experience = append(descriptor.Experience, match.ExperienceEntry{
			Company:  e.Company,
			Position: e.Position,
			Duration: e.Duration,
		})
	}
	for _, q := range degrees {
		descriptor.Qualifications = append(descriptor.Qualifications, match.Qualification{Degree: q.Degree})
	}

	return descriptor, nil
}

// RankedCandidate is one entry of the cached ranking payload. The JSON shape
// matches what the API service serves for GET /jobs/:job_post_id/candidates.
type RankedCandidate struct {
	CandidateID string       `json:"candidate_id"`
	FullName    string       `json:"full_name"`
	Result      match.Result `json:"result"`
}

// RankedCandidates is the cached ranking payload for one job post
type RankedCandidates struct {
	JobPostID  string            `json:"job_post_id"`
	Candidates []RankedCandidate `json:"candidates"`
}
