// Package match computes compatibility scores between job posts and
// candidate profiles. Scoring is pure and deterministic: identical inputs
// always produce identical results, no I/O, safe for concurrent use.
package match

import "github.com/hirewire/jobboard-be/internal/jobstatus"

// ProfileStatus mirrors the candidate profile_status column.
type ProfileStatus string

const (
	ProfilePending  ProfileStatus = "pending"
	ProfileVerified ProfileStatus = "verified"
	ProfileRejected ProfileStatus = "rejected"
)

// Job is the job-post snapshot the engine scores against. The engine never
// persists it; callers pass a fresh descriptor on each call.
type Job struct {
	ID     string
	Status jobstatus.Status
	// Deleted is monotonic: once true it never flips back.
	Deleted bool
	Skills  []string
	// ExperienceRequired is free text holding a year count, e.g. "5+ years".
	ExperienceRequired string
	// SalaryRange is free text "<min>-<max>" in units of one lakh (100000).
	SalaryRange      string
	Location         string
	MinQualification string
}

// ExperienceEntry is one position in a candidate's work history.
type ExperienceEntry struct {
	Company  string
	Position string
	// Duration is free text holding a year count, e.g. "3 years".
	Duration string
}

// Qualification is one degree a candidate holds.
type Qualification struct {
	Degree string
}

// Candidate is the candidate-profile snapshot the engine scores.
type Candidate struct {
	ID             string
	Skills         []string
	Experience     []ExperienceEntry
	ExpectedSalary int
	Address        string
	Qualifications []Qualification
	ProfileStatus  ProfileStatus
	Deleted        bool
}

// Factors holds the five 0-100 sub-scores behind a match score.
type Factors struct {
	Skills        int `json:"skills_score"`
	Experience    int `json:"experience_score"`
	Salary        int `json:"salary_score"`
	Location      int `json:"location_score"`
	Qualification int `json:"qualification_score"`
}

// Result is a 0-100 compatibility score plus the sub-factors that produced it.
type Result struct {
	Score   int     `json:"score"`
	Factors Factors `json:"factors"`
}
