package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

// JobPost is the jobs table row. on_hold is a projection of status kept as a
// queryable column; it is written only on the transition-commit path.
type JobPost struct {
	JobPostID          string         `db:"job_post_id"`
	EmployerID         string         `db:"employer_id"`
	Title              string         `db:"title"`
	Description        string         `db:"description"`
	Status             string         `db:"status"`
	Deleted            bool           `db:"deleted"`
	OnHold             bool           `db:"on_hold"`
	Skills             pq.StringArray `db:"skills"`
	ExperienceRequired string         `db:"experience_required"`
	SalaryRange        string         `db:"salary_range"`
	Location           string         `db:"location"`
	MinQualification   string         `db:"min_qualification"`
	ApplicationCount   int            `db:"application_count"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// Candidate is the candidates table row. Experience and Qualifications are
// JSONB columns.
type Candidate struct {
	CandidateID    string          `db:"candidate_id"`
	FullName       string          `db:"full_name"`
	Skills         pq.StringArray  `db:"skills"`
	Experience     json.RawMessage `db:"experience"`
	ExpectedSalary int             `db:"expected_salary"`
	Address        string          `db:"address"`
	Qualifications json.RawMessage `db:"qualifications"`
	ProfileStatus  string          `db:"profile_status"`
	Deleted        bool            `db:"deleted"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// Application is the applications table row. (job_post_id, candidate_id) is
// unique so a candidate can apply to a post at most once.
type Application struct {
	ApplicationID string    `db:"application_id"`
	JobPostID     string    `db:"job_post_id"`
	CandidateID   string    `db:"candidate_id"`
	CreatedAt     time.Time `db:"created_at"`
}

type experienceJSON struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Duration string `json:"duration"`
}

type qualificationJSON struct {
	Degree string `json:"degree"`
}

// ToDescriptor converts the row into the snapshot the matching and status
// engines consume.
func (j *JobPost) ToDescriptor() match.Job {
	return match.Job{
		ID:                 j.JobPostID,
		Status:             jobstatus.Status(j.Status),
		Deleted:            j.Deleted,
		Skills:             []string(j.Skills),
		ExperienceRequired: j.ExperienceRequired,
		SalaryRange:        j.SalaryRange,
		Location:           j.Location,
		MinQualification:   j.MinQualification,
	}
}

// ToDescriptor converts the row into the snapshot the matching engine and
// the application gate consume.
func (c *Candidate) ToDescriptor() (match.Candidate, error) {
	var history []experienceJSON
	if len(c.Experience) > 0 {
		if err := json.Unmarshal(c.Experience, &history); err != nil {
			return match.Candidate{}, fmt.Errorf("failed to decode candidate experience: %w", err)
		}
	}

	var degrees []qualificationJSON
	if len(c.Qualifications) > 0 {
		if err := json.Unmarshal(c.Qualifications, &degrees); err != nil {
			return match.Candidate{}, fmt.Errorf("failed to decode candidate qualifications: %w", err)
		}
	}

	descriptor := match.Candidate{
		ID:             c.CandidateID,
		Skills:         []string(c.Skills),
		ExpectedSalary: c.ExpectedSalary,
		Address:        c.Address,
		ProfileStatus:  match.ProfileStatus(c.ProfileStatus),
		Deleted:        c.Deleted,
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
