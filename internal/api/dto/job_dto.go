package dto

import "github.com/hirewire/jobboard-be/internal/match"

type CreateJobPostRequest struct {
	EmployerID         string   `json:"employer_id" binding:"required"`
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description"`
	Skills             []string `json:"skills"`
	ExperienceRequired string   `json:"experience_required"`
	SalaryRange        string   `json:"salary_range"`
	Location           string   `json:"location"`
	MinQualification   string   `json:"min_qualification"`
}

type UpdateJobPostRequest struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Skills             []string `json:"skills"`
	ExperienceRequired string   `json:"experience_required"`
	SalaryRange        string   `json:"salary_range"`
	Location           string   `json:"location"`
	MinQualification   string   `json:"min_qualification"`
}

type TransitionJobPostRequest struct {
	Action string `json:"action" binding:"required"`
}

type SubmitApplicationRequest struct {
	CandidateID string `json:"candidate_id" binding:"required"`
}

type ListJobPostsRequest struct {
	EmployerID string `form:"employer_id"`
	Status     string `form:"status"`
	PageSize   int    `form:"page_size"`
	Cursor     string `form:"cursor"`
}

type ListJobPostsResponse struct {
	JobPosts   []JobPostDTO `json:"job_posts"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

type JobPostDTO struct {
	JobPostID          string   `json:"job_post_id"`
	EmployerID         string   `json:"employer_id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	Deleted            bool     `json:"deleted"`
	OnHold             bool     `json:"on_hold"`
	Skills             []string `json:"skills"`
	ExperienceRequired string   `json:"experience_required"`
	SalaryRange        string   `json:"salary_range"`
	Location           string   `json:"location"`
	MinQualification   string   `json:"min_qualification"`
	ApplicationCount   int      `json:"application_count"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

type RankedCandidateDTO struct {
	CandidateID string       `json:"candidate_id"`
	FullName    string       `json:"full_name"`
	Result      match.Result `json:"result"`
}

type RankedCandidatesResponse struct {
	JobPostID  string               `json:"job_post_id"`
	Candidates []RankedCandidateDTO `json:"candidates"`
}

type RankedJobDTO struct {
	JobPostID string       `json:"job_post_id"`
	Title     string       `json:"title"`
	Result    match.Result `json:"result"`
}

type RankedJobsResponse struct {
	CandidateID string         `json:"candidate_id"`
	JobPosts    []RankedJobDTO `json:"job_posts"`
}
