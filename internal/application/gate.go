// Package application decides whether a candidate may submit an application
// to a job post.
package application

import (
	"errors"

	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

var (
	// ErrNotEligible is returned when the candidate is deleted or the
	// profile is not verified.
	ErrNotEligible = errors.New("candidate is not eligible to apply")

	// ErrJobNotAcceptingApplications is returned when the post is deleted
	// or not ACTIVE.
	ErrJobNotAcceptingApplications = errors.New("job post is not accepting applications")

	// ErrDuplicateApplication is returned when the candidate has already
	// applied to this post.
	ErrDuplicateApplication = errors.New("candidate has already applied to this job post")
)

// CanApply reports whether the candidate may apply to the job. A nil return
// instructs the caller to insert the application record and increment the
// post's application counter. Both writes must happen in one transaction;
// the gate performs neither.
func CanApply(candidate match.Candidate, job match.Job, hasExistingApplication bool) error {
	if candidate.Deleted || candidate.ProfileStatus != match.ProfileVerified {
		return ErrNotEligible
	}
	if !jobstatus.AcceptsApplications(job.Status, job.Deleted) {
		return ErrJobNotAcceptingApplications
	}
	if hasExistingApplication {
		return ErrDuplicateApplication
	}
	return nil
}
