package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

func activeJob(skills ...string) match.Job {
	return match.Job{
		ID:     "job-1",
		Status: jobstatus.StatusActive,
		Skills: skills,
	}
}

func verifiedCandidate(id string, skills ...string) match.Candidate {
	return match.Candidate{
		ID:            id,
		Skills:        skills,
		ProfileStatus: match.ProfileVerified,
	}
}

func TestTopCandidates_EmptyPool(t *testing.T) {
	svc := NewService()

	got := svc.TopCandidates(activeJob("Go"), nil, 0)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTopCandidates_FiltersUnverifiedAndDeleted(t *testing.T) {
	svc := NewService()
	pool := []match.Candidate{
		verifiedCandidate("c1", "Go"),
		{ID: "c2", Skills: []string{"Go"}, ProfileStatus: match.ProfilePending},
		{ID: "c3", Skills: []string{"Go"}, ProfileStatus: match.ProfileRejected},
		{ID: "c4", Skills: []string{"Go"}, ProfileStatus: match.ProfileVerified, Deleted: true},
	}

	got := svc.TopCandidates(activeJob("Go"), pool, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].Candidate.ID)
}

func TestTopCandidates_SortedDescending(t *testing.T) {
	svc := NewService()
	pool := []match.Candidate{
		verifiedCandidate("weak", "PHP"),
		verifiedCandidate("strong", "Go", "SQL"),
		verifiedCandidate("partial", "Go"),
	}

	got := svc.TopCandidates(activeJob("Go", "SQL"), pool, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "strong", got[0].Candidate.ID)
	assert.Equal(t, "partial", got[1].Candidate.ID)
	assert.Equal(t, "weak", got[2].Candidate.ID)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Result.Score, got[i].Result.Score)
	}
}

func TestTopCandidates_TiesKeepInputOrder(t *testing.T) {
	svc := NewService()
	pool := []match.Candidate{
		verifiedCandidate("first", "Go"),
		verifiedCandidate("second", "Go"),
		verifiedCandidate("third", "Go"),
	}

	got := svc.TopCandidates(activeJob("Go"), pool, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Candidate.ID)
	assert.Equal(t, "second", got[1].Candidate.ID)
	assert.Equal(t, "third", got[2].Candidate.ID)
}

func TestTopCandidates_DefaultLimit(t *testing.T) {
	svc := NewService()
	var pool []match.Candidate
	for i := 0; i < 25; i++ {
		pool = append(pool, verifiedCandidate(fmt.Sprintf("c%d", i), "Go"))
	}

	assert.Len(t, svc.TopCandidates(activeJob("Go"), pool, 0), DefaultLimit)
	assert.Len(t, svc.TopCandidates(activeJob("Go"), pool, 5), 5)
	assert.Len(t, svc.TopCandidates(activeJob("Go"), pool, 100), 25)
}

func TestTopJobs_FiltersIneligibleStatuses(t *testing.T) {
	svc := NewService()
	pool := []match.Job{
		{ID: "active", Status: jobstatus.StatusActive, Skills: []string{"Go"}},
		{ID: "pending", Status: jobstatus.StatusPending, Skills: []string{"Go"}},
		{ID: "held", Status: jobstatus.StatusOnHold, Skills: []string{"Go"}},
		{ID: "fulfilled", Status: jobstatus.StatusFulfilled, Skills: []string{"Go"}},
		{ID: "deleted", Status: jobstatus.StatusActive, Skills: []string{"Go"}, Deleted: true},
	}

	got := svc.TopJobs(verifiedCandidate("c1", "Go"), pool, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "active", got[0].Job.ID)
}

func TestTopJobs_EmptyPool(t *testing.T) {
	svc := NewService()

	got := svc.TopJobs(verifiedCandidate("c1", "Go"), nil, 0)
	require.NotNil(t, got)
	assert.Empty(t, got)
}
