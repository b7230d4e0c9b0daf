package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
)

func TestJobPost_Descriptor(t *testing.T) {
	post := &JobPost{
		JobPostID:          "7f8c1a2e-0000-0000-0000-000000000001",
		Status:             "ACTIVE",
		Skills:             []string{"Go", "PostgreSQL"},
		ExperienceRequired: "3-5 years",
		SalaryRange:        "8-12",
		Location:           "Pune",
		MinQualification:   "Bachelor of Engineering",
	}

	descriptor := post.Descriptor()

	assert.Equal(t, post.JobPostID, descriptor.ID)
	assert.Equal(t, jobstatus.StatusActive, descriptor.Status)
	assert.False(t, descriptor.Deleted)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, descriptor.Skills)
	assert.Equal(t, "Pune", descriptor.Location)
}

func TestCandidate_Descriptor(t *testing.T) {
	t.Run("full profile", func(t *testing.T) {
		c := &Candidate{
			CandidateID:    "7f8c1a2e-0000-0000-0000-000000000002",
			FullName:       "Asha Rao",
			Skills:         []string{"Go", "Redis"},
			Experience:     []byte(`[{"company":"Acme","position":"Engineer","duration":"4 years"}]`),
			ExpectedSalary: 900000,
			Address:        "Bangalore",
			Qualifications: []byte(`[{"degree":"Master of Technology"}]`),
		}

		descriptor, err := c.Descriptor()
		require.NoError(t, err)

		assert.Equal(t, c.CandidateID, descriptor.ID)
		assert.Equal(t, match.ProfileVerified, descriptor.ProfileStatus)
		assert.Equal(t, 900000, descriptor.ExpectedSalary)
		require.Len(t, descriptor.Experience, 1)
		assert.Equal(t, "4 years", descriptor.Experience[0].Duration)
		require.Len(t, descriptor.Qualifications, 1)
		assert.Equal(t, "Master of Technology", descriptor.Qualifications[0].Degree)
	})

	t.Run("empty jsonb columns", func(t *testing.T) {
		c := &Candidate{CandidateID: "7f8c1a2e-0000-0000-0000-000000000003"}

		descriptor, err := c.Descriptor()
		require.NoError(t, err)
		assert.Empty(t, descriptor.Experience)
		assert.Empty(t, descriptor.Qualifications)
	})

	t.Run("corrupt experience json", func(t *testing.T) {
		c := &Candidate{
			CandidateID: "7f8c1a2e-0000-0000-0000-000000000004",
			Experience:  []byte(`{not json`),
		}

		_, err := c.Descriptor()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode candidate experience")
	})
}
