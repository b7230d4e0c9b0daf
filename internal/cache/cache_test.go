package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKey_StableAcrossParameterOrder(t *testing.T) {
	a := Key("job_candidates", map[string]string{"job_post_id": "j1", "limit": "10"})
	b := Key("job_candidates", map[string]string{"limit": "10", "job_post_id": "j1"})
	assert.Equal(t, a, b)
}

func TestKey_SensitiveToParameters(t *testing.T) {
	base := Key("job_candidates", map[string]string{"job_post_id": "j1", "limit": "10"})

	assert.NotEqual(t, base, Key("job_candidates", map[string]string{"job_post_id": "j2", "limit": "10"}))
	assert.NotEqual(t, base, Key("job_candidates", map[string]string{"job_post_id": "j1", "limit": "20"}))
	assert.NotEqual(t, base, Key("candidate_jobs", map[string]string{"job_post_id": "j1", "limit": "10"}))
}

func TestKey_PrefixedWithEntityType(t *testing.T) {
	key := Key("job_candidates", map[string]string{"job_post_id": "j1"})
	assert.Regexp(t, `^job_candidates:[0-9a-f]{64}$`, key)
}

func TestShouldStore(t *testing.T) {
	c := New(nil, map[string]Policy{
		"job_candidates": {Enabled: true, TTL: time.Minute, MinRecords: 5},
		"candidate_jobs": {Enabled: false, TTL: time.Minute, MinRecords: 0},
	}, nil)

	tests := []struct {
		name        string
		entityType  string
		recordCount int
		want        bool
	}{
		{"enabled and above threshold", "job_candidates", 10, true},
		{"enabled at threshold", "job_candidates", 5, true},
		{"enabled below threshold", "job_candidates", 4, false},
		{"disabled entity type", "candidate_jobs", 100, false},
		{"unknown entity type", "employers", 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.shouldStore(tt.entityType, tt.recordCount))
		})
	}
}
