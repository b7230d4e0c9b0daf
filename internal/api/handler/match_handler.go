package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirewire/jobboard-be/internal/api/domain"
	"github.com/hirewire/jobboard-be/internal/api/dto"
	"github.com/hirewire/jobboard-be/internal/match"
	"github.com/hirewire/jobboard-be/internal/ranking"
)

// TopCandidatesForJob handles GET /api/v1/jobs/:job_post_id/candidates
// Ranks verified candidates against the post. Results are served from the
// TTL cache when a recent computation exists.
func (h *JobHandler) TopCandidatesForJob(c *gin.Context) {
	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	limit := parseLimit(c.Query("limit"))
	params := map[string]string{
		"job_post_id": jobPostID,
		"limit":       strconv.Itoa(limit),
	}

	var cached dto.RankedCandidatesResponse
	hit, err := h.cache.Get(c.Request.Context(), domain.CacheEntityJobCandidates, params, &cached)
	if err != nil {
		h.logger.Warn("Cache read failed", slog.String("error", err.Error()))
	}
	if hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	job, err := h.storage.GetJobPost(c.Request.Context(), jobPostID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	rows, err := h.storage.ListVerifiedCandidates(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list candidates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to rank candidates",
		})
		return
	}

	pool := make([]match.Candidate, 0, len(rows))
	names := make(map[string]string, len(rows))
	for i := range rows {
		descriptor, err := rows[i].ToDescriptor()
		if err != nil {
			h.logger.Warn("Skipping candidate with corrupt profile",
				slog.String("candidate_id", rows[i].CandidateID),
				slog.String("error", err.Error()),
			)
			continue
		}
		pool = append(pool, descriptor)
		names[descriptor.ID] = rows[i].FullName
	}

	ranked := h.ranker.TopCandidates(job.ToDescriptor(), pool, limit)

	resp := dto.RankedCandidatesResponse{
		JobPostID:  jobPostID,
		Candidates: make([]dto.RankedCandidateDTO, len(ranked)),
	}
	for i, r := range ranked {
		resp.Candidates[i] = dto.RankedCandidateDTO{
			CandidateID: r.Candidate.ID,
			FullName:    names[r.Candidate.ID],
			Result:      r.Result,
		}
	}

	if err := h.cache.Set(c.Request.Context(), domain.CacheEntityJobCandidates, params, resp, len(resp.Candidates)); err != nil {
		h.logger.Warn("Cache write failed", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, resp)
}

// TopJobsForCandidate handles GET /api/v1/candidates/:candidate_id/jobs
// Ranks live ACTIVE posts against the candidate.
func (h *JobHandler) TopJobsForCandidate(c *gin.Context) {
	candidateID := c.Param("candidate_id")
	if _, err := uuid.Parse(candidateID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "candidate_id must be a valid UUID",
		})
		return
	}

	limit := parseLimit(c.Query("limit"))
	params := map[string]string{
		"candidate_id": candidateID,
		"limit":        strconv.Itoa(limit),
	}

	var cached dto.RankedJobsResponse
	hit, err := h.cache.Get(c.Request.Context(), domain.CacheEntityCandidateJobs, params, &cached)
	if err != nil {
		h.logger.Warn("Cache read failed", slog.String("error", err.Error()))
	}
	if hit {
		c.JSON(http.StatusOK, cached)
		return
	}

	candidateRow, err := h.storage.GetCandidate(c.Request.Context(), candidateID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	candidate, err := candidateRow.ToDescriptor()
	if err != nil {
		h.logger.Error("Corrupt candidate profile",
			slog.String("candidate_id", candidateID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to rank job posts",
		})
		return
	}

	rows, err := h.storage.ListOpenJobPosts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list open job posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to rank job posts",
		})
		return
	}

	pool := make([]match.Job, len(rows))
	titles := make(map[string]string, len(rows))
	for i := range rows {
		pool[i] = rows[i].ToDescriptor()
		titles[rows[i].JobPostID] = rows[i].Title
	}

	ranked := h.ranker.TopJobs(candidate, pool, limit)

	resp := dto.RankedJobsResponse{
		CandidateID: candidateID,
		JobPosts:    make([]dto.RankedJobDTO, len(ranked)),
	}
	for i, r := range ranked {
		resp.JobPosts[i] = dto.RankedJobDTO{
			JobPostID: r.Job.ID,
			Title:     titles[r.Job.ID],
			Result:    r.Result,
		}
	}

	if err := h.cache.Set(c.Request.Context(), domain.CacheEntityCandidateJobs, params, resp, len(resp.JobPosts)); err != nil {
		h.logger.Warn("Cache write failed", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, resp)
}

func parseLimit(raw string) int {
	if raw == "" {
		return ranking.DefaultLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return ranking.DefaultLimit
	}
	if limit > 100 {
		return 100
	}
	return limit
}
