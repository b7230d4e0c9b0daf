package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirewire/jobboard-be/internal/api/dto"
)

// SubmitApplication handles POST /api/v1/jobs/:job_post_id/applications
// The eligibility gate runs inside the storage transaction that inserts the
// record and bumps the counter, so concurrent submissions cannot slip past it.
func (h *JobHandler) SubmitApplication(c *gin.Context) {
	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if _, err := uuid.Parse(req.CandidateID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "candidate_id must be a valid UUID",
		})
		return
	}

	created, err := h.storage.CreateApplication(c.Request.Context(), jobPostID, req.CandidateID)
	if err != nil {
		h.logger.Warn("Application refused",
			slog.String("job_post_id", jobPostID),
			slog.String("candidate_id", req.CandidateID),
			slog.String("error", err.Error()),
		)
		respondDomainError(c, err)
		return
	}

	h.logger.Info("Application submitted",
		slog.String("application_id", created.ApplicationID),
		slog.String("job_post_id", jobPostID),
		slog.String("candidate_id", req.CandidateID),
	)

	// A new application changes the post's ranking context; recompute off
	// the request path.
	h.publishMatchRefresh(c, jobPostID)

	c.JSON(http.StatusCreated, gin.H{
		"application_id": created.ApplicationID,
		"job_post_id":    created.JobPostID,
		"candidate_id":   created.CandidateID,
		"created_at":     created.CreatedAt,
	})
}

// publishMatchRefresh asks the worker service to recompute and re-cache the
// post's candidate ranking. Publishing is best effort; a lost message only
// delays the refresh until the cache entry expires.
func (h *JobHandler) publishMatchRefresh(c *gin.Context, jobPostID string) {
	body, err := json.Marshal(map[string]string{"job_post_id": jobPostID})
	if err != nil {
		h.logger.Error("Failed to encode match refresh message",
			slog.String("job_post_id", jobPostID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.rabbitClient.PublishWithRetry(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Warn("Failed to publish match refresh message",
			slog.String("job_post_id", jobPostID),
			slog.String("error", err.Error()),
		)
		return
	}

	h.logger.Debug("Match refresh message published",
		slog.String("job_post_id", jobPostID),
	)
}
