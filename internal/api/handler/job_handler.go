package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirewire/jobboard-be/internal/api/dto"
	"github.com/hirewire/jobboard-be/internal/api/model"
	"github.com/hirewire/jobboard-be/internal/api/storage"
	"github.com/hirewire/jobboard-be/internal/jobstatus"
)

// CreateJobPost handles POST /api/v1/jobs
// Every post starts its lifecycle in PENDING.
func (h *JobHandler) CreateJobPost(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	var req dto.CreateJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid request body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	if !jobstatus.CanPerformAction(role, jobstatus.StatusPending, jobstatus.ActionCreate, false) {
		c.JSON(http.StatusForbidden, gin.H{"error": "role may not create job posts"})
		return
	}

	now := time.Now()
	job := model.JobPost{
		JobPostID:          uuid.New().String(),
		EmployerID:         req.EmployerID,
		Title:              req.Title,
		Description:        req.Description,
		Status:             string(jobstatus.StatusPending),
		Skills:             req.Skills,
		ExperienceRequired: req.ExperienceRequired,
		SalaryRange:        req.SalaryRange,
		Location:           req.Location,
		MinQualification:   req.MinQualification,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := h.storage.CreateJobPost(c.Request.Context(), &job); err != nil {
		h.logger.Error("Failed to create job post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create job post",
		})
		return
	}

	c.JSON(http.StatusCreated, jobPostToDTO(&job))
}

// GetJobPost handles GET /api/v1/jobs/:job_post_id
func (h *JobHandler) GetJobPost(c *gin.Context) {
	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	job, err := h.storage.GetJobPost(c.Request.Context(), jobPostID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobPostToDTO(job))
}

// ListJobPosts handles GET /api/v1/jobs
// Lists non-deleted posts with optional filtering and cursor pagination.
func (h *JobHandler) ListJobPosts(c *gin.Context) {
	var req dto.ListJobPostsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Error("Invalid query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	if req.Status != "" {
		if _, err := jobstatus.ParseStatus(req.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
			return
		}
	}

	cursor, err := DecodeJobPostCursor(req.Cursor)
	if err != nil {
		h.logger.Error("Invalid cursor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor",
		})
		return
	}

	filter := storage.JobPostFilter{
		EmployerID: req.EmployerID,
		Status:     req.Status,
		PageSize:   req.PageSize,
		Cursor:     cursor,
	}

	jobs, err := h.storage.ListJobPosts(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list job posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list job posts",
		})
		return
	}

	hasMore := len(jobs) > req.PageSize
	if hasMore {
		jobs = jobs[:req.PageSize]
	}

	jobResponse := make([]dto.JobPostDTO, len(jobs))
	for i := range jobs {
		jobResponse[i] = jobPostToDTO(&jobs[i])
	}

	var nextCursor string
	if hasMore {
		last := jobs[len(jobs)-1]
		nextCursor, err = EncodeJobPostCursor(&storage.JobPostCursor{
			CreatedAt: last.CreatedAt,
			JobPostID: last.JobPostID,
		})
		if err != nil {
			h.logger.Error("Failed to encode next cursor", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to encode next cursor",
			})
			return
		}
	}

	c.JSON(http.StatusOK, dto.ListJobPostsResponse{
		JobPosts:   jobResponse,
		NextCursor: nextCursor,
	})
}

// UpdateJobPost handles PUT /api/v1/jobs/:job_post_id
func (h *JobHandler) UpdateJobPost(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	var req dto.UpdateJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	job, err := h.storage.UpdateJobPostDetails(c.Request.Context(), jobPostID, role, storage.JobPostUpdate{
		Title:              req.Title,
		Description:        req.Description,
		Skills:             req.Skills,
		ExperienceRequired: req.ExperienceRequired,
		SalaryRange:        req.SalaryRange,
		Location:           req.Location,
		MinQualification:   req.MinQualification,
	})
	if err != nil {
		h.logger.Warn("Job post update refused",
			slog.String("job_post_id", jobPostID),
			slog.String("role", string(role)),
			slog.String("error", err.Error()),
		)
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobPostToDTO(job))
}

// TransitionJobPost handles POST /api/v1/jobs/:job_post_id/transition
// Body: {"action": "activate" | "hold" | "fulfill" | "deactivate"}
func (h *JobHandler) TransitionJobPost(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	var req dto.TransitionJobPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	var (
		job *model.JobPost
		err error
	)

	// Deactivation is a status write with no dedicated lifecycle action;
	// only admins may use it.
	if req.Action == "deactivate" {
		if role != jobstatus.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "only admin may deactivate a job post"})
			return
		}
		job, err = h.storage.DeactivateJobPost(c.Request.Context(), jobPostID)
	} else {
		var action jobstatus.Action
		action, err = jobstatus.ParseAction(req.Action)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
			return
		}
		job, err = h.storage.TransitionJobPost(c.Request.Context(), jobPostID, role, action)
	}

	if err != nil {
		h.logger.Warn("Job post transition refused",
			slog.String("job_post_id", jobPostID),
			slog.String("role", string(role)),
			slog.String("action", req.Action),
			slog.String("error", err.Error()),
		)
		respondDomainError(c, err)
		return
	}

	h.logger.Info("Job post transitioned",
		slog.String("job_post_id", jobPostID),
		slog.String("role", string(role)),
		slog.String("action", req.Action),
		slog.String("status", job.Status),
	)

	// A post going live changes its candidate ranking; refresh it off the
	// request path.
	if job.Status == string(jobstatus.StatusActive) && !job.Deleted {
		h.publishMatchRefresh(c, job.JobPostID)
	}

	c.JSON(http.StatusOK, jobPostToDTO(job))
}

// DeleteJobPost handles DELETE /api/v1/jobs/:job_post_id
// Soft delete: the record survives with deleted=true and accepts nothing
// further.
func (h *JobHandler) DeleteJobPost(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	job, err := h.storage.TransitionJobPost(c.Request.Context(), jobPostID, role, jobstatus.ActionDelete)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.logger.Info("Job post soft deleted",
		slog.String("job_post_id", jobPostID),
		slog.String("role", string(role)),
		slog.String("status", job.Status),
	)

	c.Status(http.StatusNoContent)
}

// CloneJobPost handles POST /api/v1/jobs/:job_post_id/clone
// The clone always starts over in PENDING.
func (h *JobHandler) CloneJobPost(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	jobPostID := c.Param("job_post_id")
	if _, err := uuid.Parse(jobPostID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "job_post_id must be a valid UUID",
		})
		return
	}

	clone, err := h.storage.CloneJobPost(c.Request.Context(), jobPostID, role)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, jobPostToDTO(clone))
}

func jobPostToDTO(job *model.JobPost) dto.JobPostDTO {
	return dto.JobPostDTO{
		JobPostID:          job.JobPostID,
		EmployerID:         job.EmployerID,
		Title:              job.Title,
		Description:        job.Description,
		Status:             job.Status,
		Deleted:            job.Deleted,
		OnHold:             job.OnHold,
		Skills:             []string(job.Skills),
		ExperienceRequired: job.ExperienceRequired,
		SalaryRange:        job.SalaryRange,
		Location:           job.Location,
		MinQualification:   job.MinQualification,
		ApplicationCount:   job.ApplicationCount,
		CreatedAt:          job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          job.UpdatedAt.Format(time.RFC3339),
	}
}
