package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/jobboard-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	// Health check endpoint. Reports the real state of the database and
	// broker connections so orchestration can pull an unhealthy instance.
	r.GET("/health", func(c *gin.Context) {
		dbHealthy := deps.DBClient.HealthCheck(c.Request.Context()) == nil
		mqHealthy := deps.RabbitClient.IsConnected()

		status := http.StatusOK
		overall := "healthy"
		if !dbHealthy || !mqHealthy {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}

		c.JSON(status, gin.H{
			"status":   overall,
			"service":  "jobboard-api-service",
			"database": dbHealthy,
			"rabbitmq": mqHealthy,
		})
	})

	jobHandler := handler.NewJobHandler(deps)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		jobs := v1.Group("/jobs")
		{
			// POST /api/v1/jobs - Create a job post (starts in PENDING)
			jobs.POST("", jobHandler.CreateJobPost)

			// GET /api/v1/jobs - List job posts with filtering and pagination
			jobs.GET("", jobHandler.ListJobPosts)

			// GET /api/v1/jobs/:job_post_id - Get job post details
			jobs.GET("/:job_post_id", jobHandler.GetJobPost)

			// PUT /api/v1/jobs/:job_post_id - Edit job post fields
			jobs.PUT("/:job_post_id", jobHandler.UpdateJobPost)

			// POST /api/v1/jobs/:job_post_id/transition - Lifecycle action
			jobs.POST("/:job_post_id/transition", jobHandler.TransitionJobPost)

			// DELETE /api/v1/jobs/:job_post_id - Soft delete
			jobs.DELETE("/:job_post_id", jobHandler.DeleteJobPost)

			// POST /api/v1/jobs/:job_post_id/clone - Copy into a new PENDING post
			jobs.POST("/:job_post_id/clone", jobHandler.CloneJobPost)

			// POST /api/v1/jobs/:job_post_id/applications - Candidate applies
			jobs.POST("/:job_post_id/applications", jobHandler.SubmitApplication)

			// GET /api/v1/jobs/:job_post_id/candidates - Best candidates for the post
			jobs.GET("/:job_post_id/candidates", jobHandler.TopCandidatesForJob)
		}

		candidates := v1.Group("/candidates")
		{
			// GET /api/v1/candidates/:candidate_id/jobs - Best posts for the candidate
			candidates.GET("/:candidate_id/jobs", jobHandler.TopJobsForCandidate)
		}
	}

	return r
}
