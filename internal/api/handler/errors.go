package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirewire/jobboard-be/internal/api/domain"
	"github.com/hirewire/jobboard-be/internal/application"
	"github.com/hirewire/jobboard-be/internal/jobstatus"
)

// respondDomainError maps expected domain conditions to 4xx responses.
// Anything unrecognized is an internal failure.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrJobPostNotFound), errors.Is(err, domain.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, jobstatus.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid status transition"})
	case errors.Is(err, application.ErrNotEligible):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, application.ErrJobNotAcceptingApplications):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, application.ErrDuplicateApplication):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// actorRole reads and validates the caller's role. Authentication itself
// happens upstream; by the time a request reaches these handlers the role
// header is trusted.
func actorRole(c *gin.Context) (jobstatus.Role, bool) {
	role, err := jobstatus.ParseRole(c.GetHeader("X-Actor-Role"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Actor-Role must be admin or employer"})
		return "", false
	}
	return role, true
}
