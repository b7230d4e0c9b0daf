package handler

import (
	"log/slog"

	"github.com/hirewire/jobboard-be/internal/api/storage"
	"github.com/hirewire/jobboard-be/internal/cache"
	"github.com/hirewire/jobboard-be/internal/ranking"
	"github.com/hirewire/jobboard-be/shared/postgresql"
	"github.com/hirewire/jobboard-be/shared/rabbitmq"
)

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger       *slog.Logger
	DBClient     *postgresql.Client
	RabbitClient *rabbitmq.Client
	Cache        *cache.Cache
	Ranker       *ranking.Service
}

// JobHandler handles job-post HTTP requests
type JobHandler struct {
	logger       *slog.Logger
	storage      *storage.Storage
	rabbitClient *rabbitmq.Client
	cache        *cache.Cache
	ranker       *ranking.Service
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:       deps.Logger,
		storage:      storage.NewStorage(deps.DBClient),
		rabbitClient: deps.RabbitClient,
		cache:        deps.Cache,
		ranker:       deps.Ranker,
	}
}
