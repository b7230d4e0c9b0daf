package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hirewire/jobboard-be/internal/cache"
	"github.com/hirewire/jobboard-be/internal/ranking"
	"github.com/hirewire/jobboard-be/internal/worker/domain"
	"github.com/hirewire/jobboard-be/internal/worker/storage"
	"github.com/hirewire/jobboard-be/shared/postgresql"
	"github.com/hirewire/jobboard-be/shared/rabbitmq"
)

// Config holds worker configuration
type Config struct {
	Logger         *slog.Logger
	DBClient       *postgresql.Client
	RabbitClient   *rabbitmq.Client
	Cache          *cache.Cache
	Concurrency    int
	PrefetchCount  int
	RefreshTimeout time.Duration
	QueueName      string
	RankLimit      int
}

// Worker consumes match-refresh messages and recomputes candidate rankings
type Worker struct {
	logger            *slog.Logger
	storage           *storage.Storage
	rabbitClient      *rabbitmq.Client
	cache             *cache.Cache
	ranker            *ranking.Service
	concurrency       int
	prefetchCount     int
	refreshTimeout    time.Duration
	rabbitMQQueueName string
	rankLimit         int
	workerID          string
	jobsChan          chan *domain.RefreshMessage
	wg                sync.WaitGroup
	stopChan          chan struct{}
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	rankLimit := cfg.RankLimit
	if rankLimit <= 0 {
		rankLimit = ranking.DefaultLimit
	}

	return &Worker{
		logger:            cfg.Logger,
		storage:           storage.NewStorage(cfg.DBClient.GetDB(), cfg.Logger),
		rabbitClient:      cfg.RabbitClient,
		cache:             cfg.Cache,
		ranker:            ranking.NewService(),
		concurrency:       cfg.Concurrency,
		prefetchCount:     cfg.PrefetchCount,
		refreshTimeout:    cfg.RefreshTimeout,
		rabbitMQQueueName: cfg.QueueName,
		rankLimit:         rankLimit,
		workerID:          fmt.Sprintf("refresh-worker-%s", uuid.New().String()[:8]),
		jobsChan:          make(chan *domain.RefreshMessage, cfg.Concurrency),
		stopChan:          make(chan struct{}),
	}
}

// Start begins consuming refresh messages. Blocks until the context is
// canceled or the delivery channel closes.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting match-refresh worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("refresh_timeout", w.refreshTimeout),
	)

	deliveries, err := w.setupConsumer(ctx)
	if err != nil {
		return fmt.Errorf("failed to set up consumer: %w", err)
	}

	w.spawnWorkerPool(ctx)
	w.startMessageDispatcher(ctx, deliveries)

	return nil
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Worker stopped")
}
