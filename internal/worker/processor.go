package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/hirewire/jobboard-be/internal/cache"
	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/internal/match"
	"github.com/hirewire/jobboard-be/internal/worker/domain"
)

// processRefresh recomputes the candidate ranking for one job post and warms
// the cache entry the API serves reads from. Returning nil acks the message.
func (w *Worker) processRefresh(ctx context.Context, msg *domain.RefreshMessage) error {
	w.logger.Info("Processing match refresh",
		slog.String("job_post_id", msg.JobPostID),
		slog.String("worker_id", w.workerID),
	)

	refreshCtx, cancel := context.WithTimeout(ctx, w.refreshTimeout)
	defer cancel()

	post, err := w.storage.GetJobPost(refreshCtx, msg.JobPostID)
	if err != nil {
		if errors.Is(err, domain.ErrJobPostNotFound) {
			// The post was deleted after the refresh was published. Nothing
			// to recompute, ack and move on.
			w.logger.Warn("Job post gone, skipping refresh",
				slog.String("job_post_id", msg.JobPostID),
			)
			return nil
		}
		return domain.NewRetryableError(fmt.Errorf("failed to load job post: %w", err))
	}

	if !jobstatus.AcceptsApplications(jobstatus.Status(post.Status), post.Deleted) {
		// Only live ACTIVE posts get a warmed ranking. The API never serves
		// rankings for anything else.
		w.logger.Info("Job post not live, skipping refresh",
			slog.String("job_post_id", msg.JobPostID),
			slog.String("status", post.Status),
			slog.Bool("deleted", post.Deleted),
		)
		return nil
	}

	rows, err := w.storage.ListVerifiedCandidates(refreshCtx)
	if err != nil {
		return domain.NewRetryableError(fmt.Errorf("failed to list candidates: %w", err))
	}

	pool := make([]match.Candidate, 0, len(rows))
	names := make(map[string]string, len(rows))
	for i := range rows {
		descriptor, err := rows[i].Descriptor()
		if err != nil {
			w.logger.Warn("Skipping candidate with corrupt profile",
				slog.String("candidate_id", rows[i].CandidateID),
				slog.String("error", err.Error()),
			)
			continue
		}
		pool = append(pool, descriptor)
		names[descriptor.ID] = rows[i].FullName
	}

	ranked := w.ranker.TopCandidates(post.Descriptor(), pool, w.rankLimit)

	payload := domain.RankedCandidates{
		JobPostID:  msg.JobPostID,
		Candidates: make([]domain.RankedCandidate, len(ranked)),
	}
	for i, r := range ranked {
		payload.Candidates[i] = domain.RankedCandidate{
			CandidateID: r.Candidate.ID,
			FullName:    names[r.Candidate.ID],
			Result:      r.Result,
		}
	}

	params := map[string]string{
		"job_post_id": msg.JobPostID,
		"limit":       strconv.Itoa(w.rankLimit),
	}
	if err := w.cache.Set(refreshCtx, domain.CacheEntityJobCandidates, params, payload, len(payload.Candidates)); err != nil {
		return domain.NewRetryableError(fmt.Errorf("failed to warm cache: %w", err))
	}

	w.logger.Info("Match refresh completed",
		slog.String("job_post_id", msg.JobPostID),
		slog.String("cache_key", cache.Key(domain.CacheEntityJobCandidates, params)),
		slog.Int("candidates_ranked", len(pool)),
		slog.Int("candidates_cached", len(payload.Candidates)),
	)

	return nil
}
