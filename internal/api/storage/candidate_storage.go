package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirewire/jobboard-be/internal/api/domain"
	"github.com/hirewire/jobboard-be/internal/api/model"
	"github.com/hirewire/jobboard-be/internal/application"
	"github.com/hirewire/jobboard-be/internal/match"
)

const candidateColumns = `
	candidate_id, full_name, skills, experience, expected_salary, address,
	qualifications, profile_status, deleted, created_at, updated_at
`

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

func (s *Storage) GetCandidate(ctx context.Context, candidateID string) (*model.Candidate, error) {
	var candidate model.Candidate
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE candidate_id = $1`

	err := s.db.GetContext(ctx, &candidate, query, candidateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}

	return &candidate, nil
}

// ListVerifiedCandidates returns the matching pool: verified, non-deleted
// profiles.
func (s *Storage) ListVerifiedCandidates(ctx context.Context) ([]model.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE deleted = FALSE AND profile_status = $1 ORDER BY created_at, candidate_id`

	var candidates []model.Candidate
	if err := s.db.SelectContext(ctx, &candidates, query, string(match.ProfileVerified)); err != nil {
		return nil, fmt.Errorf("failed to list verified candidates: %w", err)
	}
	return candidates, nil
}

// HasApplication reports whether the candidate already applied to the post.
func (s *Storage) HasApplication(ctx context.Context, jobPostID, candidateID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_post_id = $1 AND candidate_id = $2)`

	if err := s.db.GetContext(ctx, &exists, query, jobPostID, candidateID); err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return exists, nil
}

// CreateApplication inserts an application and increments the post's
// application counter in one transaction. The gate is re-run under the row
// lock; concurrent applications to the same post serialize on it, so the
// counter cannot under-count and a duplicate cannot slip past the check.
func (s *Storage) CreateApplication(ctx context.Context, jobPostID, candidateID string) (*model.Application, error) {
	var created *model.Application
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		job, err := lockJobPost(ctx, tx, jobPostID)
		if err != nil {
			return err
		}

		var candidateRow model.Candidate
		query := `SELECT ` + candidateColumns + ` FROM candidates WHERE candidate_id = $1`
		if err := tx.GetContext(ctx, &candidateRow, query, candidateID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrCandidateNotFound
			}
			return fmt.Errorf("failed to get candidate: %w", err)
		}

		candidate, err := candidateRow.ToDescriptor()
		if err != nil {
			return err
		}

		var exists bool
		existsQuery := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_post_id = $1 AND candidate_id = $2)`
		if err := tx.GetContext(ctx, &exists, existsQuery, jobPostID, candidateID); err != nil {
			return fmt.Errorf("failed to check existing application: %w", err)
		}

		if err := application.CanApply(candidate, job.ToDescriptor(), exists); err != nil {
			return err
		}

		row := model.Application{
			ApplicationID: uuid.New().String(),
			JobPostID:     jobPostID,
			CandidateID:   candidateID,
			CreatedAt:     time.Now(),
		}

		insert := `
			INSERT INTO applications (application_id, job_post_id, candidate_id, created_at)
			VALUES ($1, $2, $3, $4)
		`
		if _, err := tx.ExecContext(ctx, insert, row.ApplicationID, row.JobPostID, row.CandidateID, row.CreatedAt); err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
				return application.ErrDuplicateApplication
			}
			return fmt.Errorf("failed to create application: %w", err)
		}

		increment := `UPDATE job_posts SET application_count = application_count + 1, updated_at = NOW() WHERE job_post_id = $1`
		if _, err := tx.ExecContext(ctx, increment, jobPostID); err != nil {
			return fmt.Errorf("failed to increment application count: %w", err)
		}

		created = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
