package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/hirewire/jobboard-be/internal/match"
	"github.com/hirewire/jobboard-be/internal/worker/domain"
)

// Storage handles all database operations for the worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// GetJobPost retrieves the fields of a job post that the refresh pipeline
// needs. Deleted posts are still returned; the processor decides what to do
// with them.
func (s *Storage) GetJobPost(ctx context.Context, jobPostID string) (*domain.JobPost, error) {
	query := `
		SELECT job_post_id, status, deleted, skills, experience_required,
		       salary_range, location, min_qualification
		FROM job_posts
		WHERE job_post_id = $1
	`

	var post domain.JobPost
	err := s.db.QueryRowContext(ctx, query, jobPostID).Scan(
		&post.JobPostID,
		&post.Status,
		&post.Deleted,
		pq.Array(&post.Skills),
		&post.ExperienceRequired,
		&post.SalaryRange,
		&post.Location,
		&post.MinQualification,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobPostNotFound
		}
		return nil, fmt.Errorf("failed to get job post: %w", err)
	}

	return &post, nil
}

// ListVerifiedCandidates returns the matching pool: verified, non-deleted
// candidate profiles.
func (s *Storage) ListVerifiedCandidates(ctx context.Context) ([]domain.Candidate, error) {
	query := `
		SELECT candidate_id, full_name, skills, experience, expected_salary,
		       address, qualifications
		FROM candidates
		WHERE deleted = FALSE AND profile_status = $1
		ORDER BY created_at, candidate_id
	`

	rows, err := s.db.QueryContext(ctx, query, string(match.ProfileVerified))
	if err != nil {
		return nil, fmt.Errorf("failed to list verified candidates: %w", err)
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		err := rows.Scan(
			&c.CandidateID,
			&c.FullName,
			pq.Array(&c.Skills),
			&c.Experience,
			&c.ExpectedSalary,
			&c.Address,
			&c.Qualifications,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate candidate rows: %w", err)
	}

	return candidates, nil
}
