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
	"github.com/hirewire/jobboard-be/internal/jobstatus"
	"github.com/hirewire/jobboard-be/shared/postgresql"
)

const jobPostColumns = `
	job_post_id, employer_id, title, description, status, deleted, on_hold,
	skills, experience_required, salary_range, location, min_qualification,
	application_count, created_at, updated_at
`

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

func (s *Storage) CreateJobPost(ctx context.Context, job *model.JobPost) error {
	query := `
		INSERT INTO job_posts (
			job_post_id, employer_id, title, description, status, deleted, on_hold,
			skills, experience_required, salary_range, location, min_qualification,
			application_count, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12,
			$13, $14, $15
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.JobPostID,
		job.EmployerID,
		job.Title,
		job.Description,
		job.Status,
		job.Deleted,
		job.OnHold,
		job.Skills,
		job.ExperienceRequired,
		job.SalaryRange,
		job.Location,
		job.MinQualification,
		job.ApplicationCount,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create job post: %w", err)
	}

	return nil
}

func (s *Storage) GetJobPost(ctx context.Context, jobPostID string) (*model.JobPost, error) {
	var job model.JobPost
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE job_post_id = $1`

	err := s.db.GetContext(ctx, &job, query, jobPostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobPostNotFound
		}
		return nil, fmt.Errorf("failed to get job post: %w", err)
	}

	return &job, nil
}

type JobPostFilter struct {
	EmployerID string
	Status     string
	PageSize   int
	Cursor     *JobPostCursor
}

type JobPostCursor struct {
	CreatedAt time.Time
	JobPostID string
}

// ListJobPosts returns non-deleted posts newest first using keyset
// pagination. One extra row beyond PageSize is fetched so the caller can
// tell whether more results exist.
func (s *Storage) ListJobPosts(ctx context.Context, filter JobPostFilter) ([]model.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE deleted = FALSE`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployerID != "" {
		query += fmt.Sprintf(" AND employer_id = $%d", argIdx)
		args = append(args, filter.EmployerID)
		argIdx++
	}

	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	if filter.Cursor != nil {
		query += fmt.Sprintf(" AND (created_at, job_post_id) < ($%d, $%d)", argIdx, argIdx+1)
		args = append(args, filter.Cursor.CreatedAt, filter.Cursor.JobPostID)
		argIdx += 2
	}

	query += " ORDER BY created_at DESC, job_post_id DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, filter.PageSize+1)

	var jobs []model.JobPost
	err := s.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job posts: %w", err)
	}

	return jobs, nil
}

// JobPostUpdate carries the editable fields of a post.
type JobPostUpdate struct {
	Title              string
	Description        string
	Skills             []string
	ExperienceRequired string
	SalaryRange        string
	Location           string
	MinQualification   string
}

// UpdateJobPostDetails edits a post's content fields. The edit permission is
// re-checked under the row lock so a concurrent fulfill or delete cannot
// slip in between check and write.
func (s *Storage) UpdateJobPostDetails(ctx context.Context, jobPostID string, role jobstatus.Role, upd JobPostUpdate) (*model.JobPost, error) {
	var updated *model.JobPost
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		job, err := lockJobPost(ctx, tx, jobPostID)
		if err != nil {
			return err
		}

		status, err := jobstatus.ParseStatus(job.Status)
		if err != nil {
			return fmt.Errorf("job post %s has corrupt status: %w", jobPostID, err)
		}

		if !jobstatus.CanPerformAction(role, status, jobstatus.ActionEdit, job.Deleted) {
			return fmt.Errorf("%w: %s may not edit a %s post", jobstatus.ErrInvalidTransition, role, job.Status)
		}

		query := `
			UPDATE job_posts
			SET title = $1, description = $2, skills = $3, experience_required = $4,
			    salary_range = $5, location = $6, min_qualification = $7, updated_at = NOW()
			WHERE job_post_id = $8
			RETURNING ` + jobPostColumns

		var row model.JobPost
		err = tx.GetContext(ctx, &row, query,
			upd.Title,
			upd.Description,
			pq.StringArray(upd.Skills),
			upd.ExperienceRequired,
			upd.SalaryRange,
			upd.Location,
			upd.MinQualification,
			jobPostID,
		)
		if err != nil {
			return fmt.Errorf("failed to update job post: %w", err)
		}

		updated = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// TransitionJobPost performs a role-gated lifecycle action (activate, hold,
// fulfill, delete). Both the permission matrix and the transition table are
// re-validated inside the transaction holding the row lock: the pure checks
// a handler ran earlier are necessary but not sufficient under concurrency.
func (s *Storage) TransitionJobPost(ctx context.Context, jobPostID string, role jobstatus.Role, action jobstatus.Action) (*model.JobPost, error) {
	var updated *model.JobPost
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		job, err := lockJobPost(ctx, tx, jobPostID)
		if err != nil {
			return err
		}

		current, err := jobstatus.ParseStatus(job.Status)
		if err != nil {
			return fmt.Errorf("job post %s has corrupt status: %w", jobPostID, err)
		}

		if !jobstatus.CanPerformAction(role, current, action, job.Deleted) {
			return fmt.Errorf("%w: %s may not %s a %s post", jobstatus.ErrInvalidTransition, role, action, job.Status)
		}

		if action == jobstatus.ActionDelete {
			// Soft delete: the status stays where it was and the post
			// becomes frozen.
			query := `
				UPDATE job_posts
				SET deleted = TRUE, updated_at = NOW()
				WHERE job_post_id = $1
				RETURNING ` + jobPostColumns

			var row model.JobPost
			if err := tx.GetContext(ctx, &row, query, jobPostID); err != nil {
				return fmt.Errorf("failed to soft delete job post: %w", err)
			}
			updated = &row
			return nil
		}

		target, ok := jobstatus.TargetStatus(role, action)
		if !ok {
			return fmt.Errorf("%w: action %s does not move status", jobstatus.ErrInvalidTransition, action)
		}

		res, err := jobstatus.ApplyTransition(current, target, job.Deleted)
		if err != nil {
			return err
		}

		updated, err = s.commitStatus(ctx, tx, jobPostID, res)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeactivateJobPost moves an ACTIVE post back to PENDING. There is no
// dedicated action for this edge; the handler restricts it to admins.
func (s *Storage) DeactivateJobPost(ctx context.Context, jobPostID string) (*model.JobPost, error) {
	var updated *model.JobPost
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		job, err := lockJobPost(ctx, tx, jobPostID)
		if err != nil {
			return err
		}

		current, err := jobstatus.ParseStatus(job.Status)
		if err != nil {
			return fmt.Errorf("job post %s has corrupt status: %w", jobPostID, err)
		}

		res, err := jobstatus.ApplyTransition(current, jobstatus.StatusPending, job.Deleted)
		if err != nil {
			return err
		}

		updated, err = s.commitStatus(ctx, tx, jobPostID, res)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CloneJobPost copies a post into a fresh PENDING one owned by the same
// employer. The source is locked so a concurrent delete cannot race the
// permission check.
func (s *Storage) CloneJobPost(ctx context.Context, jobPostID string, role jobstatus.Role) (*model.JobPost, error) {
	var clone *model.JobPost
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		src, err := lockJobPost(ctx, tx, jobPostID)
		if err != nil {
			return err
		}

		status, err := jobstatus.ParseStatus(src.Status)
		if err != nil {
			return fmt.Errorf("job post %s has corrupt status: %w", jobPostID, err)
		}

		if !jobstatus.CanPerformAction(role, status, jobstatus.ActionClone, src.Deleted) {
			return fmt.Errorf("%w: %s may not clone a deleted post", jobstatus.ErrInvalidTransition, role)
		}

		now := time.Now()
		row := model.JobPost{
			JobPostID:          uuid.New().String(),
			EmployerID:         src.EmployerID,
			Title:              src.Title,
			Description:        src.Description,
			Status:             string(jobstatus.StatusPending),
			Skills:             src.Skills,
			ExperienceRequired: src.ExperienceRequired,
			SalaryRange:        src.SalaryRange,
			Location:           src.Location,
			MinQualification:   src.MinQualification,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		query := `
			INSERT INTO job_posts (
				job_post_id, employer_id, title, description, status, deleted, on_hold,
				skills, experience_required, salary_range, location, min_qualification,
				application_count, created_at, updated_at
			) VALUES (
				$1, $2, $3, $4, $5, FALSE, FALSE,
				$6, $7, $8, $9, $10,
				0, $11, $12
			)
		`
		_, err = tx.ExecContext(ctx, query,
			row.JobPostID,
			row.EmployerID,
			row.Title,
			row.Description,
			row.Status,
			row.Skills,
			row.ExperienceRequired,
			row.SalaryRange,
			row.Location,
			row.MinQualification,
			row.CreatedAt,
			row.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to clone job post: %w", err)
		}

		clone = &row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clone, nil
}

// ListOpenJobPosts returns every non-deleted ACTIVE post, the pool for
// candidate-side ranking.
func (s *Storage) ListOpenJobPosts(ctx context.Context) ([]model.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE deleted = FALSE AND status = $1 ORDER BY created_at DESC, job_post_id DESC`

	var jobs []model.JobPost
	if err := s.db.SelectContext(ctx, &jobs, query, string(jobstatus.StatusActive)); err != nil {
		return nil, fmt.Errorf("failed to list open job posts: %w", err)
	}
	return jobs, nil
}

// commitStatus writes a validated transition result. The on_hold column only
// ever takes the value derived by the status engine.
func (s *Storage) commitStatus(ctx context.Context, tx *sqlx.Tx, jobPostID string, res jobstatus.TransitionResult) (*model.JobPost, error) {
	query := `
		UPDATE job_posts
		SET status = $1, on_hold = $2, updated_at = NOW()
		WHERE job_post_id = $3
		RETURNING ` + jobPostColumns

	var row model.JobPost
	if err := tx.GetContext(ctx, &row, query, string(res.Status), res.OnHold, jobPostID); err != nil {
		return nil, fmt.Errorf("failed to commit status transition: %w", err)
	}
	return &row, nil
}

func lockJobPost(ctx context.Context, tx *sqlx.Tx, jobPostID string) (*model.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE job_post_id = $1 FOR UPDATE`

	var job model.JobPost
	err := tx.GetContext(ctx, &job, query, jobPostID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobPostNotFound
		}
		return nil, fmt.Errorf("failed to lock job post: %w", err)
	}
	return &job, nil
}

func (s *Storage) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
