package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a submission id does not exist.
var ErrNotFound = errors.New("submission not found")

// Repository defines the interface for submission data access.
type Repository interface {
	CreateSubmission(ctx context.Context, submission *Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error)
	ListSubmissions(ctx context.Context, filter *SubmissionFilter) ([]*Submission, int, error)
	UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, update *StatusUpdate) error
	GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*Submission, error)
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const submissionColumns = `
	id, business_type, status,
	owner_name, owner_mobile, owner_email,
	manager_name, manager_mobile, manager_email,
	business_name, city, area, address, website, instagram,
	bank_name, account_title, account_number,
	cancellation_policy, advance_percentage, refund_policy,
	venue_type, guest_capacity, amenities, parking_available, catering_included,
	boutique_specialty, dress_types, stitching_service,
	salon_services, home_service, staff_gender,
	decor_styles, lighting_service, fresh_flowers,
	cuisine_types, menu_highlights, max_order_capacity, live_cooking,
	raw_payload, created_at, reviewed_by, reviewed_at, admin_notes`

func (r *PostgresRepository) CreateSubmission(ctx context.Context, s *Submission) error {
	query := `
		INSERT INTO partner_submissions (` + submissionColumns + `
		) VALUES (
			:id, :business_type, :status,
			:owner_name, :owner_mobile, :owner_email,
			:manager_name, :manager_mobile, :manager_email,
			:business_name, :city, :area, :address, :website, :instagram,
			:bank_name, :account_title, :account_number,
			:cancellation_policy, :advance_percentage, :refund_policy,
			:venue_type, :guest_capacity, :amenities, :parking_available, :catering_included,
			:boutique_specialty, :dress_types, :stitching_service,
			:salon_services, :home_service, :staff_gender,
			:decor_styles, :lighting_service, :fresh_flowers,
			:cuisine_types, :menu_highlights, :max_order_capacity, :live_cooking,
			:raw_payload, :created_at, :reviewed_by, :reviewed_at, :admin_notes
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM partner_submissions WHERE id = $1`

	var submission Submission
	if err := r.db.GetContext(ctx, &submission, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	return &submission, nil
}

func (r *PostgresRepository) ListSubmissions(ctx context.Context, filter *SubmissionFilter) ([]*Submission, int, error) {
	var conditions []string
	var args []interface{}
	argCount := 0

	if filter.Status != nil {
		argCount++
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *filter.Status)
	}

	if filter.BusinessType != nil {
		argCount++
		conditions = append(conditions, fmt.Sprintf("business_type = $%d", argCount))
		args = append(args, *filter.BusinessType)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM partner_submissions` + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count submissions: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	if filter.Page < 1 {
		offset = 0
	}

	argCount++
	limitArg := argCount
	argCount++
	offsetArg := argCount

	query := `SELECT ` + submissionColumns + ` FROM partner_submissions` +
		whereClause + fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", limitArg, offsetArg)
	args = append(args, filter.Limit, offset)

	var submissions []*Submission
	if err := r.db.SelectContext(ctx, &submissions, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list submissions: %w", err)
	}

	return submissions, totalCount, nil
}

func (r *PostgresRepository) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, update *StatusUpdate) error {
	query := `
		UPDATE partner_submissions SET
			status = $2,
			admin_notes = COALESCE($3, admin_notes),
			reviewed_by = COALESCE($4, reviewed_by),
			reviewed_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, update.Status, update.AdminNotes, update.ReviewedBy)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*Submission, error) {
	query := `SELECT ` + submissionColumns + `
		FROM partner_submissions
		WHERE status = $1 AND created_at <= $2
		ORDER BY created_at ASC
		LIMIT $3`

	var submissions []*Submission
	if err := r.db.SelectContext(ctx, &submissions, query, StatusPending, olderThan, limit); err != nil {
		return nil, fmt.Errorf("failed to get stale pending submissions: %w", err)
	}
	return submissions, nil
}
