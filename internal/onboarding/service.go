package onboarding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wedding-bazaar/partner-portal/partner-portal-backend/pkg/workflows"
)

// Service handles submission persistence and the admin review workflow.
type Service struct {
	repo   Repository
	states *workflows.StateMachine
	logger *zap.Logger
}

// NewService creates a new onboarding service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		states: workflows.NewSubmissionStateMachine(),
		logger: logger,
	}
}

// CreateSubmission persists an externally submitted payload. Status always
// enters as PENDING regardless of what the caller sent.
func (s *Service) CreateSubmission(ctx context.Context, payload *SubmissionPayload) (uuid.UUID, error) {
	submission, err := SubmissionFromPayload(payload)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info("Partner submission created",
		zap.String("submission_id", submission.ID.String()),
		zap.String("business_type", submission.BusinessType))
	return submission.ID, nil
}

// GetSubmission fetches a single submission.
func (s *Service) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	return s.repo.GetSubmission(ctx, id)
}

// ListSubmissions returns one page of submissions for the admin screens.
func (s *Service) ListSubmissions(ctx context.Context, filter *SubmissionFilter) (*SubmissionList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	items, total, err := s.repo.ListSubmissions(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / filter.Limit
	if total%filter.Limit > 0 {
		totalPages++
	}

	return &SubmissionList{
		Items: items,
		Pagination: Pagination{
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// exportBatchSize is the repository page size used when draining a full
// listing for export.
const exportBatchSize = 100

// ListAllSubmissions returns every submission matching the filter, paging
// through the repository in fixed batches. Exports must not be capped by the
// listing page limits.
func (s *Service) ListAllSubmissions(ctx context.Context, filter *SubmissionFilter) ([]*Submission, error) {
	f := *filter
	f.Limit = exportBatchSize

	var all []*Submission
	for f.Page = 1; ; f.Page++ {
		items, total, err := s.repo.ListSubmissions(ctx, &f)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < exportBatchSize || len(all) >= total {
			break
		}
	}
	return all, nil
}

// UpdateStatus applies an admin review action, enforcing the workflow state
// machine.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, update *StatusUpdate) error {
	if !ValidStatus(update.Status) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, update.Status)
	}

	current, err := s.repo.GetSubmission(ctx, id)
	if err != nil {
		return err
	}

	if err := s.states.Transition(current.Status, update.Status); err != nil {
		if errors.Is(err, workflows.ErrInvalidTransition) {
			return fmt.Errorf("%w: %s -> %s", workflows.ErrInvalidTransition, current.Status, update.Status)
		}
		return err
	}

	if err := s.repo.UpdateSubmissionStatus(ctx, id, update); err != nil {
		return err
	}

	s.logger.Info("Submission status updated",
		zap.String("submission_id", id.String()),
		zap.String("from", current.Status),
		zap.String("to", update.Status))
	return nil
}

// StalePending returns PENDING submissions older than the cutoff, for the
// review-reminder worker.
func (s *Service) StalePending(ctx context.Context, olderThan time.Time, limit int) ([]*Submission, error) {
	return s.repo.GetStalePending(ctx, olderThan, limit)
}
