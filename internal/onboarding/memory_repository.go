package onboarding

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository for tests and local
// development without a database.
type MemoryRepository struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]*Submission
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{submissions: make(map[uuid.UUID]*Submission)}
}

func (m *MemoryRepository) CreateSubmission(ctx context.Context, s *Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *s
	m.submissions[s.ID] = &clone
	return nil
}

func (m *MemoryRepository) GetSubmission(ctx context.Context, id uuid.UUID) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.submissions[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *MemoryRepository) ListSubmissions(ctx context.Context, filter *SubmissionFilter) ([]*Submission, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []*Submission
	for _, s := range m.submissions {
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		if filter.BusinessType != nil && s.BusinessType != *filter.BusinessType {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	page := filter.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * filter.Limit
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if filter.Limit <= 0 || end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (m *MemoryRepository) UpdateSubmissionStatus(ctx context.Context, id uuid.UUID, update *StatusUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.submissions[id]
	if !ok {
		return ErrNotFound
	}
	s.Status = update.Status
	if update.AdminNotes != nil {
		s.AdminNotes = update.AdminNotes
	}
	if update.ReviewedBy != nil {
		s.ReviewedBy = update.ReviewedBy
	}
	now := time.Now().UTC()
	s.ReviewedAt = &now
	return nil
}

func (m *MemoryRepository) GetStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var stale []*Submission
	for _, s := range m.submissions {
		if s.Status != StatusPending || s.CreatedAt.After(olderThan) {
			continue
		}
		clone := *s
		stale = append(stale, &clone)
	}

	sort.Slice(stale, func(i, j int) bool {
		return stale[i].CreatedAt.Before(stale[j].CreatedAt)
	})

	if limit > 0 && len(stale) > limit {
		stale = stale[:limit]
	}
	return stale, nil
}
