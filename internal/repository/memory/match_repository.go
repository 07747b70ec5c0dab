package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/google/uuid"
)

type matchRepository struct {
	mu      sync.RWMutex
	matches map[uuid.UUID]domain.Match
}

func NewMatchRepository() repository.MatchRepository {
	return &matchRepository{matches: make(map[uuid.UUID]domain.Match)}
}

func (r *matchRepository) Create(_ context.Context, match *domain.Match) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	if match.CreatedAt.IsZero() {
		match.CreatedAt = time.Now().UTC()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.matches[match.ID] = *match
	return nil
}

func (r *matchRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &m, nil
}

func (r *matchRepository) CompareAndSetStatus(_ context.Context, id uuid.UUID, expected, next domain.MatchStatus, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.matches[id]
	if !ok {
		return false, domain.ErrMatchNotFound
	}
	if m.Status != expected {
		return false, nil
	}
	m.Status = next
	m.RespondedAt = &at
	r.matches[id] = m
	return true, nil
}

func (r *matchRepository) ListByParticipant(_ context.Context, userID uuid.UUID) ([]*domain.Match, error) {
	r.mu.RLock()
	out := make([]*domain.Match, 0)
	for _, m := range r.matches {
		if m.HasUser(userID) {
			m := m
			out = append(out, &m)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out, nil
}
