package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
)

// UserRepository keeps user snapshots in memory. Put is the only writer; the
// directory itself is owned by the user-management service.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

func NewUserRepository(users ...*domain.User) *UserRepository {
	r := &UserRepository{users: make(map[uuid.UUID]domain.User, len(users))}
	for _, u := range users {
		r.Put(u)
	}
	return r
}

func (r *UserRepository) Put(u *domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindMentors(_ context.Context, criteria domain.Criteria, excludeID uuid.UUID) ([]*domain.User, error) {
	r.mu.RLock()
	out := make([]*domain.User, 0)
	for _, u := range r.users {
		u := u
		if u.ID == excludeID || !criteria.Matches(&u) {
			continue
		}
		out = append(out, &u)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *UserRepository) CountMentors(ctx context.Context, criteria domain.Criteria, excludeID uuid.UUID) (int, error) {
	users, err := r.FindMentors(ctx, criteria, excludeID)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
