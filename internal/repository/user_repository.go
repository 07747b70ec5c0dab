package repository

import (
	"context"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=user_repository.go -destination=../mocks/user_repository.go -package=mocks

// UserRepository is the read side of the user directory.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// FindMentors returns users matching criteria, excluding excludeID,
	// ordered by created_at then id.
	FindMentors(ctx context.Context, criteria domain.Criteria, excludeID uuid.UUID) ([]*domain.User, error)
	// CountMentors applies the same filter as FindMentors.
	CountMentors(ctx context.Context, criteria domain.Criteria, excludeID uuid.UUID) (int, error)
}
