package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=match_repository.go -destination=../mocks/match_repository.go -package=mocks

type MatchRepository interface {
	Create(ctx context.Context, match *domain.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error)
	// CompareAndSetStatus moves the match to next only if its current status
	// is expected. It returns false when the status did not match; that is
	// not an error. A missing match returns domain.ErrMatchNotFound.
	CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next domain.MatchStatus, at time.Time) (bool, error)
	// ListByParticipant returns every match where userID is mentor or mentee,
	// newest first.
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*domain.Match, error)
}
