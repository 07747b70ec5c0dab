package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/google/uuid"
)

type ActivityUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

func NewActivityUseCase(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *ActivityUseCase {
	return &ActivityUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// ActivityFor partitions every match touching userID into exactly one bucket:
//
//	requested - userID is the mentee, still pending
//	pending   - userID is the mentor, still pending
//	accepted  - either side, accepted
//	rejected  - either side, rejected
//
// Buckets keep the store's newest-first order.
func (uc *ActivityUseCase) ActivityFor(ctx context.Context, userID uuid.UUID) (*domain.Activity, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	matches, err := uc.matchRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	activity := &domain.Activity{
		Pending:   []domain.MatchSummary{},
		Accepted:  []domain.MatchSummary{},
		Rejected:  []domain.MatchSummary{},
		Requested: []domain.MatchSummary{},
	}
	names := make(map[uuid.UUID]string)

	for _, m := range matches {
		counterpartID, ok := m.GetOtherUserID(userID)
		if !ok {
			continue
		}
		summary := domain.MatchSummary{
			ID:            m.ID,
			MentorID:      m.MentorID,
			MenteeID:      m.MenteeID,
			CounterpartID: counterpartID,
			Counterpart:   uc.counterpartName(ctx, names, counterpartID),
			Subject:       m.Subject,
			Content:       m.Content,
			Status:        m.Status,
			CreatedAt:     m.CreatedAt,
			RespondedAt:   m.RespondedAt,
		}

		switch m.Status {
		case domain.MatchStatusPending:
			if m.MentorID == userID {
				activity.Pending = append(activity.Pending, summary)
			} else {
				activity.Requested = append(activity.Requested, summary)
			}
		case domain.MatchStatusAccepted:
			activity.Accepted = append(activity.Accepted, summary)
		case domain.MatchStatusRejected:
			activity.Rejected = append(activity.Rejected, summary)
		}
	}

	return activity, nil
}

// counterpartName resolves a display name once per user. A user the
// directory no longer knows is shown without a name.
func (uc *ActivityUseCase) counterpartName(ctx context.Context, cache map[uuid.UUID]string, id uuid.UUID) string {
	if name, ok := cache[id]; ok {
		return name
	}

	name := ""
	user, err := uc.userRepo.GetByID(ctx, id)
	if err == nil {
		name = user.Name
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		// transient directory errors are not cached
		return ""
	}
	cache[id] = name
	return name
}
