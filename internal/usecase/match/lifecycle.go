package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/notify"
	"github.com/google/uuid"
)

const (
	MaxSubjectLength = 200
	MaxContentLength = 5000
)

// Policy covers the request rules the product has not settled on. The zero
// value is the strictest setting; config defaults to the permissive one.
type Policy struct {
	// AllowDuplicatePending lets a mentee hold more than one pending
	// request to the same mentor.
	AllowDuplicatePending bool
	// AllowRerequestAfterReject lets a mentee ask a mentor again after
	// being rejected.
	AllowRerequestAfterReject bool
}

// NotificationQueue accepts mentor notifications without blocking.
type NotificationQueue interface {
	Dispatch(req notify.MentorRequest) bool
}

// TransitionRecorder is told about every successful status change.
type TransitionRecorder interface {
	ObserveTransition(from, to domain.MatchStatus)
}

type LifecycleUseCase struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
	queue     NotificationQueue
	recorder  TransitionRecorder
	policy    Policy
	logger    *slog.Logger
	now       func() time.Time
}

func NewLifecycleUseCase(
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
	queue NotificationQueue,
	recorder TransitionRecorder,
	policy Policy,
	logger *slog.Logger,
) *LifecycleUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &LifecycleUseCase{
		matchRepo: matchRepo,
		userRepo:  userRepo,
		queue:     queue,
		recorder:  recorder,
		policy:    policy,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// RequestInput is a mentee's mentoring request
type RequestInput struct {
	MentorID uuid.UUID
	Subject  string
	Content  string
}

// Request creates a pending match from menteeID to in.MentorID and queues a
// notification for the mentor.
func (uc *LifecycleUseCase) Request(ctx context.Context, menteeID uuid.UUID, in RequestInput) (*domain.Match, error) {
	if menteeID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	subject := strings.TrimSpace(in.Subject)
	content := strings.TrimSpace(in.Content)
	if err := validateText("subject", subject, MaxSubjectLength); err != nil {
		return nil, err
	}
	if err := validateText("content", content, MaxContentLength); err != nil {
		return nil, err
	}

	if in.MentorID == uuid.Nil {
		return nil, fmt.Errorf("%w: mentor_id is required", domain.ErrUnknownMentor)
	}
	if in.MentorID == menteeID {
		return nil, fmt.Errorf("%w: cannot request mentoring from yourself", domain.ErrUnknownMentor)
	}

	mentee, err := uc.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to get mentee: %w", err)
	}

	mentor, err := uc.userRepo.GetByID(ctx, in.MentorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownMentor
		}
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}

	if err := uc.checkPolicy(ctx, menteeID, in.MentorID); err != nil {
		return nil, err
	}

	match := &domain.Match{
		ID:        uuid.New(),
		MentorID:  mentor.ID,
		MenteeID:  mentee.ID,
		Subject:   subject,
		Content:   content,
		Status:    domain.MatchStatusPending,
		CreatedAt: uc.now(),
	}
	if err := uc.matchRepo.Create(ctx, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	uc.logger.Info("mentoring requested",
		slog.String("match_id", match.ID.String()),
		slog.String("mentor_id", match.MentorID.String()),
		slog.String("mentee_id", match.MenteeID.String()),
	)

	if uc.queue != nil {
		uc.queue.Dispatch(notify.MentorRequest{Match: *match, Mentor: *mentor, Mentee: *mentee})
	}

	return match, nil
}

// Respond lets the match's mentor accept or reject a pending request. The
// transition is a compare-and-set, so of two concurrent responses exactly
// one succeeds and the other gets domain.ErrInvalidState.
func (uc *LifecycleUseCase) Respond(ctx context.Context, actorID, matchID uuid.UUID, option domain.ResponseOption) (*domain.Match, error) {
	if actorID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	next, ok := option.TargetStatus()
	if !ok {
		return nil, domain.NewInputError("option", "must be 1 (accept) or 2 (reject)")
	}

	match, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if match.MentorID != actorID {
		return nil, domain.ErrForbidden
	}
	if !match.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: match is %s", domain.ErrInvalidState, match.Status)
	}

	at := uc.now()
	swapped, err := uc.matchRepo.CompareAndSetStatus(ctx, match.ID, domain.MatchStatusPending, next, at)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotFound) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to update match status: %w", err)
	}
	if !swapped {
		return nil, fmt.Errorf("%w: match was answered concurrently", domain.ErrInvalidState)
	}

	if uc.recorder != nil {
		uc.recorder.ObserveTransition(domain.MatchStatusPending, next)
	}
	uc.logger.Info("mentoring request answered",
		slog.String("match_id", match.ID.String()),
		slog.String("status", string(next)),
	)

	match.Status = next
	match.RespondedAt = &at
	return match, nil
}

func (uc *LifecycleUseCase) checkPolicy(ctx context.Context, menteeID, mentorID uuid.UUID) error {
	if uc.policy.AllowDuplicatePending && uc.policy.AllowRerequestAfterReject {
		return nil
	}

	existing, err := uc.matchRepo.ListByParticipant(ctx, menteeID)
	if err != nil {
		return fmt.Errorf("failed to list matches: %w", err)
	}
	for _, m := range existing {
		if m.MenteeID != menteeID || m.MentorID != mentorID {
			continue
		}
		switch {
		case m.Status == domain.MatchStatusPending && !uc.policy.AllowDuplicatePending:
			return domain.ErrDuplicateRequest
		case m.Status == domain.MatchStatusRejected && !uc.policy.AllowRerequestAfterReject:
			return domain.ErrRerequestNotAllowed
		}
	}
	return nil
}

func validateText(field, value string, max int) error {
	if value == "" {
		return domain.NewInputError(field, "must not be empty")
	}
	if utf8.RuneCountInString(value) > max {
		return domain.NewInputError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}
