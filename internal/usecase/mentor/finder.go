package mentor

import (
	"context"
	"fmt"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/criteria"
	"github.com/google/uuid"
)

type Finder struct {
	userRepo repository.UserRepository
	refData  repository.ReferenceDataProvider
}

func NewFinder(userRepo repository.UserRepository, refData repository.ReferenceDataProvider) *Finder {
	return &Finder{
		userRepo: userRepo,
		refData:  refData,
	}
}

// SearchResult is the mentor list together with its size
type SearchResult struct {
	Mentors []domain.MentorSummary `json:"mentors"`
	Count   int                    `json:"count"`
}

// Find returns the mentors matching raw, never including the requester
func (f *Finder) Find(ctx context.Context, requesterID uuid.UUID, raw criteria.RawCriteria) ([]domain.MentorSummary, error) {
	c, err := f.normalize(ctx, requesterID, raw)
	if err != nil {
		return nil, err
	}
	return f.find(ctx, requesterID, c)
}

// Count returns how many mentors Find would return for the same input
func (f *Finder) Count(ctx context.Context, requesterID uuid.UUID, raw criteria.RawCriteria) (int, error) {
	c, err := f.normalize(ctx, requesterID, raw)
	if err != nil {
		return 0, err
	}

	count, err := f.userRepo.CountMentors(ctx, c, requesterID)
	if err != nil {
		return 0, fmt.Errorf("failed to count mentors: %w", err)
	}
	return count, nil
}

// Search returns the matching mentors and their count in one pass
func (f *Finder) Search(ctx context.Context, requesterID uuid.UUID, raw criteria.RawCriteria) (*SearchResult, error) {
	c, err := f.normalize(ctx, requesterID, raw)
	if err != nil {
		return nil, err
	}

	mentors, err := f.find(ctx, requesterID, c)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Mentors: mentors, Count: len(mentors)}, nil
}

// CareerData passes the career enumerations through for the filter UI
func (f *Finder) CareerData(ctx context.Context) (domain.CareerEnumerations, error) {
	enums, err := f.refData.CareerEnumerations(ctx)
	if err != nil {
		return domain.CareerEnumerations{}, fmt.Errorf("failed to load career data: %w", err)
	}
	return enums, nil
}

// ExpertiseData passes the expertise tags through for the filter UI
func (f *Finder) ExpertiseData(ctx context.Context) ([]domain.ExpertiseTag, error) {
	tags, err := f.refData.ExpertiseTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expertise data: %w", err)
	}
	return tags, nil
}

func (f *Finder) normalize(ctx context.Context, requesterID uuid.UUID, raw criteria.RawCriteria) (domain.Criteria, error) {
	if requesterID == uuid.Nil {
		return domain.Criteria{}, domain.ErrUnauthenticated
	}

	enums, err := f.CareerData(ctx)
	if err != nil {
		return domain.Criteria{}, err
	}
	tags, err := f.ExpertiseData(ctx)
	if err != nil {
		return domain.Criteria{}, err
	}
	return criteria.Normalize(raw, enums, tags)
}

func (f *Finder) find(ctx context.Context, requesterID uuid.UUID, c domain.Criteria) ([]domain.MentorSummary, error) {
	users, err := f.userRepo.FindMentors(ctx, c, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to find mentors: %w", err)
	}

	mentors := make([]domain.MentorSummary, 0, len(users))
	for _, u := range users {
		// a user is never their own mentor
		if u.ID == requesterID {
			continue
		}
		mentors = append(mentors, u.Summary())
	}
	return mentors, nil
}
