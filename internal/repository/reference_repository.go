package repository

import (
	"context"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
)

//go:generate mockgen -source=reference_repository.go -destination=../mocks/reference_repository.go -package=mocks

// ReferenceDataProvider serves the career and expertise taxonomies.
type ReferenceDataProvider interface {
	CareerEnumerations(ctx context.Context) (domain.CareerEnumerations, error)
	ExpertiseTags(ctx context.Context) ([]domain.ExpertiseTag, error)
}
