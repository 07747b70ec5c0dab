package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const matchColumns = `id, mentor_id, mentee_id, subject, content, status, created_at, responded_at`

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}

	query := `
		INSERT INTO matches (id, mentor_id, mentee_id, subject, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query,
		match.ID, match.MentorID, match.MenteeID, match.Subject, match.Content, match.Status, match.CreatedAt,
	).Scan(&match.CreatedAt)
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	if !match.Status.IsValid() {
		return nil, fmt.Errorf("match %s has unknown status %q", match.ID, match.Status)
	}
	return &match, nil
}

// CompareAndSetStatus relies on the status predicate in the UPDATE: of two
// concurrent calls only one can still see the expected status.
func (r *matchRepository) CompareAndSetStatus(ctx context.Context, id uuid.UUID, expected, next domain.MatchStatus, at time.Time) (bool, error) {
	query := `UPDATE matches SET status = $1, responded_at = $2 WHERE id = $3 AND status = $4`
	result, err := r.db.ExecContext(ctx, query, next, at, id, expected)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if rows == 1 {
		return true, nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`, id); err != nil {
		return false, err
	}
	if !exists {
		return false, domain.ErrMatchNotFound
	}
	return false, nil
}

func (r *matchRepository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*domain.Match, error) {
	var matches []*domain.Match
	query := `
		SELECT ` + matchColumns + ` FROM matches
		WHERE mentor_id = $1 OR mentee_id = $1
		ORDER BY created_at DESC, id DESC
	`
	if err := r.db.SelectContext(ctx, &matches, query, userID); err != nil {
		return nil, err
	}
	for _, m := range matches {
		if !m.Status.IsValid() {
			return nil, fmt.Errorf("match %s has unknown status %q", m.ID, m.Status)
		}
	}
	return matches, nil
}
