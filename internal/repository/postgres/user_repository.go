package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const userColumns = `
	id, name, email, bio,
	career_area, career_role, career_years, career_educational_background,
	expertise, created_at
`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID                    uuid.UUID     `db:"id"`
	Name                  string        `db:"name"`
	Email                 string        `db:"email"`
	Bio                   *string       `db:"bio"`
	Area                  int           `db:"career_area"`
	Role                  int           `db:"career_role"`
	Years                 int           `db:"career_years"`
	EducationalBackground int           `db:"career_educational_background"`
	Expertise             pq.Int64Array `db:"expertise"`
	CreatedAt             time.Time     `db:"created_at"`
}

func (row *userRow) toDomain() *domain.User {
	codes := make([]int, len(row.Expertise))
	for i, c := range row.Expertise {
		codes[i] = int(c)
	}
	return &domain.User{
		ID:    row.ID,
		Name:  row.Name,
		Email: row.Email,
		Bio:   row.Bio,
		Career: domain.Career{
			Area:                  domain.CareerCode(row.Area),
			Role:                  domain.CareerCode(row.Role),
			Years:                 domain.CareerCode(row.Years),
			EducationalBackground: domain.CareerCode(row.EducationalBackground),
		},
		Expertise: domain.NewExpertiseSet(codes...),
		CreatedAt: row.CreatedAt,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *userRepository) FindMentors(ctx context.Context, criteria domain.Criteria, excludeID uuid.UUID) ([]*domain.User, error) {
	where, args := buildMentorFilter(criteria, excludeID)
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` ORDER BY created_at ASC, id ASC`

	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toDomain())
	}
	return users, nil
}

func (r *userRepository) CountMentors(ctx context.Context, criteria domain.Criteria, excludeID uuid.UUID) (int, error) {
	where, args := buildMentorFilter(criteria, excludeID)
	query := `SELECT COUNT(*) FROM users WHERE ` + where

	var count int
	err := r.db.GetContext(ctx, &count, query, args...)
	return count, err
}

// buildMentorFilter renders domain.Criteria.Matches as a WHERE clause. Find
// and Count share it so the two can never disagree.
func buildMentorFilter(criteria domain.Criteria, excludeID uuid.UUID) (string, []interface{}) {
	clauses := []string{"id <> $1"}
	args := []interface{}{excludeID}
	if criteria.IsAny() {
		return clauses[0], args
	}
	argCount := 2

	careerFields := []struct {
		column string
		code   domain.CareerCode
	}{
		{"career_area", criteria.Career.Area},
		{"career_role", criteria.Career.Role},
		{"career_years", criteria.Career.Years},
		{"career_educational_background", criteria.Career.EducationalBackground},
	}
	for _, f := range careerFields {
		if f.code == domain.AnyCareer {
			continue
		}
		clauses = append(clauses, fmt.Sprintf("%s = $%d", f.column, argCount))
		args = append(args, int(f.code))
		argCount++
	}

	if len(criteria.Expertise) > 0 {
		clauses = append(clauses, fmt.Sprintf("expertise && $%d", argCount))
		args = append(args, pq.Array(criteria.Expertise.Ints()))
	}

	return strings.Join(clauses, " AND "), args
}
