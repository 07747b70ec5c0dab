package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var matchRowColumns = []string{"id", "mentor_id", "mentee_id", "subject", "content", "status", "created_at", "responded_at"}

const (
	casQuery    = `UPDATE matches SET status = $1, responded_at = $2 WHERE id = $3 AND status = $4`
	existsQuery = `SELECT EXISTS (SELECT 1 FROM matches WHERE id = $1)`
)

func newMockMatchRepository(t *testing.T) (*matchRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return &matchRepository{db: sqlx.NewDb(db, "postgres")}, mock
}

func TestMatchRepository_CompareAndSetStatus_Swapped(t *testing.T) {
	repo, mock := newMockMatchRepository(t)
	id := uuid.New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(casQuery)).
		WithArgs(domain.MatchStatusAccepted, at, id, domain.MatchStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.CompareAndSetStatus(context.Background(), id, domain.MatchStatusPending, domain.MatchStatusAccepted, at)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMatchRepository_CompareAndSetStatus_StatusAlreadyChanged(t *testing.T) {
	repo, mock := newMockMatchRepository(t)
	id := uuid.New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(casQuery)).
		WithArgs(domain.MatchStatusRejected, at, id, domain.MatchStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.CompareAndSetStatus(context.Background(), id, domain.MatchStatusPending, domain.MatchStatusRejected, at)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMatchRepository_CompareAndSetStatus_NotFound(t *testing.T) {
	repo, mock := newMockMatchRepository(t)
	id := uuid.New()
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(casQuery)).
		WithArgs(domain.MatchStatusAccepted, at, id, domain.MatchStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(existsQuery)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.CompareAndSetStatus(context.Background(), id, domain.MatchStatusPending, domain.MatchStatusAccepted, at)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	assert.False(t, ok)
}

func TestMatchRepository_Create(t *testing.T) {
	repo, mock := newMockMatchRepository(t)
	stored := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	m := &domain.Match{
		MentorID: uuid.New(),
		MenteeID: uuid.New(),
		Subject:  "Career change",
		Content:  "Advice please",
		Status:   domain.MatchStatusPending,
	}

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO matches`)).
		WithArgs(sqlmock.AnyArg(), m.MentorID, m.MenteeID, m.Subject, m.Content, m.Status, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(stored))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, stored, m.CreatedAt)
}

func TestMatchRepository_GetByID(t *testing.T) {
	id, mentor, mentee := uuid.New(), uuid.New(), uuid.New()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	responded := created.Add(time.Hour)

	t.Run("found", func(t *testing.T) {
		repo, mock := newMockMatchRepository(t)
		mock.ExpectQuery(`FROM matches WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(id.String(), mentor.String(), mentee.String(), "s", "c", "accepted", created, responded))

		m, err := repo.GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, mentor, m.MentorID)
		assert.Equal(t, domain.MatchStatusAccepted, m.Status)
		require.NotNil(t, m.RespondedAt)
		assert.Equal(t, responded, *m.RespondedAt)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newMockMatchRepository(t)
		mock.ExpectQuery(`FROM matches WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(matchRowColumns))

		_, err := repo.GetByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrMatchNotFound)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo, mock := newMockMatchRepository(t)
		mock.ExpectQuery(`FROM matches WHERE id = \$1`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(id.String(), mentor.String(), mentee.String(), "s", "c", "archived", created, nil))

		_, err := repo.GetByID(context.Background(), id)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrMatchNotFound)
	})
}

func TestMatchRepository_ListByParticipant(t *testing.T) {
	user := uuid.New()
	newer, older := uuid.New(), uuid.New()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("newest first", func(t *testing.T) {
		repo, mock := newMockMatchRepository(t)
		mock.ExpectQuery(`WHERE mentor_id = \$1 OR mentee_id = \$1\s+ORDER BY created_at DESC, id DESC`).
			WithArgs(user).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(newer.String(), user.String(), uuid.NewString(), "b", "c", "pending", base.Add(time.Hour), nil).
				AddRow(older.String(), uuid.NewString(), user.String(), "a", "c", "rejected", base, base.Add(time.Minute)))

		matches, err := repo.ListByParticipant(context.Background(), user)
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, newer, matches[0].ID)
		assert.Nil(t, matches[0].RespondedAt)
		assert.Equal(t, older, matches[1].ID)
		assert.Equal(t, domain.MatchStatusRejected, matches[1].Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		repo, mock := newMockMatchRepository(t)
		mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
			WithArgs(user).
			WillReturnRows(sqlmock.NewRows(matchRowColumns).
				AddRow(newer.String(), user.String(), uuid.NewString(), "b", "c", "", base, nil))

		_, err := repo.ListByParticipant(context.Background(), user)
		assert.Error(t, err)
	})
}
