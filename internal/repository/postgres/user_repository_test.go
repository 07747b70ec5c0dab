package postgres

import (
	"testing"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMentorFilter_AnyCriteriaOnlyExcludesRequester(t *testing.T) {
	requester := uuid.New()

	where, args := buildMentorFilter(domain.Criteria{}, requester)

	assert.Equal(t, "id <> $1", where)
	require.Len(t, args, 1)
	assert.Equal(t, requester, args[0])
}

func TestBuildMentorFilter_CareerFieldsAndExpertise(t *testing.T) {
	requester := uuid.New()
	criteria := domain.Criteria{
		Career: domain.Career{
			Area:                  3,
			Years:                 2,
			EducationalBackground: 1,
		},
		Expertise: domain.NewExpertiseSet(7, 4),
	}

	where, args := buildMentorFilter(criteria, requester)

	assert.Equal(t,
		"id <> $1 AND career_area = $2 AND career_years = $3 AND career_educational_background = $4 AND expertise && $5",
		where,
	)
	require.Len(t, args, 5)
	assert.Equal(t, 3, args[1])
	assert.Equal(t, 2, args[2])
	assert.Equal(t, 1, args[3])

	arr, ok := args[4].(*pq.Int64Array)
	require.True(t, ok, "expertise must be passed as a postgres array")
	assert.Equal(t, pq.Int64Array{4, 7}, *arr)
}

func TestBuildMentorFilter_PlaceholdersStayDense(t *testing.T) {
	where, args := buildMentorFilter(domain.Criteria{Career: domain.Career{Role: 5}}, uuid.New())

	assert.Equal(t, "id <> $1 AND career_role = $2", where)
	assert.Len(t, args, 2)
}
