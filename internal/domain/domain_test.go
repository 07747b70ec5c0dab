package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewExpertiseSet(t *testing.T) {
	assert.Equal(t, ExpertiseSet{}, NewExpertiseSet())
	assert.Equal(t, ExpertiseSet{1, 3, 7}, NewExpertiseSet(7, 3, 1, 3, 7))

	in := []int{5, 2}
	_ = NewExpertiseSet(in...)
	assert.Equal(t, []int{5, 2}, in, "input must not be reordered")
}

func TestExpertiseSet_ContainsIntersects(t *testing.T) {
	s := NewExpertiseSet(2, 4, 8)

	assert.True(t, s.Contains(4))
	assert.False(t, s.Contains(5))
	assert.False(t, ExpertiseSet{}.Contains(0))

	assert.True(t, s.Intersects(NewExpertiseSet(1, 8)))
	assert.False(t, s.Intersects(NewExpertiseSet(1, 3, 9)))
	assert.False(t, s.Intersects(nil))
	assert.Equal(t, []int64{2, 4, 8}, s.Ints())
}

func TestCriteria_Matches(t *testing.T) {
	u := &User{
		Career:    Career{Area: 1, Role: 2, Years: 3, EducationalBackground: 4},
		Expertise: NewExpertiseSet(10, 20),
	}

	cases := []struct {
		name string
		c    Criteria
		want bool
	}{
		{"any", Criteria{}, true},
		{"exact career", Criteria{Career: Career{Area: 1, Role: 2, Years: 3, EducationalBackground: 4}}, true},
		{"one field differs", Criteria{Career: Career{Area: 1, Role: 3}}, false},
		{"shared tag", Criteria{Expertise: NewExpertiseSet(20, 30)}, true},
		{"no shared tag", Criteria{Expertise: NewExpertiseSet(30)}, false},
		{"career and tag", Criteria{Career: Career{Years: 3}, Expertise: NewExpertiseSet(10)}, true},
		{"career ok tag missing", Criteria{Career: Career{Years: 3}, Expertise: NewExpertiseSet(11)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Matches(u))
		})
	}

	assert.False(t, Criteria{}.Matches(nil))
	assert.True(t, Criteria{}.IsAny())
	assert.False(t, Criteria{Expertise: NewExpertiseSet(1)}.IsAny())
}

func TestMatchStatus_Transitions(t *testing.T) {
	all := []MatchStatus{MatchStatusPending, MatchStatusAccepted, MatchStatusRejected}
	for _, from := range all {
		for _, to := range all {
			want := from == MatchStatusPending && to != MatchStatusPending
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, MatchStatus("archived").IsValid())
	assert.False(t, MatchStatusPending.CanTransitionTo("archived"))
	assert.True(t, MatchStatusRejected.IsTerminal())
	assert.False(t, MatchStatusPending.IsTerminal())
}

func TestResponseOption_TargetStatus(t *testing.T) {
	s, ok := ResponseAccept.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, MatchStatusAccepted, s)

	s, ok = ResponseReject.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, MatchStatusRejected, s)

	for _, o := range []ResponseOption{0, 3, -1} {
		_, ok := o.TargetStatus()
		assert.False(t, ok, "option %d", o)
	}
}

func TestMatch_Participants(t *testing.T) {
	m := &Match{MentorID: uuid.New(), MenteeID: uuid.New()}

	other, ok := m.GetOtherUserID(m.MentorID)
	assert.True(t, ok)
	assert.Equal(t, m.MenteeID, other)

	other, ok = m.GetOtherUserID(m.MenteeID)
	assert.True(t, ok)
	assert.Equal(t, m.MentorID, other)

	_, ok = m.GetOtherUserID(uuid.New())
	assert.False(t, ok)
	assert.True(t, m.HasUser(m.MenteeID))
	assert.False(t, m.HasUser(uuid.New()))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("search: %w", NewCriteriaError("career.role", "is required"))

	assert.True(t, errors.Is(err, ErrInvalidCriteria))
	assert.False(t, errors.Is(err, ErrInvalidInput))

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "career.role", ve.Field)
	assert.Equal(t, "invalid criteria: career.role: is required", ve.Error())
}
