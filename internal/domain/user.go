package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// CareerCode is a code from one of the career enumerations. Zero means "any"
// when used in Criteria and "not set" on a profile.
type CareerCode int

const AnyCareer CareerCode = 0

type Career struct {
	Area                  CareerCode `json:"area"`
	Role                  CareerCode `json:"role"`
	Years                 CareerCode `json:"years"`
	EducationalBackground CareerCode `json:"educational_background"`
}

// ExpertiseSet is a sorted set of expertise tag codes.
type ExpertiseSet []int

// NewExpertiseSet sorts and de-duplicates codes.
func NewExpertiseSet(codes ...int) ExpertiseSet {
	if len(codes) == 0 {
		return ExpertiseSet{}
	}
	sorted := append([]int(nil), codes...)
	sort.Ints(sorted)

	set := make(ExpertiseSet, 0, len(sorted))
	for i, c := range sorted {
		if i > 0 && sorted[i-1] == c {
			continue
		}
		set = append(set, c)
	}
	return set
}

func (s ExpertiseSet) Contains(code int) bool {
	i := sort.SearchInts(s, code)
	return i < len(s) && s[i] == code
}

// Intersects reports whether the sets share at least one code.
func (s ExpertiseSet) Intersects(other ExpertiseSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] == other[j]:
			return true
		case s[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// Ints returns the codes as a plain slice, for drivers that need one.
func (s ExpertiseSet) Ints() []int64 {
	out := make([]int64, len(s))
	for i, c := range s {
		out[i] = int64(c)
	}
	return out
}

// User is a read-only snapshot of a user profile owned by the user directory.
type User struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	Career    Career       `json:"career"`
	Expertise ExpertiseSet `json:"expertise"`
	CreatedAt time.Time    `json:"created_at"`
}

// MentorSummary is what a mentee sees in search results.
type MentorSummary struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Bio       *string      `json:"bio,omitempty"`
	Career    Career       `json:"career"`
	Expertise ExpertiseSet `json:"expertise"`
}

func (u *User) Summary() MentorSummary {
	return MentorSummary{
		ID:        u.ID,
		Name:      u.Name,
		Bio:       u.Bio,
		Career:    u.Career,
		Expertise: u.Expertise,
	}
}
