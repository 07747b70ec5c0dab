package domain

// Criteria is a normalized mentor filter. Zero career codes and an empty
// expertise set mean "any". Build it with criteria.Normalize.
type Criteria struct {
	Career    Career
	Expertise ExpertiseSet
}

// IsAny reports whether the criteria match every candidate.
func (c Criteria) IsAny() bool {
	return c.Career == (Career{}) && len(c.Expertise) == 0
}

// Matches is the conjunctive filter: every non-any career field must be equal
// and, when expertise is given, the candidate must share at least one tag.
func (c Criteria) Matches(u *User) bool {
	if u == nil {
		return false
	}
	if !codeMatches(c.Career.Area, u.Career.Area) ||
		!codeMatches(c.Career.Role, u.Career.Role) ||
		!codeMatches(c.Career.Years, u.Career.Years) ||
		!codeMatches(c.Career.EducationalBackground, u.Career.EducationalBackground) {
		return false
	}
	if len(c.Expertise) > 0 && !c.Expertise.Intersects(u.Expertise) {
		return false
	}
	return true
}

func codeMatches(want, got CareerCode) bool {
	return want == AnyCareer || want == got
}
