// Package criteria turns raw mentor-filter input into domain.Criteria.
//
// Validation is fail-closed: one malformed field rejects the whole filter
// with a *domain.ValidationError wrapping domain.ErrInvalidCriteria.
package criteria

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
)

// RawCareer keeps every field undecoded so that wrong JSON types can be told
// apart from missing values.
type RawCareer struct {
	Area                  json.RawMessage `json:"area"`
	Role                  json.RawMessage `json:"role"`
	Years                 json.RawMessage `json:"years"`
	EducationalBackground json.RawMessage `json:"educational_background"`
}

// RawCriteria is the search body as received from the client.
type RawCriteria struct {
	Career    *RawCareer      `json:"career"`
	Expertise json.RawMessage `json:"expertise"`
}

// Normalize validates raw against the reference taxonomies. Every career
// field must be present and be either 0 ("any") or a code of its
// enumeration. Expertise may be omitted, null or empty; otherwise it must be
// an array of known tag codes.
func Normalize(raw RawCriteria, enums domain.CareerEnumerations, tags []domain.ExpertiseTag) (domain.Criteria, error) {
	if raw.Career == nil {
		return domain.Criteria{}, domain.NewCriteriaError("career", "is required")
	}

	var (
		c   domain.Criteria
		err error
	)
	fields := []struct {
		name    string
		raw     json.RawMessage
		options []domain.CareerOption
		dst     *domain.CareerCode
	}{
		{"career.area", raw.Career.Area, enums.Area, &c.Career.Area},
		{"career.role", raw.Career.Role, enums.Role, &c.Career.Role},
		{"career.years", raw.Career.Years, enums.Years, &c.Career.Years},
		{"career.educational_background", raw.Career.EducationalBackground, enums.EducationalBackground, &c.Career.EducationalBackground},
	}
	for _, f := range fields {
		if *f.dst, err = careerCode(f.name, f.raw, f.options); err != nil {
			return domain.Criteria{}, err
		}
	}

	if c.Expertise, err = expertise(raw.Expertise, tags); err != nil {
		return domain.Criteria{}, err
	}
	return c, nil
}

func careerCode(field string, raw json.RawMessage, options []domain.CareerOption) (domain.CareerCode, error) {
	if isNull(raw) {
		return 0, domain.NewCriteriaError(field, "is required")
	}
	n, err := integer(raw)
	if err != nil {
		return 0, domain.NewCriteriaError(field, err.Error())
	}

	code := domain.CareerCode(n)
	if code == domain.AnyCareer || domain.HasCode(options, code) {
		return code, nil
	}
	return 0, domain.NewCriteriaError(field, fmt.Sprintf("unknown code %d", n))
}

func expertise(raw json.RawMessage, tags []domain.ExpertiseTag) (domain.ExpertiseSet, error) {
	if isNull(raw) {
		return domain.ExpertiseSet{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, domain.NewCriteriaError("expertise", "must be an array of tag codes")
	}

	tagCodes := make([]int, len(tags))
	for i, t := range tags {
		tagCodes[i] = t.Code
	}
	known := domain.NewExpertiseSet(tagCodes...)

	codes := make([]int, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("expertise[%d]", i)
		n, err := integer(item)
		if err != nil {
			return nil, domain.NewCriteriaError(field, err.Error())
		}
		if !known.Contains(int(n)) {
			return nil, domain.NewCriteriaError(field, fmt.Sprintf("unknown tag %d", n))
		}
		codes = append(codes, int(n))
	}
	return domain.NewExpertiseSet(codes...), nil
}

// integer accepts a bare JSON integer only: strings, floats, booleans and
// nested values are rejected.
func integer(raw json.RawMessage) (int64, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("must be an integer")
	}
	n, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("must be an integer")
	}
	return n, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
