package seed

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// epoch anchors CreatedAt so that file order is creation order.
var epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

type userRecord struct {
	ID        string `mapstructure:"id"`
	Name      string `mapstructure:"name"`
	Email     string `mapstructure:"email"`
	Bio       string `mapstructure:"bio"`
	Career    career `mapstructure:"career"`
	Expertise []int  `mapstructure:"expertise"`
}

type career struct {
	Area                  int `mapstructure:"area"`
	Role                  int `mapstructure:"role"`
	Years                 int `mapstructure:"years"`
	EducationalBackground int `mapstructure:"educational_background"`
}

type usersFile struct {
	Users []userRecord `mapstructure:"users"`
}

// LoadUsers reads a users fixture (any format viper understands) and checks
// every career code and expertise tag against the taxonomy.
func LoadUsers(path string, enums domain.CareerEnumerations, tags []domain.ExpertiseTag) ([]*domain.User, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read users seed %s: %w", path, err)
	}

	var f usersFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("failed to decode users seed: %w", err)
	}

	tagCodes := make([]int, len(tags))
	for i, t := range tags {
		tagCodes[i] = t.Code
	}
	known := domain.NewExpertiseSet(tagCodes...)

	users := make([]*domain.User, 0, len(f.Users))
	seen := make(map[uuid.UUID]bool, len(f.Users))
	for i, rec := range f.Users {
		u, err := rec.toUser(enums, known)
		if err != nil {
			return nil, fmt.Errorf("users seed entry %d: %w", i, err)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("users seed entry %d: duplicate id %s", i, u.ID)
		}
		seen[u.ID] = true
		u.CreatedAt = epoch.Add(time.Duration(i) * time.Second)
		users = append(users, u)
	}
	return users, nil
}

func (r userRecord) toUser(enums domain.CareerEnumerations, known domain.ExpertiseSet) (*domain.User, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", r.ID, err)
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}

	dims := []struct {
		name    string
		code    int
		options []domain.CareerOption
	}{
		{"area", r.Career.Area, enums.Area},
		{"role", r.Career.Role, enums.Role},
		{"years", r.Career.Years, enums.Years},
		{"educational_background", r.Career.EducationalBackground, enums.EducationalBackground},
	}
	for _, d := range dims {
		code := domain.CareerCode(d.code)
		if code != domain.AnyCareer && !domain.HasCode(d.options, code) {
			return nil, fmt.Errorf("unknown career.%s code %d", d.name, d.code)
		}
	}
	for _, code := range r.Expertise {
		if !known.Contains(code) {
			return nil, fmt.Errorf("unknown expertise tag %d", code)
		}
	}

	u := &domain.User{
		ID:    id,
		Name:  name,
		Email: r.Email,
		Career: domain.Career{
			Area:                  domain.CareerCode(r.Career.Area),
			Role:                  domain.CareerCode(r.Career.Role),
			Years:                 domain.CareerCode(r.Career.Years),
			EducationalBackground: domain.CareerCode(r.Career.EducationalBackground),
		},
		Expertise: domain.NewExpertiseSet(r.Expertise...),
	}
	if bio := strings.TrimSpace(r.Bio); bio != "" {
		u.Bio = &bio
	}
	return u, nil
}
