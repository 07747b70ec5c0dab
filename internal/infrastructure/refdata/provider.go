package refdata

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/spf13/viper"
)

//go:embed default_taxonomy.yaml
var defaultTaxonomy []byte

type taxonomy struct {
	Career    domain.CareerEnumerations `mapstructure:"career"`
	Expertise []domain.ExpertiseTag     `mapstructure:"expertise"`
}

// Provider serves a taxonomy that is loaded once and never changes.
type Provider struct {
	enums domain.CareerEnumerations
	tags  []domain.ExpertiseTag
}

// Load reads the taxonomy from path (any format viper understands), or the
// built-in one when path is empty.
func Load(path string) (*Provider, error) {
	v := viper.New()
	if path == "" {
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewReader(defaultTaxonomy)); err != nil {
			return nil, fmt.Errorf("failed to read built-in taxonomy: %w", err)
		}
	} else {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read taxonomy %s: %w", path, err)
		}
	}

	var t taxonomy
	if err := v.Unmarshal(&t); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &Provider{enums: t.Career, tags: t.Expertise}, nil
}

func (t taxonomy) validate() error {
	dims := map[string][]domain.CareerOption{
		"area":                   t.Career.Area,
		"role":                   t.Career.Role,
		"years":                  t.Career.Years,
		"educational_background": t.Career.EducationalBackground,
	}
	for name, options := range dims {
		if len(options) == 0 {
			return fmt.Errorf("taxonomy: career.%s is empty", name)
		}
		seen := make(map[domain.CareerCode]bool, len(options))
		for _, o := range options {
			if o.Code == domain.AnyCareer {
				return fmt.Errorf("taxonomy: career.%s uses reserved code 0", name)
			}
			if seen[o.Code] {
				return fmt.Errorf("taxonomy: career.%s has duplicate code %d", name, o.Code)
			}
			seen[o.Code] = true
		}
	}

	seen := make(map[int]bool, len(t.Expertise))
	for _, tag := range t.Expertise {
		if seen[tag.Code] {
			return fmt.Errorf("taxonomy: expertise has duplicate code %d", tag.Code)
		}
		seen[tag.Code] = true
	}
	return nil
}

func (p *Provider) CareerEnumerations(_ context.Context) (domain.CareerEnumerations, error) {
	return domain.CareerEnumerations{
		Area:                  append([]domain.CareerOption(nil), p.enums.Area...),
		Role:                  append([]domain.CareerOption(nil), p.enums.Role...),
		Years:                 append([]domain.CareerOption(nil), p.enums.Years...),
		EducationalBackground: append([]domain.CareerOption(nil), p.enums.EducationalBackground...),
	}, nil
}

func (p *Provider) ExpertiseTags(_ context.Context) ([]domain.ExpertiseTag, error) {
	return append([]domain.ExpertiseTag(nil), p.tags...), nil
}
