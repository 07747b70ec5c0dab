package domain

// CareerOption is one entry of a career enumeration.
type CareerOption struct {
	Code CareerCode `json:"code" mapstructure:"code"`
	Name string     `json:"name" mapstructure:"name"`
}

// CareerEnumerations holds the domain of every career dimension.
type CareerEnumerations struct {
	Area                  []CareerOption `json:"area" mapstructure:"area"`
	Role                  []CareerOption `json:"role" mapstructure:"role"`
	Years                 []CareerOption `json:"years" mapstructure:"years"`
	EducationalBackground []CareerOption `json:"educational_background" mapstructure:"educational_background"`
}

type ExpertiseTag struct {
	Code int    `json:"code" mapstructure:"code"`
	Name string `json:"name" mapstructure:"name"`
}

// HasCode reports whether code is part of options.
func HasCode(options []CareerOption, code CareerCode) bool {
	for _, o := range options {
		if o.Code == code {
			return true
		}
	}
	return false
}
