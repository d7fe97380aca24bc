// Package mentor defines the mentor directory record.
package mentor

import (
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
)

// Field names of the mentor schema.
const (
	FieldName         = "name"
	FieldLocation     = "location"
	FieldSkills       = "skills"
	FieldRating       = "rating"
	FieldExperience   = "experience"
	FieldAvailability = "availability"
	FieldBadge        = "badge"
)

// Availability values shown on mentor cards.
const (
	AvailableNow = "Available Now"
	Busy         = "Busy"
)

// Mentor is a directory entry. Experience is free text such as "8 years".
type Mentor struct {
	ID           int      `json:"id" yaml:"id" validate:"required,gt=0"`
	Name         string   `json:"name" yaml:"name" validate:"required"`
	Location     string   `json:"location,omitempty" yaml:"location"`
	Bio          string   `json:"bio,omitempty" yaml:"bio"`
	Skills       []string `json:"skills" yaml:"skills" validate:"dive,required"`
	Rating       float64  `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Experience   string   `json:"experience" yaml:"experience"`
	GitHub       string   `json:"github,omitempty" yaml:"github" validate:"omitempty,url"`
	LinkedIn     string   `json:"linkedin,omitempty" yaml:"linkedin" validate:"omitempty,url"`
	Availability string   `json:"availability" yaml:"availability"`
	Karma        float64  `json:"karma" yaml:"karma"`
	TotalMentees int      `json:"total_mentees" yaml:"total_mentees" validate:"gte=0"`
	Badge        string   `json:"badge,omitempty" yaml:"badge"`
}

// Schema exposes the filterable mentor fields.
var Schema = field.MustSchema(
	field.TextOf(FieldName, func(m Mentor) string { return m.Name }),
	field.TextOf(FieldLocation, func(m Mentor) string { return m.Location }),
	field.ListOf(FieldSkills, func(m Mentor) []string { return m.Skills }),
	field.NumberOf(FieldRating, func(m Mentor) float64 { return m.Rating }),
	field.NewLeadingInt(FieldExperience, func(m Mentor) (string, bool) {
		return m.Experience, m.Experience != ""
	}),
	field.NewText(FieldAvailability, func(m Mentor) (string, bool) {
		return m.Availability, m.Availability != ""
	}),
	field.NewText(FieldBadge, func(m Mentor) (string, bool) { return m.Badge, m.Badge != "" }),
)
