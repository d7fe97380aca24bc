// Package project defines the project catalog record.
package project

import (
	"time"

	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
)

// Field names of the project schema.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSkills      = "skills"
	FieldDuration    = "duration"
	FieldDifficulty  = "difficulty"
	FieldMentor      = "mentor"
)

// Durations offered by the catalog filter.
var Durations = []string{"1-2 weeks", "2-4 weeks", "1-2 months", "3+ months"}

// Difficulties offered by the catalog filter.
var Difficulties = []string{"Easy", "Medium", "Hard"}

// Project is a catalog entry a student can apply to.
type Project struct {
	ID          int      `json:"id" yaml:"id" validate:"required,gt=0"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description"`
	Skills      []string `json:"skills" yaml:"skills" validate:"dive,required"`
	Duration    string   `json:"duration" yaml:"duration" validate:"omitempty,oneof='1-2 weeks' '2-4 weeks' '1-2 months' '3+ months'"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Mentor      string   `json:"mentor" yaml:"mentor"`
}

// Application is a student's request to join a project. One application is kept
// per student email and project; a repeated application replaces the earlier one.
type Application struct {
	ProjectID    int       `json:"project_id"`
	StudentName  string    `json:"student_name" validate:"required"`
	StudentEmail string    `json:"student_email" validate:"required,email"`
	Message      string    `json:"message,omitempty" validate:"max=2000"`
	AppliedAt    time.Time `json:"applied_at"`
}

// Schema exposes the filterable project fields.
var Schema = field.MustSchema(
	field.TextOf(FieldTitle, func(p Project) string { return p.Title }),
	field.TextOf(FieldDescription, func(p Project) string { return p.Description }),
	field.ListOf(FieldSkills, func(p Project) []string { return p.Skills }),
	field.NewText(FieldDuration, func(p Project) (string, bool) { return p.Duration, p.Duration != "" }),
	field.NewText(FieldDifficulty, func(p Project) (string, bool) { return p.Difficulty, p.Difficulty != "" }),
	field.TextOf(FieldMentor, func(p Project) string { return p.Mentor }),
)
