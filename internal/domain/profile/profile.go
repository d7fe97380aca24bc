// Package profile defines public student and mentor profiles.
package profile

import (
	"github.com/kailas-cloud/mentorhub/internal/domain/record/field"
)

// Role tells student profiles from mentor profiles.
type Role string

// Profile roles.
const (
	Student Role = "student"
	Mentor  Role = "mentor"
)

// GithubStats mirrors the public counters of a GitHub account.
type GithubStats struct {
	Repos         int `json:"repos" yaml:"repos" validate:"gte=0"`
	Followers     int `json:"followers" yaml:"followers" validate:"gte=0"`
	Following     int `json:"following" yaml:"following" validate:"gte=0"`
	Contributions int `json:"contributions" yaml:"contributions" validate:"gte=0"`
}

// Certification is an earned certificate.
type Certification struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Issuer string `json:"issuer" yaml:"issuer"`
	Date   string `json:"date" yaml:"date"`
}

// Review is feedback left on a profile.
type Review struct {
	ID             int     `json:"id" yaml:"id" validate:"required,gt=0"`
	Reviewer       string  `json:"reviewer" yaml:"reviewer" validate:"required"`
	ReviewerAvatar string  `json:"reviewer_avatar,omitempty" yaml:"reviewer_avatar"`
	Subject        string  `json:"subject" yaml:"subject"`
	Rating         float64 `json:"rating" yaml:"rating" validate:"gte=0,lte=5"`
	Comment        string  `json:"comment" yaml:"comment"`
	Date           string  `json:"date" yaml:"date"`
}

// Goal is one item of a student's learning plan.
type Goal struct {
	ID       int    `json:"id" yaml:"id" validate:"required,gt=0"`
	Goal     string `json:"goal" yaml:"goal" validate:"required"`
	Progress int    `json:"progress" yaml:"progress" validate:"gte=0,lte=100"`
	Category string `json:"category" yaml:"category"`
	Priority string `json:"priority" yaml:"priority" validate:"omitempty,oneof=low medium high"`
}

// Milestone is a project on the profile timeline.
type Milestone struct {
	ID           int      `json:"id" yaml:"id" validate:"required,gt=0"`
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description,omitempty" yaml:"description"`
	Status       string   `json:"status" yaml:"status"`
	Date         string   `json:"date" yaml:"date"`
	Rating       float64  `json:"rating,omitempty" yaml:"rating" validate:"gte=0,lte=5"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}

// MentorStats are the counters shown on mentor profiles.
type MentorStats struct {
	MenteeCount     int      `json:"mentee_count" yaml:"mentee_count" validate:"gte=0"`
	AvailableHours  int      `json:"available_hours" yaml:"available_hours" validate:"gte=0"`
	TotalSessions   int      `json:"total_sessions" yaml:"total_sessions" validate:"gte=0"`
	SuccessRate     int      `json:"success_rate" yaml:"success_rate" validate:"gte=0,lte=100"`
	YearsExperience int      `json:"years_experience" yaml:"years_experience" validate:"gte=0"`
	Specialization  string   `json:"specialization" yaml:"specialization"`
	Achievements    []string `json:"achievements" yaml:"achievements"`
}

// Profile is the stored profile document.
type Profile struct {
	ID             int             `json:"id" yaml:"id" validate:"required,gt=0"`
	Role           Role            `json:"role" yaml:"role" validate:"oneof=student mentor"`
	Name           string          `json:"name" yaml:"name" validate:"required"`
	Email          string          `json:"email" yaml:"email" validate:"omitempty,email"`
	Avatar         string          `json:"avatar,omitempty" yaml:"avatar"`
	Bio            string          `json:"bio" yaml:"bio"`
	Location       string          `json:"location" yaml:"location"`
	Experience     string          `json:"experience" yaml:"experience"`
	Karma          float64         `json:"karma" yaml:"karma" validate:"gte=0"`
	GithubUsername string          `json:"github_username,omitempty" yaml:"github_username"`
	Github         GithubStats     `json:"github_stats" yaml:"github_stats"`
	Skills         []string        `json:"skills" yaml:"skills" validate:"dive,required"`
	Certifications []Certification `json:"certifications" yaml:"certifications" validate:"dive"`
	Reviews        []Review        `json:"reviews" yaml:"reviews" validate:"dive"`
	LearningPlan   []Goal          `json:"learning_plan,omitempty" yaml:"learning_plan" validate:"dive"`
	Projects       []Milestone     `json:"projects" yaml:"projects" validate:"dive"`
	MentorStats    *MentorStats    `json:"mentor_stats,omitempty" yaml:"mentor_stats"`
}

// Field names of the profile schema.
const (
	FieldRole     = "role"
	FieldName     = "name"
	FieldBio      = "bio"
	FieldSkills   = "skills"
	FieldLocation = "location"
)

// Schema exposes the filterable profile fields.
var Schema = field.MustSchema(
	field.TextOf(FieldRole, func(p Profile) string { return string(p.Role) }),
	field.TextOf(FieldName, func(p Profile) string { return p.Name }),
	field.TextOf(FieldBio, func(p Profile) string { return p.Bio }),
	field.ListOf(FieldSkills, func(p Profile) []string { return p.Skills }),
	field.NewText(FieldLocation, func(p Profile) (string, bool) { return p.Location, p.Location != "" }),
)
