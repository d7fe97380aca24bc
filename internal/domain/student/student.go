// Package student holds the data behind the student dashboard.
package student

import "github.com/kailas-cloud/mentorhub/internal/domain/record/field"

// Project statuses on a student's track record.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
)

// Profile is the header of the dashboard.
type Profile struct {
	Name           string `json:"name" yaml:"name" validate:"required"`
	Email          string `json:"email" yaml:"email" validate:"required,email"`
	EnrollmentDate string `json:"enrollment_date" yaml:"enrollment_date"`
	CurrentStreak  int    `json:"current_streak" yaml:"current_streak" validate:"gte=0"`
	TotalScore     int    `json:"total_score" yaml:"total_score" validate:"gte=0"`
	Level          string `json:"level" yaml:"level"`
}

// Stats are the raw counters the stat cards are derived from.
type Stats struct {
	ProjectsCompleted int     `json:"projects_completed" yaml:"projects_completed" validate:"gte=0"`
	TotalProjects     int     `json:"total_projects" yaml:"total_projects" validate:"gte=0"`
	OverallScore      int     `json:"overall_score" yaml:"overall_score" validate:"gte=0"`
	MaxScore          int     `json:"max_score" yaml:"max_score" validate:"gte=0"`
	AverageScore      float64 `json:"average_score" yaml:"average_score"`
	StudyHours        int     `json:"study_hours" yaml:"study_hours" validate:"gte=0"`
	Certificates      int     `json:"certificates" yaml:"certificates" validate:"gte=0"`
}

// ProjectResult is one project on the student's track record.
type ProjectResult struct {
	ID            int    `json:"id" yaml:"id" validate:"required,gt=0"`
	Title         string `json:"title" yaml:"title" validate:"required"`
	Score         int    `json:"score" yaml:"score" validate:"gte=0"`
	MaxScore      int    `json:"max_score" yaml:"max_score" validate:"gte=0"`
	Status        string `json:"status" yaml:"status" validate:"oneof=completed in-progress"`
	CompletedDate string `json:"completed_date,omitempty" yaml:"completed_date"`
	Technology    string `json:"technology" yaml:"technology"`
	Mentor        string `json:"mentor" yaml:"mentor"`
}

// MentorLink is a mentor the student has had sessions with.
type MentorLink struct {
	ID        int     `json:"id" yaml:"id"`
	Name      string  `json:"name" yaml:"name"`
	Expertise string  `json:"expertise" yaml:"expertise"`
	Rating    float64 `json:"rating" yaml:"rating"`
	Sessions  int     `json:"sessions" yaml:"sessions"`
}

// Activity is one day of weekly progress.
type Activity struct {
	Day      string  `json:"day" yaml:"day"`
	Projects float64 `json:"projects" yaml:"projects"`
	Score    float64 `json:"score" yaml:"score"`
}

// Student is the stored dashboard document.
type Student struct {
	ID             int             `json:"id" yaml:"id" validate:"required,gt=0"`
	Profile        Profile         `json:"profile" yaml:"profile"`
	Stats          Stats           `json:"stats" yaml:"stats"`
	RecentProjects []ProjectResult `json:"recent_projects" yaml:"recent_projects" validate:"dive"`
	Mentors        []MentorLink    `json:"mentors" yaml:"mentors"`
	WeeklyProgress []Activity      `json:"weekly_progress" yaml:"weekly_progress"`
}

// Project field names.
const (
	FieldStatus = "status"
	FieldTitle  = "title"
	FieldMentor = "mentor"
)

// ProjectSchema exposes the filterable fields of a project result.
var ProjectSchema = field.MustSchema(
	field.TextOf(FieldStatus, func(p ProjectResult) string { return p.Status }),
	field.TextOf(FieldTitle, func(p ProjectResult) string { return p.Title }),
	field.TextOf(FieldMentor, func(p ProjectResult) string { return p.Mentor }),
)
