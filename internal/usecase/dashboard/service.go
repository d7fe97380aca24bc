// Package dashboard assembles the student analytics view.
package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/progress"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
)

// StudentRepository reads stored dashboards.
type StudentRepository interface {
	Find(ctx context.Context, fn func(student.Student) bool) (student.Student, error)
}

// Criteria keys for the recent projects list.
const (
	ByStatus = "status"
	BySearch = "search"
)

// ProjectEngine filters a student's recent projects.
var ProjectEngine = search.MustEngine(student.ProjectSchema,
	filter.Search(BySearch, student.FieldTitle, student.FieldMentor),
	filter.Equal(ByStatus, student.FieldStatus),
)

// Card is one stat card with its completion ratio.
type Card struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	Total      float64 `json:"total,omitempty"`
	Percentage int     `json:"percentage"`
}

// View is the assembled dashboard.
type View struct {
	Profile        student.Profile         `json:"profile"`
	Stats          student.Stats           `json:"stats"`
	Cards          []Card                  `json:"cards"`
	RecentProjects []student.ProjectResult `json:"recent_projects"`
	Completed      int                     `json:"completed"`
	Mentors        []student.MentorLink    `json:"mentors"`
	Weekly         []progress.Bar          `json:"weekly"`
}

// Service builds dashboards.
type Service struct {
	students StudentRepository
}

// New creates a dashboard service.
func New(students StudentRepository) *Service {
	return &Service{students: students}
}

// Get returns the dashboard of a student. c narrows the recent projects list;
// the completed count always covers every project.
func (s *Service) Get(ctx context.Context, studentID int, c filter.Criteria) (View, error) {
	if unknown := ProjectEngine.Unknown(c); len(unknown) > 0 {
		return View{}, fmt.Errorf("%w: unknown filter %s", domain.ErrInvalidCriteria, strings.Join(unknown, ", "))
	}

	st, err := s.students.Find(ctx, func(st student.Student) bool { return st.ID == studentID })
	if err != nil {
		return View{}, fmt.Errorf("get student %d: %w", studentID, err)
	}

	completed := len(ProjectEngine.Apply(st.RecentProjects, filter.Criteria{ByStatus: student.StatusCompleted}))

	points := make([]progress.Point, len(st.WeeklyProgress))
	for i, a := range st.WeeklyProgress {
		points[i] = progress.Point{Label: a.Day, Projects: a.Projects, Score: a.Score}
	}

	mentors := st.Mentors
	if mentors == nil {
		mentors = []student.MentorLink{}
	}

	return View{
		Profile:        st.Profile,
		Stats:          st.Stats,
		Cards:          cards(st.Stats),
		RecentProjects: ProjectEngine.Apply(st.RecentProjects, c),
		Completed:      completed,
		Mentors:        mentors,
		Weekly:         progress.Bars(points),
	}, nil
}

func cards(s student.Stats) []Card {
	return []Card{
		{
			Label:      "Projects Completed",
			Value:      float64(s.ProjectsCompleted),
			Total:      float64(s.TotalProjects),
			Percentage: progress.Percentage(float64(s.ProjectsCompleted), float64(s.TotalProjects)),
		},
		{
			Label:      "Overall Score",
			Value:      float64(s.OverallScore),
			Total:      float64(s.MaxScore),
			Percentage: progress.Percentage(float64(s.OverallScore), float64(s.MaxScore)),
		},
		{
			Label:      "Average Score",
			Value:      s.AverageScore,
			Total:      100,
			Percentage: progress.Percentage(s.AverageScore, 100),
		},
		{Label: "Study Hours", Value: float64(s.StudyHours)},
		{Label: "Certificates", Value: float64(s.Certificates)},
	}
}
