package directory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/metrics"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
	"github.com/kailas-cloud/mentorhub/internal/validate"
)

// Engine names used as metric labels.
const (
	mentorsEngine  = "mentors"
	projectsEngine = "projects"
)

// Listing is a filtered view of a collection.
type Listing[R any] struct {
	Items  []R      `json:"items"`
	Count  int      `json:"count"`
	Total  int      `json:"total"`
	Skills []string `json:"skills"`
}

// Service serves the mentor directory and the project catalog.
type Service struct {
	mentors     MentorRepository
	projects    ProjectRepository
	apps        ApplicationRepository
	mentorMemo  *search.Memo[mentor.Mentor]
	projectMemo *search.Memo[project.Project]
	now         func() time.Time
}

// New creates a directory service with default memo capacity and no memo metrics.
func New(mentors MentorRepository, projects ProjectRepository, apps ApplicationRepository) *Service {
	return &Service{
		mentors:     mentors,
		projects:    projects,
		apps:        apps,
		mentorMemo:  search.NewMemo(MentorEngine, search.DefaultMemoCapacity, nil),
		projectMemo: search.NewMemo(ProjectEngine, search.DefaultMemoCapacity, nil),
		now:         time.Now,
	}
}

// WithMemo configures memo capacity and the lookup counter for each engine.
// lookups may be nil.
func (s *Service) WithMemo(capacity int, lookups func(engine string) *prometheus.CounterVec) *Service {
	var mentorLookups, projectLookups *prometheus.CounterVec
	if lookups != nil {
		mentorLookups = lookups(mentorsEngine)
		projectLookups = lookups(projectsEngine)
	}
	s.mentorMemo = search.NewMemo(MentorEngine, capacity, mentorLookups)
	s.projectMemo = search.NewMemo(ProjectEngine, capacity, projectLookups)
	return s
}

// ListMentors filters the directory. Skills lists every skill in the directory, sorted.
func (s *Service) ListMentors(ctx context.Context, c filter.Criteria) (Listing[mentor.Mentor], error) {
	if err := checkCriteria(MentorEngine, c); err != nil {
		return Listing[mentor.Mentor]{}, err
	}
	all, err := s.mentors.All(ctx)
	if err != nil {
		return Listing[mentor.Mentor]{}, fmt.Errorf("list mentors: %w", err)
	}

	started := time.Now()
	items := s.mentorMemo.Apply(all, c)
	metrics.ObserveFilter(mentorsEngine, started, len(items))

	return Listing[mentor.Mentor]{
		Items:  items,
		Count:  len(items),
		Total:  len(all),
		Skills: MentorEngine.Facets(all, mentor.FieldSkills).Sorted(),
	}, nil
}

// GetMentor returns a mentor by id.
func (s *Service) GetMentor(ctx context.Context, id int) (mentor.Mentor, error) {
	m, err := s.mentors.Find(ctx, func(m mentor.Mentor) bool { return m.ID == id })
	if err != nil {
		return mentor.Mentor{}, fmt.Errorf("get mentor %d: %w", id, err)
	}
	return m, nil
}

// ListProjects filters the catalog. Skills keeps first-occurrence order.
func (s *Service) ListProjects(ctx context.Context, c filter.Criteria) (Listing[project.Project], error) {
	if err := checkCriteria(ProjectEngine, c); err != nil {
		return Listing[project.Project]{}, err
	}
	all, err := s.projects.All(ctx)
	if err != nil {
		return Listing[project.Project]{}, fmt.Errorf("list projects: %w", err)
	}

	started := time.Now()
	items := s.projectMemo.Apply(all, c)
	metrics.ObserveFilter(projectsEngine, started, len(items))

	return Listing[project.Project]{
		Items:  items,
		Count:  len(items),
		Total:  len(all),
		Skills: ProjectEngine.Facets(all, project.FieldSkills).Values(),
	}, nil
}

// GetProject returns a project by id.
func (s *Service) GetProject(ctx context.Context, id int) (project.Project, error) {
	p, err := s.projects.Find(ctx, func(p project.Project) bool { return p.ID == id })
	if err != nil {
		return project.Project{}, fmt.Errorf("get project %d: %w", id, err)
	}
	return p, nil
}

// ApplyToProject records a student's application to a project.
func (s *Service) ApplyToProject(
	ctx context.Context, projectID int, app project.Application,
) (project.Application, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return project.Application{}, err
	}
	app.ProjectID = projectID
	app.StudentEmail = strings.TrimSpace(app.StudentEmail)
	app.StudentName = strings.TrimSpace(app.StudentName)
	if err := validate.Struct(app); err != nil {
		return project.Application{}, err
	}
	app.AppliedAt = s.now().UTC()

	if err := s.apps.Save(ctx, app); err != nil {
		return project.Application{}, fmt.Errorf("save application: %w", err)
	}
	return app, nil
}

// Applications lists the applications to a project.
func (s *Service) Applications(ctx context.Context, projectID int) ([]project.Application, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	apps, err := s.apps.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// WithdrawApplication removes a student's application. Withdrawing an
// application that does not exist is not an error.
func (s *Service) WithdrawApplication(ctx context.Context, projectID int, email string) error {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return err
	}
	if err := s.apps.Withdraw(ctx, projectID, strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("withdraw application: %w", err)
	}
	return nil
}

type criteriaChecker interface {
	Unknown(c filter.Criteria) []string
}

func checkCriteria(e criteriaChecker, c filter.Criteria) error {
	if unknown := e.Unknown(c); len(unknown) > 0 {
		return fmt.Errorf("%w: unknown filter %s", domain.ErrInvalidCriteria, strings.Join(unknown, ", "))
	}
	return nil
}
