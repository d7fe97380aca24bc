package mentorhub

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/mentorhub/internal/db"
	"github.com/kailas-cloud/mentorhub/internal/db/embedded"
	dbRedis "github.com/kailas-cloud/mentorhub/internal/db/redis"
	"github.com/kailas-cloud/mentorhub/internal/domain"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/profile"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/student"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	"github.com/kailas-cloud/mentorhub/internal/repository/application"
	"github.com/kailas-cloud/mentorhub/internal/repository/record"
	"github.com/kailas-cloud/mentorhub/internal/seed"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/mentorhub/internal/usecase/health"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	"github.com/kailas-cloud/mentorhub/internal/usecase/search"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultGCInterval       = 5 * time.Minute
	defaultGCDiscardRatio   = 0.5
)

// Internal interfaces, replaced by fakes in tests.
type directoryUseCase interface {
	ListMentors(ctx context.Context, c filter.Criteria) (directoryuc.Listing[mentor.Mentor], error)
	GetMentor(ctx context.Context, id int) (mentor.Mentor, error)
	ListProjects(ctx context.Context, c filter.Criteria) (directoryuc.Listing[project.Project], error)
	GetProject(ctx context.Context, id int) (project.Project, error)
	ApplyToProject(ctx context.Context, projectID int, app project.Application) (project.Application, error)
	Applications(ctx context.Context, projectID int) ([]project.Application, error)
	WithdrawApplication(ctx context.Context, projectID int, email string) error
}

type mentorshipUseCase interface {
	List(ctx context.Context, q mentorshipuc.Query) (mentorshipuc.Listing, error)
	Create(ctx context.Context, mentorID int, draft mentorship.Draft) (mentorship.Request, error)
	Decide(ctx context.Context, id string, action mentorship.Status) (mentorship.Request, error)
}

type dashboardUseCase interface {
	Get(ctx context.Context, studentID int, c filter.Criteria) (dashboarduc.View, error)
}

type workspaceUseCase interface {
	Tasks(ctx context.Context, projectID int, c filter.Criteria) (workspaceuc.Board, error)
	CreateTask(ctx context.Context, projectID int, draft workspace.TaskDraft) (workspace.Task, error)
	Team(ctx context.Context, projectID int) ([]workspace.Member, error)
}

type profileUseCase interface {
	List(ctx context.Context, c filter.Criteria) (profileuc.Listing, error)
	Get(ctx context.Context, id int) (profileuc.View, error)
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Client is the mentorhub SDK entry point.
type Client struct {
	store        db.Store
	targets      seed.Targets
	directory    directoryUseCase
	mentorship   mentorshipUseCase
	dashboard    dashboardUseCase
	workspace    workspaceUseCase
	profiles     profileUseCase
	health       healthUseCase
	memoCapacity int
	obs          *observer
}

// New creates a Client. Without a storage option data is kept in memory.
// The provided context is used for the initial readiness check.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:         driverMemory,
		gcInterval:     defaultGCInterval,
		gcDiscardRatio: defaultGCDiscardRatio,
		memoCapacity:   search.DefaultMemoCapacity,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("mentorhub: database not ready: %w", err)
	}

	return wireClient(store, cfg, obs), nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverMemory:
		s, err := embedded.NewInMemory()
		if err != nil {
			return nil, fmt.Errorf("mentorhub: create memory store: %w", err)
		}
		return s, nil
	case driverDisk:
		if cfg.path == "" {
			return nil, errors.New("mentorhub: data directory required (use WithPath)")
		}
		s, err := embedded.NewStore(embedded.Config{
			Path:           cfg.path,
			SyncWrites:     true,
			GCInterval:     cfg.gcInterval,
			GCDiscardRatio: cfg.gcDiscardRatio,
			Logger:         cfg.logger,
		})
		if err != nil {
			return nil, fmt.Errorf("mentorhub: create disk store: %w", err)
		}
		return s, nil
	case driverRedis, driverValkey:
		if len(cfg.addrs) == 0 || cfg.addrs[0] == "" {
			return nil, fmt.Errorf("mentorhub: database address required for %s", cfg.driver)
		}
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:      cfg.addrs,
			Password:   cfg.password,
			ClientName: "mentorhub-sdk",
		})
		if err != nil {
			return nil, fmt.Errorf("mentorhub: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("mentorhub: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) *Client {
	mentors := record.New[mentor.Mentor](store, domain.MentorsKey)
	projects := record.New[project.Project](store, domain.ProjectsKey)
	requests := record.New[mentorship.Request](store, domain.RequestsKey)
	students := record.New[student.Student](store, domain.StudentsKey)
	workspaces := record.New[workspace.Workspace](store, domain.WorkspacesKey)
	profiles := record.New[profile.Profile](store, domain.ProfilesKey)

	directorySvc := directoryuc.New(mentors, projects, application.New(store)).
		WithMemo(cfg.memoCapacity, obs.memoLookups)

	return &Client{
		store: store,
		targets: seed.Targets{
			Mentors:  mentors,
			Projects: projects,
			Requests: requests,
			Students: students,

			Workspaces: workspaces,
			Profiles:   profiles,
		},
		directory:  directorySvc,
		mentorship: mentorshipuc.New(requests, mentors),
		dashboard:  dashboarduc.New(students),
		workspace:  workspaceuc.New(workspaces, projects),
		profiles:   profileuc.New(profiles),
		health: healthuc.New(store, map[string]healthuc.CatalogChecker{
			"mentors":  mentors,
			"projects": projects,
		}),
		memoCapacity: cfg.memoCapacity,
		obs:          obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// LoadSeed reads a seed file and replaces every collection with its content.
func (c *Client) LoadSeed(ctx context.Context, path string) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("load_seed", start, err) }()

	data, err := seed.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}
	return c.Seed(ctx, data)
}

// Seed replaces every collection with data.
func (c *Client) Seed(ctx context.Context, data SeedData) error {
	if err := seed.Write(ctx, data, c.targets); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	return nil
}
