package mentorhub

import (
	"context"

	"github.com/kailas-cloud/mentorhub/internal/domain/mentor"
	"github.com/kailas-cloud/mentorhub/internal/domain/mentorship"
	"github.com/kailas-cloud/mentorhub/internal/domain/project"
	"github.com/kailas-cloud/mentorhub/internal/domain/search/filter"
	"github.com/kailas-cloud/mentorhub/internal/domain/workspace"
	dashboarduc "github.com/kailas-cloud/mentorhub/internal/usecase/dashboard"
	directoryuc "github.com/kailas-cloud/mentorhub/internal/usecase/directory"
	healthuc "github.com/kailas-cloud/mentorhub/internal/usecase/health"
	mentorshipuc "github.com/kailas-cloud/mentorhub/internal/usecase/mentorship"
	profileuc "github.com/kailas-cloud/mentorhub/internal/usecase/profile"
	workspaceuc "github.com/kailas-cloud/mentorhub/internal/usecase/workspace"
)

// --- directoryUseCase mock ---

type mockDirectoryUC struct {
	listMentorsFn  func(ctx context.Context, c filter.Criteria) (directoryuc.Listing[mentor.Mentor], error)
	getMentorFn    func(ctx context.Context, id int) (mentor.Mentor, error)
	listProjectsFn func(ctx context.Context, c filter.Criteria) (directoryuc.Listing[project.Project], error)
	getProjectFn   func(ctx context.Context, id int) (project.Project, error)
	applyFn        func(ctx context.Context, projectID int, app project.Application) (project.Application, error)
	appsFn         func(ctx context.Context, projectID int) ([]project.Application, error)
	withdrawFn     func(ctx context.Context, projectID int, email string) error
}

func (m *mockDirectoryUC) ListMentors(
	ctx context.Context, c filter.Criteria,
) (directoryuc.Listing[mentor.Mentor], error) {
	return m.listMentorsFn(ctx, c)
}

func (m *mockDirectoryUC) GetMentor(ctx context.Context, id int) (mentor.Mentor, error) {
	return m.getMentorFn(ctx, id)
}

func (m *mockDirectoryUC) ListProjects(
	ctx context.Context, c filter.Criteria,
) (directoryuc.Listing[project.Project], error) {
	return m.listProjectsFn(ctx, c)
}

func (m *mockDirectoryUC) GetProject(ctx context.Context, id int) (project.Project, error) {
	return m.getProjectFn(ctx, id)
}

func (m *mockDirectoryUC) ApplyToProject(
	ctx context.Context, projectID int, app project.Application,
) (project.Application, error) {
	return m.applyFn(ctx, projectID, app)
}

func (m *mockDirectoryUC) Applications(ctx context.Context, projectID int) ([]project.Application, error) {
	return m.appsFn(ctx, projectID)
}

func (m *mockDirectoryUC) WithdrawApplication(ctx context.Context, projectID int, email string) error {
	return m.withdrawFn(ctx, projectID, email)
}

// --- mentorshipUseCase mock ---

type mockMentorshipUC struct {
	listFn   func(ctx context.Context, q mentorshipuc.Query) (mentorshipuc.Listing, error)
	createFn func(ctx context.Context, mentorID int, d mentorship.Draft) (mentorship.Request, error)
	decideFn func(ctx context.Context, id string, action mentorship.Status) (mentorship.Request, error)
}

func (m *mockMentorshipUC) List(ctx context.Context, q mentorshipuc.Query) (mentorshipuc.Listing, error) {
	return m.listFn(ctx, q)
}

func (m *mockMentorshipUC) Create(
	ctx context.Context, mentorID int, d mentorship.Draft,
) (mentorship.Request, error) {
	return m.createFn(ctx, mentorID, d)
}

func (m *mockMentorshipUC) Decide(
	ctx context.Context, id string, action mentorship.Status,
) (mentorship.Request, error) {
	return m.decideFn(ctx, id, action)
}

// --- dashboardUseCase mock ---

type mockDashboardUC struct {
	getFn func(ctx context.Context, studentID int, c filter.Criteria) (dashboarduc.View, error)
}

func (m *mockDashboardUC) Get(ctx context.Context, studentID int, c filter.Criteria) (dashboarduc.View, error) {
	return m.getFn(ctx, studentID, c)
}

// --- workspaceUseCase mock ---

type mockWorkspaceUC struct {
	tasksFn  func(ctx context.Context, projectID int, c filter.Criteria) (workspaceuc.Board, error)
	createFn func(ctx context.Context, projectID int, d workspace.TaskDraft) (workspace.Task, error)
	teamFn   func(ctx context.Context, projectID int) ([]workspace.Member, error)
}

func (m *mockWorkspaceUC) Tasks(ctx context.Context, projectID int, c filter.Criteria) (workspaceuc.Board, error) {
	return m.tasksFn(ctx, projectID, c)
}

func (m *mockWorkspaceUC) CreateTask(
	ctx context.Context, projectID int, d workspace.TaskDraft,
) (workspace.Task, error) {
	return m.createFn(ctx, projectID, d)
}

func (m *mockWorkspaceUC) Team(ctx context.Context, projectID int) ([]workspace.Member, error) {
	return m.teamFn(ctx, projectID)
}

// --- profileUseCase mock ---

type mockProfileUC struct {
	listFn func(ctx context.Context, c filter.Criteria) (profileuc.Listing, error)
	getFn  func(ctx context.Context, id int) (profileuc.View, error)
}

func (m *mockProfileUC) List(ctx context.Context, c filter.Criteria) (profileuc.Listing, error) {
	return m.listFn(ctx, c)
}

func (m *mockProfileUC) Get(ctx context.Context, id int) (profileuc.View, error) {
	return m.getFn(ctx, id)
}

// --- healthUseCase mock ---

type mockHealthUC struct {
	report healthuc.Report
}

func (m *mockHealthUC) Check(_ context.Context) healthuc.Report {
	return m.report
}
